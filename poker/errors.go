package poker

import "fmt"

// CardParseError reports card text that does not name a card.
type CardParseError struct {
	Str    string
	Reason string
}

func (e CardParseError) Error() string {
	return fmt.Sprintf("Cannot parse card string [%s]: %s", e.Str, e.Reason)
}
