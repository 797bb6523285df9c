package poker

import (
	"fmt"
	"strings"
)

// Card packs a playing card into a single byte.
// High 4 bits rank of the card, low 4 bits suit of the card.
// 0000: 2
// 0001: 3
// 0010: 4
// 0011: 5
// 0100: 6
// 0101: 7
// 0110: 8
// 0111: 9
// 1000: 10
// 1001: J
// 1010: Q
// 1011: K
// 1100: A
// 0001: Spade
// 0010: Heart
// 0100: Diamond
// 1000: Club
type Card uint8

var (
	intRanks [13]int32
	strRanks = "23456789TJQKA"
)

var (
	charRankToIntRank = map[uint8]int32{}
	charSuitToIntSuit = map[uint8]int32{
		's': 1, // spades
		'h': 2, // hearts
		'd': 4, // diamonds
		'c': 8, // clubs
	}
	intSuitToCharSuit = "xshxdxxxc"
)

var prettySuits = map[int32]string{
	1: "♠", // spades
	2: "❤", // hearts
	4: "♦", // diamonds
	8: "♣", // clubs
}

func init() {
	for i := 0; i < 13; i++ {
		intRanks[i] = int32(i)
	}

	for i := range strRanks {
		charRankToIntRank[strRanks[i]] = intRanks[i]
	}
}

// NewCard builds a card from its two-character form ("As", "Td").
// It is meant for card literals in code and panics on bad input; use
// ParseCard for anything user-supplied.
func NewCard(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err.Error())
	}
	return card
}

// ParseCard converts the two-character form into a Card. The first
// character is the rank (23456789TJQKA), the second the suit (shdc).
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, CardParseError{Str: s, Reason: "a card takes exactly 2 characters"}
	}
	rank, ok := charRankToIntRank[s[0]]
	if !ok {
		return 0, CardParseError{Str: s, Reason: fmt.Sprintf("unknown rank '%c'", s[0])}
	}
	suit, ok := charSuitToIntSuit[s[1]]
	if !ok {
		return 0, CardParseError{Str: s, Reason: fmt.Sprintf("unknown suit '%c'", s[1])}
	}
	return Card(rank<<4 | suit), nil
}

// ParseCards converts a run of two-character cards ("AsKdQc") into a
// slice. Repeated cards are rejected since every consumer deals from a
// single deck.
func ParseCards(s string) ([]Card, error) {
	if len(s) == 0 || len(s)%2 != 0 {
		return nil, CardParseError{Str: s, Reason: "cards take 2 characters each"}
	}
	cards := make([]Card, 0, len(s)/2)
	seen := make(map[Card]bool)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		if seen[card] {
			return nil, CardParseError{Str: s, Reason: fmt.Sprintf("duplicate card %s", card)}
		}
		seen[card] = true
		cards = append(cards, card)
	}
	return cards, nil
}

// ParseHoleCards converts the four-character two-card form ("AcAd")
// accepted by the equity entry points.
func ParseHoleCards(s string) ([]Card, error) {
	if len(s) != 4 {
		return nil, CardParseError{Str: s, Reason: "hole cards take exactly 4 characters"}
	}
	return ParseCards(s)
}

func (c Card) Rank() int32 {
	return int32(c) >> 4
}

func (c Card) Suit() int32 {
	return int32(c) & 0xF
}

func (c Card) String() string {
	return string(strRanks[c.Rank()]) + string(intSuitToCharSuit[c.Suit()])
}

func (c Card) MarshalJSON() ([]byte, error) {
	return []byte("\"" + c.String() + "\""), nil
}

func (c *Card) UnmarshalJSON(b []byte) error {
	if len(b) != 4 || b[0] != '"' || b[3] != '"' {
		return CardParseError{Str: string(b), Reason: "expected a quoted 2-character card"}
	}
	card, err := ParseCard(string(b[1:3]))
	if err != nil {
		return err
	}
	*c = card
	return nil
}

func CardToString(card Card) string {
	return fmt.Sprintf("%s%s", string(strRanks[card.Rank()]), prettySuits[card.Suit()])
}

func CardsToString(cards []Card) string {
	var b strings.Builder
	b.Grow(32)
	fmt.Fprintf(&b, "[")
	for _, c := range cards {
		fmt.Fprintf(&b, " %s ", CardToString(c))
	}
	fmt.Fprintf(&b, "]")
	return b.String()
}

func PrintCards(cards []Card) string {
	return CardsToString(cards)
}
