package poker

import "fmt"

// HandRank is the category of a five-card hand. A numerically higher
// rank always beats a lower one.
type HandRank int32

const (
	HighCard      HandRank = 1
	Pair          HandRank = 2
	TwoPair       HandRank = 3
	ThreeOfAKind  HandRank = 4
	Straight      HandRank = 5
	Flush         HandRank = 6
	FullHouse     HandRank = 7
	FourOfAKind   HandRank = 8
	StraightFlush HandRank = 9
)

var handRankToString = map[HandRank]string{
	HighCard:      "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
}

func (r HandRank) String() string {
	s, ok := handRankToString[r]
	if !ok {
		return fmt.Sprintf("HandRank(%d)", int32(r))
	}
	return s
}
