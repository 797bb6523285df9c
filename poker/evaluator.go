package poker

import (
	"fmt"
	"math/bits"
	"sort"
)

// EvaluatedHand is the result of classifying five cards, or the best
// five out of six or seven. Cards holds the hand in comparison order:
// the cards making the category first, kickers after, each group
// descending by rank. Hands of the same rank compare card by card on
// rank alone, so suits never break a tie.
type EvaluatedHand struct {
	Rank  HandRank
	Cards [5]Card
}

// Compare returns 1 if h beats other, -1 if other beats h and 0 for a
// split. Category decides first; equal categories walk the cards left
// to right.
func (h EvaluatedHand) Compare(other EvaluatedHand) int {
	if h.Rank != other.Rank {
		if h.Rank > other.Rank {
			return 1
		}
		return -1
	}
	for i := 0; i < 5; i++ {
		hRank := h.Cards[i].Rank()
		oRank := other.Cards[i].Rank()
		if hRank != oRank {
			if hRank > oRank {
				return 1
			}
			return -1
		}
	}
	return 0
}

func (h EvaluatedHand) String() string {
	return fmt.Sprintf("%s %s", h.Rank, CardsToString(h.Cards[:]))
}

// Evaluate classifies five cards, or finds the strongest five-card
// hand within six or seven. Other counts and duplicated cards are
// caller bugs and panic.
func Evaluate(cards []Card) EvaluatedHand {
	assertDistinct(cards)
	switch len(cards) {
	case 5:
		return five(cards...)
	case 6:
		return six(cards...)
	case 7:
		return seven(cards...)
	default:
		panic("Only support 5, 6 and 7 cards.")
	}
}

func cardIndex(card Card) uint {
	return uint(card.Rank())*4 + uint(bits.TrailingZeros8(uint8(card.Suit())))
}

func assertDistinct(cards []Card) {
	var seen uint64
	for _, card := range cards {
		bit := uint64(1) << cardIndex(card)
		if seen&bit != 0 {
			panic(fmt.Sprintf("Duplicate card %s in %s", card, CardsToString(cards)))
		}
		seen |= bit
	}
}

func five(cards ...Card) EvaluatedHand {
	var sorted [5]Card
	copy(sorted[:], cards)
	sort.Slice(sorted[:], func(i, j int) bool { return sorted[i].Rank() > sorted[j].Rank() })

	// Suit bits are one-hot, so ANDing all five is nonzero only for a flush.
	flush := sorted[0]&sorted[1]&sorted[2]&sorted[3]&sorted[4]&0xF != 0
	straight, wheel := isStraight(sorted)
	if wheel {
		// 5-4-3-2-A: the ace plays low, so it moves to the tail and
		// the five leads the comparison.
		ace := sorted[0]
		copy(sorted[:4], sorted[1:])
		sorted[4] = ace
	}

	switch {
	case straight && flush:
		return EvaluatedHand{Rank: StraightFlush, Cards: sorted}
	case flush:
		return EvaluatedHand{Rank: Flush, Cards: sorted}
	case straight:
		return EvaluatedHand{Rank: Straight, Cards: sorted}
	}

	runs := rankRuns(sorted)
	ordered := orderByRuns(sorted, runs)
	switch len(runs) {
	case 2:
		if runs[0].length == 4 {
			return EvaluatedHand{Rank: FourOfAKind, Cards: ordered}
		}
		return EvaluatedHand{Rank: FullHouse, Cards: ordered}
	case 3:
		if runs[0].length == 3 {
			return EvaluatedHand{Rank: ThreeOfAKind, Cards: ordered}
		}
		return EvaluatedHand{Rank: TwoPair, Cards: ordered}
	case 4:
		return EvaluatedHand{Rank: Pair, Cards: ordered}
	default:
		return EvaluatedHand{Rank: HighCard, Cards: ordered}
	}
}

// isStraight reports whether the rank-descending cards run five in a
// row. The second result flags the wheel (5-4-3-2-A), the only
// straight where the ace plays low.
func isStraight(sorted [5]Card) (bool, bool) {
	consecutive := true
	for i := 1; i < 5; i++ {
		if sorted[i].Rank() != sorted[i-1].Rank()-1 {
			consecutive = false
			break
		}
	}
	if consecutive {
		return true, false
	}

	// Ranks of A, 5, 4, 3, 2.
	if sorted[0].Rank() == 12 && sorted[1].Rank() == 3 && sorted[2].Rank() == 2 &&
		sorted[3].Rank() == 1 && sorted[4].Rank() == 0 {
		return true, true
	}
	return false, false
}

type rankRun struct {
	start  int
	length int
}

// rankRuns splits the rank-descending cards into runs of equal rank,
// longest run first, higher rank first among equal lengths. Laying the
// runs back out in that order is the one reordering every paired
// category shares: quads, boats, trips, two pair and pairs all get
// their group-then-kicker comparison order from it.
func rankRuns(sorted [5]Card) []rankRun {
	runs := make([]rankRun, 0, 5)
	for i := 0; i < 5; {
		j := i + 1
		for j < 5 && sorted[j].Rank() == sorted[i].Rank() {
			j++
		}
		runs = append(runs, rankRun{start: i, length: j - i})
		i = j
	}
	sort.SliceStable(runs, func(i, j int) bool { return runs[i].length > runs[j].length })
	return runs
}

func orderByRuns(sorted [5]Card, runs []rankRun) [5]Card {
	var ordered [5]Card
	n := 0
	for _, run := range runs {
		copy(ordered[n:], sorted[run.start:run.start+run.length])
		n += run.length
	}
	return ordered
}

func six(cards ...Card) EvaluatedHand {
	// The zero hand ranks below HighCard, so the first subset always
	// replaces it.
	var best EvaluatedHand
	subset := make([]Card, 5)
	for skip := 0; skip < 6; skip++ {
		n := 0
		for i, card := range cards {
			if i == skip {
				continue
			}
			subset[n] = card
			n++
		}
		if hand := five(subset...); hand.Compare(best) > 0 {
			best = hand
		}
	}
	return best
}

func seven(cards ...Card) EvaluatedHand {
	var best EvaluatedHand
	subset := make([]Card, 5)
	// All 21 five-card subsets, each visited once.
	for a := 0; a < 3; a++ {
		for b := a + 1; b < 4; b++ {
			for c := b + 1; c < 5; c++ {
				for d := c + 1; d < 6; d++ {
					for e := d + 1; e < 7; e++ {
						subset[0] = cards[a]
						subset[1] = cards[b]
						subset[2] = cards[c]
						subset[3] = cards[d]
						subset[4] = cards[e]
						if hand := five(subset...); hand.Compare(best) > 0 {
							best = hand
						}
					}
				}
			}
		}
	}
	return best
}
