package poker

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"voyager.com/holdem/util/random"
)

func sortedStrings(cards []Card) []string {
	strs := make([]string, len(cards))
	for i, card := range cards {
		strs[i] = card.String()
	}
	sort.Strings(strs)
	return strs
}

func TestNewDeckHas52DistinctCards(t *testing.T) {
	deck := NewDeckNoShuffle()
	cards := deck.Cards()
	if len(cards) != 52 {
		t.Fatalf("Expected 52 cards, actual %d", len(cards))
	}

	seen := make(map[Card]bool)
	for _, card := range cards {
		if seen[card] {
			t.Errorf("Duplicate card %s in a fresh deck", card)
		}
		seen[card] = true
	}
}

func TestDeckWithout(t *testing.T) {
	hole := []Card{NewCard("Ac"), NewCard("Ad")}
	deck := NewDeckNoShuffle().Without(hole...)
	if deck.Size() != 50 {
		t.Fatalf("Expected 50 cards after Without, actual %d", deck.Size())
	}
	for _, card := range deck.Cards() {
		if card == hole[0] || card == hole[1] {
			t.Errorf("Card %s should have been removed from the deck", card)
		}
	}
}

func TestDeckDraw(t *testing.T) {
	deck := NewDeckNoShuffle()
	expected := deck.Cards()[:5]
	drawn := deck.Draw(5)
	if !cmp.Equal(drawn, expected) {
		t.Errorf("Draw: expected %s, actual %s", CardsToString(expected), CardsToString(drawn))
	}
	if deck.Size() != 47 {
		t.Errorf("Expected 47 cards after drawing 5, actual %d", deck.Size())
	}
}

func TestDeckShuffleRestoresPool(t *testing.T) {
	deck := NewDeck(random.NewGenerator(19))
	deck.Draw(23)
	deck.Shuffle()
	if deck.Size() != 52 {
		t.Errorf("Expected Shuffle to restore all 52 cards, actual %d", deck.Size())
	}

	reduced := NewDeck(random.NewGenerator(19)).Without(NewCard("Ac"), NewCard("Ad"))
	reduced.Draw(10)
	reduced.Shuffle()
	if reduced.Size() != 50 {
		t.Errorf("Expected Shuffle to restore the reduced pool of 50, actual %d", reduced.Size())
	}
}

func TestDeckShufflePreservesCards(t *testing.T) {
	deck := NewDeckNoShuffle()
	before := sortedStrings(deck.Cards())
	deck.Shuffle()
	after := sortedStrings(deck.Cards())
	if !cmp.Equal(before, after) {
		t.Errorf("Shuffle changed the cards:\n%s", cmp.Diff(before, after))
	}
}

func TestDeckShuffleDeterministicWithSeed(t *testing.T) {
	deck1 := NewDeck(random.NewGenerator(42))
	deck2 := NewDeck(random.NewGenerator(42))
	if !cmp.Equal(deck1.Cards(), deck2.Cards()) {
		t.Errorf("Decks with the same seed should deal identically:\n%s", cmp.Diff(deck1.Cards(), deck2.Cards()))
	}

	deck3 := NewDeck(random.NewGenerator(43))
	if cmp.Equal(deck1.Cards(), deck3.Cards()) {
		t.Errorf("Decks with different seeds dealt identically")
	}
}

func TestDeckEmpty(t *testing.T) {
	deck := NewDeckNoShuffle()
	if deck.Empty() {
		t.Errorf("Fresh deck should not be empty")
	}
	deck.Draw(52)
	if !deck.Empty() {
		t.Errorf("Deck should be empty after drawing all 52 cards")
	}
}
