package poker

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

var fullDeck *Deck

func init() {
	fullDeck = &Deck{initial: initializeFullCards()}
	fullDeck.cards = fullDeck.initial
}

// Deck deals from a pool of cards, the full 52 unless Without narrowed
// it. Shuffle always restores the whole pool, so one deck can run any
// number of deals.
type Deck struct {
	initial []Card
	cards   []Card
	randGen *rand.Rand
}

func newSeed() rand.Source {
	var b [8]byte
	_, err := crypto_rand.Read(b[:])
	if err != nil {
		panic("cannot seed math/rand package with cryptographically secure random number generator")
	}
	source := rand.NewSource(int64(binary.LittleEndian.Uint64(b[:])))
	return source
}

// NewDeck returns a shuffled deck. The generator drives this deck's
// shuffles from then on; passing nil gets a crypto-seeded one.
func NewDeck(randGen *rand.Rand) *Deck {
	if randGen == nil {
		randGen = rand.New(newSeed())
	}
	deck := &Deck{randGen: randGen}
	deck.initial = make([]Card, len(fullDeck.initial))
	copy(deck.initial, fullDeck.initial)
	deck.Shuffle()
	return deck
}

func NewDeckNoShuffle() *Deck {
	deck := &Deck{}
	deck.initial = make([]Card, len(fullDeck.initial))
	copy(deck.initial, fullDeck.initial)
	deck.cards = make([]Card, len(deck.initial))
	copy(deck.cards, deck.initial)
	return deck
}

// Without drops the given cards from the deck's pool and resets the
// remaining cards. Dealing the other players' sides of a known hand
// starts here.
func (deck *Deck) Without(exclude ...Card) *Deck {
	drop := make(map[Card]bool, len(exclude))
	for _, card := range exclude {
		drop[card] = true
	}
	filtered := make([]Card, 0, len(deck.initial))
	for _, card := range deck.initial {
		if !drop[card] {
			filtered = append(filtered, card)
		}
	}
	deck.initial = filtered
	deck.cards = make([]Card, len(filtered))
	copy(deck.cards, filtered)
	return deck
}

// Shuffle restores the deck's full pool in a uniform random order.
func (deck *Deck) Shuffle() *Deck {
	deck.cards = make([]Card, len(deck.initial))
	copy(deck.cards, deck.initial)

	if deck.randGen == nil {
		deck.randGen = rand.New(newSeed())
	}
	deck.randGen.Shuffle(len(deck.cards), func(i, j int) {
		deck.cards[i], deck.cards[j] = deck.cards[j], deck.cards[i]
	})

	return deck
}

func (deck *Deck) Draw(n int) []Card {
	cards := make([]Card, n)
	copy(cards, deck.cards[:n])
	deck.cards = deck.cards[n:]
	return cards
}

func (deck *Deck) Empty() bool {
	return len(deck.cards) == 0
}

func (deck *Deck) Size() int {
	return len(deck.cards)
}

// Cards returns a copy of the remaining cards in deal order.
func (deck *Deck) Cards() []Card {
	cards := make([]Card, len(deck.cards))
	copy(cards, deck.cards)
	return cards
}

func initializeFullCards() []Card {
	var cards []Card

	// Suits iterate in a fixed order so a seeded generator replays the
	// same deals across runs.
	for _, rank := range strRanks {
		for _, suit := range "shdc" {
			cards = append(cards, NewCard(string(rank)+string(suit)))
		}
	}

	return cards
}

func (deck *Deck) PrettyPrint() string {
	return CardsToString(deck.cards)
}
