package simulation

import (
	"fmt"

	cmap "github.com/orcaman/concurrent-map"

	"voyager.com/holdem/logging"
	"voyager.com/holdem/poker"
	"voyager.com/holdem/util"
	"voyager.com/holdem/util/random"
)

var simulationLogger = logging.GetZeroLogger("simulation::deal", nil)

const (
	numPlayers        = 9
	numCardsPerPlayer = 2
)

// DealStats aggregates what a batch of random nine-handed deals
// produced. CategoryCounts is keyed by category name, with ace-high
// straight flushes broken out as "Royal Flush".
type DealStats struct {
	Deals          int
	Evaluations    int
	CategoryCounts map[string]int
	PairedBoards   int
	FlopPaired     int
	TurnPaired     int
	RiverPaired    int
	OnePairBoards  int
}

type dealCounts struct {
	deals         int
	evaluations   int
	pairedBoards  int
	flopPaired    int
	turnPaired    int
	riverPaired   int
	onePairBoards int
	err           error
}

// Collect deals numDeals random hands split across workers and counts
// what everyone made. Each worker deals from its own seeded deck; the
// category tallies share one concurrent map.
func Collect(numDeals int, numWorkers int) (DealStats, error) {
	if numDeals < 1 {
		return DealStats{}, fmt.Errorf("Number of deals must be positive: %d", numDeals)
	}
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > numDeals {
		numWorkers = numDeals
	}

	simulationLogger.Info().
		Int(logging.NumDealsKey, numDeals).
		Int(logging.WorkersKey, numWorkers).
		Msg("Analyzing deals")

	categoryCounts := cmap.New()
	baseSeed := random.NewSeed()
	perWorker := numDeals / numWorkers
	remainder := numDeals % numWorkers

	partials := make(chan dealCounts, numWorkers)
	for w := 0; w < numWorkers; w++ {
		workerDeals := perWorker
		if w < remainder {
			workerDeals++
		}
		go runDeals(baseSeed+int64(w), workerDeals, categoryCounts, partials)
	}

	stats := DealStats{CategoryCounts: make(map[string]int)}
	var firstErr error
	for w := 0; w < numWorkers; w++ {
		partial := <-partials
		if partial.err != nil && firstErr == nil {
			firstErr = partial.err
		}
		stats.Deals += partial.deals
		stats.Evaluations += partial.evaluations
		stats.PairedBoards += partial.pairedBoards
		stats.FlopPaired += partial.flopPaired
		stats.TurnPaired += partial.turnPaired
		stats.RiverPaired += partial.riverPaired
		stats.OnePairBoards += partial.onePairBoards
	}
	if firstErr != nil {
		return DealStats{}, firstErr
	}

	for name, count := range categoryCounts.Items() {
		stats.CategoryCounts[name] = count.(int)
	}

	util.Metrics.DealsAnalyzed(stats.Deals)
	return stats, nil
}

func runDeals(seed int64, numDeals int, categoryCounts cmap.ConcurrentMap, partials chan<- dealCounts) {
	deck := poker.NewDeck(random.NewGenerator(seed))

	var counts dealCounts
	for i := 0; i < numDeals; i++ {
		if i > 0 && i%10000 == 0 {
			simulationLogger.Debug().Msgf("Deal %d", i)
		}

		deck.Shuffle()
		playerCards, communityCards, err := dealCards(deck, numPlayers)
		if err != nil {
			counts.err = err
			break
		}

		for _, pc := range playerCards {
			cards := make([]poker.Card, 0, numCardsPerPlayer+5)
			cards = append(cards, pc...)
			cards = append(cards, communityCards...)
			best := poker.Evaluate(cards)
			counts.evaluations++

			name := best.Rank.String()
			if best.Rank == poker.StraightFlush && best.Cards[0].Rank() == 12 {
				name = "Royal Flush"
			}
			categoryCounts.Upsert(name, 1, addCounts)
		}

		pairedAtIdx := poker.PairedAt(communityCards)
		if pairedAtIdx > 0 {
			counts.pairedBoards++
			if pairedAtIdx <= 3 {
				counts.flopPaired++
			} else if pairedAtIdx == 4 {
				counts.turnPaired++
			} else {
				counts.riverPaired++
			}
		}
		if poker.Evaluate(communityCards).Rank == poker.Pair {
			counts.onePairBoards++
		}

		counts.deals++
	}
	partials <- counts
}

func addCounts(exist bool, valueInMap interface{}, newValue interface{}) interface{} {
	if !exist {
		return newValue
	}
	return valueInMap.(int) + newValue.(int)
}

func dealCards(deck *poker.Deck, numPlayers int) ([][]poker.Card, []poker.Card, error) {
	playerCards := make([][]poker.Card, numPlayers)
	for i := range playerCards {
		playerCards[i] = make([]poker.Card, numCardsPerPlayer)
	}

	// One card per player per round, the way a live dealer pitches.
	for cardIdx := 0; cardIdx < numCardsPerPlayer; cardIdx++ {
		for player := 0; player < numPlayers; player++ {
			playerCards[player][cardIdx] = deck.Draw(1)[0]
		}
	}

	communityCards := make([]poker.Card, 0, 5)
	communityCards = append(communityCards, deck.Draw(3)...)
	communityCards = append(communityCards, deck.Draw(1)...)
	communityCards = append(communityCards, deck.Draw(1)...)

	for i, cards := range playerCards {
		if len(cards) != numCardsPerPlayer {
			return playerCards, communityCards, fmt.Errorf("Misdeal %d %d", i, len(cards))
		}
	}
	if len(communityCards) != 5 {
		return playerCards, communityCards, fmt.Errorf("Misdeal community cards %d", len(communityCards))
	}

	return playerCards, communityCards, nil
}

// Run deals and prints the frequency report.
func Run(numDeals int, numWorkers int) error {
	stats, err := Collect(numDeals, numWorkers)
	if err != nil {
		return err
	}

	cumTurnPaired := stats.FlopPaired + stats.TurnPaired
	cumRiverPaired := cumTurnPaired + stats.RiverPaired

	fmt.Printf("%d deals completed\n\nResult:\n", stats.Deals)
	reportOrder := []string{
		"Royal Flush",
		poker.StraightFlush.String(),
		poker.FourOfAKind.String(),
		poker.FullHouse.String(),
		poker.Flush.String(),
		poker.Straight.String(),
		poker.ThreeOfAKind.String(),
		poker.TwoPair.String(),
		poker.Pair.String(),
		poker.HighCard.String(),
	}
	for _, name := range reportOrder {
		count := stats.CategoryCounts[name]
		fmt.Printf("%-22s: %d/%d (%f)\n", name, count, stats.Evaluations, float32(count)/float32(stats.Evaluations))
	}
	fmt.Printf("%-22s: %d/%d (%f)\n", "Paired Boards", stats.PairedBoards, stats.Deals, float32(stats.PairedBoards)/float32(stats.Deals))
	fmt.Printf("%-22s: %d/%d (%f)\n", "Paired Boards (F)", stats.FlopPaired, stats.Deals, float32(stats.FlopPaired)/float32(stats.Deals))
	fmt.Printf("%-22s: %d/%d (%f)\n", "Paired Boards (T)", stats.TurnPaired, stats.Deals, float32(stats.TurnPaired)/float32(stats.Deals))
	fmt.Printf("%-22s: %d/%d (%f)\n", "Paired Boards (R)", stats.RiverPaired, stats.Deals, float32(stats.RiverPaired)/float32(stats.Deals))
	fmt.Printf("%-22s: %d/%d (%f)\n", "Paired Boards (F+T)", cumTurnPaired, stats.Deals, float32(cumTurnPaired)/float32(stats.Deals))
	fmt.Printf("%-22s: %d/%d (%f)\n", "Paired Boards (F+T+R)", cumRiverPaired, stats.Deals, float32(cumRiverPaired)/float32(stats.Deals))
	fmt.Printf("%-22s: %d/%d (%f)\n", "One-pair Boards", stats.OnePairBoards, stats.Deals, float32(stats.OnePairBoards)/float32(stats.Deals))

	return nil
}
