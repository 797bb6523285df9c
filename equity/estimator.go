package equity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"voyager.com/holdem/logging"
	"voyager.com/holdem/poker"
	"voyager.com/holdem/util"
	"voyager.com/holdem/util/random"
)

// Result is the tally of one estimate. Trials that neither win nor
// split were lost to at least one opponent.
type Result struct {
	Wins   int
	Splits int
	Trials int
}

func (r Result) WinPct() float64 {
	return util.Percentage(r.Wins, r.Trials)
}

func (r Result) SplitPct() float64 {
	return util.Percentage(r.Splits, r.Trials)
}

func (r Result) LossPct() float64 {
	return util.Percentage(r.Trials-r.Wins-r.Splits, r.Trials)
}

func (r Result) String() string {
	return fmt.Sprintf("win %.2f%% split %.2f%% (%d trials)", r.WinPct(), r.SplitPct(), r.Trials)
}

// Estimator runs Monte Carlo equity estimates for one simulation
// shape. It is safe for concurrent use; each estimate spawns its own
// workers with their own generators.
type Estimator struct {
	config SimConfig
	cache  *preflopCache
	logger *zerolog.Logger
}

func NewEstimator(config SimConfig) (*Estimator, error) {
	if config.Workers < 1 {
		config.Workers = util.Env.GetSimWorkers(1)
	}
	estimator := &Estimator{
		config: config,
		logger: logging.GetZeroLogger("equity::estimator", nil),
	}
	if config.CacheSize > 0 && !util.Env.IsEquityCacheDisabled() {
		cache, err := newPreflopCache(config.CacheSize)
		if err != nil {
			return nil, err
		}
		estimator.cache = cache
	}
	return estimator, nil
}

// EstimateHand estimates from the four-character two-card form
// ("AcAd").
func (e *Estimator) EstimateHand(ctx context.Context, hand string) (Result, error) {
	hole, err := poker.ParseHoleCards(hand)
	if err != nil {
		return Result{}, err
	}
	return e.Estimate(ctx, hole)
}

// Estimate plays the hole cards against NumOpponents random hands on
// a board dealt fresh every trial.
func (e *Estimator) Estimate(ctx context.Context, hole []poker.Card) (Result, error) {
	return e.EstimateOnBoard(ctx, hole, nil)
}

// EstimateOnBoard pins known board cards (a flop, flop and turn, or a
// full board) and deals only the remainder each trial. An empty board
// estimates preflop equity.
func (e *Estimator) EstimateOnBoard(ctx context.Context, hole []poker.Card, board []poker.Card) (Result, error) {
	if len(hole) != 2 {
		return Result{}, newConfigError("Hole cards must be exactly 2, got %d", len(hole))
	}
	switch len(board) {
	case 0, 3, 4, 5:
	default:
		return Result{}, newConfigError("Board must hold 0, 3, 4 or 5 cards, got %d", len(board))
	}
	if e.config.NumOpponents < 1 {
		return Result{}, newConfigError("Number of opponents must be at least 1, got %d", e.config.NumOpponents)
	}
	if e.config.Trials < 1 {
		return Result{}, newConfigError("Number of trials must be at least 1, got %d", e.config.Trials)
	}

	known := make([]poker.Card, 0, len(hole)+len(board))
	known = append(known, hole...)
	known = append(known, board...)
	pool := poker.NewDeckNoShuffle().Without(known...).Cards()
	if len(pool) != 52-len(known) {
		return Result{}, newConfigError("Duplicate cards in %s", poker.CardsToString(known))
	}
	need := 2*e.config.NumOpponents + 5 - len(board)
	if need > len(pool) {
		return Result{}, newConfigError(
			"%d opponents need %d cards but the deck has %d left", e.config.NumOpponents, need, len(pool))
	}

	util.Metrics.EstimateRequested()

	var key string
	if e.cache != nil && len(board) == 0 {
		key = cacheKey(hole, e.config.NumOpponents, e.config.Trials)
		if result, exists := e.cache.Get(key); exists {
			util.Metrics.EquityCacheHit()
			e.logger.Debug().
				Str(logging.HandKey, poker.CardsToString(hole)).
				Msgf("Preflop cache hit [%s]", key)
			return result, nil
		}
	}

	runID := uuid.New().String()
	start := time.Now()
	result := e.simulate(ctx, hole, board, pool)
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	util.Metrics.TrialsSimulated(result.Trials)
	if e.cache != nil && key != "" {
		e.cache.Add(key, result)
	}

	event := e.logger.Info().
		Str(logging.RunIDKey, runID).
		Str(logging.HandKey, poker.CardsToString(hole)).
		Int(logging.OpponentsKey, e.config.NumOpponents).
		Int(logging.TrialsKey, result.Trials)
	if len(board) > 0 {
		event = event.Str(logging.BoardKey, poker.CardsToString(board))
	}
	event.Msgf("Estimated in %.3fs: %s", time.Since(start).Seconds(), result)

	return result, nil
}

// simulate splits the trials across workers and sums their counts.
// Each worker draws from its own generator seeded off one base, so a
// fixed config seed replays the exact same trial stream.
func (e *Estimator) simulate(ctx context.Context, hole []poker.Card, board []poker.Card, pool []poker.Card) Result {
	numWorkers := e.config.Workers
	if numWorkers > e.config.Trials {
		numWorkers = e.config.Trials
	}

	baseSeed := e.config.Seed
	if baseSeed == 0 {
		baseSeed = random.NewSeed()
	}

	e.logger.Debug().
		Int(logging.WorkersKey, numWorkers).
		Int64(logging.SeedKey, baseSeed).
		Msg("Dealing Monte Carlo trials")

	perWorker := e.config.Trials / numWorkers
	remainder := e.config.Trials % numWorkers

	partials := make(chan Result, numWorkers)
	for w := 0; w < numWorkers; w++ {
		numTrials := perWorker
		if w < remainder {
			numTrials++
		}
		go func(workerNum int, numTrials int) {
			partials <- runTrials(ctx, baseSeed+int64(workerNum), hole, board, pool, e.config.NumOpponents, numTrials)
		}(w, numTrials)
	}

	var total Result
	for w := 0; w < numWorkers; w++ {
		partial := <-partials
		total.Wins += partial.Wins
		total.Splits += partial.Splits
		total.Trials += partial.Trials
	}
	return total
}

// runTrials is one worker's share. Per trial: shuffle the pool, deal
// two cards to each opponent, complete the board, then compare the
// player's best hand against every opponent's. Losing to anyone loses
// the trial; otherwise tying anyone splits it; otherwise it is a win.
func runTrials(ctx context.Context, seed int64, hole []poker.Card, board []poker.Card, pool []poker.Card, numOpponents int, numTrials int) Result {
	randGen := random.NewGenerator(seed)

	cards := make([]poker.Card, len(pool))
	copy(cards, pool)

	toDeal := 5 - len(board)
	fullBoard := make([]poker.Card, 5)
	copy(fullBoard, board)

	sevenCards := make([]poker.Card, 7)

	var counts Result
	for t := 0; t < numTrials; t++ {
		// Cancellation is honored between trials only. A torn trial
		// has no outcome worth counting.
		if ctx.Err() != nil {
			break
		}

		randGen.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
		opponents := cards[:2*numOpponents]
		copy(fullBoard[len(board):], cards[2*numOpponents:2*numOpponents+toDeal])

		copy(sevenCards, hole)
		copy(sevenCards[2:], fullBoard)
		playerBest := poker.Evaluate(sevenCards)

		lost := false
		split := false
		for opp := 0; opp < numOpponents; opp++ {
			copy(sevenCards[:2], opponents[2*opp:2*opp+2])
			switch playerBest.Compare(poker.Evaluate(sevenCards)) {
			case -1:
				lost = true
			case 0:
				split = true
			}
			if lost {
				break
			}
		}

		counts.Trials++
		if lost {
			continue
		}
		if split {
			counts.Splits++
		} else {
			counts.Wins++
		}
	}
	return counts
}

// EstimateWinProbability answers the everyday question directly: the
// win and split percentages for a starting hand at a full nine-handed
// table, using the default trial count.
func EstimateWinProbability(hand string) (float64, float64, error) {
	estimator, err := NewEstimator(DefaultSimConfig())
	if err != nil {
		return 0, 0, err
	}
	result, err := estimator.EstimateHand(context.Background(), hand)
	if err != nil {
		return 0, 0, err
	}
	return result.WinPct(), result.SplitPct(), nil
}
