package equity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"voyager.com/holdem/poker"
)

func testConfig(numOpponents int, trials int) SimConfig {
	return SimConfig{
		NumOpponents: numOpponents,
		Trials:       trials,
		Workers:      4,
		Seed:         42,
		CacheSize:    0,
	}
}

func mustCards(t *testing.T, s string) []poker.Card {
	t.Helper()
	cards, err := poker.ParseCards(s)
	if err != nil {
		t.Fatalf("Cannot parse cards %s: %s", s, err)
	}
	return cards
}

func TestEstimateConfigErrors(t *testing.T) {
	testCases := []struct {
		name   string
		config SimConfig
		hole   string
		board  string
	}{
		{"opponents exhaust the deck", testConfig(23, 100), "AcAd", ""},
		{"zero opponents", testConfig(0, 100), "AcAd", ""},
		{"zero trials", testConfig(1, 0), "AcAd", ""},
		{"one hole card", testConfig(1, 100), "Ac", ""},
		{"two board cards", testConfig(1, 100), "AcAd", "KsQs"},
		{"hole card repeats on board", testConfig(1, 100), "AcAd", "AcKdQs"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			estimator, err := NewEstimator(tc.config)
			assert.NoError(t, err)

			var board []poker.Card
			if tc.board != "" {
				board = mustCards(t, tc.board)
			}
			res, err := estimator.EstimateOnBoard(context.Background(), mustCards(t, tc.hole), board)
			assert.Error(t, err)
			assert.IsType(t, ConfigError{}, err)
			assert.Equal(t, Result{}, res)
		})
	}
}

func TestEstimateHandParseError(t *testing.T) {
	estimator, err := NewEstimator(testConfig(1, 100))
	assert.NoError(t, err)

	_, err = estimator.EstimateHand(context.Background(), "AcXd")
	assert.Error(t, err)
	assert.IsType(t, poker.CardParseError{}, err)

	_, err = estimator.EstimateHand(context.Background(), "AcAc")
	assert.Error(t, err)
	assert.IsType(t, poker.CardParseError{}, err)
}

func TestPocketAcesHeadsUp(t *testing.T) {
	estimator, err := NewEstimator(testConfig(1, 20000))
	assert.NoError(t, err)

	res, err := estimator.EstimateHand(context.Background(), "AcAd")
	assert.NoError(t, err)
	assert.Equal(t, 20000, res.Trials)

	// Heads-up pocket aces win about 85% of the time. The band is wide
	// enough that a correct sampler cannot drift out of it.
	assert.Greater(t, res.WinPct(), 80.0)
	assert.Less(t, res.WinPct(), 88.0)
	assert.Less(t, res.SplitPct(), 3.0)
	assert.LessOrEqual(t, res.Wins+res.Splits, res.Trials)
}

func TestEstimateDeterministicWithSeed(t *testing.T) {
	first, err := NewEstimator(testConfig(2, 2000))
	assert.NoError(t, err)
	second, err := NewEstimator(testConfig(2, 2000))
	assert.NoError(t, err)

	hole := mustCards(t, "KhQh")
	res1, err := first.Estimate(context.Background(), hole)
	assert.NoError(t, err)
	res2, err := second.Estimate(context.Background(), hole)
	assert.NoError(t, err)
	assert.Equal(t, res1, res2)
}

func TestEstimateRoyalBoardSplits(t *testing.T) {
	config := testConfig(3, 500)
	estimator, err := NewEstimator(config)
	assert.NoError(t, err)

	// Everyone plays the board, so every trial is a split no matter
	// what the opponents hold.
	res, err := estimator.EstimateOnBoard(context.Background(), mustCards(t, "2c7d"), mustCards(t, "AsKsQsJsTs"))
	assert.NoError(t, err)
	assert.Equal(t, Result{Wins: 0, Splits: 500, Trials: 500}, res)
	assert.Equal(t, 100.0, res.SplitPct())
	assert.Equal(t, 0.0, res.WinPct())
}

func TestEstimateOnFlop(t *testing.T) {
	estimator, err := NewEstimator(testConfig(2, 2000))
	assert.NoError(t, err)

	// Top set on a dry flop is a heavy favorite against two random hands.
	res, err := estimator.EstimateOnBoard(context.Background(), mustCards(t, "AsAd"), mustCards(t, "AcKd9c"))
	assert.NoError(t, err)
	assert.Equal(t, 2000, res.Trials)
	assert.Greater(t, res.WinPct(), 80.0)
}

func TestEstimateOnRiver(t *testing.T) {
	estimator, err := NewEstimator(testConfig(1, 1000))
	assert.NoError(t, err)

	// Set of aces on a rainbow river loses only to jack-ten.
	res, err := estimator.EstimateOnBoard(context.Background(), mustCards(t, "AsAd"), mustCards(t, "AhKdQc9s2d"))
	assert.NoError(t, err)
	assert.Equal(t, 1000, res.Trials)
	assert.Greater(t, res.WinPct(), 90.0)
}

func TestEstimatePreflopCacheHit(t *testing.T) {
	config := testConfig(2, 2000)
	config.CacheSize = 16
	estimator, err := NewEstimator(config)
	assert.NoError(t, err)

	// AhKh and AdKd fold into the same AKs entry, so the second
	// estimate must come back identical from the cache.
	res1, err := estimator.EstimateHand(context.Background(), "AhKh")
	assert.NoError(t, err)
	res2, err := estimator.EstimateHand(context.Background(), "AdKd")
	assert.NoError(t, err)
	assert.Equal(t, res1, res2)
}

func TestEstimateBoardBypassesCache(t *testing.T) {
	config := testConfig(2, 500)
	config.CacheSize = 16
	estimator, err := NewEstimator(config)
	assert.NoError(t, err)

	hole := mustCards(t, "AhKh")
	_, err = estimator.EstimateOnBoard(context.Background(), hole, mustCards(t, "2c7d9s"))
	assert.NoError(t, err)

	key := cacheKey(hole, config.NumOpponents, config.Trials)
	_, exists := estimator.cache.Get(key)
	assert.False(t, exists)
}

func TestEstimateCanceledContext(t *testing.T) {
	estimator, err := NewEstimator(testConfig(1, 1000))
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := estimator.Estimate(ctx, mustCards(t, "AcAd"))
	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, Result{}, res)
}

func TestEstimateWinProbability(t *testing.T) {
	win, split, err := EstimateWinProbability("AcAd")
	assert.NoError(t, err)

	// Pocket aces at a full nine-handed table win about 31% of the time.
	assert.Greater(t, win, 25.0)
	assert.Less(t, win, 40.0)
	assert.Less(t, split, 5.0)
	assert.LessOrEqual(t, win+split, 100.0)

	_, _, err = EstimateWinProbability("bogus")
	assert.Error(t, err)
}

func TestResultPercentages(t *testing.T) {
	res := Result{Wins: 8493, Splits: 251, Trials: 10000}
	assert.Equal(t, 84.93, res.WinPct())
	assert.Equal(t, 2.51, res.SplitPct())
	assert.Equal(t, 12.56, res.LossPct())

	assert.Equal(t, 0.0, Result{}.WinPct())
}
