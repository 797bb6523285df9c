package equity

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"voyager.com/holdem/poker"
)

// preflopCache remembers estimates keyed by starting-hand class.
// Before any board card is known, equity only depends on the hand
// class, so AhKh and AsKs share the AKs entry. Estimates with board
// cards never enter the cache.
type preflopCache struct {
	results *lru.Cache
}

func newPreflopCache(size int) (*preflopCache, error) {
	results, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to initialize preflop equity cache")
	}
	return &preflopCache{results: results}, nil
}

func (c *preflopCache) Get(key string) (Result, bool) {
	v, exists := c.results.Get(key)
	if !exists {
		return Result{}, false
	}
	return v.(Result), true
}

func (c *preflopCache) Add(key string, result Result) {
	c.results.Add(key, result)
}

// cacheKey folds hole cards into starting-hand notation (AA, AKs,
// AKo) and tags on the simulation shape.
func cacheKey(hole []poker.Card, numOpponents int, trials int) string {
	hi, lo := hole[0], hole[1]
	if lo.Rank() > hi.Rank() {
		hi, lo = lo, hi
	}

	var class string
	switch {
	case hi.Rank() == lo.Rank():
		class = fmt.Sprintf("%c%c", hi.String()[0], lo.String()[0])
	case hi.Suit() == lo.Suit():
		class = fmt.Sprintf("%c%cs", hi.String()[0], lo.String()[0])
	default:
		class = fmt.Sprintf("%c%co", hi.String()[0], lo.String()[0])
	}
	return fmt.Sprintf("%s:%d:%d", class, numOpponents, trials)
}
