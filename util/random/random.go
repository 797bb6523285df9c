package random

import (
	crypto_rand "crypto/rand"
	"math/big"
	"math/rand"

	"github.com/db47h/rand64/v3/xoshiro"
)

func NewSeed() int64 {
	const MaxUint = ^uint(0)
	const MaxInt = int(MaxUint >> 1)
	nBig, err := crypto_rand.Int(crypto_rand.Reader, big.NewInt(int64(MaxInt)))
	if err != nil {
		panic("cannot seed math/rand package with cryptographically secure random number generator")
	}

	return nBig.Int64()
}

// NewGenerator returns a generator backed by a xoshiro256** source.
// The sequences for nearby seeds are unrelated, so handing each
// simulation worker seed+workerNum keeps their streams independent.
// Generators are not safe for concurrent use.
func NewGenerator(seed int64) *rand.Rand {
	src := xoshiro.Rng256SS{}
	src.Seed(seed)
	return rand.New(&src)
}
