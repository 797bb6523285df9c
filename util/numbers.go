package util

import (
	"fmt"
	"math"
)

const epsilon = 0.000001

func RoundDecimal(num float64, digits int) float64 {
	switch digits {
	case 0:
		return math.Round(num)
	case 2:
		return math.Round(num*100) / 100
	default:
		panic(fmt.Sprintf("RoundDecimal digits not supported: %d", digits))
	}
}

// Percentage converts a count out of a total into a percentage rounded
// to two decimals. A zero total gives 0 rather than NaN.
func Percentage(count int, total int) float64 {
	if total == 0 {
		return 0
	}
	return RoundDecimal(100*float64(count)/float64(total), 2)
}

func NearlyEqual(a float64, b float64) bool {
	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	if diff < epsilon {
		return true
	}

	return false
}
