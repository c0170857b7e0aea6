package identifier

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MaxBatch caps how many rows a single generation may produce.
const MaxBatch = 1000

// CountPattern matches the plain decimal numbers accepted as a count. It is
// written in the common subset of RE2 and ECMAScript syntax so the page script
// compiles the same expression.
const CountPattern = `^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`

var countPattern = regexp.MustCompile(CountPattern)

// ParseCount converts the count field text into a batch size.
//
// Only plain decimals are numbers: hex, binary, digit separators, Inf and NaN
// give 0, as do empty input and values below 1. Fractions are floored, so
// "2.5" gives 2. Anything above MaxBatch gives MaxBatch.
func ParseCount(raw string) int {
	raw = strings.TrimSpace(raw)
	if !countPattern.MatchString(raw) {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	// Exponents past float64 range parse to ±Inf or 0 alongside ErrRange.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	if value < 1 {
		return 0
	}
	if value >= MaxBatch {
		return MaxBatch
	}
	return int(math.Floor(value))
}
