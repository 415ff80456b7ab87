package ledger

import (
	"math"
	"regexp"
	"strconv"
)

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseQuantity reads the leading decimal number of raw, ignoring leading
// whitespace and anything after the number. Text without a leading number
// parses as zero.
//
//	"10"     -> 10
//	" 2.5kg" -> 2.5
//	"abc"    -> 0
func ParseQuantity(raw string) float64 {
	i := 0
	for i < len(raw) && isSpace(raw[i]) {
		i++
	}
	m := leadingNumber.FindString(raw[i:])
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
