package manager

import (
	"math"
	"strconv"
	"strings"
)

// round2 rounds half to even on the exact binary value, like Python's round(x, 2).
func round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	if err != nil {
		return x
	}
	return v
}

// formatPrice renders x the way Python's str(float) does: shortest
// round-trip digits, always with a decimal point, exponent form outside
// [1e-4, 1e16).
func formatPrice(x float64) string {
	abs := math.Abs(x)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(x, 'e', -1, 64)
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatLakhs(x float64) string {
	return "₹ " + formatPrice(x) + " Lakhs"
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
