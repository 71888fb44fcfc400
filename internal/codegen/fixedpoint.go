package codegen

import "math"

// toFixed88 converts a float64 to a 16-bit 8.8 fixed-point integer, rounding
// half-up (math.Round already rounds half away from zero, which agrees with
// half-up for the non-negative physics quantities this function is used
// for — the Open Question in §9(a) is resolved in favour of this rule).
func toFixed88(f float64) int {
	return int(math.Round(f * 256))
}
