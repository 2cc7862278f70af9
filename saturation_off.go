//go:build !bfp_saturate

package algobfp

// AllowSaturation reports whether exponent selection may let a result
// saturate at the extreme value to keep one more bit of precision.
const AllowSaturation = false
