package kernels

import (
	"math"
	"math/bits"
)

// RotationRows is the number of (cos, sin) rows in the magnitude rotation
// table. Row k rotates by pi/2^(k+2); after all rows the residual angle is
// below 1e-7 rad.
const RotationRows = 24

// magGuardBits is the number of fractional bits carried through the
// rotations.
const magGuardBits = 24

// rotation holds cos and sin of one table angle in Q62.
type rotation struct {
	cos, sin uint64
}

var rotations = newRotationTable(RotationRows)

func newRotationTable(rows int) []rotation {
	table := make([]rotation, rows)
	theta := math.Pi / 4

	for k := range table {
		table[k] = rotation{
			cos: uint64(math.Round(math.Ldexp(math.Cos(theta), 62))),
			sin: uint64(math.Round(math.Ldexp(math.Sin(theta), 62))),
		}
		theta /= 2
	}

	return table
}

// mulQ62 returns (x * c) >> 62.
func mulQ62(x, c uint64) uint64 {
	hi, lo := bits.Mul64(x, c)

	return hi<<2 | lo>>62
}

// magInput returns |v| scaled by 2^s as an unsigned fixed-point value.
// Values that would pass 2^61 are pinned there; they saturate on output.
func magInput(v int64, s int) uint64 {
	u := uint64(abs64(v))

	if s >= 0 {
		if u != 0 && bits.Len64(u)+s > 61 {
			return 1 << 61
		}

		return u << s
	}

	if -s >= 64 {
		return 0
	}

	return u >> -s
}

// magnitude returns round(sqrt(re^2 + im^2) / 2^bShr).
//
// The point is folded into the first quadrant and then rotated by each
// table angle in turn, reflecting across the real axis whenever a rotation
// overshoots. The angle to the axis halves with every row, so the final x
// coordinate is the length of the vector.
func magnitude(re, im int64, bShr int) int64 {
	s := magGuardBits - bShr
	x, y := magInput(re, s), magInput(im, s)

	for _, r := range rotations {
		xc, ys := mulQ62(x, r.cos), mulQ62(y, r.sin)
		yc, xs := mulQ62(y, r.cos), mulQ62(x, r.sin)

		x = xc + ys
		if yc >= xs {
			y = yc - xs
		} else {
			y = xs - yc
		}
	}

	return int64((x + 1<<(magGuardBits-1)) >> magGuardBits)
}
