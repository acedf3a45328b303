// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ratadie

import "github.com/complex-gh/ratadie_go/internal/wmul"

const (
	// date64Eras is the era fold of the wide 64-bit decoder.
	date64Eras = 4726498270

	// date64DayShift reverses the day count against the last covered
	// cycle boundary. The 307-day offset (not 306) lets the century
	// multiply and shift merge into a single multiply-high.
	date64DayShift = 146097*date64Eras - 719469

	// date64YearShift is the matching year shift.
	date64YearShift = 400*date64Eras - 1

	// cenRecip64 is floor(2^64 * 4 / 146097).
	cenRecip64 = 505054698555331

	// yrsRecip64 is round(2^64 * 4 / 1461).
	yrsRecip64 = 50504432782230121

	// MinRataDie64 and MaxRataDie64 bound the declared domain of
	// ToDate64, inclusive. The bounds were established by exhaustive
	// search around the first disagreeing inputs of the original
	// derivation.
	MinRataDie64 = -690527216974164
	MaxRataDie64 = date64DayShift
)

// date64Tuning holds the scale-dependent constants of the wide 64-bit
// decoder. The compact set (scale 1) defers the Jan/Feb bump past the
// month divide; the doubled set (scale 32) resolves it early with a
// cutoff on the scaled year position.
type date64Tuning struct {
	scale     uint32
	shift0    uint32
	shift1    uint32
	cutoff    uint32
	dayRecip  uint64
	earlyBump bool
}

var (
	date64TuningCompact = date64Tuning{
		scale:    1,
		shift0:   30556,
		dayRecip: 8619973866219416 * 32,
	}
	date64TuningWide = date64Tuning{
		scale:     32,
		shift0:    30556 * 32,
		shift1:    5980 * 32,
		cutoff:    3952 * 32,
		dayRecip:  8619973866219416,
		earlyBump: true,
	}
)

// activeDate64Tuning is selected once at package init.
var activeDate64Tuning *date64Tuning

// ToDate64 decodes a 64-bit day count with the reversed-count wide
// decoder. One multiply-high produces the century, a second splits the
// Julian-equivalent count into year and sub-year phase, and the
// fractional half of that product feeds the month/day split directly.
func ToDate64(n int64) Date {
	t := activeDate64Tuning

	rev := date64DayShift - uint64(n)
	cen := wmul.Hi(cenRecip64, rev)
	jul := rev - cen/4 + cen

	hi, lo := wmul.Mul(yrsRecip64, jul)
	yrs := date64YearShift - hi
	ypt := uint32(wmul.Hi(uint64(24451*t.scale), lo))

	var bump uint32
	phase := t.shift0
	if t.earlyBump && ypt < t.cutoff {
		bump = 1
		phase = t.shift1
	}

	num := uint32(yrs%4)*(16*t.scale) + phase - ypt
	month := num / (2048 * t.scale)
	day := uint32(wmul.Hi(t.dayRecip, uint64(num%(2048*t.scale)))) + 1

	if !t.earlyBump && month > 12 {
		bump = 1
		month -= 12
	}

	return Date{
		Year:  int64(yrs) + int64(bump),
		Month: int(month),
		Day:   int(day),
	}
}

const (
	// ns64Eras, ns64K and ns64L bias the divide-based wide decoder; no
	// widening multiply is required anywhere in its pipeline.
	ns64Eras = (1 << 61) / 146097
	ns64K    = 719468 + 146097*ns64Eras
	ns64L    = 400 * ns64Eras
)

// ToDate64Portable is the divide-based wide decoder. Slower than
// ToDate64 on targets with a fast multiply-high, but the century
// division needs only native 64-bit arithmetic, and its domain exceeds
// ToDate64's on both sides. Both decoders must agree on every input in
// [MinRataDie64, MaxRataDie64].
func ToDate64Portable(n int64) Date {
	d0 := uint64(n) + ns64K

	qds := 4*d0 + 3
	cen := qds / 146097
	doc := uint32(qds % 146097 / 4)

	q2 := 4*doc + 3
	p2 := uint64(marchYearRecip) * uint64(q2)
	z := uint64(p2 >> 32)
	marchDoy := uint32(p2&0xffffffff) / marchYearRecip / 4
	y := 100*cen + z

	num := 2141*marchDoy + 197913
	month := num / 65536
	day := num%65536/2141 + 1

	var bump uint64
	if marchDoy >= 306 {
		bump = 1
		month -= 12
	}

	return Date{
		Year:  int64(y-ns64L) + int64(bump),
		Month: int(month),
		Day:   int(day),
	}
}
