// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ratadie

const (
	// fast32Eras is the number of 400-year cycles folded into the bias,
	// enough to cover years down to -2^15 and beyond.
	fast32Eras = 82

	// fast32K shifts the day count so the reversed count stays
	// non-negative across the declared domain.
	fast32K = 146097*fast32Eras - 719162 - 307

	// fast32L is the matching year shift.
	fast32L = 400*fast32Eras - 1

	// cenRecip47 is ceil(2^47 * 4 / 146097), the fixed-point reciprocal
	// of the 400-year cycle length in quarter days.
	cenRecip47 = 3853261555

	// yrsRecip40 is round(2^40 * 4 / 1461), the fixed-point reciprocal
	// of the 4-year cycle length in quarter days.
	yrsRecip40 = 3010298776

	// dayRecip32 is the fixed-point reciprocal of the 2141 month
	// stride, scaled to 2^32.
	dayRecip32 = 2006057

	// minRataDie32 is -32767-01-01: the inclusive lower bound of the
	// domain shared by the non-bucketed 32-bit variants.
	minRataDie32 = -12687428

	// maxRataDie32 is 32767-12-31, the matching upper bound.
	maxRataDie32 = 11248737
)

// decodeFast32 is the reversed-count decoder with the Jan/Feb cutoff
// taken early from the year remainder. This is the x86 constant
// selection: the cutoff picks one of two month-phase constants before
// the month multiply, so no post-correction of the month is needed.
func decodeFast32(n int32) Date {
	rev := fast32K - uint32(n)
	cen := uint32(uint64(rev) * cenRecip47 >> 47)
	jul := rev + cen - cen/4
	yrs := uint32(uint64(jul) * yrsRecip40 >> 40)
	rem := jul - yrs*1461/4

	// rem <= 59 means the day falls in true January or February.
	var bump uint32
	shift := uint32(979360)
	if rem <= 59 {
		bump = 1
		shift = 192928
	}

	num := shift - rem*2141
	month := num / 65536
	day := uint32(uint64(num%65536)*dayRecip32>>32) + 1

	return Date{
		Year:  int64(int32(fast32L) - int32(yrs) + int32(bump)),
		Month: int(month),
		Day:   int(day),
	}
}

// decodeFast32Deferred is the same pipeline with the Jan/Feb bump
// deferred until after the month divide (the arm64 constant
// selection). It must agree with decodeFast32 on every input.
func decodeFast32Deferred(n int32) Date {
	rev := fast32K - uint32(n)
	cen := uint32(uint64(rev) * cenRecip47 >> 47)
	jul := rev + cen - cen/4
	yrs := uint32(uint64(jul) * yrsRecip40 >> 40)
	rem := jul - yrs*1461/4

	num := uint32(979360) - rem*2141
	month := num / 65536
	day := uint32(uint64(num%65536)*dayRecip32>>32) + 1

	var bump uint32
	if month > 12 {
		bump = 1
		month -= 12
	}

	return Date{
		Year:  int64(int32(fast32L) - int32(yrs) + int32(bump)),
		Month: int(month),
		Day:   int(day),
	}
}
