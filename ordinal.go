// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ratadie

const (
	// ordinal32Eras folds 2500 whole 400-year cycles into the bias.
	ordinal32Eras = 2500

	// ordinal32K and ordinal32L are the day and year shifts of the
	// 32-bit ordinal decoder.
	ordinal32K = 719468 + 146097*ordinal32Eras
	ordinal32L = 400 * ordinal32Eras

	// marchYearRecip is the fixed-point reciprocal pair splitting the
	// day-of-century into (year-of-century, day-of-year) in one 64-bit
	// multiply: 2939745 * 1461 is just under 2^32.
	marchYearRecip = 2939745
)

// toOrdinal32 decodes a day count into (year, day-of-year, leap)
// without a full month/day decode. Declared domain: day counts in
// [-365961968, 707779855].
func toOrdinal32(n int32) Ordinal {
	d0 := uint32(n) + ordinal32K

	qds := 4*d0 + 3
	cen := qds / 146097
	doc := qds % 146097 / 4

	q2 := 4*doc + 3
	p2 := uint64(marchYearRecip) * uint64(q2)
	z := uint32(p2 >> 32)
	doy := uint32(p2) / marchYearRecip / 4
	y := 100*cen + z

	janFeb := doy >= 306
	var bump uint32
	if janFeb {
		bump = 1
	}
	year := int64(int32(y) - ordinal32L + int32(bump))

	leap := year&leapMask(year) == 0

	var ordinal uint32
	if janFeb {
		ordinal = doy - 305
	} else {
		ordinal = doy + 60
		if leap {
			ordinal++
		}
	}

	return Ordinal{Year: year, DayOfYear: int(ordinal), Leap: leap}
}

// toOrdinalFull32 covers the full int32 range by widening into the
// 64-bit ordinal pipeline. The bucketed date variants, whose declared
// domains exceed the 32-bit decoder's, pair with it in the registry.
func toOrdinalFull32(n int32) Ordinal { return ToOrdinal64(int64(n)) }

// ToOrdinal64 decodes a 64-bit day count into its ordinal view. Same
// pipeline as the 32-bit decoder with a 64-bit century count; the
// declared domain matches the ns64 variant.
func ToOrdinal64(n int64) Ordinal {
	d0 := uint64(n) + ns64K

	qds := 4*d0 + 3
	cen := qds / 146097
	doc := uint32(qds % 146097 / 4)

	q2 := 4*doc + 3
	p2 := uint64(marchYearRecip) * uint64(q2)
	z := uint64(p2 >> 32)
	doy := uint32(p2&0xffffffff) / marchYearRecip / 4
	y := 100*cen + z

	janFeb := doy >= 306
	var bump uint64
	if janFeb {
		bump = 1
	}
	year := int64(y-ns64L) + int64(bump)

	leap := year&leapMask(year) == 0

	var ordinal uint32
	if janFeb {
		ordinal = doy - 305
	} else {
		ordinal = doy + 60
		if leap {
			ordinal++
		}
	}

	return Ordinal{Year: year, DayOfYear: int(ordinal), Leap: leap}
}

// leapMask picks the quadrennial or hexadecennial mask for the inlined
// leap test used by the ordinal decoders.
func leapMask(year int64) int64 {
	if year%100 == 0 {
		return 15
	}
	return 3
}

// monthTuning holds the scaled-stride constants for decoding a
// day-of-year into month and day. Two instances exist: a compact set
// whose divisor is 2^15 and a doubled set whose 2^16 divisor is
// cheaper on x86.
type monthTuning struct {
	step    uint32
	divisor uint32
	shift0  uint32
	shift1  uint32
	shift2  uint32
}

var (
	monthTuningCompact = monthTuning{
		step:    1071,
		divisor: 1 << 15,
		shift0:  1<<15 - 439,
		shift1:  1<<15 - 439 + 1071,
		shift2:  1<<15 - 439 + 2*1071,
	}
	monthTuningWide = monthTuning{
		step:    2142,
		divisor: 1 << 16,
		shift0:  1<<16 - 878,
		shift1:  1<<16 - 878 + 2142,
		shift2:  1<<16 - 878 + 2*2142,
	}
)

// activeMonthTuning is selected once at package init.
var activeMonthTuning *monthTuning

// Date expands the ordinal view into a calendar date. The month
// boundaries of a March-based year form a linear stride, so one
// multiply and a power-of-two split recover month and day; the three
// phase constants absorb the January/February prefix for common,
// leap and post-February positions.
func (o Ordinal) Date() Date {
	t := activeMonthTuning

	janFebLen := uint32(59)
	if o.Leap {
		janFebLen++
	}

	doy := uint32(o.DayOfYear)
	shift := t.shift2
	if o.Leap {
		shift = t.shift1
	}
	if doy <= janFebLen {
		shift = t.shift0
	}

	num := doy*t.step + shift
	month := num / t.divisor
	day := num%t.divisor/t.step + 1

	return Date{Year: o.Year, Month: int(month), Day: int(day)}
}
