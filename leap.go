// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ratadie

// The leap oracles replace the two data-dependent modulo operations of
// the textbook rule with one multiply and a cutoff compare: after a
// domain bias makes the year non-negative, a fixed-point reciprocal of
// 100 pushes century multiples below the cutoff, and the final test
// masks against 16 for centuries and 4 otherwise. Each width carries
// its own reciprocal, cutoff and bias; the constants do not generalize
// across widths.

const (
	// leap16Mul is the 16-bit fixed-point reciprocal of 100.
	leap16Mul = 23593

	// leap16Cutoff isolates the zero residue after the multiply.
	leap16Cutoff = 2622

	// leap16Bias is a multiple of 100 near 2^15, keeping residues
	// aligned after the unsigned wrap.
	leap16Bias = (1 << 15) / 100 * 100

	// leap32Mul is floor(2^32/100)+1.
	leap32Mul = (1<<32)/100 + 1

	// leap32Cutoff is the 32-bit residue cutoff.
	leap32Cutoff = leap32Mul * 4

	// leap32Bias is a multiple of 100 near 2^31.
	leap32Bias = leap32Mul / 2 * 100

	// leap64Mul is the 64-bit fixed-point reciprocal of 100.
	leap64Mul = 1106804644422573097

	// leap64Cutoff is the 64-bit residue cutoff.
	leap64Cutoff = 737869762948382065

	// leap64Bias is a multiple of 100 near 2^63.
	leap64Bias = (1 << 63) / 100 * 100
)

// IsLeap16 reports whether a year is a Gregorian leap year. Exact over
// the full int16 range.
func IsLeap16(year int16) bool {
	low := (uint16(year) + leap16Bias) * leap16Mul
	mod := int16(4)
	if low < leap16Cutoff {
		mod = 16
	}
	return year%mod == 0
}

// IsLeap32 reports whether a year is a Gregorian leap year. Exact over
// the full int32 range, including negative years.
func IsLeap32(year int32) bool {
	low := (uint32(year) + leap32Bias) * leap32Mul
	mod := int32(4)
	if low < leap32Cutoff {
		mod = 16
	}
	return year%mod == 0
}

// IsLeap64 reports whether a year is a Gregorian leap year. Exact over
// the full int64 range.
func IsLeap64(year int64) bool {
	low := (uint64(year) + leap64Bias) * leap64Mul
	mod := int64(4)
	if low < leap64Cutoff {
		mod = 16
	}
	return year%mod == 0
}

// isLeapMask32 is the mask-based formulation: one true modulo for the
// century test, then a power-of-two mask. Kept as an independently
// derived cross-check for the multiply-and-cutoff oracles.
func isLeapMask32(year int32) bool {
	mask := int32(3)
	if year%100 == 0 {
		mask = 15
	}
	return year&mask == 0
}

// isLeapMask64 is the 64-bit mask-based formulation.
func isLeapMask64(year int64) bool {
	mask := int64(3)
	if year%100 == 0 {
		mask = 15
	}
	return year&mask == 0
}
