// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ratadie

const (
	// wide32K aligns bucket zero with a 400-year cycle boundary after
	// the reversal.
	wide32K = 146097*5 - 719162 - 307 + 3845

	// wide32L is the matching year shift.
	wide32L = 14694*400 + 1

	// wide32BucketYears and wide32BucketDays tie each 2^17-day bucket
	// to a whole 400-year cycle.
	wide32BucketYears = 400
	wide32BucketDays  = 146097

	// minRataDieWide32 bounds the declared domain from below: inside
	// the first eight buckets the reversed count can underflow, so the
	// bottom 2^20 days of int32 are excluded.
	minRataDieWide32 = -1<<31 + 1<<20
)

// decodeWide32 covers almost the full signed 32-bit domain by slicing
// the biased day count into power-of-two buckets. Each bucket reverses
// the count against its own cycle-aligned reference, so the reversed
// value stays small enough for the 32-bit-scale reciprocals, and
// contributes a whole number of 400-year cycles to the year.
func decodeWide32(n int32) Date {
	d0 := uint32(n) + 1<<31
	bucket := d0 >> 17

	rev := bucket*wide32BucketDays - d0 + wide32K
	cen := uint32(uint64(rev) * cenRecip47 >> 47)
	jul := rev + cen - cen/4
	yrs := uint32(uint64(jul) * yrsRecip40 >> 40)
	rem := jul - yrs*1461/4

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
		Year:  int64(int32(wide32BucketYears*bucket) - wide32L - int32(yrs) + int32(bump)),
		Month: int(month),
		Day:   int(day),
	}
}
