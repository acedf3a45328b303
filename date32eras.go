// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ratadie

const (
	// eras32K is the quarter-day bias applied after the bucket
	// reduction.
	eras32K = (719162 + 306 - 3845)*4 + 3

	// eras32L is the matching year shift.
	eras32L = 14699 * 400

	// eras32BucketDays and eras32BucketYears remove seven 400-year
	// cycles per 2^20-day bucket, keeping the residual day count inside
	// the 32-bit working range.
	eras32BucketDays  = 7 * 146097
	eras32BucketYears = 7 * 400
)

// decodeEras32 approximates the 400-year cycle index with a bit shift
// before the forward pipeline runs on the residual. Experimental: the
// constant set has only been validated by the differential sweeps in
// this repository, not proven over the full domain.
func decodeEras32(n int32) Date {
	d0 := uint32(n) + 1<<31
	bucket := d0 >> 20
	days := d0 - eras32BucketDays*bucket

	qds := days*4 + eras32K
	cen := qds / 146097
	jul := qds - (cen &^ 3) + cen*4
	yrs := jul / 1461
	rem := jul % 1461 / 4

	num := rem*2141 + 197913
	month := num / 65536
	day := num%65536/2141 + 1

	var bump uint32
	if rem >= 306 {
		bump = 1
		month -= 12
	}

	return Date{
		Year:  int64(int32(yrs+bucket*eras32BucketYears+bump) - eras32L),
		Month: int(month),
		Day:   int(day),
	}
}
