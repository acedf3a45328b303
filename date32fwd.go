// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ratadie

const (
	// joffe32K shifts the day count non-negative before the
	// quarter-day expansion.
	joffe32K = 719162 + 146097*fast32Eras + 306

	// joffe32L is the matching year shift.
	joffe32L = 400 * fast32Eras
)

// decodeJoffe32 is the forward-counting decoder: quarter-day
// expansion, a hardware divide for the century, then the Euclidean
// affine month/day split on the March-based remainder.
func decodeJoffe32(n int32) Date {
	d0 := uint32(n) + joffe32K

	qds := d0*4 + 3
	cen := qds / 146097
	jul := qds - (cen &^ 3) + cen*4
	yrs := jul / 1461
	rem := jul % 1461 / 4

	num := rem*2141 + 197913
	month := num / 65536
	day := num%65536/2141 + 1

	// rem >= 306 marks true January/February of the following year.
	var bump uint32
	if rem >= 306 {
		bump = 1
		month -= 12
	}

	return Date{
		Year:  int64(int32(yrs) - joffe32L + int32(bump)),
		Month: int(month),
		Day:   int(day),
	}
}
