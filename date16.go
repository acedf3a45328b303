// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ratadie

// date16K shifts the 16-bit day count non-negative; no era folding is
// needed because the whole int16 domain spans under two centuries.
const date16K = 719468

// ToDate16 decodes a 16-bit day count. The declared domain is the full
// int16 range, covering 1880-04-14 through 2059-09-18.
func ToDate16(n int16) Date {
	d0 := uint32(int32(n) + date16K)

	qds := d0*4 + 3
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
		Year:  int64(yrs + bump),
		Month: int(month),
		Day:   int(day),
	}
}

// ToRataDie16 encodes a calendar date into a 16-bit day count. Dates
// outside the int16 window wrap silently.
func ToRataDie16(year int64, month, day int) int16 {
	return int16(toRataDie32(year, month, day))
}
