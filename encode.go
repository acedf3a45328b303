// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ratadie

const (
	// encode32Eras folds 14700 whole 400-year cycles into the year
	// bias so negative years stay non-negative after the shift.
	encode32Eras = 14700

	// encode32YearShift and encode32DayShift are the matching year and
	// day biases. The day bias includes the +1 that anchors day 0 at
	// 1970-01-01.
	encode32YearShift = 400 * encode32Eras
	encode32DayShift  = 719162 + 146097*encode32Eras + 306 + 1

	// encode64Eras is a power-of-two era count wide enough for the
	// year range reachable from the 64-bit decoders.
	encode64Eras = 1 << 35

	// encode64YearShift and encode64DayShift extend the same biasing
	// to 64-bit arithmetic.
	encode64YearShift = 400 * encode64Eras
	encode64DayShift  = 719162 + 146097*encode64Eras + 306 + 1
)

// toRataDie32 is the shared inverse of the 32-bit decoders. The two
// phase constants fold the March-based re-indexing of January and
// February into the month stride, so only the year takes an explicit
// one-step bump.
func toRataDie32(year int64, month, day int) int32 {
	var bump uint32
	phase := -2919
	if month <= 2 {
		bump = 1
		phase = 8829
	}

	yrs := uint32(year+encode32YearShift) - bump
	cen := yrs / 100

	yearDays := yrs*365 + yrs/4 - cen + cen/4
	monthDays := uint32((979*month + phase) / 32)

	return int32(yearDays + monthDays + uint32(day) - encode32DayShift)
}

// ToRataDie64 encodes a calendar date into a 64-bit day count. It is
// the exact inverse of ToDate64 over the 64-bit declared domain.
func ToRataDie64(year int64, month, day int) int64 {
	var bump uint64
	phase := -2919
	if month <= 2 {
		bump = 1
		phase = 8829
	}

	yrs := uint64(year+encode64YearShift) - bump
	cen := yrs / 100

	yearDays := yrs*365 + yrs/4 - cen + cen/4
	monthDays := uint64((979*month + phase) / 32)

	return int64(yearDays + monthDays + uint64(day) - encode64DayShift)
}
