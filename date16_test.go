// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ratadie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToDate16Exhaustive(t *testing.T) {
	for i := 0; i < 1<<16; i++ {
		n := int16(i - 1<<15)
		want := refToDate(int64(n))
		if got := ToDate16(n); got != want {
			t.Fatalf("day %d: got %v, want %v", n, got, want)
		}
	}
}

func TestRoundTrip16(t *testing.T) {
	for i := 0; i < 1<<16; i++ {
		n := int16(i - 1<<15)
		d := ToDate16(n)
		if back := ToRataDie16(d.Year, d.Month, d.Day); back != n {
			t.Fatalf("round trip at %d: decoded %v, re-encoded %d", n, d, back)
		}
	}
}

func TestDate16Anchors(t *testing.T) {
	require.Equal(t, Date{Year: 1970, Month: 1, Day: 1}, ToDate16(0))
	require.Equal(t, Date{Year: 1969, Month: 12, Day: 31}, ToDate16(-1))
	require.Equal(t, Date{Year: 2000, Month: 2, Day: 29}, ToDate16(11016))
	require.Equal(t, Date{Year: 2000, Month: 3, Day: 1}, ToDate16(11017))
}
