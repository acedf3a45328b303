// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ratadie

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// refIsLeap is the textbook rule.
func refIsLeap(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func TestIsLeap16Exhaustive(t *testing.T) {
	for y := math.MinInt16; y <= math.MaxInt16; y++ {
		if IsLeap16(int16(y)) != refIsLeap(int64(y)) {
			t.Fatalf("year %d: got %v", y, IsLeap16(int16(y)))
		}
	}
}

func TestIsLeap32(t *testing.T) {
	for y := int64(-500000); y <= 500000; y++ {
		if IsLeap32(int32(y)) != refIsLeap(y) {
			t.Fatalf("year %d: got %v", y, IsLeap32(int32(y)))
		}
	}

	edges := []int32{math.MinInt32, math.MinInt32 + 1, math.MaxInt32, math.MaxInt32 - 1}
	for _, y := range edges {
		require.Equal(t, refIsLeap(int64(y)), IsLeap32(y), "year %d", y)
	}

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 400000; i++ {
		y := int32(rng.Uint32())
		require.Equal(t, refIsLeap(int64(y)), IsLeap32(y), "year %d", y)
	}
}

func TestIsLeap64(t *testing.T) {
	for _, y := range []int64{
		math.MinInt64, math.MinInt64 + 1, math.MaxInt64, math.MaxInt64 - 1,
		-400, -100, -4, -1, 0, 4, 100, 400, 1900, 2000, 2024, 2100,
	} {
		require.Equal(t, refIsLeap(y), IsLeap64(y), "year %d", y)
	}

	rng := rand.New(rand.NewSource(12))
	for i := 0; i < 400000; i++ {
		y := int64(rng.Uint64())
		if IsLeap64(y) != refIsLeap(y) {
			t.Fatalf("year %d: got %v", y, IsLeap64(y))
		}
	}
}

func TestMaskFormulationsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 200000; i++ {
		y32 := int32(rng.Uint32())
		require.Equal(t, IsLeap32(y32), isLeapMask32(y32), "year %d", y32)
		y64 := int64(rng.Uint64())
		require.Equal(t, IsLeap64(y64), isLeapMask64(y64), "year %d", y64)
	}
}

func TestOrdinalLeapMatchesOracle(t *testing.T) {
	for n := int32(-200000); n <= 200000; n += 97 {
		o := toOrdinal32(n)
		require.Equal(t, IsLeap64(o.Year), o.Leap, "day %d", n)
	}
}
