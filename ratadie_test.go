// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package ratadie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpochAnchors(t *testing.T) {
	require.Equal(t, Date{Year: 1970, Month: 1, Day: 1}, ToDate(0))
	require.Equal(t, Date{Year: 1969, Month: 12, Day: 31}, ToDate(-1))
	require.Equal(t, Date{Year: 1970, Month: 1, Day: 2}, ToDate(1))
	require.Equal(t, Date{Year: 2000, Month: 2, Day: 29}, ToDate(11016))
	require.Equal(t, Date{Year: 2000, Month: 3, Day: 1}, ToDate(11017))

	require.Equal(t, int32(0), ToRataDie(1970, 1, 1))
	require.Equal(t, int32(11016), ToRataDie(2000, 2, 29))
	require.Equal(t, int32(11017), ToRataDie(2000, 3, 1))
}

func TestRegistry(t *testing.T) {
	require.Greater(t, GetNumVariants(), 0)

	assert.Nil(t, GetVariant(-1))
	assert.Nil(t, GetVariant(GetNumVariants()))

	seen := map[string]bool{}
	for i := 0; i < GetNumVariants(); i++ {
		v := GetVariant(i)
		require.NotNil(t, v)
		assert.False(t, seen[v.Name()], "duplicate name %q", v.Name())
		seen[v.Name()] = true
		assert.Same(t, v, FindVariant(v.Name()))
		assert.Less(t, v.MinRataDie(), v.MaxRataDie())
	}

	assert.Nil(t, FindVariant("no-such-variant"))
}

func TestDefaultVariantIsProduction(t *testing.T) {
	d := DefaultVariant()
	require.NotNil(t, d)
	assert.False(t, d.Experimental())
	assert.NotNil(t, FindVariant(d.Name()))
}

func TestUseVariant(t *testing.T) {
	saved := DefaultVariant()
	defer UseVariant(saved.Name())

	require.NoError(t, UseVariant("joffe32"))
	assert.Equal(t, "joffe32", DefaultVariant().Name())
	assert.Equal(t, Date{Year: 1970, Month: 1, Day: 1}, ToDate(0))

	err := UseVariant("no-such-variant")
	require.ErrorIs(t, err, ErrUnknownVariant)
	assert.Equal(t, "joffe32", DefaultVariant().Name(), "failed switch must not change the default")
}

func TestVariantMethodsMatchPackageLevel(t *testing.T) {
	v := DefaultVariant()
	for _, n := range []int32{-1000000, -1, 0, 1, 11016, 1000000} {
		assert.Equal(t, ToDate(n), v.ToDate(n))
		assert.Equal(t, ToOrdinal(n), v.ToOrdinal(n))
	}
	assert.Equal(t, ToRataDie(2024, 2, 29), v.ToRataDie(2024, 2, 29))
}

func TestIsLeapAlias(t *testing.T) {
	for _, y := range []int32{1900, 2000, 2024, 2023, -4, -100, -400} {
		assert.Equal(t, IsLeap32(y), IsLeap(y), "year %d", y)
	}
	assert.True(t, IsLeap(2000))
	assert.False(t, IsLeap(1900))
	assert.True(t, IsLeap(-400))
}
