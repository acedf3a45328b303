// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package ratadie converts between linear day counts (Rata Die) and
// proleptic Gregorian calendar dates using closed-form integer
// arithmetic: no loops, no per-call tables, and at most one calendar
// correction branch per conversion.
//
// Day 0 is 1970-01-01. Codecs exist for 16, 32 and 64-bit day counts;
// the 32-bit family ships several interchangeable variants tuned for
// different CPU families, selectable through the variant registry.
// Every operation is a pure function. Inputs outside a variant's
// declared domain produce well-defined but meaningless results (silent
// wraparound); callers own validation.
package ratadie

import (
	"errors"
	"runtime"
)

// Date is a proleptic Gregorian calendar date.
type Date struct {
	Year  int64
	Month int
	Day   int
}

// Ordinal is the (year, day-of-year) view of a Rata Die.
// DayOfYear is 1-indexed: [1,365], or [1,366] when Leap is set.
type Ordinal struct {
	Year      int64
	DayOfYear int
	Leap      bool
}

// Variant is one tuned implementation of the 32-bit date codec. All
// variants agree on every input inside the intersection of their
// declared domains; they differ only in constant selection and branch
// placement.
type Variant struct {
	name         string
	experimental bool
	minRataDie   int32
	maxRataDie   int32
	decode       func(int32) Date
	ordinal      func(int32) Ordinal
}

// Name returns the registry name of the variant.
func (v *Variant) Name() string { return v.name }

// Experimental reports whether the variant is still pending full
// differential validation. Experimental variants are never selected as
// the package default.
func (v *Variant) Experimental() bool { return v.experimental }

// MinRataDie returns the inclusive lower bound of the declared domain.
func (v *Variant) MinRataDie() int32 { return v.minRataDie }

// MaxRataDie returns the inclusive upper bound of the declared domain.
func (v *Variant) MaxRataDie() int32 { return v.maxRataDie }

// ToDate decodes a day count into a calendar date.
func (v *Variant) ToDate(n int32) Date { return v.decode(n) }

// ToOrdinal decodes a day count into its ordinal view. Each variant
// carries an ordinal decoder whose domain covers the variant's own
// declared domain; they all agree wherever their domains intersect.
func (v *Variant) ToOrdinal(n int32) Ordinal { return v.ordinal(n) }

// ToRataDie encodes a calendar date back into a day count. The
// encoder is shared by all 32-bit variants; it is the exact inverse of
// every production decoder over its declared domain.
func (v *Variant) ToRataDie(year int64, month, day int) int32 {
	return toRataDie32(year, month, day)
}

// variants is the registry of 32-bit codec variants, production
// variants first.
var variants = []*Variant{
	{name: "fast32", minRataDie: minRataDie32, maxRataDie: maxRataDie32, decode: decodeFast32, ordinal: toOrdinal32},
	{name: "fast32d", minRataDie: minRataDie32, maxRataDie: maxRataDie32, decode: decodeFast32Deferred, ordinal: toOrdinal32},
	{name: "joffe32", minRataDie: minRataDie32, maxRataDie: maxRataDie32, decode: decodeJoffe32, ordinal: toOrdinal32},
	{name: "wide32", minRataDie: minRataDieWide32, maxRataDie: 1<<31 - 1, decode: decodeWide32, ordinal: toOrdinalFull32},
	{name: "eras32", experimental: true, minRataDie: -1 << 31, maxRataDie: 1<<31 - 1, decode: decodeEras32, ordinal: toOrdinalFull32},
}

// defaultVariant is chosen once at init; see UseVariant.
var defaultVariant *Variant

// ErrUnknownVariant is returned by UseVariant for names not present in
// the registry.
var ErrUnknownVariant = errors.New("ratadie: unknown codec variant")

func init() {
	// The deferred-bump decoder and compact month tuning mirror the
	// original arm64 constant selection; everything else gets the
	// x86-tuned pair.
	if runtime.GOARCH == "arm64" {
		defaultVariant = FindVariant("fast32d")
		activeMonthTuning = &monthTuningCompact
		activeDate64Tuning = &date64TuningCompact
	} else {
		defaultVariant = FindVariant("fast32")
		activeMonthTuning = &monthTuningWide
		activeDate64Tuning = &date64TuningWide
	}
}

// GetNumVariants returns the number of registered 32-bit variants.
func GetNumVariants() int { return len(variants) }

// GetVariant returns the variant at the given registry index, or nil
// if the index is out of range.
func GetVariant(i int) *Variant {
	if i < 0 || i >= len(variants) {
		return nil
	}
	return variants[i]
}

// FindVariant returns the variant with the given name, or nil.
func FindVariant(name string) *Variant {
	for _, v := range variants {
		if v.name == name {
			return v
		}
	}
	return nil
}

// DefaultVariant returns the variant used by the package-level
// conversion functions.
func DefaultVariant() *Variant { return defaultVariant }

// UseVariant selects the variant used by the package-level conversion
// functions. It is intended for one-time configuration at startup, not
// for switching between conversions on concurrent goroutines.
func UseVariant(name string) error {
	v := FindVariant(name)
	if v == nil {
		return ErrUnknownVariant
	}
	defaultVariant = v
	return nil
}

// ToDate decodes a 32-bit day count with the default variant.
func ToDate(n int32) Date { return defaultVariant.decode(n) }

// ToOrdinal decodes a 32-bit day count into its ordinal view, using
// the ordinal decoder paired with the default variant.
func ToOrdinal(n int32) Ordinal { return defaultVariant.ordinal(n) }

// ToRataDie encodes a calendar date into a 32-bit day count.
func ToRataDie(year int64, month, day int) int32 {
	return toRataDie32(year, month, day)
}

// IsLeap reports whether a year is a Gregorian leap year. It is the
// 32-bit leap oracle; see IsLeap16 and IsLeap64 for the other widths.
func IsLeap(year int32) bool { return IsLeap32(year) }
