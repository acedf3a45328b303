// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package wmul provides the widening 64x64->128 multiply used by the
// wide date codecs: a native implementation backed by math/bits and a
// portable emulation built from 32-bit halves behind the same
// signature. The two must agree on every input pair; the date codecs
// only ever consume the high half.
package wmul

import "math/bits"

// Mul returns the 128-bit product of a and b as (hi, lo).
func Mul(a, b uint64) (hi, lo uint64) {
	return bits.Mul64(a, b)
}

// Hi returns the high 64 bits of the product of a and b.
func Hi(a, b uint64) uint64 {
	hi, _ := bits.Mul64(a, b)
	return hi
}

// PortableMul is the software fallback: four 32x32->64 partial
// products with carry propagation. Kept for targets whose toolchain
// cannot lower bits.Mul64 to a single wide multiply, and as the
// reference the native path is checked against.
func PortableMul(a, b uint64) (hi, lo uint64) {
	const mask = 1<<32 - 1

	alo, ahi := a&mask, a>>32
	blo, bhi := b&mask, b>>32

	ll := alo * blo
	lh := alo * bhi
	hl := ahi * blo
	hh := ahi * bhi

	carry := ll>>32 + lh&mask + hl&mask

	lo = a * b
	hi = hh + lh>>32 + hl>>32 + carry>>32
	return hi, lo
}
