// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Rat is a rational number.
// Values decoded from RATIONAL and SRATIONAL fields keep the numerator
// and denominator as stored in the file, zero denominators included.
type Rat[T int32 | uint32] interface {
	Num() T
	Den() T
	Float64() float64

	// String returns the string representation of the rational number.
	// If the denominator is 1, the string will be the numerator only.
	String() string
}

var (
	_ encoding.TextUnmarshaler = (*rat[int32])(nil)
	_ encoding.TextMarshaler   = rat[int32]{}
)

// rat is a rational number.
// It's a lightweight version of math/big.rat.
type rat[T int32 | uint32] struct {
	num T
	den T
}

// Num returns the numerator of the rational number.
func (r rat[T]) Num() T {
	return r.num
}

// Den returns the denominator of the rational number.
func (r rat[T]) Den() T {
	return r.den
}

// Float64 returns the float64 representation of the rational number.
// A zero denominator gives ±Inf or NaN.
func (r rat[T]) Float64() float64 {
	return float64(r.num) / float64(r.den)
}

// String returns the string representation of the rational number.
// If the denominator is 1, the string will be the numerator only.
func (r rat[T]) String() string {
	if r.den == 1 {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

func (r *rat[T]) UnmarshalText(text []byte) error {
	s := string(text)
	if !strings.Contains(s, "/") {
		num, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse %q as a rational number: %w", s, err)
		}
		r.num = T(num)
		r.den = 1
		return nil
	}
	if _, err := fmt.Sscanf(s, "%d/%d", &r.num, &r.den); err != nil {
		return fmt.Errorf("failed to parse %q as a rational number: %w", s, err)
	}
	return nil
}

func (r rat[T]) MarshalText() (text []byte, err error) {
	return []byte(r.String()), nil
}

var errZeroDenominator = errors.New("denominator must be non-zero")

// NewRat returns a new Rat with the given numerator and denominator
// reduced to lowest terms with a positive denominator.
func NewRat[T int32 | uint32](num, den T) (Rat[T], error) {
	if den == 0 {
		return nil, errZeroDenominator
	}

	// Remove the greatest common divisor.
	gcd := func(a, b T) T {
		for b != 0 {
			a, b = b, a%b
		}
		return a
	}
	d := gcd(num, den)
	if d != 1 && d != 0 {
		num, den = num/d, den/d
	}

	// Denominator must be positive.
	if den < 0 {
		num, den = -num, -den
	}

	return rat[T]{num: num, den: den}, nil
}

// newRatRaw creates a Rat without any normalization.
func newRatRaw[T int32 | uint32](num, den T) Rat[T] {
	return rat[T]{num: num, den: den}
}

// ratEqual reports whether a and b represent the same number.
// Two rationals with zero denominators are equal only if identical.
func ratEqual[T int32 | uint32](a, b Rat[T]) bool {
	if a.Den() == 0 || b.Den() == 0 {
		return a.Num() == b.Num() && a.Den() == b.Den()
	}
	return int64(a.Num())*int64(b.Den()) == int64(b.Num())*int64(a.Den())
}

// toUint32 converts an unsigned integer scalar to uint32.
func toUint32(v any) (uint32, bool) {
	switch vv := v.(type) {
	case uint8:
		return uint32(vv), true
	case uint16:
		return uint32(vv), true
	case uint32:
		return vv, true
	default:
		return 0, false
	}
}
