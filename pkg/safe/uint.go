// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint8 converts signed or unsigned integers to uint8 with range validation.
func Uint8[T Integer](v T) (uint8, error) {
	u, err := unsigned(v, math.MaxUint8, "uint8")
	return uint8(u), err
}

// Uint32 converts signed or unsigned integers to uint32 with range validation.
func Uint32[T Integer](v T) (uint32, error) {
	u, err := unsigned(v, math.MaxUint32, "uint32")
	return uint32(u), err
}

// Uint64 converts signed or unsigned integers to uint64 while guarding against negatives.
func Uint64[T Integer](v T) (uint64, error) {
	return unsigned(v, math.MaxUint64, "uint64")
}

// Int64 converts signed or unsigned integers to int64, rejecting unsigned values above MaxInt64.
func Int64[T Integer](v T) (int64, error) {
	if v > 0 && uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(v), nil
}

func unsigned[T Integer](v T, limit uint64, kind string) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of %s range", v, kind)
	}
	if uint64(v) > limit {
		return 0, fmt.Errorf("value %d out of %s range", v, kind)
	}
	return uint64(v), nil
}
