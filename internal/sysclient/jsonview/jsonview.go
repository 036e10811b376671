// Package jsonview provides typed, failure-tolerant access to decoded JSON documents.
package jsonview

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/pkg/safe"
)

var dateLayouts = []string{
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05.000Z0700",
}

// Parse decodes a JSON document keeping numbers as json.Number.
func Parse(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode json: trailing data after document")
	}
	return v, nil
}

// Object is a decoded JSON object.
type Object map[string]any

// AsObject narrows a decoded value to an Object.
func AsObject(v any) (Object, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return Object(m), true
}

// AsObjects narrows a decoded value to a list of objects; any non-object element fails the whole list.
func AsObjects(v any) ([]Object, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]Object, 0, len(arr))
	for _, e := range arr {
		o, ok := AsObject(e)
		if !ok {
			return nil, false
		}
		out = append(out, o)
	}
	return out, true
}

// Has reports whether name is present with a non-null value.
func (o Object) Has(name string) bool {
	v, ok := o[name]
	return ok && v != nil
}

// String reads a string member.
func (o Object) String(name string) (string, bool) {
	s, ok := o[name].(string)
	return s, ok
}

// Bool reads a boolean member.
func (o Object) Bool(name string) (bool, bool) {
	b, ok := o[name].(bool)
	return b, ok
}

// Number reads a numeric member in its original textual form.
func (o Object) Number(name string) (json.Number, bool) {
	n, ok := o[name].(json.Number)
	return n, ok
}

// Float64 reads a finite number.
func (o Object) Float64(name string) (float64, bool) {
	n, ok := o.Number(name)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Int64 reads an integral number; fractional or out-of-range values are rejected, never truncated.
func (o Object) Int64(name string) (int64, bool) {
	d, ok := o.integral(name)
	if !ok {
		return 0, false
	}
	bi := d.BigInt()
	if !bi.IsInt64() {
		return 0, false
	}
	return bi.Int64(), true
}

// Uint64 reads a non-negative integral number that fits 64 bits.
func (o Object) Uint64(name string) (uint64, bool) {
	d, ok := o.integral(name)
	if !ok {
		return 0, false
	}
	bi := d.BigInt()
	if !bi.IsUint64() {
		return 0, false
	}
	return bi.Uint64(), true
}

// Uint32 is Uint64 narrowed to 32 bits; wider values are rejected.
func (o Object) Uint32(name string) (uint32, bool) {
	u, ok := o.Uint64(name)
	if !ok {
		return 0, false
	}
	v, err := safe.Uint32(u)
	return v, err == nil
}

// Uint8 is Uint64 narrowed to 8 bits; wider values are rejected.
func (o Object) Uint8(name string) (uint8, bool) {
	u, ok := o.Uint64(name)
	if !ok {
		return 0, false
	}
	v, err := safe.Uint8(u)
	return v, err == nil
}

func (o Object) integral(name string) (decimal.Decimal, bool) {
	n, ok := o.Number(name)
	if !ok {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil || !d.IsInteger() {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Date reads an ISO-8601 timestamp with millisecond precision.
func (o Object) Date(name string) (time.Time, bool) {
	s, ok := o.String(name)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Data reads standard base64 encoded bytes.
func (o Object) Data(name string) ([]byte, bool) {
	s, ok := o.String(name)
	if !ok {
		return nil, false
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return b, true
}

// Object reads a nested object.
func (o Object) Object(name string) (Object, bool) {
	return AsObject(o[name])
}

// Objects reads an array whose elements are all objects.
func (o Object) Objects(name string) ([]Object, bool) {
	return AsObjects(o[name])
}

// Values reads an array of arbitrary elements.
func (o Object) Values(name string) ([]any, bool) {
	v, ok := o[name].([]any)
	return v, ok
}

// Strings reads an array whose elements are all strings.
func (o Object) Strings(name string) ([]string, bool) {
	arr, ok := o.Values(name)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		s, ok := e.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// StringMap reads an object whose values are all strings.
func (o Object) StringMap(name string) (map[string]string, bool) {
	m, ok := o.Object(name)
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out[k] = s
	}
	return out, true
}

// MapObjects maps every object of the named array; a single failure fails the whole array.
func MapObjects[T any](o Object, name string, fn func(Object) (T, bool)) ([]T, bool) {
	objs, ok := o.Objects(name)
	if !ok {
		return nil, false
	}
	out := make([]T, 0, len(objs))
	for _, obj := range objs {
		v, ok := fn(obj)
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}
