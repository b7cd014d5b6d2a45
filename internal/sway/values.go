package sway

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// FocusedToken is the criteria value that compares against the focused
// container instead of a literal.
const FocusedToken = "__focused__"

// OrFocused is either a literal value or the focused marker.
//
// Construct it with Value or Focused; the zero value is Value of T's
// zero value.
type OrFocused[T any] struct {
	value   T
	focused bool
}

// Value wraps a literal criteria value.
func Value[T any](v T) OrFocused[T] {
	return OrFocused[T]{value: v}
}

// Focused returns the marker meaning "same as the focused container".
func Focused[T any]() OrFocused[T] {
	return OrFocused[T]{focused: true}
}

// IsFocused reports whether o is the focused marker.
func (o OrFocused[T]) IsFocused() bool {
	return o.focused
}

// Get returns the literal value. ok is false for the focused marker.
func (o OrFocused[T]) Get() (v T, ok bool) {
	if o.focused {
		var zero T
		return zero, false
	}
	return o.value, true
}

// String renders the literal or FocusedToken.
func (o OrFocused[T]) String() string {
	if o.focused {
		return FocusedToken
	}
	return fmt.Sprint(o.value)
}

// Ptr returns a pointer to v, for optional arguments.
func Ptr[T any](v T) *T {
	return &v
}

// NormalizeWhitespace collapses every run of whitespace into one space
// and trims the ends. Rendered text keeps the positions of omitted
// optional arguments, so compare normalized strings.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func u32(n uint32) string {
	return strconv.FormatUint(uint64(n), 10)
}

func i32(n int32) string {
	return strconv.FormatInt(int64(n), 10)
}

func f32(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// optU32 renders an absent optional number as the empty string.
func optU32(p *uint32) string {
	if p == nil {
		return ""
	}
	return u32(*p)
}

func when(cond bool, then string) string {
	if cond {
		return then
	}
	return ""
}

func joinAs[T any](items []T, sep string, render func(T) string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(render(item))
	}
	return b.String()
}

// deref unwraps a non-nil pointer to a variant so pointer and value forms
// render the same.
func deref[T any](v T) (T, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		var zero T
		return zero, false
	}
	inner, ok := rv.Elem().Interface().(T)
	return inner, ok
}
