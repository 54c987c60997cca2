// Package seq provides copy-on-write helpers for []any sequences.
//
// Cursor paths share sibling and ancestor slices across many locations.
// Sharing is only safe if no write ever lands in a shared backing array,
// so every grower here allocates a fresh slice. Shrinkers (Pop, Rest) may
// return sub-slices of their input: readers never mutate, and growers
// always copy, so an aliased prefix or suffix can never be clobbered.
package seq

// Push returns a new sequence with v appended. The input is never modified,
// even when it has spare capacity.
func Push(xs []any, v any) []any {
	out := make([]any, len(xs)+1)
	copy(out, xs)
	out[len(xs)] = v
	return out
}

// PushFront returns a new sequence with v prepended.
func PushFront(v any, xs []any) []any {
	out := make([]any, len(xs)+1)
	out[0] = v
	copy(out[1:], xs)
	return out
}

// Pop returns the sequence without its last element. The result aliases
// the input's backing array.
func Pop(xs []any) []any {
	if len(xs) == 0 {
		return nil
	}
	return xs[:len(xs)-1]
}

// Last returns the final element. It panics on an empty sequence; callers
// check length (or rely on invariants that guarantee it).
func Last(xs []any) any {
	return xs[len(xs)-1]
}

// Rest returns the sequence without its first element, aliasing the input.
func Rest(xs []any) []any {
	if len(xs) <= 1 {
		return nil
	}
	return xs[1:]
}

// Clone returns a shallow copy, or nil for an empty input.
func Clone(xs []any) []any {
	if len(xs) == 0 {
		return nil
	}
	out := make([]any, len(xs))
	copy(out, xs)
	return out
}

// Concat3 builds left ++ [mid] ++ right in a single fresh slice. This is
// the shape of a reconstructed child level: left siblings, the focused
// node, right siblings, in order.
func Concat3(left []any, mid any, right []any) []any {
	out := make([]any, 0, len(left)+1+len(right))
	out = append(out, left...)
	out = append(out, mid)
	out = append(out, right...)
	return out
}
