// Package optional provides a generic container that either holds exactly one
// value or holds nothing.
//
// The container stores its value inline: an Optional[T] is a plain Go value
// carrying the storage for one T and a presence flag, so placing a value in it
// never allocates and the empty state never borrows a sentinel from T's own
// value space (a held nil pointer and an empty container are distinct states).
package optional

import "errors"

// ErrBadAccess is returned when a checked accessor is called on an empty Optional.
//
// It is the only error this package produces. Callers can match it with errors.Is,
// and it is the panic value of MustValue.
var ErrBadAccess = errors.New("Bad optional access")

// Optional represents an optional value.
// It either contains a value or it does not.
//
// The zero Optional is empty and ready to use. Optional has value semantics:
// assigning or passing one copies the contained value along with it, and the
// copy shares no storage with the original. A copied-from Optional keeps its
// value and stays populated.
//
// Optional is not safe for concurrent mutation; callers that share one across
// goroutines must provide their own synchronization, as with any plain value.
type Optional[T any] struct {
	value   T
	present bool
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// New returns an Optional holding a copy of value.
func New[T any](value T) Optional[T] {
	return Optional[T]{
		value:   value,
		present: true,
	}
}

// FromPtr converts a pointer into an Optional.
// A nil pointer yields an empty Optional; otherwise the pointed-to value is copied in.
func FromPtr[T any](ptr *T) Optional[T] {
	if ptr == nil {
		return None[T]()
	}

	return New(*ptr)
}

// HasValue returns true if the Optional contains a value.
func (o Optional[T]) HasValue() bool {
	return o.present
}

// Value returns a copy of the contained value.
// It returns ErrBadAccess if the Optional is empty.
func (o Optional[T]) Value() (T, error) {
	if !o.present {
		var zero T

		return zero, ErrBadAccess
	}

	return o.value, nil
}

// ValueRef returns a pointer to the contained value, allowing it to be
// modified in place. It returns ErrBadAccess if the Optional is empty.
func (o *Optional[T]) ValueRef() (*T, error) {
	if !o.present {
		return nil, ErrBadAccess
	}

	return &o.value, nil
}

// MustValue returns a copy of the contained value.
// It panics with ErrBadAccess if the Optional is empty.
func (o Optional[T]) MustValue() T {
	if !o.present {
		panic(ErrBadAccess)
	}

	return o.value
}

// Get returns the contained value and whether it is present.
// When the Optional is empty, the returned value is the zero value of T.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// ValueOr returns the contained value if present, otherwise fallback.
func (o Optional[T]) ValueOr(fallback T) T {
	if !o.present {
		return fallback
	}

	return o.value
}

// Ref returns a pointer to the container's storage WITHOUT checking presence.
//
// The caller guarantees the Optional is populated; that contract keeps this
// accessor free of any branch. Calling Ref on an empty Optional is a contract
// violation: the returned pointer addresses zero-valued storage, and writing
// through it leaves the container in an inconsistent state. Use ValueRef for
// checked access.
func (o *Optional[T]) Ref() *T {
	return &o.value
}

// Set assigns value into the Optional.
//
// If the Optional already holds a value, the new one is assigned through into
// the existing storage; the old value is not separately released first. If it
// is empty, the value is placed into the storage and presence is set.
func (o *Optional[T]) Set(value T) {
	o.value = value
	o.present = true
}

// Assign assigns the state of rhs into the Optional.
//
// Both sides populated: rhs's value is assigned through into the existing
// storage. Only rhs populated: its value is copied in and presence is set.
// Only the receiver populated: the held value is released and the Optional
// becomes empty. Both empty: no-op.
func (o *Optional[T]) Assign(rhs Optional[T]) {
	switch {
	case rhs.present:
		o.value = rhs.value
		o.present = true
	case o.present:
		o.Reset()
	}
}

// Reset releases the contained value, if any, leaving the Optional empty.
// The storage is zeroed so the container retains no references owned by the
// old value. Resetting an empty Optional is a no-op.
func (o *Optional[T]) Reset() {
	if !o.present {
		return
	}

	var zero T
	o.value = zero
	o.present = false
}
