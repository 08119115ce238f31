package bimap

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicate is matched by errors raised when a key or value is already present.
	ErrDuplicate = errors.New("bimap: key or value already present")
	// ErrNotFound is matched by errors raised when a key or value is absent.
	ErrNotFound = errors.New("bimap: key or value not found")
	// ErrInconsistent is matched by errors reported by Map.Validate.
	ErrInconsistent = errors.New("bimap: indexes out of sync")
)

// DuplicateError reports an insertion whose key or value is already in the map.
// Side is Forward when the key was taken and Reverse when the value was.
type DuplicateError struct {
	Side  Side
	Key   any
	Value any
}

// Error implements the error interface for DuplicateError.
func (e *DuplicateError) Error() string {
	if e.Side == Reverse {
		return fmt.Sprintf("bimap: value %v already present (inserting key %v)", show(e.Value), show(e.Key))
	}
	return fmt.Sprintf("bimap: key %v already present (inserting value %v)", show(e.Key), show(e.Value))
}

// Is makes errors.Is(err, ErrDuplicate) true.
func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

// NotFoundError reports a removal of a key (Side Forward) or value (Side Reverse)
// that is not in the map.
type NotFoundError struct {
	Side Side
	Item any
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	if e.Side == Reverse {
		return fmt.Sprintf("bimap: value %v not found", show(e.Item))
	}
	return fmt.Sprintf("bimap: key %v not found", show(e.Item))
}

// Is makes errors.Is(err, ErrNotFound) true.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InconsistencyError describes the first pair found on one side without its
// mirror on the other.
type InconsistencyError struct {
	// Side is the index holding the pair that has no mirror
	Side Side
	// Key and Value are the pair as stored on Side
	Key   any
	Value any
	// Message explains what the other side holds instead
	Message string
}

// Error implements the error interface for InconsistencyError.
func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("bimap: %s pair (%v, %v): %s", e.Side, show(e.Key), show(e.Value), e.Message)
}

// Is makes errors.Is(err, ErrInconsistent) true.
func (e *InconsistencyError) Is(target error) bool {
	return target == ErrInconsistent
}

// show renders byte slices, the usual stand-in for string items, as quoted text.
func show(v any) any {
	if b, ok := v.([]byte); ok {
		return fmt.Sprintf("%q", b)
	}
	return v
}
