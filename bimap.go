package bimap

import (
	"fmt"
	"hash/maphash"
	"iter"

	"github.com/rs/zerolog/log"

	"github.com/nstoddard/bidirectional-map/internal/hashindex"
)

// Map is a bidirectional map: a one-to-one association between keys and values
// that can be queried from either side in amortized constant time.
//
// It maintains two hash indexes, forward (key -> value) and reverse (value -> key),
// which always hold the same set of pairs. Every pair is therefore stored twice.
//
// The zero value is an empty map using the default hashing strategy; K and V must
// then be comparable at run time. Map is not safe for concurrent use when any
// goroutine is writing.
type Map[K, V any] struct {
	fwd *hashindex.Index[K, V] // Forward index (key -> value)
	rev *hashindex.Index[V, K] // Reverse index (value -> key)
}

// New creates an empty map with the default hashing strategy.
func New[K, V comparable]() *Map[K, V] {
	return NewSeeded[K, V](defaultSeed)
}

// NewSeeded creates an empty map whose two indexes both hash with seed.
func NewSeeded[K, V comparable](seed maphash.Seed) *Map[K, V] {
	return WithHasher(Comparable[K](seed), Comparable[V](seed))
}

// WithHasher creates an empty map with an explicit hashing strategy for each side.
//
// Parameters:
//   - kh: Hashes and compares keys in the forward index
//   - vh: Hashes and compares values in the reverse index
//
// Returns:
//   - An empty Map
func WithHasher[K, V any](kh Hasher[K], vh Hasher[V]) *Map[K, V] {
	return newMap(kh, vh, 0)
}

func newMap[K, V any](kh Hasher[K], vh Hasher[V], hint int) *Map[K, V] {
	return &Map[K, V]{
		fwd: hashindex.New[K, V](kh, hint),
		rev: hashindex.New[V, K](vh, hint),
	}
}

// FromMap creates a map from a one-directional mapping, deriving the reverse
// index by inverting every pair. The source map is copied, not retained.
//
// The input must already be value-unique. If two keys share a value, the reverse
// index keeps only one of them (whichever is inverted last) and the map no longer
// satisfies the one-to-one invariant. This is not reported as an error.
func FromMap[K, V comparable](src map[K]V) *Map[K, V] {
	return FromMapWithHasher(src, Comparable[K](defaultSeed), Comparable[V](defaultSeed))
}

// FromMapWithHasher is FromMap with an explicit hashing strategy for each side.
//
// When kh treats distinct source keys as equal, only the first of them inverted
// is kept, on both sides, and the others are dropped.
func FromMapWithHasher[K comparable, V any](src map[K]V, kh Hasher[K], vh Hasher[V]) *Map[K, V] {
	m := newMap(kh, vh, len(src))
	dropped := 0
	for k, v := range src {
		if !m.fwd.Insert(k, v) {
			dropped++
			continue
		}
		if !m.rev.Insert(v, k) {
			m.rev.Delete(v)
			m.rev.Insert(v, k)
			dropped++
		}
	}
	if dropped > 0 {
		log.Debug().Int("dropped", dropped).Int("size", len(src)).
			Msg("source mapping is not one-to-one under the hashers, entries were dropped")
	}
	return m
}

// init gives the zero value its indexes on first mutation.
func (m *Map[K, V]) init() {
	if m.fwd == nil {
		m.fwd = hashindex.New[K, V](dynamicHasher[K]{seed: defaultSeed}, 0)
		m.rev = hashindex.New[V, K](dynamicHasher[V]{seed: defaultSeed}, 0)
	}
}

// Len returns the number of pairs.
func (m *Map[K, V]) Len() int {
	return m.fwd.Len()
}

// IsEmpty reports whether the map holds no pairs.
func (m *Map[K, V]) IsEmpty() bool {
	return m.fwd.Len() == 0
}

// GetForward returns the value associated with key.
func (m *Map[K, V]) GetForward(key K) (V, bool) {
	return m.fwd.Get(key)
}

// GetReverse returns the key associated with value.
func (m *Map[K, V]) GetReverse(value V) (K, bool) {
	return m.rev.Get(value)
}

// ContainsForward reports whether key is present.
func (m *Map[K, V]) ContainsForward(key K) bool {
	return m.fwd.Contains(key)
}

// ContainsReverse reports whether value is present.
func (m *Map[K, V]) ContainsReverse(value V) bool {
	return m.rev.Contains(value)
}

// Insert adds the pair (key, value).
//
// It panics with a *DuplicateError if key or value is already present. Both
// sides are checked before either is written, so the map is unchanged after
// the panic. To change an association, remove the old pair first.
func (m *Map[K, V]) Insert(key K, value V) {
	if err := m.TryInsert(key, value); err != nil {
		panic(err)
	}
}

// TryInsert adds the pair (key, value), or returns a *DuplicateError and leaves
// the map unchanged if key or value is already present.
func (m *Map[K, V]) TryInsert(key K, value V) error {
	m.init()
	if m.fwd.Contains(key) {
		return &DuplicateError{Side: Forward, Key: key, Value: value}
	}
	if m.rev.Contains(value) {
		return &DuplicateError{Side: Reverse, Key: key, Value: value}
	}
	m.fwd.Insert(key, value)
	m.rev.Insert(value, key)
	return nil
}

// RemoveForward removes the pair with the given key and returns its value.
// It panics with a *NotFoundError if key is absent.
func (m *Map[K, V]) RemoveForward(key K) V {
	value, ok := m.TryRemoveForward(key)
	if !ok {
		panic(&NotFoundError{Side: Forward, Item: key})
	}
	return value
}

// RemoveReverse removes the pair with the given value and returns its key.
// It panics with a *NotFoundError if value is absent.
func (m *Map[K, V]) RemoveReverse(value V) K {
	key, ok := m.TryRemoveReverse(value)
	if !ok {
		panic(&NotFoundError{Side: Reverse, Item: value})
	}
	return key
}

// TryRemoveForward removes the pair with the given key.
//
// Returns:
//   - The value the key was associated with, or the zero value
//   - A boolean indicating whether the key was found
func (m *Map[K, V]) TryRemoveForward(key K) (V, bool) {
	value, ok := m.fwd.Delete(key)
	if ok {
		m.rev.Delete(value)
	}
	return value, ok
}

// TryRemoveReverse removes the pair with the given value.
//
// Returns:
//   - The key the value was associated with, or the zero value
//   - A boolean indicating whether the value was found
func (m *Map[K, V]) TryRemoveReverse(value V) (K, bool) {
	key, ok := m.rev.Delete(value)
	if ok {
		m.fwd.Delete(key)
	}
	return key, ok
}

// Clear removes every pair.
func (m *Map[K, V]) Clear() {
	m.fwd.Clear()
	m.rev.Clear()
}

// All yields every (key, value) pair in an unspecified order. Each call starts
// a fresh traversal. The map must not be modified while iterating.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.fwd.All()
}

// Keys yields every key in an unspecified order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.fwd.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields every value in an unspecified order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range m.rev.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the map using the same hashing strategy.
func (m *Map[K, V]) Clone() *Map[K, V] {
	if m.fwd == nil {
		return &Map[K, V]{}
	}
	return &Map[K, V]{
		fwd: m.fwd.Clone(),
		rev: m.rev.Clone(),
	}
}

// emptyLike returns an empty map with the same hashing strategy as m.
func (m *Map[K, V]) emptyLike(hint int) *Map[K, V] {
	if m.fwd == nil {
		return &Map[K, V]{
			fwd: hashindex.New[K, V](dynamicHasher[K]{seed: defaultSeed}, hint),
			rev: hashindex.New[V, K](dynamicHasher[V]{seed: defaultSeed}, hint),
		}
	}
	return newMap[K, V](m.fwd.Hasher(), m.rev.Hasher(), hint)
}

// Validate checks that the forward and reverse indexes mirror each other and
// returns an *InconsistencyError describing the first mismatch. A map built only
// through Insert and the removal methods always validates, except when a key or
// value is not equal to itself (a float NaN): such an entry can be stored but, as
// with Go maps, never found again. FromMap with a source that is not value-unique
// does not validate either.
func (m *Map[K, V]) Validate() error {
	if m.fwd == nil {
		return nil
	}
	for k, v := range m.fwd.All() {
		rk, ok := m.rev.Get(v)
		if !ok {
			return &InconsistencyError{Side: Forward, Key: k, Value: v, Message: "value missing from reverse index"}
		}
		if !m.fwd.Hasher().Equal(rk, k) {
			return &InconsistencyError{Side: Forward, Key: k, Value: v,
				Message: fmt.Sprintf("reverse index maps value to key %v", rk)}
		}
	}
	for v, k := range m.rev.All() {
		fv, ok := m.fwd.Get(k)
		if !ok {
			return &InconsistencyError{Side: Reverse, Key: k, Value: v, Message: "key missing from forward index"}
		}
		if !m.rev.Hasher().Equal(fv, v) {
			return &InconsistencyError{Side: Reverse, Key: k, Value: v,
				Message: fmt.Sprintf("forward index maps key to value %v", fv)}
		}
	}
	if m.fwd.Len() != m.rev.Len() {
		return &InconsistencyError{Side: Forward,
			Message: fmt.Sprintf("forward index holds %d pairs, reverse index %d", m.fwd.Len(), m.rev.Len())}
	}
	return nil
}
