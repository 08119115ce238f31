package bimap

import (
	"bytes"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher is the hashing strategy of one side of a Map.
// Equal(a, b) must imply Hash(a) == Hash(b).
type Hasher[T any] interface {
	Hash(T) uint64
	Equal(a, b T) bool
}

// Equivalent lets a value of type Q stand in for a stored value of type T
// during lookup, so callers need not build a T just to probe the map.
//
// Hash(q) must equal the index hasher's Hash(t) whenever Equal(q, t) is true.
type Equivalent[Q, T any] interface {
	Hash(Q) uint64
	Equal(q Q, stored T) bool
}

// defaultSeed is shared by every map built with New or FromMap.
var defaultSeed = maphash.MakeSeed()

// DefaultSeed returns the seed used by maps created with New and FromMap.
func DefaultSeed() maphash.Seed {
	return defaultSeed
}

// Comparable returns a Hasher for any comparable type, keyed by seed.
// Strings are hashed with maphash.String so that BytesAsString agrees with it.
func Comparable[T comparable](seed maphash.Seed) Hasher[T] {
	return comparableHasher[T]{seed: seed}
}

type comparableHasher[T comparable] struct {
	seed maphash.Seed
}

func (h comparableHasher[T]) Hash(v T) uint64 {
	if s, ok := any(v).(string); ok {
		return maphash.String(h.seed, s)
	}
	return maphash.Comparable(h.seed, v)
}

func (h comparableHasher[T]) Equal(a, b T) bool {
	return a == b
}

// dynamicHasher backs the zero value of Map, where K and V carry no comparable
// constraint. It panics on first use if the dynamic type is not comparable.
type dynamicHasher[T any] struct {
	seed maphash.Seed
}

func (h dynamicHasher[T]) Hash(v T) uint64 {
	a := any(v)
	if s, ok := a.(string); ok {
		return maphash.String(h.seed, s)
	}
	return maphash.Comparable(h.seed, a)
}

func (h dynamicHasher[T]) Equal(a, b T) bool {
	return any(a) == any(b)
}

// BytesAsString looks up string entries of a map hashed with Comparable(seed)
// by byte slice, without converting the slice to a string.
func BytesAsString(seed maphash.Seed) Equivalent[[]byte, string] {
	return bytesAsString{seed: seed}
}

type bytesAsString struct {
	seed maphash.Seed
}

func (e bytesAsString) Hash(b []byte) uint64 {
	return maphash.Bytes(e.seed, b)
}

func (e bytesAsString) Equal(b []byte, s string) bool {
	return string(b) == s
}

// XXHashString hashes strings with xxHash64.
type XXHashString struct{}

func (XXHashString) Hash(s string) uint64   { return xxhash.Sum64String(s) }
func (XXHashString) Equal(a, b string) bool { return a == b }

// XXHashBytes hashes byte slices with xxHash64. It makes []byte usable as a
// key or value type, which plain Go maps do not allow.
type XXHashBytes struct{}

func (XXHashBytes) Hash(b []byte) uint64   { return xxhash.Sum64(b) }
func (XXHashBytes) Equal(a, b []byte) bool { return bytes.Equal(a, b) }

// XXHashBytesAsString looks up entries of an XXHashString side by byte slice.
type XXHashBytesAsString struct{}

func (XXHashBytesAsString) Hash(b []byte) uint64          { return xxhash.Sum64(b) }
func (XXHashBytesAsString) Equal(b []byte, s string) bool { return string(b) == s }

// XXHashStringAsBytes looks up entries of an XXHashBytes side by string.
type XXHashStringAsBytes struct{}

func (XXHashStringAsBytes) Hash(s string) uint64          { return xxhash.Sum64String(s) }
func (XXHashStringAsBytes) Equal(s string, b []byte) bool { return s == string(b) }
