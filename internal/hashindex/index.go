// Package hashindex implements a uni-directional hash table whose hashing and
// equality are supplied by the caller. A bidirectional map is built from two of them.
package hashindex

import "iter"

const (
	// minBuckets is the bucket count of a freshly allocated index
	minBuckets = 8
	// maxLoad is the average bucket length above which the bucket array doubles
	maxLoad = 4
)

// Hasher hashes and compares values of type T.
// Equal(a, b) must imply Hash(a) == Hash(b).
type Hasher[T any] interface {
	Hash(T) uint64
	Equal(a, b T) bool
}

type entry[T, U any] struct {
	hash uint64
	key  T
	val  U
}

// Index maps keys of type T to values of type U.
// A nil *Index behaves as an empty index for every read operation.
type Index[T, U any] struct {
	hasher  Hasher[T]
	buckets [][]entry[T, U]
	count   int
}

// New creates an index using hasher, sized to hold about hint entries
// without growing.
func New[T, U any](hasher Hasher[T], hint int) *Index[T, U] {
	n := minBuckets
	for n*maxLoad < hint {
		n <<= 1
	}
	return &Index[T, U]{
		hasher:  hasher,
		buckets: make([][]entry[T, U], n),
	}
}

// Hasher returns the hasher the index was created with.
func (x *Index[T, U]) Hasher() Hasher[T] {
	return x.hasher
}

// Len returns the number of entries.
func (x *Index[T, U]) Len() int {
	if x == nil {
		return 0
	}
	return x.count
}

func (x *Index[T, U]) bucket(hash uint64) int {
	return int(hash & uint64(len(x.buckets)-1))
}

// Find looks up the entry whose key satisfies match among the keys hashing to hash.
// It lets callers probe with a stand-in for T, provided the stand-in hashes the
// same way as the key it matches.
func (x *Index[T, U]) Find(hash uint64, match func(T) bool) (T, U, bool) {
	if x != nil && x.count > 0 {
		for _, e := range x.buckets[x.bucket(hash)] {
			if e.hash == hash && match(e.key) {
				return e.key, e.val, true
			}
		}
	}
	var key T
	var val U
	return key, val, false
}

// Get returns the value stored under key.
func (x *Index[T, U]) Get(key T) (U, bool) {
	if x == nil {
		var val U
		return val, false
	}
	_, val, ok := x.Find(x.hasher.Hash(key), func(k T) bool {
		return x.hasher.Equal(k, key)
	})
	return val, ok
}

// Contains reports whether key is present.
func (x *Index[T, U]) Contains(key T) bool {
	_, ok := x.Get(key)
	return ok
}

// Insert stores val under key unless key is already present.
// It returns false, leaving the index unchanged, when the key exists.
func (x *Index[T, U]) Insert(key T, val U) bool {
	hash := x.hasher.Hash(key)
	b := x.bucket(hash)
	for _, e := range x.buckets[b] {
		if e.hash == hash && x.hasher.Equal(e.key, key) {
			return false
		}
	}
	x.buckets[b] = append(x.buckets[b], entry[T, U]{hash: hash, key: key, val: val})
	x.count++
	if x.count > len(x.buckets)*maxLoad {
		x.grow()
	}
	return true
}

// Remove deletes the entry matching match among the keys hashing to hash and
// returns it.
func (x *Index[T, U]) Remove(hash uint64, match func(T) bool) (T, U, bool) {
	if x != nil && x.count > 0 {
		b := x.bucket(hash)
		bucket := x.buckets[b]
		for i, e := range bucket {
			if e.hash != hash || !match(e.key) {
				continue
			}
			last := len(bucket) - 1
			bucket[i] = bucket[last]
			bucket[last] = entry[T, U]{}
			x.buckets[b] = bucket[:last]
			x.count--
			return e.key, e.val, true
		}
	}
	var key T
	var val U
	return key, val, false
}

// Delete removes key and returns the value it was stored with.
func (x *Index[T, U]) Delete(key T) (U, bool) {
	if x == nil {
		var val U
		return val, false
	}
	_, val, ok := x.Remove(x.hasher.Hash(key), func(k T) bool {
		return x.hasher.Equal(k, key)
	})
	return val, ok
}

// Clear removes every entry and keeps the allocated bucket array.
func (x *Index[T, U]) Clear() {
	if x == nil {
		return
	}
	for i := range x.buckets {
		clear(x.buckets[i])
		x.buckets[i] = x.buckets[i][:0]
	}
	x.count = 0
}

// Clone returns an independent copy sharing only the hasher.
func (x *Index[T, U]) Clone() *Index[T, U] {
	c := &Index[T, U]{
		hasher:  x.hasher,
		buckets: make([][]entry[T, U], len(x.buckets)),
		count:   x.count,
	}
	for i, b := range x.buckets {
		if len(b) > 0 {
			c.buckets[i] = append([]entry[T, U](nil), b...)
		}
	}
	return c
}

// All yields every entry. The order is unspecified and changes when the index grows.
func (x *Index[T, U]) All() iter.Seq2[T, U] {
	return func(yield func(T, U) bool) {
		if x == nil {
			return
		}
		for _, b := range x.buckets {
			for _, e := range b {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

func (x *Index[T, U]) grow() {
	buckets := make([][]entry[T, U], len(x.buckets)*2)
	mask := uint64(len(buckets) - 1)
	for _, b := range x.buckets {
		for _, e := range b {
			i := e.hash & mask
			buckets[i] = append(buckets[i], e)
		}
	}
	x.buckets = buckets
}
