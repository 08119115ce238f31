package bimap

// The functions below look up or remove pairs using a stand-in Q for the stored
// key or value type, e.g. a []byte for a string key. They are functions rather
// than methods because methods cannot declare type parameters. The Equivalent
// must hash consistently with the Hasher of the side being probed, otherwise
// lookups silently miss.

// GetForwardAs returns the value whose key is equivalent to q.
func GetForwardAs[K, V, Q any](m *Map[K, V], q Q, eq Equivalent[Q, K]) (V, bool) {
	_, value, ok := m.fwd.Find(eq.Hash(q), func(k K) bool { return eq.Equal(q, k) })
	return value, ok
}

// GetReverseAs returns the key whose value is equivalent to q.
func GetReverseAs[K, V, Q any](m *Map[K, V], q Q, eq Equivalent[Q, V]) (K, bool) {
	_, key, ok := m.rev.Find(eq.Hash(q), func(v V) bool { return eq.Equal(q, v) })
	return key, ok
}

// ContainsForwardAs reports whether a key equivalent to q is present.
func ContainsForwardAs[K, V, Q any](m *Map[K, V], q Q, eq Equivalent[Q, K]) bool {
	_, ok := GetForwardAs(m, q, eq)
	return ok
}

// ContainsReverseAs reports whether a value equivalent to q is present.
func ContainsReverseAs[K, V, Q any](m *Map[K, V], q Q, eq Equivalent[Q, V]) bool {
	_, ok := GetReverseAs(m, q, eq)
	return ok
}

// TryRemoveForwardAs removes the pair whose key is equivalent to q and returns
// its value.
func TryRemoveForwardAs[K, V, Q any](m *Map[K, V], q Q, eq Equivalent[Q, K]) (V, bool) {
	_, value, ok := m.fwd.Remove(eq.Hash(q), func(k K) bool { return eq.Equal(q, k) })
	if ok {
		m.rev.Delete(value)
	}
	return value, ok
}

// TryRemoveReverseAs removes the pair whose value is equivalent to q and returns
// its key.
func TryRemoveReverseAs[K, V, Q any](m *Map[K, V], q Q, eq Equivalent[Q, V]) (K, bool) {
	_, key, ok := m.rev.Remove(eq.Hash(q), func(v V) bool { return eq.Equal(q, v) })
	if ok {
		m.fwd.Delete(key)
	}
	return key, ok
}

// RemoveForwardAs is TryRemoveForwardAs that panics with a *NotFoundError when
// no key is equivalent to q.
func RemoveForwardAs[K, V, Q any](m *Map[K, V], q Q, eq Equivalent[Q, K]) V {
	value, ok := TryRemoveForwardAs(m, q, eq)
	if !ok {
		panic(&NotFoundError{Side: Forward, Item: q})
	}
	return value
}

// RemoveReverseAs is TryRemoveReverseAs that panics with a *NotFoundError when
// no value is equivalent to q.
func RemoveReverseAs[K, V, Q any](m *Map[K, V], q Q, eq Equivalent[Q, V]) K {
	key, ok := TryRemoveReverseAs(m, q, eq)
	if !ok {
		panic(&NotFoundError{Side: Reverse, Item: q})
	}
	return key
}
