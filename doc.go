// Package bimap provides a bidirectional map: a one-to-one association between
// keys and values that can be queried from either side in amortized constant time.
//
// A Map keeps two hash indexes in lockstep, forward (key -> value) and reverse
// (value -> key). Keys are unique and values are unique; each pair is stored
// once in each index.
//
// # Getting Started
//
//	ids := bimap.New[int, string]()
//	ids.Insert(1, "alice")
//	ids.Insert(2, "bob")
//
//	name, _ := ids.GetForward(1) // "alice"
//	id, _ := ids.GetReverse("bob") // 2
//
//	ids.RemoveForward(1) // returns "alice" and drops the pair from both indexes
//
// A Map can also be built from an existing one-directional map, which must
// not map two keys to the same value:
//
//	units := bimap.FromMap(map[Unit]string{Nano: "NANO", Byte: "BYTE"})
//
// # Failures
//
// Insert panics when the key or the value is already present, and RemoveForward
// and RemoveReverse panic when the item is absent. These are treated as
// programming errors. When duplicates or absence are expected, use the checked
// variants instead:
//
//	if err := ids.TryInsert(3, "bob"); errors.Is(err, bimap.ErrDuplicate) {
//	    // "bob" is taken
//	}
//	if _, ok := ids.TryRemoveReverse("carol"); !ok {
//	    // nothing to remove
//	}
//
// A failed insert never modifies the map.
//
// # Hashing
//
// New uses a process-wide random seed with hash/maphash. NewSeeded applies a
// chosen seed to both indexes, and WithHasher accepts any Hasher per side, for
// instance XXHashBytes to key a map by []byte:
//
//	digests := bimap.WithHasher[[]byte, string](bimap.XXHashBytes{}, bimap.XXHashString{})
//
// # Borrowed Lookups
//
// GetForwardAs and friends probe the map with a stand-in for the stored type,
// so a string-keyed map can be searched by a []byte without allocating:
//
//	id, ok := bimap.GetReverseAs(ids, buf, bimap.BytesAsString(bimap.DefaultSeed()))
//
// # Concurrency
//
// A Map has no internal locking. Concurrent readers are safe only while no
// goroutine is writing; wrap the map in a sync.RWMutex otherwise.
package bimap
