package bimap

import (
	"bytes"
	"encoding/json"

	"github.com/rs/zerolog/log"
)

var (
	_ json.Marshaler   = (*Map[int, int])(nil)
	_ json.Unmarshaler = (*Map[int, int])(nil)

	nullBytes = []byte("null")
)

// pair is the JSON form of one entry. A list of pairs is used instead of an
// object so that keys need not be strings.
type pair[K, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// MarshalJSON implements the json.Marshaler interface.
// The map is encoded as an array of {"key": ..., "value": ...} objects in
// unspecified order.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	pairs := make([]pair[K, V], 0, m.Len())
	for k, v := range m.All() {
		pairs = append(pairs, pair[K, V]{Key: k, Value: v})
	}
	return json.Marshal(pairs)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The decoded pairs replace the content of the map, which keeps its hashing
// strategy. Input repeating a key or a value is rejected with a *DuplicateError
// and the map is left unchanged.
func (m *Map[K, V]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, nullBytes) {
		return nil
	}
	var pairs []pair[K, V]
	if err := json.Unmarshal(b, &pairs); err != nil {
		return err
	}
	decoded := m.emptyLike(len(pairs))
	for _, p := range pairs {
		if err := decoded.TryInsert(p.Key, p.Value); err != nil {
			log.Debug().Err(err).Int("pairs", len(pairs)).Msg("rejecting JSON input that is not one-to-one")
			return err
		}
	}
	*m = *decoded
	return nil
}
