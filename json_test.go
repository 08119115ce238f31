package bimap_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bimap "github.com/nstoddard/bidirectional-map"
	"github.com/nstoddard/bidirectional-map/bimaptest"
)

func TestMap_MarshalJSON(t *testing.T) {
	m := bimap.FromMap(map[int]string{7: "seven"})
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"key":7,"value":"seven"}]`, string(data))

	data, err = json.Marshal(bimap.New[int, string]())
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestMap_UnmarshalJSON(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		want := map[string]int{"a": 1, "b": 2, "c": 3}
		data, err := json.Marshal(bimap.FromMap(want))
		require.NoError(t, err)

		m := bimap.New[string, int]()
		require.NoError(t, json.Unmarshal(data, m))
		bimaptest.AssertPairs(t, want, m)
		bimaptest.RequireBijection(t, m)
	})

	t.Run("Field", func(t *testing.T) {
		type wrapper struct {
			Names *bimap.Map[int, string] `json:"names"`
		}
		var w wrapper
		require.NoError(t, json.Unmarshal([]byte(`{"names":[{"key":1,"value":"one"}]}`), &w))
		require.NotNil(t, w.Names)
		bimaptest.AssertPairs(t, map[int]string{1: "one"}, w.Names)
	})

	t.Run("Replaces", func(t *testing.T) {
		m := bimap.FromMap(map[int]string{9: "nine"})
		require.NoError(t, json.Unmarshal([]byte(`[{"key":1,"value":"one"}]`), m))
		bimaptest.AssertPairs(t, map[int]string{1: "one"}, m)
	})

	t.Run("Null", func(t *testing.T) {
		m := bimap.FromMap(map[int]string{1: "one"})
		require.NoError(t, m.UnmarshalJSON([]byte("null")))
		assert.Equal(t, 1, m.Len())
	})

	t.Run("NotBijective", func(t *testing.T) {
		m := bimap.FromMap(map[int]string{9: "nine"})
		err := json.Unmarshal([]byte(`[{"key":1,"value":"x"},{"key":2,"value":"x"}]`), m)
		assert.ErrorIs(t, err, bimap.ErrDuplicate)
		bimaptest.AssertPairs(t, map[int]string{9: "nine"}, m)
	})

	t.Run("Malformed", func(t *testing.T) {
		m := bimap.New[int, string]()
		assert.Error(t, json.Unmarshal([]byte(`{"1":"one"}`), m))
		assert.True(t, m.IsEmpty())
	})
}
