package bimap_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bimap "github.com/nstoddard/bidirectional-map"
)

func TestSide_String(t *testing.T) {
	assert.Equal(t, "forward", bimap.Forward.String())
	assert.Equal(t, "reverse", bimap.Reverse.String())
	assert.Equal(t, "9", bimap.Side(9).String())
}

func TestParseSide(t *testing.T) {
	t.Run("Known values", func(t *testing.T) {
		s, err := bimap.ParseSide("reverse")
		require.NoError(t, err)
		assert.Equal(t, bimap.Reverse, s)
	})

	t.Run("Unknown value", func(t *testing.T) {
		s, err := bimap.ParseSide("sideways")
		assert.Error(t, err)
		assert.Equal(t, bimap.Forward, s)
	})
}

func TestSide_JSONRoundTrip(t *testing.T) {
	type wrapper struct {
		Side bimap.Side `json:"side"`
	}

	original := wrapper{Side: bimap.Reverse}
	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"side":"reverse"}`, string(data))

	var decoded wrapper
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)

	assert.Error(t, json.Unmarshal([]byte(`{"side":"up"}`), &decoded))
	_, err = json.Marshal(wrapper{Side: bimap.Side(5)})
	assert.Error(t, err)
}
