// Package bimaptest provides test helpers for code that uses bimap.Map.
package bimaptest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bimap "github.com/nstoddard/bidirectional-map"
)

// RequireBijection fails the test immediately unless the two indexes of m mirror
// each other and Len agrees with the number of pairs produced by All.
func RequireBijection[K, V any](t testing.TB, m *bimap.Map[K, V]) {
	t.Helper()
	require.NoError(t, m.Validate())
	n := 0
	for range m.All() {
		n++
	}
	require.Equal(t, m.Len(), n, "Len disagrees with iteration")
	require.Equal(t, n == 0, m.IsEmpty())
}

// AssertPairs checks that m holds exactly the pairs of want, looking each of
// them up from both sides.
func AssertPairs[K, V comparable](t testing.TB, want map[K]V, m *bimap.Map[K, V]) bool {
	t.Helper()
	ok := assert.Equal(t, len(want), m.Len(), "pair count")
	for k, v := range want {
		got, found := m.GetForward(k)
		ok = assert.True(t, found, "key %v missing", k) && ok
		ok = assert.Equal(t, v, got, "value of key %v", k) && ok

		gotKey, found := m.GetReverse(v)
		ok = assert.True(t, found, "value %v missing", v) && ok
		ok = assert.Equal(t, k, gotKey, "key of value %v", v) && ok
	}
	return ok
}

// Collect returns the pairs of m as a plain map.
func Collect[K comparable, V any](m *bimap.Map[K, V]) map[K]V {
	out := make(map[K]V, m.Len())
	for k, v := range m.All() {
		out[k] = v
	}
	return out
}
