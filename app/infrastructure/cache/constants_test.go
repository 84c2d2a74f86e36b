package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCacheKeysAreNamespaced(t *testing.T) {
	t.Parallel()

	require.Equal(t, "v1:catalog:pikachu", CatalogSpeciesKey("pikachu"))

	key := StyleRewriteKey("yoda", "It was created by a scientist.")
	require.True(t, strings.HasPrefix(key, "v1:style:yoda:"))
	require.Len(t, strings.TrimPrefix(key, "v1:style:yoda:"), 64)

	require.Equal(t, key, StyleRewriteKey("yoda", "It was created by a scientist."))
	require.NotEqual(t, key, StyleRewriteKey("shakespeare", "It was created by a scientist."))
	require.NotEqual(t, key, StyleRewriteKey("yoda", "It was created by a scientist!"))
}
