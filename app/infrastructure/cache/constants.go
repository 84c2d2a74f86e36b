package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const (
	CacheVersion          = "v1"
	CatalogSpeciesPattern = CacheVersion + ":catalog:%s"
	StyleRewritePattern   = CacheVersion + ":style:%s:%s"
)

func CatalogSpeciesKey(name string) string {
	return fmt.Sprintf(CatalogSpeciesPattern, name)
}

// StyleRewriteKey hashes the text; free-form text has no natural identifier
// and may be longer than is sensible for a key.
func StyleRewriteKey(style string, text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf(StyleRewritePattern, style, hex.EncodeToString(sum[:]))
}
