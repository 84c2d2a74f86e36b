package pokemon

import (
	"context"
	"strings"
)

// Species is the flat, normalized view of a catalog species entry.
type Species struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Habitat     string `json:"habitat"`
	IsLegendary bool   `json:"is_legendary"`
}

// StyleResult carries only the rewritten text.
type StyleResult struct {
	Text string `json:"text"`
}

// TranslatedSpecies is a Species whose description may have been rewritten.
// Translated is false when the style step failed and Description is the
// catalog original.
type TranslatedSpecies struct {
	Species
	Style      Style
	Translated bool
}

// SpeciesCatalog looks species up by name. Implementations return
// common.ErrNotFound or common.ErrUpstreamUnavailable wrapped in *common.Error.
type SpeciesCatalog interface {
	FetchSpecies(ctx context.Context, name string) (*Species, error)
}

// TextStyler rewrites text in a style. Implementations return
// common.ErrUpstreamUnavailable wrapped in *common.Error on any upstream failure.
type TextStyler interface {
	Rewrite(ctx context.Context, style Style, text string) (*StyleResult, error)
}

// NormalizeName is the canonical form used for cache keys and upstream paths.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
