package pokemon

import (
	"context"
	"errors"

	"pokedex.dev/pokedex-api/app/domain/common"
	"pokedex.dev/pokedex-api/app/utils/logger"
)

type PokemonService struct {
	catalog SpeciesCatalog
	styler  TextStyler
}

func NewPokemonService(catalog SpeciesCatalog, styler TextStyler) *PokemonService {
	return &PokemonService{
		catalog: catalog,
		styler:  styler,
	}
}

// GetPlainInfo returns the catalog record. Catalog errors are returned unchanged.
func (s *PokemonService) GetPlainInfo(ctx context.Context, name string) (*Species, error) {
	return s.catalog.FetchSpecies(ctx, name)
}

// GetTranslatedInfo returns the catalog record with its description rewritten
// in the style chosen by SelectStyle. Catalog errors are returned unchanged.
// A style upstream outage degrades to the untranslated record.
func (s *PokemonService) GetTranslatedInfo(ctx context.Context, name string) (*TranslatedSpecies, error) {
	species, err := s.catalog.FetchSpecies(ctx, name)
	if err != nil {
		return nil, err
	}

	style := SelectStyle(*species)
	translated := &TranslatedSpecies{
		Species: *species,
		Style:   style,
	}

	result, err := s.styler.Rewrite(ctx, style, species.Description)
	if err != nil {
		if errors.Is(err, common.ErrUpstreamUnavailable) {
			logger.GetLogger().Warnf("translation of %s with %s unavailable, serving original description: %v", species.Name, style, err)
			return translated, nil
		}
		return nil, err
	}

	translated.Description = result.Text
	translated.Translated = true
	return translated, nil
}
