package pokemon

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSelectStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		species Species
		want    Style
	}{
		{name: "legendary cave", species: Species{IsLegendary: true, Habitat: "cave"}, want: StyleYoda},
		{name: "legendary elsewhere", species: Species{IsLegendary: true, Habitat: "rare"}, want: StyleYoda},
		{name: "cave dweller", species: Species{Habitat: "cave"}, want: StyleYoda},
		{name: "forest", species: Species{Habitat: "forest"}, want: StyleShakespeare},
		{name: "no habitat", species: Species{}, want: StyleShakespeare},
		{name: "habitat match is exact", species: Species{Habitat: "Cave"}, want: StyleShakespeare},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, SelectStyle(tc.species))
		})
	}
}

func TestSelectStyleProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		legendary := rapid.Bool().Draw(t, "legendary")
		habitat := rapid.OneOf(
			rapid.Just(HabitatCave),
			rapid.SampledFrom([]string{"rare", "grassland", "forest", "mountain", "sea", "urban", ""}),
			rapid.StringMatching(`[a-z\-]{0,12}`),
		).Draw(t, "habitat")

		species := Species{
			Name:        rapid.StringMatching(`[a-z]{1,10}`).Draw(t, "name"),
			Description: rapid.String().Draw(t, "description"),
			Habitat:     habitat,
			IsLegendary: legendary,
		}

		want := StyleShakespeare
		if legendary || habitat == HabitatCave {
			want = StyleYoda
		}
		if got := SelectStyle(species); got != want {
			t.Fatalf("SelectStyle(%+v) = %s, want %s", species, got, want)
		}
	})
}

func TestStyleIsValid(t *testing.T) {
	t.Parallel()

	require.True(t, StyleYoda.IsValid())
	require.True(t, StyleShakespeare.IsValid())
	require.False(t, Style("pirate").IsValid())
	require.False(t, Style("").IsValid())
}
