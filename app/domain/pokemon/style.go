package pokemon

type Style string

const (
	// StyleYoda is the archaic style.
	StyleYoda Style = "yoda"
	// StyleShakespeare is the whimsical style.
	StyleShakespeare Style = "shakespeare"
)

const HabitatCave = "cave"

func (s Style) String() string {
	return string(s)
}

func (s Style) IsValid() bool {
	switch s {
	case StyleYoda, StyleShakespeare:
		return true
	}
	return false
}

// SelectStyle picks yoda for legendary species and cave dwellers, and
// shakespeare for everything else.
func SelectStyle(species Species) Style {
	if species.IsLegendary || species.Habitat == HabitatCave {
		return StyleYoda
	}
	return StyleShakespeare
}
