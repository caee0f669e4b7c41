package viewer

// State is the replacement flow's position: the placeholder is showing, or a
// user model has replaced it. There is no way back to StatePlaceholderOnly.
type State int

const (
	StatePlaceholderOnly State = iota
	StateModelLoaded
)

func (s State) String() string {
	switch s {
	case StatePlaceholderOnly:
		return "placeholder-only"
	case StateModelLoaded:
		return "model-loaded"
	}
	return "unknown"
}
