package render

// ViewMode selects one of the fixed camera set-ups.
type ViewMode uint8

const (
	// Tower orbits the whole level from above and to the side.
	Tower ViewMode = iota
	// Follow rides on the block looking ahead along +z.
	Follow
	// Top looks straight down on the level.
	Top
	// Behind trails the block.
	Behind
	// Free is the W/A/S/D free-fly camera.
	Free

	viewModeCount
)

// Next cycles to the following view mode
func (v ViewMode) Next() ViewMode {
	return (v + 1) % viewModeCount
}

func (v ViewMode) String() string {
	switch v {
	case Tower:
		return "tower"
	case Follow:
		return "follow"
	case Top:
		return "top"
	case Behind:
		return "behind"
	case Free:
		return "free"
	default:
		return "unknown"
	}
}
