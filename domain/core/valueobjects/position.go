package valueobjects

// Position is a value object locating a node in the 3D knowledge space.
// Z encodes knowledge depth.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// NewPosition creates a position at the given coordinates
func NewPosition(x, y, z float64) Position {
	return Position{X: x, Y: y, Z: z}
}

// Origin returns the zero position
func Origin() Position {
	return Position{}
}

// ClampPercent clamps a 0-100 bounded value (difficulty, mastery, focus,
// skill level, progress) into its valid range.
func ClampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
