package position

// Color is the occupant of a board point. The numeric encoding
// (Empty=0, Black=1, White=2) is load-bearing: the scoring flood-fill
// OR-folds these values together to detect whether an empty region
// borders one color, both, or neither.
type Color uint8

const (
	Empty Color = 0
	Black Color = 1
	White Color = 2
)

// OtherColor returns the opponent of c. c must be Black or White.
func OtherColor(c Color) Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		checkf(false, "OtherColor called with %v", c)
		return Empty
	}
}

func (c Color) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Invalid"
	}
}
