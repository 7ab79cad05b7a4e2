package maze

// Direction is an axis-aligned heading. DirNone means standing still.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// Delta returns the unit offset for the direction in screen coordinates
// (y grows downward).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Clockwise returns the heading rotated 90 degrees clockwise:
// Right -> Down -> Left -> Up -> Right. DirNone stays DirNone.
func (d Direction) Clockwise() Direction {
	switch d {
	case DirRight:
		return DirDown
	case DirDown:
		return DirLeft
	case DirLeft:
		return DirUp
	case DirUp:
		return DirRight
	default:
		return DirNone
	}
}

// Reverse returns the opposite heading. DirNone stays DirNone.
func (d Direction) Reverse() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}
