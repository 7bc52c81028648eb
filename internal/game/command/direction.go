package command

import "codeberg.org/anaseto/gruid"

// Direction is a cardinal step direction. Up is toward row zero.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Delta returns the grid offset of one step in d.
func (d Direction) Delta() gruid.Point {
	switch d {
	case Up:
		return gruid.Point{Y: -1}
	case Down:
		return gruid.Point{Y: 1}
	case Left:
		return gruid.Point{X: -1}
	case Right:
		return gruid.Point{X: 1}
	default:
		return gruid.Point{}
	}
}

// String returns a human-readable direction label.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}
