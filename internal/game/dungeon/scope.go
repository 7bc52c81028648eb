package dungeon

import "codeberg.org/anaseto/gruid"

// MarkWalkable marks each cell walkable and returns a function that restores
// every cell to the walkability it had before the call. Callers defer the
// restore so the grid is repaired on every exit path:
//
//	restore := m.MarkWalkable(from, to)
//	defer restore()
//
// Duplicate cells are restored once, to their original value.
//
// Precondition: every cell must be in bounds.
func (m *Map) MarkWalkable(cells ...gruid.Point) (restore func()) {
	type saved struct {
		p        gruid.Point
		walkable bool
	}
	prev := make([]saved, 0, len(cells))
	for _, p := range cells {
		prev = append(prev, saved{p: p, walkable: m.at(p.X, p.Y).walkable})
	}
	for _, p := range cells {
		m.SetIsWalkable(p.X, p.Y, true)
	}
	return func() {
		// Reverse order so a duplicated cell ends on its first-saved value.
		for i := len(prev) - 1; i >= 0; i-- {
			m.SetIsWalkable(prev[i].p.X, prev[i].p.Y, prev[i].walkable)
		}
	}
}
