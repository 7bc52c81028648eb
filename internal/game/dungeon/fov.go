package dungeon

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// FieldOfView computes the cells visible from an origin within a radius.
// Opaque cells stop light; with lightWalls set, the opaque cells bordering
// the lit area are themselves visible.
type FieldOfView struct {
	m          *Map
	fov        *rl.FOV
	visible    []gruid.Point
	lightWalls bool
	computed   bool
}

// NewFieldOfView returns a FieldOfView over m.
func NewFieldOfView(m *Map) *FieldOfView {
	return &FieldOfView{m: m, fov: rl.NewFOV(m.Range())}
}

// Compute replaces the visible set with the cells seen from (x, y).
//
// Precondition: (x, y) must be in bounds; radius >= 0.
func (f *FieldOfView) Compute(x, y, radius int, lightWalls bool) {
	f.m.at(x, y)
	f.visible = f.fov.SSCVisionMap(gruid.Point{X: x, Y: y}, radius, f.passable, false)
	f.lightWalls = lightWalls
	f.computed = true
}

func (f *FieldOfView) passable(p gruid.Point) bool {
	return f.m.IsTransparent(p.X, p.Y)
}

// IsInFov reports whether (x, y) was visible at the last Compute. Cells
// outside the radius, behind walls, or off the map are not visible.
func (f *FieldOfView) IsInFov(x, y int) bool {
	p := gruid.Point{X: x, Y: y}
	if !f.computed || !p.In(f.m.Range()) || !f.fov.Visible(p) {
		return false
	}
	return f.lightWalls || f.m.IsTransparent(x, y)
}

// VisibleCells returns the cells visible at the last Compute.
func (f *FieldOfView) VisibleCells() []gruid.Point {
	out := make([]gruid.Point, 0, len(f.visible))
	for _, p := range f.visible {
		if f.IsInFov(p.X, p.Y) {
			out = append(out, p)
		}
	}
	return out
}
