// Package dungeon provides the level grid: terrain, the walkability grid used
// by path queries, actor occupancy, and the field-of-view and path providers.
package dungeon

import (
	"errors"
	"fmt"
	"slices"

	"codeberg.org/anaseto/gruid"

	"github.com/cory-johannsen/crawl/internal/game/actor"
)

var (
	// ErrNoPath is returned when no path connects two cells.
	ErrNoPath = errors.New("dungeon: no path between cells")
	// ErrNoMoreSteps is returned when a planned step is no longer a legal move
	// at the time it is applied.
	ErrNoMoreSteps = errors.New("dungeon: step is no longer reachable")
)

type cell struct {
	transparent bool
	walkable    bool
	explored    bool
}

// Map is a rectangular grid of cells plus the actors standing on it.
//
// Invariant: a cell occupied by an actor is not walkable, except inside a
// MarkWalkable scope.
type Map struct {
	rg        gruid.Range
	cells     []cell
	stairs    gruid.Point
	hasStairs bool
	player    *actor.Actor
	monsters  []*actor.Actor
	playerFOV *FieldOfView
}

// NewMap creates a width x height map where every cell is an opaque wall.
//
// Precondition: width and height must be >= 1.
func NewMap(width, height int) *Map {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("dungeon.NewMap: dimensions must be >= 1, got %dx%d", width, height))
	}
	m := &Map{
		rg:    gruid.NewRange(0, 0, width, height),
		cells: make([]cell, width*height),
	}
	m.playerFOV = NewFieldOfView(m)
	return m
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.rg.Size().X }

// Height returns the number of rows.
func (m *Map) Height() int { return m.rg.Size().Y }

// Range returns the map bounds.
func (m *Map) Range() gruid.Range { return m.rg }

// InBounds reports whether (x, y) lies on the map.
func (m *Map) InBounds(x, y int) bool {
	return gruid.Point{X: x, Y: y}.In(m.rg)
}

func (m *Map) at(x, y int) *cell {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("dungeon: cell (%d,%d) out of bounds %v", x, y, m.rg))
	}
	return &m.cells[y*m.Width()+x]
}

// SetCellProperties sets the terrain of (x, y).
//
// Precondition: (x, y) must be in bounds.
func (m *Map) SetCellProperties(x, y int, transparent, walkable bool) {
	c := m.at(x, y)
	c.transparent = transparent
	c.walkable = walkable
}

// IsWalkable reports whether (x, y) can be entered. Out-of-bounds cells are not walkable.
func (m *Map) IsWalkable(x, y int) bool {
	return m.InBounds(x, y) && m.at(x, y).walkable
}

// SetIsWalkable overrides the walkability of (x, y).
//
// Precondition: (x, y) must be in bounds.
func (m *Map) SetIsWalkable(x, y int, walkable bool) {
	m.at(x, y).walkable = walkable
}

// IsTransparent reports whether light passes through (x, y).
func (m *Map) IsTransparent(x, y int) bool {
	return m.InBounds(x, y) && m.at(x, y).transparent
}

// IsExplored reports whether the player has ever seen (x, y).
func (m *Map) IsExplored(x, y int) bool {
	return m.InBounds(x, y) && m.at(x, y).explored
}

// Walkability returns a snapshot of the walkability grid in row-major order.
func (m *Map) Walkability() []bool {
	out := make([]bool, len(m.cells))
	for i, c := range m.cells {
		out[i] = c.walkable
	}
	return out
}

// SetStairsDown places the down staircase at (x, y).
func (m *Map) SetStairsDown(x, y int) {
	m.at(x, y)
	m.stairs = gruid.Point{X: x, Y: y}
	m.hasStairs = true
}

// StairsDown returns the staircase position, if the map has one.
func (m *Map) StairsDown() (gruid.Point, bool) {
	return m.stairs, m.hasStairs
}

// CanMoveDownToNextLevel reports whether the player stands on the down staircase.
func (m *Map) CanMoveDownToNextLevel() bool {
	return m.hasStairs && m.player != nil && m.player.X == m.stairs.X && m.player.Y == m.stairs.Y
}

// AddPlayer places p on the map and computes its field of view.
//
// Precondition: p must be non-nil and stand on a walkable cell.
func (m *Map) AddPlayer(p *actor.Actor) {
	if p == nil || !p.IsPlayer() {
		panic("dungeon.Map.AddPlayer: p must be a non-nil player")
	}
	if !m.IsWalkable(p.X, p.Y) {
		panic(fmt.Sprintf("dungeon.Map.AddPlayer: (%d,%d) is not walkable", p.X, p.Y))
	}
	m.player = p
	m.SetIsWalkable(p.X, p.Y, false)
	m.UpdatePlayerFieldOfView()
}

// Player returns the player, or nil before AddPlayer.
func (m *Map) Player() *actor.Actor { return m.player }

// AddMonster places mon on the map.
//
// Precondition: mon must be non-nil and stand on a walkable cell.
func (m *Map) AddMonster(mon *actor.Actor) {
	if mon == nil || mon.IsPlayer() {
		panic("dungeon.Map.AddMonster: mon must be a non-nil monster")
	}
	if !m.IsWalkable(mon.X, mon.Y) {
		panic(fmt.Sprintf("dungeon.Map.AddMonster: (%d,%d) is not walkable", mon.X, mon.Y))
	}
	m.monsters = append(m.monsters, mon)
	m.SetIsWalkable(mon.X, mon.Y, false)
}

// RemoveMonster takes mon off the map and frees its cell.
//
// Postcondition: Returns false if mon was not on the map.
func (m *Map) RemoveMonster(mon *actor.Actor) bool {
	i := slices.Index(m.monsters, mon)
	if i < 0 {
		return false
	}
	m.monsters = slices.Delete(m.monsters, i, i+1)
	m.SetIsWalkable(mon.X, mon.Y, true)
	return true
}

// Monsters returns a snapshot of the monsters on the map in spawn order.
func (m *Map) Monsters() []*actor.Actor {
	return slices.Clone(m.monsters)
}

// MonsterAt returns the monster standing on (x, y), or nil.
func (m *Map) MonsterAt(x, y int) *actor.Actor {
	for _, mon := range m.monsters {
		if mon.X == x && mon.Y == y {
			return mon
		}
	}
	return nil
}

// ActorAt returns the player or monster standing on (x, y), or nil.
func (m *Map) ActorAt(x, y int) *actor.Actor {
	if m.player != nil && m.player.X == x && m.player.Y == y {
		return m.player
	}
	return m.MonsterAt(x, y)
}

// SetActorPosition moves a to (x, y) when that cell is walkable, keeping the
// occupancy part of the walkability grid in step. Moving the player refreshes
// its field of view.
//
// Postcondition: Returns false and changes nothing if (x, y) is not walkable.
func (m *Map) SetActorPosition(a *actor.Actor, x, y int) bool {
	if !m.IsWalkable(x, y) {
		return false
	}
	m.SetIsWalkable(a.X, a.Y, true)
	a.X, a.Y = x, y
	m.SetIsWalkable(x, y, false)
	if a.IsPlayer() {
		m.UpdatePlayerFieldOfView()
	}
	return true
}

// UpdatePlayerFieldOfView recomputes what the player sees using its awareness
// radius and marks every visible cell explored.
func (m *Map) UpdatePlayerFieldOfView() {
	if m.player == nil {
		return
	}
	m.playerFOV.Compute(m.player.X, m.player.Y, m.player.Awareness, true)
	for _, p := range m.playerFOV.VisibleCells() {
		m.at(p.X, p.Y).explored = true
	}
}

// IsInPlayerFov reports whether the player currently sees (x, y).
func (m *Map) IsInPlayerFov(x, y int) bool {
	return m.playerFOV.IsInFov(x, y)
}

// VisibleMonsters returns the monsters the player currently sees, in spawn order.
func (m *Map) VisibleMonsters() []*actor.Actor {
	var out []*actor.Actor
	for _, mon := range m.monsters {
		if m.IsInPlayerFov(mon.X, mon.Y) {
			out = append(out, mon)
		}
	}
	return out
}
