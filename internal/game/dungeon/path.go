package dungeon

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// PathFinder answers shortest-path queries over the map's walkability grid
// using cardinal moves of unit cost.
type PathFinder struct {
	m   *Map
	pr  *paths.PathRange
	nbs paths.Neighbors
}

// NewPathFinder returns a PathFinder over m.
func NewPathFinder(m *Map) *PathFinder {
	return &PathFinder{m: m, pr: paths.NewPathRange(m.Range())}
}

// ShortestPath returns a shortest path from from to to, both included.
//
// Precondition: both cells must be in bounds.
// Postcondition: Returns ErrNoPath when either endpoint is not walkable or no
// walkable route connects them. The result is deterministic for a fixed grid.
func (pf *PathFinder) ShortestPath(from, to gruid.Point) ([]gruid.Point, error) {
	if !from.In(pf.m.Range()) || !to.In(pf.m.Range()) {
		panic(fmt.Sprintf("dungeon.PathFinder.ShortestPath: %v -> %v out of bounds", from, to))
	}
	if !pf.m.IsWalkable(from.X, from.Y) || !pf.m.IsWalkable(to.X, to.Y) {
		return nil, ErrNoPath
	}
	if from == to {
		return []gruid.Point{from}, nil
	}
	path := pf.pr.AstarPath(walkableAstar{pf}, from, to)
	if len(path) == 0 {
		return nil, ErrNoPath
	}
	return path, nil
}

// walkableAstar adapts the walkability grid to paths.Astar.
type walkableAstar struct {
	pf *PathFinder
}

func (a walkableAstar) Neighbors(p gruid.Point) []gruid.Point {
	return a.pf.nbs.Cardinal(p, func(q gruid.Point) bool {
		return a.pf.m.IsWalkable(q.X, q.Y)
	})
}

func (a walkableAstar) Cost(p, q gruid.Point) int { return 1 }

func (a walkableAstar) Estimation(p, q gruid.Point) int {
	return paths.DistanceManhattan(p, q)
}
