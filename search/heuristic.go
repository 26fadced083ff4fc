package search

import "github.com/katalvlaran/mazepath/maze"

// Heuristic estimates the remaining cost from one position to another.
// Lower is better.
type Heuristic func(from, to maze.Position) int

// Manhattan returns |Δrow| + |Δcol|. It never overestimates on a
// four-connected unit-cost grid, so A* with it returns shortest paths.
func Manhattan(from, to maze.Position) int {
	return abs(from.Row-to.Row) + abs(from.Col-to.Col)
}

// Zero always returns 0. With it A* degrades to uniform-cost search.
func Zero(_, _ maze.Position) int { return 0 }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
