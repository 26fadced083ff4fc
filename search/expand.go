package search

import "github.com/katalvlaran/mazepath/maze"

// StepCost is the cost of every move between adjacent cells.
const StepCost = 1

// Expand generates the successors of node i in direction order N, E, S, W.
// A successor is added to t only when its cell is in bounds and not a wall;
// each carries i as parent, its direction as action, and StepCost as cost.
// Returns the arena indices of the new nodes.
// Complexity: O(1), at most four nodes.
func Expand(m *maze.Maze, t *Tree, i int) []int {
	from := t.Node(i).Pos
	out := make([]int, 0, 4)
	for _, d := range maze.Directions() {
		next := from.Add(d)
		if m.IsWall(next) {
			continue
		}
		out = append(out, t.Add(i, next, d, StepCost))
	}

	return out
}
