// File: search/example_test.go
package search_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/search"
)

// ExampleAStar runs A* across an open 3×3 room and prints the report.
// Ties on f = g + h are broken towards the smaller h, then first-in first-out,
// so the search hugs the top row before heading south.
func ExampleAStar() {
	m, _ := maze.FromRows([]string{
		"S..",
		"...",
		"..G",
	})
	res, err := search.AStar(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = res.Report(os.Stdout)
	// Output:
	// Positions: [(0, 0) (0, 1) (0, 2) (1, 2) (2, 2)]
	// Actions: [E E S S]
	// This took 4 steps
}

// ExampleAStar_detour routes around a wall and overlays the path.
//
//	S . X . G
//	. . X . .
//	. . . . .
func ExampleAStar_detour() {
	m, _ := maze.FromRows([]string{
		"S.X.G",
		"..X..",
		".....",
	})
	res, _ := search.AStar(m)
	fmt.Println("cost:", res.Cost, "expanded:", res.Expanded)
	fmt.Println(m.Render(res.Positions, '*'))
	// Output:
	// cost: 8 expanded: 9
	// S*X*G
	// .*X*.
	// .***.
}

// ExampleGreedy_fifo shows the local-filtering FIFO queue giving up on the
// same maze, where a true priority queue succeeds.
func ExampleGreedy_fifo() {
	m, _ := maze.FromRows([]string{
		"S.X.G",
		"..X..",
		".....",
	})
	res, err := search.Greedy(m, search.WithFrontier(search.FrontierFIFO))
	fmt.Println(errors.Is(err, search.ErrNoPath), res.Order)
	_ = res.Report(os.Stdout)

	res, err = search.Greedy(m)
	fmt.Println(err, res.Cost)
	// Output:
	// true [(0, 0) (0, 1) (1, 1)]
	// No path from (0, 0) to (0, 4)
	// <nil> 8
}
