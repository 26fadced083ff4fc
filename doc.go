// Package mazepath finds routes through 2D mazes with the two textbook
// informed searches: Greedy Best-First Search and A*.
//
// What is in here?
//
//	maze/   : immutable grid of cell symbols: start 'S', goal 'G', wall 'X',
//	          anything else is open; built from a coordinate map or text rows.
//	search/ : node arena, N/E/S/W expansion, Manhattan heuristic, Greedy and
//	          A* drivers, frontier policies, path report.
//
// Quick ASCII example:
//
//	S . X . G        S * X * G
//	. . X . .   →    . * X * .
//	. . . . .        . * * * .
//
// A* walks around the wall in 8 moves; the Manhattan distance is only 4.
//
//	m, _ := maze.FromRows([]string{"S.X.G", "..X..", "....."})
//	res, err := search.AStar(m)
//	if err != nil {
//	    // search.ErrNoPath when the goal is walled off
//	}
//	_ = res.Report(os.Stdout)
//
//	go get github.com/katalvlaran/mazepath
package mazepath
