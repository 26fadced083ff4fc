// Package search finds a route from the start to the goal of a maze.Maze
// with Greedy Best-First Search or A*, and reports the moves and their cost.
//
// What
//
//   - Greedy: expand the candidate with the smallest heuristic h.
//   - AStar:  expand the candidate with the smallest g + h, where g is the
//     number of moves already taken.
//   - Expand: generate the N, E, S, W successors of a node, skipping walls
//     and cells outside the maze.
//   - Manhattan: |Δrow| + |Δcol| to the goal, the default heuristic.
//   - Result.Report: print positions, actions and step count.
//
// Search tree
//
//	Every generated node lives in a Tree, an append-only arena. A node refers
//	to its parent by index, so a path is rebuilt by walking indices back to
//	the root and reversing. Each search call owns its own tree, frontier and
//	visited set; nothing is shared between calls.
//
// Frontier policies
//
//	FrontierPriority (default) keeps a min-heap ordered by (f, h, insertion).
//	A* closes a cell when it is dequeued and re-queues an open cell whenever a
//	cheaper route to it appears, which makes it optimal with an admissible
//	heuristic. Greedy never re-queues a cell.
//
//	FrontierFIFO is the looser variant: a plain FIFO queue where,
//	for each expanded node, a successor is enqueued only if its score is
//	strictly lower than that of every sibling generated before it and its
//	cell has not been visited. The running minimum is updated even when the
//	sibling is skipped as visited. This is best-first only in a loose sense;
//	it can miss the goal in mazes where the priority policy finds it.
//
// Usage
//
//	m, _ := maze.FromRows([]string{
//	    "S  X",
//	    " X  ",
//	    "   G",
//	})
//	res, err := search.AStar(m)
//	if errors.Is(err, search.ErrNoPath) {
//	    // goal unreachable
//	}
//	_ = res.Report(os.Stdout)
//
//	// With functional options:
//	res, err = search.Greedy(m,
//	    search.WithFrontier(search.FrontierFIFO),
//	    search.WithMaxExpansions(1000),
//	    search.WithLogger(slog.Default()),
//	    search.WithOnDequeue(func(n search.Node) { /* ... */ }),
//	)
//
// Options
//
//   - WithContext(ctx):        cancellation, checked once per dequeue.
//   - WithHeuristic(h):        replace Manhattan (e.g. Zero).
//   - WithFrontier(p):         FrontierPriority or FrontierFIFO.
//   - WithMaxExpansions(n):    stop after n expansions (>0).
//   - WithStart(p), WithGoal(p): override the maze's endpoints.
//   - WithOnEnqueue / WithOnDequeue / WithOnVisit: hooks.
//   - WithLogger(l):           slog debug tracing of each dequeue.
//
// Errors
//
//   - ErrNilMaze          if the maze pointer is nil.
//   - ErrOptionViolation  if an Option is invalid.
//   - ErrBlockedEndpoint  if an overridden start or goal is a wall or outside.
//   - ErrNoPath           if the frontier empties first (Result.Found == false).
//   - ErrExpansionLimit   if MaxExpansions is reached.
//   - ctx.Err() on cancellation; wrapped OnVisit errors.
//
// Complexity (N = cells)
//
//   - Priority: O(N log N) time, O(N) memory.
//   - FIFO:     O(N) time, O(N) memory.
package search
