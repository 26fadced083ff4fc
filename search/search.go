package search

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/mazepath/maze"
)

// scoreFunc combines path cost g and heuristic h into the evaluation score f.
type scoreFunc func(g, h int) int

func greedyScore(_, h int) int { return h }

func astarScore(g, h int) int { return g + h }

// Greedy runs Greedy Best-First Search on m from its start to its goal,
// ordering candidates by heuristic alone (f = h).
//
// Under FrontierPriority a cell is marked visited when first enqueued and
// never enqueued again; the path is found quickly but is not guaranteed
// shortest. Under FrontierFIFO the local-filtering queue is used.
//
// Returns ErrNilMaze, ErrOptionViolation or ErrBlockedEndpoint for invalid
// input (with a nil Result). Otherwise the Result is always non-nil and the
// error is one of ErrNoPath, ErrExpansionLimit, a context error, or a wrapped
// OnVisit error.
func Greedy(m *maze.Maze, opts ...Option) (*Result, error) {
	return run(m, "greedy", greedyScore, opts)
}

// AStar runs A* on m from its start to its goal, ordering candidates by
// path cost plus heuristic (f = g + h).
//
// Under FrontierPriority a cell is closed when it is dequeued and may be
// re-opened on a cheaper route before that, so with an admissible heuristic
// (the default Manhattan) the returned path is a shortest one.
// Under FrontierFIFO the local-filtering queue is used and
// optimality is not guaranteed.
//
// Errors are reported as for Greedy.
func AStar(m *maze.Maze, opts ...Option) (*Result, error) {
	return run(m, "astar", astarScore, opts)
}

// searcher encapsulates the mutable state of one search call.
type searcher struct {
	m     *maze.Maze
	opts  Options
	ctx   context.Context
	log   *slog.Logger
	score scoreFunc
	relax bool // re-open cells on cheaper g (A* with a priority frontier)

	start, goal maze.Position
	tree        *Tree
	front       frontier
	visited     map[maze.Position]bool // marked on enqueue
	closed      map[maze.Position]bool // marked on dequeue, relax only
	bestG       map[maze.Position]int  // relax only
	res         *Result
}

// run validates input, seeds the frontier with the start node and drives
// the main loop.
func run(m *maze.Maze, name string, score scoreFunc, opts []Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, goal := m.Start(), m.Goal()
	if o.Start != nil {
		start = *o.Start
	}
	if o.Goal != nil {
		goal = *o.Goal
	}
	for _, p := range []maze.Position{start, goal} {
		if m.IsWall(p) {
			return nil, fmt.Errorf("%w: %v", ErrBlockedEndpoint, p)
		}
	}

	cells := m.Height * m.Width
	s := &searcher{
		m:       m,
		opts:    o,
		ctx:     o.Ctx,
		log:     o.Logger.With("algorithm", name, "frontier", o.Frontier.String()),
		score:   score,
		relax:   name == "astar" && o.Frontier == FrontierPriority,
		start:   start,
		goal:    goal,
		tree:    NewTree(cells),
		visited: make(map[maze.Position]bool, cells),
		res:     &Result{Start: start, Goal: goal},
	}
	if o.Frontier == FrontierFIFO {
		s.front = &fifoFrontier{}
	} else {
		s.front = &priorityFrontier{}
	}
	if s.relax {
		s.closed = make(map[maze.Position]bool, cells)
		s.bestG = make(map[maze.Position]int, cells)
	}

	s.log.Debug("search start", "start", start.String(), "goal", goal.String())
	root := s.tree.Root(start)
	s.visited[start] = true
	if s.relax {
		s.bestG[start] = 0
	}
	s.enqueue(root)

	err := s.loop()
	s.res.Generated = s.tree.Len()
	if err != nil {
		s.log.Debug("search stopped", "error", err, "expanded", s.res.Expanded)
		return s.res, err
	}
	s.log.Debug("goal reached", "cost", s.res.Cost, "expanded", s.res.Expanded)

	return s.res, nil
}

// loop pops nodes until the goal is dequeued, the frontier empties, or an
// error stops the search.
func (s *searcher) loop() error {
	for s.front.Len() > 0 {
		select {
		case <-s.ctx.Done():
			return s.ctx.Err()
		default:
		}

		idx := s.front.pop()
		n := s.tree.Node(idx)
		if s.relax {
			// stale heap entry for a cell already settled
			if s.closed[n.Pos] {
				continue
			}
			s.closed[n.Pos] = true
		}

		s.opts.OnDequeue(n)
		s.res.Order = append(s.res.Order, n.Pos)
		s.log.Debug("dequeue", "pos", n.Pos.String(), "action", n.Action.String(), "g", n.PathCost)
		if err := s.opts.OnVisit(n); err != nil {
			return fmt.Errorf("search: OnVisit error at %v: %w", n.Pos, err)
		}

		if n.Pos == s.goal {
			s.finish(idx)
			return nil
		}

		if s.opts.MaxExpansions > 0 && s.res.Expanded >= s.opts.MaxExpansions {
			return fmt.Errorf("%w: %d", ErrExpansionLimit, s.opts.MaxExpansions)
		}
		s.res.Expanded++
		children := Expand(s.m, s.tree, idx)
		if s.opts.Frontier == FrontierFIFO {
			s.pushFiltered(children)
		} else {
			s.pushAll(children)
		}
	}

	return fmt.Errorf("%w: from %v to %v", ErrNoPath, s.start, s.goal)
}

// pushFiltered keeps a running minimum score over the siblings in expansion
// order. A sibling that lowers the minimum is enqueued if its cell is
// unvisited; a sibling that does not lower it is dropped even if unvisited.
func (s *searcher) pushFiltered(children []int) {
	best := math.MaxInt
	for _, c := range children {
		n := s.tree.Node(c)
		f := s.score(n.PathCost, s.opts.Heuristic(n.Pos, s.goal))
		if f >= best {
			continue
		}
		best = f
		if !s.visited[n.Pos] {
			s.visited[n.Pos] = true
			s.enqueue(c)
		}
	}
}

// pushAll enqueues every useful successor into the priority frontier.
func (s *searcher) pushAll(children []int) {
	for _, c := range children {
		n := s.tree.Node(c)
		if s.relax {
			if s.closed[n.Pos] {
				continue
			}
			if g, seen := s.bestG[n.Pos]; seen && n.PathCost >= g {
				continue
			}
			s.bestG[n.Pos] = n.PathCost
		} else {
			if s.visited[n.Pos] {
				continue
			}
			s.visited[n.Pos] = true
		}
		s.enqueue(c)
	}
}

// enqueue scores node idx, calls OnEnqueue and adds it to the frontier.
func (s *searcher) enqueue(idx int) {
	n := s.tree.Node(idx)
	h := s.opts.Heuristic(n.Pos, s.goal)
	s.opts.OnEnqueue(n)
	s.front.push(idx, s.score(n.PathCost, h), h)
}

// finish reconstructs the path to goal node idx into the result.
func (s *searcher) finish(idx int) {
	path := s.tree.PathFromRoot(idx)
	s.res.Found = true
	s.res.Path = path
	s.res.Positions = make([]maze.Position, len(path))
	s.res.Actions = make([]maze.Direction, 0, len(path)-1)
	s.res.Cost = 0
	for i, n := range path {
		s.res.Positions[i] = n.Pos
		s.res.Cost += n.Cost
		if n.Parent != NoParent {
			s.res.Actions = append(s.res.Actions, n.Action)
		}
	}
}
