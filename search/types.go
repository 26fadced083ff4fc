// Package search provides tunable options, error definitions and result
// types for Greedy Best-First and A* search over a maze.Maze.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/mazepath/maze"
)

// Sentinel errors for search execution.
var (
	// ErrNilMaze is returned if a nil maze pointer is passed.
	ErrNilMaze = errors.New("search: maze is nil")

	// ErrNoPath is returned when the frontier empties before the goal is reached.
	ErrNoPath = errors.New("search: no path found")

	// ErrBlockedEndpoint is returned when a start or goal override lies on a
	// wall or outside the maze.
	ErrBlockedEndpoint = errors.New("search: endpoint is blocked or out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when MaxExpansions is reached without
	// finding the goal.
	ErrExpansionLimit = errors.New("search: expansion limit reached")
)

// FrontierPolicy selects how candidate nodes are ordered for expansion.
type FrontierPolicy int

const (
	// FrontierPriority keeps a global min-heap keyed by the evaluation score.
	FrontierPriority FrontierPolicy = iota

	// FrontierFIFO keeps a plain first-in first-out queue and filters
	// successors locally: per expansion, a successor is enqueued only if its
	// score beats every earlier sibling's score and its cell is unvisited.
	FrontierFIFO
)

// String returns "priority" or "fifo".
func (p FrontierPolicy) String() string {
	switch p {
	case FrontierPriority:
		return "priority"
	case FrontierFIFO:
		return "fifo"
	default:
		return fmt.Sprintf("FrontierPolicy(%d)", int(p))
	}
}

// Option configures a search via functional arguments.
// Invalid Options are recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeue.
	Ctx context.Context

	// Heuristic estimates the distance to the goal. Default Manhattan.
	Heuristic Heuristic

	// Frontier selects the queueing policy. Default FrontierPriority.
	Frontier FrontierPolicy

	// MaxExpansions, if > 0, aborts with ErrExpansionLimit after that many
	// node expansions. 0 means no limit.
	MaxExpansions int

	// Start and Goal, if non-nil, replace the maze's 'S' and 'G' cells.
	Start, Goal *maze.Position

	// OnEnqueue is called when a node is added to the frontier.
	OnEnqueue func(n Node)

	// OnDequeue is called when a node is taken from the frontier, before the
	// goal test.
	OnDequeue func(n Node)

	// OnVisit is called after OnDequeue. If it returns an error, the search
	// aborts and propagates that error.
	OnVisit func(n Node) error

	// Logger receives debug records for every dequeue and the outcome.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Manhattan heuristic
//   - FrontierPriority
//   - no expansion limit, no endpoint overrides
//   - no-op hooks
//   - a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Heuristic:     Manhattan,
		Frontier:      FrontierPriority,
		MaxExpansions: 0,
		OnEnqueue:     func(Node) {},
		OnDequeue:     func(Node) {},
		OnVisit:       func(Node) error { return nil },
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic replaces the Manhattan heuristic. nil is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithFrontier selects the frontier policy.
// Unknown policies are an ErrOptionViolation.
func WithFrontier(p FrontierPolicy) Option {
	return func(o *Options) {
		switch p {
		case FrontierPriority, FrontierFIFO:
			o.Frontier = p
		default:
			o.err = fmt.Errorf("%w: unknown frontier policy %d", ErrOptionViolation, int(p))
		}
	}
}

// WithMaxExpansions bounds the number of node expansions.
//
//	n > 0: abort with ErrExpansionLimit after n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithStart searches from p instead of the maze's start cell.
func WithStart(p maze.Position) Option {
	return func(o *Options) { o.Start = &p }
}

// WithGoal searches towards p instead of the maze's goal cell.
func WithGoal(p maze.Position) Option {
	return func(o *Options) { o.Goal = &p }
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(n Node) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithLogger routes debug tracing to l. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a search:
//   - Start, Goal: the endpoints actually searched between.
//   - Found: whether the goal was reached.
//   - Path: tree nodes from start to goal (nil if not found).
//   - Positions: Path's cells, start first.
//   - Actions: moves taken, one per edge (the root has none).
//   - Cost: sum of edge costs along Path.
//   - Expanded: number of nodes whose successors were generated.
//   - Generated: number of tree nodes created, root included.
//   - Order: cells in dequeue order.
type Result struct {
	Start, Goal maze.Position
	Found       bool
	Path        []Node
	Positions   []maze.Position
	Actions     []maze.Direction
	Cost        int
	Expanded    int
	Generated   int
	Order       []maze.Position
}

// Steps returns the number of moves on the path, len(Actions).
func (r *Result) Steps() int { return len(r.Actions) }
