// Package maze defines positions, symbols, directions, and sentinel errors
// for the maze subpackage of github.com/katalvlaran/mazepath.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction and lookup.
var (
	// ErrEmptyMaze indicates the input has no rows, no columns, or no cells.
	ErrEmptyMaze = errors.New("maze: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrNegativeCoordinate indicates a map key with a negative row or column.
	ErrNegativeCoordinate = errors.New("maze: coordinates must be non-negative")
	// ErrMissingSymbol indicates a required symbol (start or goal) is absent.
	ErrMissingSymbol = errors.New("maze: required symbol missing")
	// ErrDuplicateSymbol indicates a symbol that must be unique appears more than once.
	ErrDuplicateSymbol = errors.New("maze: symbol must appear exactly once")
	// ErrSymbolNotFound is returned by Find when no cell holds the symbol.
	ErrSymbolNotFound = errors.New("maze: symbol not found")
)

// Symbol is the content of a single maze cell.
type Symbol rune

const (
	// Wall blocks movement.
	Wall Symbol = 'X'
	// Start marks the cell the search begins from.
	Start Symbol = 'S'
	// Goal marks the cell the search is trying to reach.
	Goal Symbol = 'G'
	// Free is the canonical open cell. Any non-wall symbol is passable.
	Free Symbol = ' '
)

// Passable reports whether a cell holding s can be entered.
func (s Symbol) Passable() bool { return s != Wall }

// String returns the symbol as a one-character string.
func (s Symbol) String() string { return string(rune(s)) }

// Position is a (row, col) coordinate. Row grows southwards, Col eastwards.
type Position struct {
	Row, Col int
}

// Add returns the neighbouring position one step in direction d.
// NoDirection returns p unchanged.
func (p Position) Add(d Direction) Position {
	dr, dc := d.Offset()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String renders p the way a (row, col) tuple prints: "(r, c)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Direction is one of the four cardinal moves, or NoDirection for a root node.
type Direction int

const (
	// NoDirection is the action of a search root; it has no offset.
	NoDirection Direction = iota
	// North moves one row up.
	North
	// East moves one column right.
	East
	// South moves one row down.
	South
	// West moves one column left.
	West
)

// directions is the fixed expansion order.
var directions = [4]Direction{North, East, South, West}

// Directions returns the cardinal directions in expansion order: N, E, S, W.
func Directions() []Direction {
	out := make([]Direction, len(directions))
	copy(out, directions[:])
	return out
}

// Offset returns the (dRow, dCol) delta of d.
func (d Direction) Offset() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// String returns the single-letter action label, or "None" for NoDirection.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "None"
	}
}
