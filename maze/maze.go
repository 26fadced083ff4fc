package maze

import (
	"fmt"
	"strings"
)

// Maze is a rectangular grid of symbols. It is immutable once built.
// Height and Width define dimensions; cells[r][c] holds the symbol at (r, c).
type Maze struct {
	Height, Width int
	cells         [][]Symbol
	start, goal   Position
}

// FromRows builds a Maze from text rows, one rune per cell.
// Returns ErrEmptyMaze if rows is empty or the first row is empty,
// ErrNonRectangular if any row length differs, and ErrMissingSymbol or
// ErrDuplicateSymbol if the start or goal is not unique.
// Complexity: O(H×W) time and memory.
func FromRows(rows []string) (*Maze, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMaze
	}
	grid := make([][]Symbol, len(rows))
	for r, line := range rows {
		runes := []rune(line)
		grid[r] = make([]Symbol, len(runes))
		for c, ch := range runes {
			grid[r][c] = Symbol(ch)
		}
	}
	if len(grid[0]) == 0 {
		return nil, ErrEmptyMaze
	}
	w := len(grid[0])
	for _, row := range grid {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	return build(grid)
}

// New builds a Maze from a coordinate-to-symbol mapping. The grid spans the
// bounding box of the keys starting at (0, 0); coordinates missing from the
// map are filled with Wall. The map is copied; later changes do not affect
// the Maze.
// Complexity: O(H×W + len(cells)).
func New(cells map[Position]Symbol) (*Maze, error) {
	if len(cells) == 0 {
		return nil, ErrEmptyMaze
	}
	h, w := 0, 0
	for p := range cells {
		if p.Row < 0 || p.Col < 0 {
			return nil, fmt.Errorf("%w: %v", ErrNegativeCoordinate, p)
		}
		h = max(h, p.Row+1)
		w = max(w, p.Col+1)
	}
	grid := make([][]Symbol, h)
	for r := range grid {
		grid[r] = make([]Symbol, w)
		for c := range grid[r] {
			grid[r][c] = Wall
		}
	}
	for p, s := range cells {
		grid[p.Row][p.Col] = s
	}

	return build(grid)
}

// build validates the unique start/goal and caches their positions.
func build(grid [][]Symbol) (*Maze, error) {
	m := &Maze{Height: len(grid), Width: len(grid[0]), cells: grid}
	var err error
	if m.start, err = m.unique(Start); err != nil {
		return nil, err
	}
	if m.goal, err = m.unique(Goal); err != nil {
		return nil, err
	}

	return m, nil
}

// unique locates the single cell holding s.
func (m *Maze) unique(s Symbol) (Position, error) {
	var found []Position
	for r, row := range m.cells {
		for c, v := range row {
			if v == s {
				found = append(found, Position{Row: r, Col: c})
			}
		}
	}
	switch len(found) {
	case 0:
		return Position{}, fmt.Errorf("%w: %q", ErrMissingSymbol, s)
	case 1:
		return found[0], nil
	default:
		return Position{}, fmt.Errorf("%w: %q at %v", ErrDuplicateSymbol, s, found)
	}
}

// InBounds reports whether p lies within the grid boundaries.
func (m *Maze) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < m.Height && p.Col >= 0 && p.Col < m.Width
}

// At returns the symbol at p. The boolean is false when p is out of bounds.
func (m *Maze) At(p Position) (Symbol, bool) {
	if !m.InBounds(p) {
		return 0, false
	}
	return m.cells[p.Row][p.Col], true
}

// IsWall reports whether p cannot be entered. Out-of-bounds positions are walls.
func (m *Maze) IsWall(p Position) bool {
	s, ok := m.At(p)
	return !ok || !s.Passable()
}

// Find returns the first position holding s in row-major order,
// or ErrSymbolNotFound.
func (m *Maze) Find(s Symbol) (Position, error) {
	for r, row := range m.cells {
		for c, v := range row {
			if v == s {
				return Position{Row: r, Col: c}, nil
			}
		}
	}
	return Position{}, fmt.Errorf("%w: %q", ErrSymbolNotFound, s)
}

// Start returns the position of the start cell.
func (m *Maze) Start() Position { return m.start }

// Goal returns the position of the goal cell.
func (m *Maze) Goal() Position { return m.goal }

// Cells returns a fresh coordinate-to-symbol mapping of every cell.
func (m *Maze) Cells() map[Position]Symbol {
	out := make(map[Position]Symbol, m.Height*m.Width)
	for r, row := range m.cells {
		for c, v := range row {
			out[Position{Row: r, Col: c}] = v
		}
	}
	return out
}

// String renders the maze as newline-separated rows.
func (m *Maze) String() string {
	return m.Render(nil, 0)
}

// Render draws the maze with every position of path overwritten by mark,
// except the start and goal cells, which keep their symbols. Positions out of
// bounds are ignored.
func (m *Maze) Render(path []Position, mark Symbol) string {
	on := make(map[Position]struct{}, len(path))
	for _, p := range path {
		on[p] = struct{}{}
	}

	var b strings.Builder
	b.Grow(m.Height * (m.Width + 1))
	for r, row := range m.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, v := range row {
			p := Position{Row: r, Col: c}
			if _, ok := on[p]; ok && p != m.start && p != m.goal {
				v = mark
			}
			b.WriteRune(rune(v))
		}
	}
	return b.String()
}
