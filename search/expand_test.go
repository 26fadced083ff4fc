package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/search"
)

// TestExpand_SkipsWalls expands the centre of
//
//	  X
//	  S
//	G X
//
// where N and S are walls: only E and W successors, in that order.
func TestExpand_SkipsWalls(t *testing.T) {
	m := mustMaze(t,
		" X ",
		" S ",
		"GX ",
	)
	tr := search.NewTree(8)
	root := tr.Root(m.Start())

	kids := search.Expand(m, tr, root)
	require.Len(t, kids, 2)

	e, w := tr.Node(kids[0]), tr.Node(kids[1])
	assert.Equal(t, maze.Position{Row: 1, Col: 2}, e.Pos)
	assert.Equal(t, maze.East, e.Action)
	assert.Equal(t, maze.Position{Row: 1, Col: 0}, w.Pos)
	assert.Equal(t, maze.West, w.Action)
	for _, n := range []search.Node{e, w} {
		assert.Equal(t, root, n.Parent)
		assert.Equal(t, search.StepCost, n.Cost)
		assert.Equal(t, 1, n.PathCost)
	}
}

// TestExpand_Border checks that cells outside the maze are never generated.
func TestExpand_Border(t *testing.T) {
	m := mustMaze(t,
		" X ",
		" S ",
		"GX ",
	)
	tr := search.NewTree(4)
	root := tr.Root(m.Goal()) // (2, 0): S and W are outside, E is a wall

	kids := search.Expand(m, tr, root)
	require.Len(t, kids, 1)
	assert.Equal(t, maze.North, tr.Node(kids[0]).Action)
	assert.Equal(t, maze.Position{Row: 1, Col: 0}, tr.Node(kids[0]).Pos)
}

// TestExpand_NeverYieldsWall expands every open cell of a noisy maze.
func TestExpand_NeverYieldsWall(t *testing.T) {
	m := mustMaze(t,
		"SX X ",
		"  XX ",
		"X   X",
		" XX G",
	)
	tr := search.NewTree(64)
	for r := 0; r < m.Height; r++ {
		for c := 0; c < m.Width; c++ {
			p := maze.Position{Row: r, Col: c}
			if m.IsWall(p) {
				continue
			}
			for _, k := range search.Expand(m, tr, tr.Root(p)) {
				n := tr.Node(k)
				assert.False(t, m.IsWall(n.Pos), "successor %v of %v is a wall", n.Pos, p)
				assert.Equal(t, 1, search.Manhattan(p, n.Pos))
			}
		}
	}
}

func TestManhattan(t *testing.T) {
	a := maze.Position{Row: 0, Col: 0}
	b := maze.Position{Row: 3, Col: 4}
	assert.Equal(t, 7, search.Manhattan(a, b))
	assert.Equal(t, 7, search.Manhattan(b, a))
	assert.Equal(t, 0, search.Manhattan(b, b))
	assert.Equal(t, 4, search.Manhattan(maze.Position{Row: -1, Col: 2}, maze.Position{Row: 1, Col: 0}))
	assert.Equal(t, 0, search.Zero(a, b))
}

// mustMaze builds a maze from rows or fails the test.
func mustMaze(t testing.TB, rows ...string) *maze.Maze {
	t.Helper()
	m, err := maze.FromRows(rows)
	require.NoError(t, err)
	return m
}
