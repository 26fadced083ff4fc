package search_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/search"
)

func TestReport_Found(t *testing.T) {
	m := mustMaze(t, "S.G")
	res, err := search.Greedy(m)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, res.Report(&buf))
	assert.Equal(t, "Positions: [(0, 0) (0, 1) (0, 2)]\nActions: [E E]\nThis took 2 steps\n", buf.String())
}

func TestReport_NotFound(t *testing.T) {
	res := &search.Result{Start: maze.Position{Row: 0, Col: 0}, Goal: maze.Position{Row: 2, Col: 3}}

	var buf bytes.Buffer
	require.NoError(t, res.Report(&buf))
	assert.Equal(t, "No path from (0, 0) to (2, 3)\n", buf.String())
}

// failWriter rejects every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestReport_WriteError(t *testing.T) {
	res := &search.Result{Found: true}
	assert.Error(t, res.Report(failWriter{}))
}
