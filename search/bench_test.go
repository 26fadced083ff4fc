package search_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/search"
)

// benchMaze builds an n×n maze with ~20% random walls, S top-left and
// G bottom-right.
func benchMaze(b *testing.B, n int) *maze.Maze {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	rows := make([]string, n)
	for r := 0; r < n; r++ {
		var sb strings.Builder
		for c := 0; c < n; c++ {
			switch {
			case r == 0 && c == 0:
				sb.WriteRune(rune(maze.Start))
			case r == n-1 && c == n-1:
				sb.WriteRune(rune(maze.Goal))
			case rng.Intn(5) == 0:
				sb.WriteRune(rune(maze.Wall))
			default:
				sb.WriteByte('.')
			}
		}
		rows[r] = sb.String()
	}
	m, err := maze.FromRows(rows)
	if err != nil {
		b.Fatalf("setup FromRows failed: %v", err)
	}
	return m
}

// BenchmarkAStar measures priority A* on a 200×200 random maze.
// The goal may be unreachable for some seeds; that is still a full search.
func BenchmarkAStar(b *testing.B) {
	m := benchMaze(b, 200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.AStar(m)
	}
}

// BenchmarkGreedy measures priority Greedy on the same maze.
func BenchmarkGreedy(b *testing.B) {
	m := benchMaze(b, 200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Greedy(m)
	}
}

// BenchmarkGreedy_FIFO measures the local-filtering queue.
func BenchmarkGreedy_FIFO(b *testing.B) {
	m := benchMaze(b, 200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Greedy(m, search.WithFrontier(search.FrontierFIFO))
	}
}
