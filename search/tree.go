package search

import (
	"fmt"

	"github.com/katalvlaran/mazepath/maze"
)

// NoParent is the Parent index of a root node.
const NoParent = -1

// Node is one vertex of the search tree.
//
//   - Pos:      maze cell this node stands on.
//   - Parent:   arena index of the parent node, NoParent for the root.
//   - Action:   move that produced Pos from the parent's position.
//   - Cost:     cost of the single edge from the parent (0 for the root).
//   - PathCost: accumulated cost from the root (g).
type Node struct {
	Pos      maze.Position
	Parent   int
	Action   maze.Direction
	Cost     int
	PathCost int
}

// Tree is an append-only arena of Nodes addressed by integer index.
// Nodes are never modified after they are added; the tree only grows.
type Tree struct {
	nodes []Node
}

// NewTree returns an empty Tree with room for sizeHint nodes.
func NewTree(sizeHint int) *Tree {
	return &Tree{nodes: make([]Node, 0, max(sizeHint, 0))}
}

// Root appends a parentless node at pos and returns its index.
func (t *Tree) Root(pos maze.Position) int {
	t.nodes = append(t.nodes, Node{Pos: pos, Parent: NoParent, Action: maze.NoDirection})
	return len(t.nodes) - 1
}

// Add appends a child of parent reached by action at edge cost, and returns
// its index. PathCost is derived from the parent.
// Panics if parent is not a valid index.
func (t *Tree) Add(parent int, pos maze.Position, action maze.Direction, cost int) int {
	if parent < 0 || parent >= len(t.nodes) {
		panic(fmt.Sprintf("search: parent index %d out of range [0,%d)", parent, len(t.nodes)))
	}
	t.nodes = append(t.nodes, Node{
		Pos:      pos,
		Parent:   parent,
		Action:   action,
		Cost:     cost,
		PathCost: t.nodes[parent].PathCost + cost,
	})
	return len(t.nodes) - 1
}

// Node returns the node stored at index i.
func (t *Tree) Node(i int) Node { return t.nodes[i] }

// Len returns the number of nodes generated so far.
func (t *Tree) Len() int { return len(t.nodes) }

// PathFromRoot walks parent links from i back to its root and returns the
// nodes in root-to-i order.
func (t *Tree) PathFromRoot(i int) []Node {
	var path []Node
	for at := i; at != NoParent; at = t.nodes[at].Parent {
		path = append(path, t.nodes[at])
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}
