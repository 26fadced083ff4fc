// Package maze models a 2D maze as an immutable grid of cell symbols,
// the input that the search package runs Greedy Best-First and A* over.
//
// What:
//
//   - Maze wraps a rectangular grid of Symbols with exactly one Start ('S')
//     and one Goal ('G'). Wall ('X') cells are blocked; anything else is open.
//   - Built from a coordinate-to-symbol map (New) or from text rows (FromRows).
//   - Find locates the cell holding a symbol (row-major, first match).
//   - Render overlays a path onto the grid for debugging.
//
// Coordinates:
//
//	Position{Row, Col}, Row grows southwards and Col eastwards.
//	Directions are expanded in the fixed order N, E, S, W:
//
//	        N (-1, 0)
//	W (0,-1)   +   E (0,+1)
//	        S (+1, 0)
//
// Out of bounds:
//
//	Positions outside the grid are never an error during lookup: At returns
//	ok=false and IsWall returns true, so the grid border acts as a wall.
//
// Errors:
//
//   - ErrEmptyMaze: no rows, no columns, or an empty map.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCoordinate: a map key has a negative row or column.
//   - ErrMissingSymbol / ErrDuplicateSymbol: start or goal not unique.
//   - ErrSymbolNotFound: Find found no cell holding the symbol.
//
// Complexity:
//
//   - New, FromRows: O(H×W) time and memory.
//   - At, IsWall, InBounds: O(1).
//   - Find: O(H×W).
package maze
