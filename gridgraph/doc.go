// Package gridgraph treats a 2D grid of free and blocked cells as an
// implicit graph and answers reachability questions on it.
//
// What:
//
//   - A cell holding 0 is free; any other value is blocked.
//   - ShortestPath: fewest 4-directional moves between two free cells, by
//     breadth-first search; -1 when the goal cannot be reached.
//   - GridGraph wraps a validated, deep-copied grid with a chosen
//     connectivity (Conn4 or Conn8) and adds Route, ConnectedComponents and
//     MinWallBreaks.
//
// Why:
//
//   - Maze and map navigation with uniform step cost.
//   - Region counting (rooms, lakes) over free space.
//   - "How many walls must go" questions via 0-1 BFS.
//
// Complexity (R×C cells, d = 4 or 8 neighbors):
//
//   - ShortestPath, Route:  O(R·C·d) time, O(R·C) memory.
//   - ConnectedComponents:  O(R·C·d) time, O(R·C) memory.
//   - MinWallBreaks:        O(R·C·d) time, O(R·C) memory (0-1 BFS deque).
//
// Errors:
//
//   - ErrEmptyGrid:      grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds:    start or goal lies outside the grid.
//   - ErrBlockedCell:    start or goal is blocked (path queries only).
//   - ErrNoPath:         Route found no way to the goal.
//
// Unreachable goals are not an error for ShortestPath; they yield -1.
package gridgraph
