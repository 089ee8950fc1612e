// Package topo answers ordering questions over prerequisite graphs.
//
// Nodes are the integers 0..num-1. A Prereq{Course: a, Requires: b} means b
// must come before a, i.e. a directed edge b → a.
//
// What
//
//   - CanFinish: Kahn's algorithm. Seed a FIFO with every node of in-degree
//     zero, pop, count, and release successors whose in-degree drops to
//     zero. All num nodes are processed iff the graph is acyclic. A cycle is
//     an ordinary false result.
//   - Order: the same sweep, returning the processing order, or
//     ErrCycleDetected. Zero-in-degree nodes are seeded in ascending id order.
//   - FindCycle: a White/Gray/Black depth-first search that returns one
//     directed cycle as a closed node sequence, or nil if none exists.
//
// Complexity (V = num, E = len(prereqs))
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the adjacency lists.
//
// Errors
//
//   - ErrNegativeCount   num < 0.
//   - ErrNodeOutOfRange  a prerequisite endpoint lies outside [0, num).
//   - ErrCycleDetected   Order only.
package topo
