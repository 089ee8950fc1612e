// Package stack collects scans driven by an explicit LIFO stack.
//
// What
//
//   - IsBalanced validates nesting of (), [] and {}. Any other character is
//     skipped, so "f(a[i])" is balanced. A stray or mismatched closer is a
//     normal false result, not an error.
//   - NextGreater maps every element to the nearest strictly greater value
//     on its right, or -1. It keeps a stack of unresolved indices whose
//     values never increase from bottom to top (a monotonic stack).
//
// Complexity (n = input length)
//
//   - IsBalanced:  O(n) time, O(n) memory.
//   - NextGreater: O(n) time (each index is pushed and popped once), O(n) memory.
package stack
