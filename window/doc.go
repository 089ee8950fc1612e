// Package window implements sliding-window scans over text.
//
// LongestUniqueLength reports the length of the longest contiguous run of
// distinct characters; LongestUnique also reports where that run sits.
// Characters are Unicode code points, and every position is a rune offset.
//
// The window [left, right] only ever moves forward. A repeated character
// pulls left to one past its previous occurrence, but only when that
// occurrence still lies inside the window.
//
// Complexity: O(n) time, O(k) memory for k distinct characters.
package window
