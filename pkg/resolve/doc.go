// Package resolve turns a compared hierarchy into a set of directions and
// operations: it decides, for each node, whether left or right should win
// and what concrete SyncOperation that implies, per spec.md §4.5.
package resolve
