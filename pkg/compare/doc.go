// Package compare implements the comparer: it locks both roots of a folder
// pair, traverses them into matched DirContainers, merges the two sides into
// a BaseDirMapping, and categorizes every node with a CompareResult.
package compare
