// Package syncdb reads and writes the per-folder-pair two-way
// synchronization database described by spec.md §6: a flat, binary
// snapshot of the tree's state as of the end of the last successful run,
// keyed by relative path. pkg/resolve's Automatic policy consults it to
// tell which side changed since then; pkg/engine rewrites it after the
// executor has run, at the end of every run that used that policy.
package syncdb
