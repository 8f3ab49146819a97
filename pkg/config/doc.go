// Package config loads the YAML document that names a run's folder pairs
// and the options each one synchronizes under. A document carries a
// defaults block plus a named map of pairs, each of which may override any
// default; BuildPairs merges the two levels into the core.Configuration and
// core.FilterConfig values the rest of the engine consumes.
package config
