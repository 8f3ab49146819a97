// Package pathutil implements the Windows path-handling corners that the
// core engine cannot avoid: the \\?\ long-path prefix required once a path
// crosses MAX_PATH, and 8.3 short-name clash avoidance around rename and
// copy-to targets. Both are no-ops on POSIX, where the corresponding
// platform file simply passes paths through unchanged.
package pathutil
