package foldersync

import "os"

// DebugEnabled controls whether or not verbose debug logging is enabled. It
// is set automatically based on the FOLDERSYNC_DEBUG environment variable.
var DebugEnabled = os.Getenv("FOLDERSYNC_DEBUG") == "1"
