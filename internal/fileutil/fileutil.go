// Package fileutil holds the file modes used when writing output.
package fileutil

import "os"

// ReadableByAll is the mode for rendered reports and generated Go source,
// which build tools and other users need to read.
const ReadableByAll os.FileMode = 0o644

// DirMode is the mode for output directories created on demand.
const DirMode os.FileMode = 0o755
