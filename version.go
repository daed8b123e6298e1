package tmsim

import _ "embed"

// Version is the release of the module, as written in the VERSION file.
//
//go:embed VERSION
var Version string
