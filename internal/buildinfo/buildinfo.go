// Package buildinfo exposes version data stamped in with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/dmitrijs2005/warrantycert/internal/buildinfo.BuildVersion=v1.2.0"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	BuildVersion = "N/A"
	BuildDate    = "N/A"
	BuildCommit  = "N/A"
)

// PrintBuildData writes the build stamp in the three-line startup format.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", BuildVersion)
	fmt.Fprintf(w, "Build date: %s\n", BuildDate)
	fmt.Fprintf(w, "Build commit: %s\n", BuildCommit)
}

// Attrs returns the build stamp as logger key/value pairs.
func Attrs() []any {
	return []any{"version", BuildVersion, "build_date", BuildDate, "commit", BuildCommit}
}
