// Package buildinfo reports version data injected at link time:
//
//	go build -ldflags "-X github.com/astroerik-coder/agrostock/internal/buildinfo.buildVersion=v1.2.0 \
//	  -X github.com/astroerik-coder/agrostock/internal/buildinfo.buildDate=2026-10-17 \
//	  -X github.com/astroerik-coder/agrostock/internal/buildinfo.buildCommit=abc123" ./cmd/cli
package buildinfo

import (
	"fmt"
	"io"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// PrintBuildData writes the version, date and commit lines to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(buildVersion))
	fmt.Fprintf(w, "Build date: %s\n", orNA(buildDate))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(buildCommit))
}
