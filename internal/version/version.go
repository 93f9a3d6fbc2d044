// Package version holds build metadata of the yasl CLI.
package version

import (
	"fmt"
	"io"
	"runtime"

	"github.com/fatih/color"
)

// Overridden at build time via -ldflags "-X yasl/internal/version.Version=...".
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Print writes the version block shown by `yasl version`.
func Print(w io.Writer, useColor bool) {
	name := color.New(color.FgCyan, color.Bold)
	ver := color.New(color.FgGreen, color.Bold)
	if !useColor {
		name.DisableColor()
		ver.DisableColor()
	}
	fmt.Fprintf(w, "%s %s\n", name.Sprint("yasl"), ver.Sprint(Version))
	if GitCommit != "" {
		fmt.Fprintf(w, "commit: %s\n", GitCommit)
	}
	if BuildDate != "" {
		fmt.Fprintf(w, "built:  %s\n", BuildDate)
	}
	fmt.Fprintf(w, "go:     %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
