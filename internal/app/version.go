// Package app wires the decmul command: flag parsing, mode dispatch and
// version reporting.
package app

import (
	"fmt"
	"io"
	"runtime"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/agbru/decmul/internal/app.Version=v0.3.0 -X github.com/agbru/decmul/internal/app.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// HasVersionFlag reports a version flag anywhere in args, so that
// "decmul -server --version" prints the version too.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version", "-V":
			return true
		}
	}
	return false
}

// VersionData is the build information in machine-readable form.
type VersionData struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

func GetVersionInfo() VersionData {
	return VersionData{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// PrintVersion writes the build information, one field per line.
func PrintVersion(out io.Writer) {
	v := GetVersionInfo()
	fmt.Fprintf(out, "decmul %s\n", v.Version)
	fmt.Fprintf(out, "  Commit:     %s\n", v.Commit)
	fmt.Fprintf(out, "  Built:      %s\n", v.BuildDate)
	fmt.Fprintf(out, "  Go version: %s\n", v.GoVersion)
	fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", v.OS, v.Arch)
}
