// Package misc provides program identity helpers shared by commands.
package misc

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
)

// GetAppName returns the program name derived from the executable.
func GetAppName() string {
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, filepath.Ext(name))
}

var buildInfo = sync.OnceValue(func() *debug.BuildInfo {
	if bi, ok := debug.ReadBuildInfo(); ok {
		return bi
	}
	return nil
})

// GetVersion returns the module version recorded in build info.
func GetVersion() string {
	if bi := buildInfo(); bi != nil && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns the vcs revision recorded in build info.
func GetGitHash() string {
	if bi := buildInfo(); bi != nil {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
