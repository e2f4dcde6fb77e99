// Package fileutil provides path and file helpers shared by the resolver,
// the cleaner and the config loader.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// FileExists returns true if the path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if s contains a path separator, meaning it names a
// file rather than something to search for.
//
// Examples:
//   - "mdpress" -> false (name)
//   - "./mdpress.yaml" -> true (relative path)
//   - "/etc/mdpress.yaml" -> true (absolute)
//   - "C:\cfg\mdpress.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// ExpandHome replaces a leading "~" with home. A trailing separator is kept,
// so "~/" expands to "/home/user/".
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	rest := path[2:]
	out := filepath.Join(home, rest)
	if rest == "" || strings.HasSuffix(rest, "/") || strings.HasSuffix(rest, `\`) {
		out += string(filepath.Separator)
	}
	return out
}

// HasAnySuffix reports whether name ends with one of suffixes. The match is a
// plain string suffix, not an extension boundary: "xsynctex.gz" matches
// "synctex.gz".
func HasAnySuffix(name string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}
