package mdpress

import (
	"path/filepath"
	"strings"
)

// SplitExt splits path into everything before the extension and the
// extension itself (dot included). The directory part stays in base.
//
//	SplitExt("docs/report.txt") == ("docs/report", ".txt")
//	SplitExt("README")          == ("README", "")
func SplitExt(path string) (base, ext string) {
	ext = filepath.Ext(path)
	// A leading-dot name like ".profile" has no extension.
	if ext == filepath.Base(path) {
		return path, ""
	}
	return strings.TrimSuffix(path, ext), ext
}

// OutputPath replaces the extension of input with ext, keeping its directory.
func OutputPath(input, ext string) string {
	base, _ := SplitExt(input)
	return base + ext
}

// InputDir returns the directory cleaned by the clean actions: the input's
// own directory, "." for a bare filename.
func InputDir(input string) string {
	return filepath.Dir(input)
}
