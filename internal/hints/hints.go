// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"strings"
)

// ForNoInput returns a hint for a run where no source document was found.
func ForNoInput(ext, dir string) string {
	return format(fmt.Sprintf("pass a filename, or run from a directory containing a *%s file (scanned %s)", ext, dir))
}

// ForToolNotFound returns a hint for an external converter missing from PATH.
// envVar names the variable that overrides the executable, if any.
func ForToolNotFound(tool, envVar string) string {
	hint := "install " + tool + " or add it to PATH"
	if envVar != "" {
		hint += "; or set " + envVar + " to its full path"
	}
	return format(hint)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the first user config location that was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, "mdpress") && strings.Contains(p, ".config") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOpenFailed returns a hint when the OS default-open mechanism fails.
func ForOpenFailed() string {
	return format("set MDPRESS_OPEN to the program that should open the result")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
