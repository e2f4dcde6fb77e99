package mdpress

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-mdpress/internal/fileutil"
)

// IntermediateSuffixes are LaTeX build byproducts removed by clean-light.
var IntermediateSuffixes = []string{".tex", ".toc", ".log", ".aux", ".out", "synctex.gz", ".lot", ".lof"}

// OutputSuffixes are delivered formats, removed only by a full clean.
var OutputSuffixes = []string{".epub", ".mobi", ".pdf"}

// CleanSuffixes returns the suffix set for a clean action.
func CleanSuffixes(a Action) []string {
	if a == ActionCleanLight {
		return IntermediateSuffixes
	}
	return append(append([]string{}, IntermediateSuffixes...), OutputSuffixes...)
}

// Clean removes every non-directory entry of dir whose name ends with one of
// suffixes. The match is a plain suffix, so "xsynctex.gz" goes too. A failed
// removal does not stop the scan; all failures are returned.
func Clean(dir string, suffixes []string) (removed []string, errs []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, []error{fmt.Errorf("%w: reading %s: %v", ErrRemove, dir, err)}
	}

	for _, e := range entries {
		if e.IsDir() || !fileutil.HasAnySuffix(e.Name(), suffixes) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if err := os.Remove(path); err != nil {
			errs = append(errs, fmt.Errorf("%w: %v", ErrRemove, err))
			continue
		}
		removed = append(removed, path)
	}
	return removed, errs
}
