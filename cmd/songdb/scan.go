package songdb

import (
	"os"
	"sort"

	"github.com/samber/lo"
)

// Scan lists the MIDI filenames in dir, sorted lexicographically so catalog
// output is deterministic across runs. Only names are inspected, never file
// contents. The error from reading a missing directory is returned as-is so
// callers can detect it with os.IsNotExist / fs.ErrNotExist.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		if entry.IsDir() {
			return "", false
		}
		return entry.Name(), IsMIDIFile(entry.Name())
	})
	sort.Strings(names)
	return names, nil
}
