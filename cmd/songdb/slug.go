package songdb

import (
	"regexp"
	"strings"
)

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives the stable identifier stem for a MIDI filename: extension
// stripped, lowercased, every run of non-alphanumerics collapsed to a single
// hyphen, leading/trailing hyphens trimmed.
func Slug(filename string) string {
	name := strings.ToLower(StripExtension(filename))
	name = nonAlnumRun.ReplaceAllString(name, "-")
	return strings.Trim(name, "-")
}

// SongID is the catalog id for a MIDI filename: the slug with a "-midi"
// suffix distinguishing it from records of other source formats.
func SongID(filename string) string {
	return Slug(filename) + "-midi"
}
