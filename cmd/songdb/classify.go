package songdb

import (
	"path/filepath"
	"strings"
)

// SongInfo is the metadata inferred from a filename by Classify.
type SongInfo struct {
	Title             string
	Artist            string
	Difficulties      []string
	OverallDifficulty int
}

// IsMIDIFile reports whether name has a .mid or .midi extension
// (case-insensitive).
func IsMIDIFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mid", ".midi":
		return true
	}
	return false
}

// StripExtension removes a .mid/.midi extension from name. Names with any
// other extension are returned unchanged.
func StripExtension(name string) string {
	ext := filepath.Ext(name)
	switch strings.ToLower(ext) {
	case ".mid", ".midi":
		return name[:len(name)-len(ext)]
	}
	return name
}

// Classify infers song metadata from a filename. It is total over any input
// string: the default is the extension-stripped name as title with artist
// "Unknown", refined first by an "Artist - Title" split and then by the
// keyword rule table. Difficulty fields are fixed until real MIDI analysis
// exists.
func Classify(filename string) SongInfo {
	name := StripExtension(filename)

	info := SongInfo{
		Title:             name,
		Artist:            "Unknown",
		Difficulties:      []string{"easy"},
		OverallDifficulty: DefaultOverallDifficulty,
	}

	// Common "Artist - Title" naming, with or without the trailing space.
	if sep := " - "; strings.Contains(name, sep) {
		artist, title, _ := strings.Cut(name, sep)
		info.Artist = strings.TrimSpace(artist)
		info.Title = strings.TrimSpace(title)
	} else if sep := " -"; strings.Contains(name, sep) {
		artist, title, _ := strings.Cut(name, sep)
		info.Artist = strings.TrimSpace(artist)
		info.Title = strings.TrimSpace(title)
	}

	lower := strings.ToLower(name)
	for _, rule := range keywordRules {
		if rule.match(lower) {
			rule.apply(lower, &info)
			break
		}
	}

	return info
}
