package songdb

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
)

// Songs that ship with an alternate soundfont. The override currently
// resolves to the same gzdoom.sf2 as the default.
var soundFontKeywords = []string{"doom", "spearsofjustice", "beach", "desert"}

// NewSongRecord assembles the full catalog record for one MIDI filename.
func NewSongRecord(filename string) SongRecord {
	info := Classify(filename)
	slug := Slug(filename)

	rec := SongRecord{
		ID:                slug + "-midi",
		Title:             info.Title,
		Artist:            info.Artist,
		Duration:          DefaultDuration,
		Difficulties:      info.Difficulties,
		BPM:               DefaultBPM,
		Format:            FormatMIDI,
		OverallDifficulty: info.OverallDifficulty,
		SoundFont:         soundFontURL,
		MIDIFiles:         map[string]string{"easy": midiFileBaseURL + filename},
		AudioFiles:        map[string]string{"easy": fmt.Sprintf("/audio/%s-easy.mp3", slug)},
		Notes:             map[string][]any{"easy": {}},
	}

	if containsAny(strings.ToLower(filename), soundFontKeywords...) {
		rec.SoundFont = soundFontURL
	}

	return rec
}

// BuildCatalog builds the catalog for a list of MIDI filenames. The two
// top-level lists share the same records: every song currently comes from a
// MIDI source.
func BuildCatalog(filenames []string) Catalog {
	songs := lo.Map(filenames, func(name string, _ int) SongRecord {
		return NewSongRecord(name)
	})
	return Catalog{MIDISongs: songs, AllSongs: songs}
}

// WriteCatalog writes the catalog as 2-space-indented JSON to path,
// overwriting any previous database.
func WriteCatalog(catalog Catalog, path string) error {
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}
