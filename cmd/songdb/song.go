// Package songdb builds the MIDI song catalog: it classifies song metadata
// from filenames and assembles the JSON database records consumed by the
// rhythm-master frontend.
package songdb

// Fixed record defaults. Duration and BPM are placeholders until real MIDI
// analysis exists; the frontend treats them as display hints only.
const (
	DefaultDuration          = "0:30"
	DefaultBPM               = 120
	DefaultOverallDifficulty = 5
	FormatMIDI               = "midi"

	soundFontURL    = "https://porter-smith.github.io/rhythm-master-files/soundfonts/gzdoom.sf2"
	midiFileBaseURL = "https://porter-smith.github.io/rhythm-master-files/midi/"
)

// SongRecord is one entry in the song database. Field order matters: it is
// the JSON key order the frontend's TypeScript schema declares.
type SongRecord struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Artist            string            `json:"artist"`
	Duration          string            `json:"duration"`
	Difficulties      []string          `json:"difficulties"`
	BPM               int               `json:"bpm"`
	Format            string            `json:"format"`
	OverallDifficulty int               `json:"overallDifficulty"`
	SoundFont         string            `json:"soundFont"`
	MIDIFiles         map[string]string `json:"midiFiles"`
	AudioFiles        map[string]string `json:"audioFiles"`
	Notes             map[string][]any  `json:"notes"`
}

// Catalog is the top-level database structure. allSongs mirrors midiSongs
// until non-MIDI sources exist.
type Catalog struct {
	MIDISongs []SongRecord `json:"midiSongs"`
	AllSongs  []SongRecord `json:"allSongs"`
}
