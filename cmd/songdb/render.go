package songdb

import (
	"encoding/json"
	"fmt"
	"io"
)

// RenderTypeScript writes a TypeScript-like declaration of the songs to w.
// The output mirrors the frontend's hand-written song array for eyeballing a
// generated catalog against it; nothing parses it back.
func RenderTypeScript(w io.Writer, songs []SongRecord) {
	fmt.Fprintln(w, "export const midiSongs: MidiSong[] = [")
	for i, song := range songs {
		diffs, _ := json.Marshal(song.Difficulties)

		fmt.Fprintln(w, "  {")
		fmt.Fprintf(w, "    id: '%s',\n", song.ID)
		fmt.Fprintf(w, "    title: '%s',\n", song.Title)
		fmt.Fprintf(w, "    artist: '%s',\n", song.Artist)
		fmt.Fprintf(w, "    duration: '%s',\n", song.Duration)
		fmt.Fprintf(w, "    difficulties: %s,\n", diffs)
		fmt.Fprintf(w, "    bpm: %d,\n", song.BPM)
		fmt.Fprintln(w, "    format: 'midi',")
		fmt.Fprintf(w, "    overallDifficulty: %d,\n", song.OverallDifficulty)
		if song.SoundFont != "" {
			fmt.Fprintf(w, "    soundFont: '%s',\n", song.SoundFont)
		}
		fmt.Fprintln(w, "    midiFiles: {")
		fmt.Fprintf(w, "      easy: '%s'\n", song.MIDIFiles["easy"])
		fmt.Fprintln(w, "    },")
		fmt.Fprintln(w, "    notes: {")
		fmt.Fprintln(w, "      easy: []")
		fmt.Fprintln(w, "    }")
		if i < len(songs)-1 {
			fmt.Fprintln(w, "  },")
		} else {
			fmt.Fprintln(w, "  }")
		}
	}
	fmt.Fprintln(w, "];")
}
