package songdb

import (
	"reflect"
	"testing"
)

func TestClassifyKnownSongs(t *testing.T) {
	tests := []struct {
		filename string
		title    string
		artist   string
	}{
		{"Metallica - Master of Puppets.mid", "Master of Puppets", "Metallica"},
		{"metallica_nothing_else_matters.midi", "Nothing Else Matters", "Metallica"},
		{"twinkle_twinkle.mid", "Twinkle Twinkle Little Star", "Traditional"},
		{"moonlight_sonata.mid", "Moonlight Sonata", "Beethoven"},
		{"beethoven.midi", "Moonlight Sonata", "Beethoven"},
		{"clair_de_lune.mid", "Clair de Lune", "Debussy"},
		{"debussy.mid", "Clair de Lune", "Debussy"},
		{"michael jackson.mid", "Billie Jean", "Michael Jackson"},
		{"billie jean.mid", "Billie Jean", "Michael Jackson"},
		{"nirvana.mid", "Smells Like Teen Spirit", "Nirvana"},
		{"smells_like.midi", "Smells Like Teen Spirit", "Nirvana"},
		{"owl city fireflies.mid", "Fireflies", "Owl City"},
		{"pokemon_battle.mid", "Wild Pokemon Battle", "Pokemon"},
		{"smash_mouth_all_star.mid", "All Star", "Smash Mouth"},
		{"final countdown.mid", "The Final Countdown", "Europe"},
		{"toto_africa.mid", "Africa", "Toto"},
		{"wii_theme.mid", "Wii Theme", "Nintendo"},
		{"mii channel.mid", "Mii Channel", "Nintendo"},
		{"super smash bros.mid", "Super Smash Bros Brawl - Main Theme", "Nintendo"},
		{"mountain king.mid", "In the Hall of the Mountain King", "Grieg"},
		{"titanic.mid", "My Heart Will Go On", "Celine Dion"},
		{"backstreet boys.mid", "I Want It That Way", "Backstreet Boys"},
		{"dooms-gate.mid", "Doom's Gate", "Doom"},
		{"spearsofjustice.mid", "Spear of Justice", "Undertale"},
		{"test-drive.mid", "Test Drive", "Test"},
		{"canyon.mid", "Desert Canyon", "Traditional"},
		{"beach-town-violin.mid", "Beach Town Violin", "Traditional"},
		{"beach_town_flute.midi", "Beach Town Flute", "Traditional"},
	}

	for _, tc := range tests {
		info := Classify(tc.filename)
		if info.Title != tc.title || info.Artist != tc.artist {
			t.Errorf("Classify(%q) = {%q, %q}, want {%q, %q}",
				tc.filename, info.Title, info.Artist, tc.title, tc.artist)
		}
	}
}

func TestClassifyDefaults(t *testing.T) {
	tests := []struct {
		filename string
		title    string
		artist   string
	}{
		// No separator, no keyword: raw stripped name, artist Unknown.
		{"random_song.midi", "random_song", "Unknown"},
		// "Artist - Title" split.
		{"Some Band - Some Song.mid", "Some Song", "Some Band"},
		// Split without the trailing space.
		{"Some Band -Some Song.mid", "Some Song", "Some Band"},
	}

	for _, tc := range tests {
		info := Classify(tc.filename)
		if info.Title != tc.title || info.Artist != tc.artist {
			t.Errorf("Classify(%q) = {%q, %q}, want {%q, %q}",
				tc.filename, info.Title, info.Artist, tc.title, tc.artist)
		}
	}
}

// Rule order: the twinkle rule precedes the beethoven rule, so a filename
// containing both resolves as twinkle.
func TestClassifyRulePrecedence(t *testing.T) {
	info := Classify("twinkle beethoven.mid")
	if info.Title != "Twinkle Twinkle Little Star" || info.Artist != "Traditional" {
		t.Errorf("expected the twinkle rule to win, got {%q, %q}", info.Title, info.Artist)
	}
}

// The metallica and beach-town rules only set the title for known inner
// keywords; anything else keeps the split-derived or raw title.
func TestClassifySubRuleFallThrough(t *testing.T) {
	info := Classify("Metallica - Ride the Lightning.mid")
	if info.Artist != "Metallica" {
		t.Errorf("artist = %q, want Metallica", info.Artist)
	}
	if info.Title != "Ride the Lightning" {
		t.Errorf("title = %q, want the split-derived title", info.Title)
	}

	info = Classify("beach-town.mid")
	if info.Artist != "Traditional" {
		t.Errorf("artist = %q, want Traditional", info.Artist)
	}
	if info.Title != "beach-town" {
		t.Errorf("title = %q, want the raw stripped name", info.Title)
	}
}

func TestClassifyFixedFields(t *testing.T) {
	info := Classify("anything.mid")
	if !reflect.DeepEqual(info.Difficulties, []string{"easy"}) {
		t.Errorf("difficulties = %v, want [easy]", info.Difficulties)
	}
	if info.OverallDifficulty != 5 {
		t.Errorf("overallDifficulty = %d, want 5", info.OverallDifficulty)
	}
}

// Classify is total and deterministic over arbitrary strings.
func TestClassifyTotal(t *testing.T) {
	inputs := []string{
		"",
		".mid",
		".midi",
		"-",
		" - ",
		"...",
		"no extension at all",
		"über - schön.mid",
		"\x00weird\x7f.midi",
		"a - b - c.mid",
	}
	for _, in := range inputs {
		first := Classify(in)
		second := Classify(in)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Classify(%q) is not deterministic: %v vs %v", in, first, second)
		}
	}
}
