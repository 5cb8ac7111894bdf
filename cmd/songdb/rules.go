package songdb

import "strings"

// keywordRule rewrites the inferred title/artist for a known song. Rules are
// evaluated in order by [Classify]; first match wins, so a filename matching
// several rules resolves via the earliest one.
type keywordRule struct {
	name  string
	match func(lower string) bool
	apply func(lower string, info *SongInfo)
}

func containsAny(lower string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

func containsAll(lower string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(lower, sub) {
			return false
		}
	}
	return true
}

func anyOf(subs ...string) func(string) bool {
	return func(lower string) bool { return containsAny(lower, subs...) }
}

func allOf(subs ...string) func(string) bool {
	return func(lower string) bool { return containsAll(lower, subs...) }
}

func setSong(artist, title string) func(string, *SongInfo) {
	return func(_ string, info *SongInfo) {
		info.Artist = artist
		info.Title = title
	}
}

// keywordRules is the legacy special-case table for known songs in the asset
// set. Order is load-bearing. Rules whose apply only sets the artist for
// some inputs (metallica without a known song keyword, beach town without an
// instrument keyword) intentionally leave the split-derived title in place.
var keywordRules = []keywordRule{
	{
		name:  "twinkle",
		match: anyOf("twinkle"),
		apply: setSong("Traditional", "Twinkle Twinkle Little Star"),
	},
	{
		name:  "moonlight-sonata",
		match: anyOf("beethoven", "moonlight"),
		apply: setSong("Beethoven", "Moonlight Sonata"),
	},
	{
		name:  "clair-de-lune",
		match: anyOf("debussy", "clair"),
		apply: setSong("Debussy", "Clair de Lune"),
	},
	{
		name:  "metallica",
		match: anyOf("metallica"),
		apply: func(lower string, info *SongInfo) {
			info.Artist = "Metallica"
			if strings.Contains(lower, "master") {
				info.Title = "Master of Puppets"
			} else if strings.Contains(lower, "nothing") {
				info.Title = "Nothing Else Matters"
			}
		},
	},
	{
		name:  "billie-jean",
		match: anyOf("michael jackson", "billie jean"),
		apply: setSong("Michael Jackson", "Billie Jean"),
	},
	{
		name:  "teen-spirit",
		match: anyOf("nirvana", "smells"),
		apply: setSong("Nirvana", "Smells Like Teen Spirit"),
	},
	{
		name:  "fireflies",
		match: anyOf("owl city", "fireflies"),
		apply: setSong("Owl City", "Fireflies"),
	},
	{
		name:  "pokemon",
		match: anyOf("pokemon"),
		apply: setSong("Pokemon", "Wild Pokemon Battle"),
	},
	{
		name:  "all-star",
		match: allOf("smash", "mouth"),
		apply: setSong("Smash Mouth", "All Star"),
	},
	{
		name:  "final-countdown",
		match: anyOf("final countdown"),
		apply: setSong("Europe", "The Final Countdown"),
	},
	{
		name:  "africa",
		match: anyOf("toto", "africa"),
		apply: setSong("Toto", "Africa"),
	},
	{
		name:  "wii-theme",
		match: allOf("wii", "theme"),
		apply: setSong("Nintendo", "Wii Theme"),
	},
	{
		name:  "mii-channel",
		match: anyOf("mii channel"),
		apply: setSong("Nintendo", "Mii Channel"),
	},
	{
		name:  "super-smash",
		match: anyOf("super smash"),
		apply: setSong("Nintendo", "Super Smash Bros Brawl - Main Theme"),
	},
	{
		name:  "mountain-king",
		match: anyOf("mountain king"),
		apply: setSong("Grieg", "In the Hall of the Mountain King"),
	},
	{
		name:  "my-heart-will-go-on",
		match: anyOf("titanic", "heart"),
		apply: setSong("Celine Dion", "My Heart Will Go On"),
	},
	{
		name:  "backstreet",
		match: anyOf("backstreet"),
		apply: setSong("Backstreet Boys", "I Want It That Way"),
	},
	{
		name:  "dooms-gate",
		match: anyOf("dooms-gate"),
		apply: setSong("Doom", "Doom's Gate"),
	},
	{
		name:  "spear-of-justice",
		match: anyOf("spearsofjustice"),
		apply: setSong("Undertale", "Spear of Justice"),
	},
	{
		name:  "test-drive",
		match: anyOf("test-drive"),
		apply: setSong("Test", "Test Drive"),
	},
	{
		name:  "desert-canyon",
		match: anyOf("desert", "canyon"),
		apply: setSong("Traditional", "Desert Canyon"),
	},
	{
		name:  "beach-town",
		match: allOf("beach", "town"),
		apply: func(lower string, info *SongInfo) {
			info.Artist = "Traditional"
			if strings.Contains(lower, "violin") {
				info.Title = "Beach Town Violin"
			} else if strings.Contains(lower, "flute") {
				info.Title = "Beach Town Flute"
			}
		},
	},
}
