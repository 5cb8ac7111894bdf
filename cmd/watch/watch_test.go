package watch

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/porter-smith/midicat/cmd/songdb"
)

func TestIsRelevant(t *testing.T) {
	tests := []struct {
		name string
		op   fsnotify.Op
		want bool
	}{
		{"song.mid", fsnotify.Write, true},
		{"song.midi", fsnotify.Create, true},
		{"song.mid", fsnotify.Remove, true},
		{"song.mid", fsnotify.Rename, true},
		{"song.mid", fsnotify.Chmod, false},
		{"notes.txt", fsnotify.Write, false},
		{"midi_songs_database.json", fsnotify.Write, false},
	}

	for _, tc := range tests {
		event := fsnotify.Event{Name: filepath.Join("midi", tc.name), Op: tc.op}
		if got := isRelevant(event); got != tc.want {
			t.Errorf("isRelevant(%s %s) = %v, want %v", tc.op, tc.name, got, tc.want)
		}
	}
}

func TestRunMissingDir(t *testing.T) {
	params := &Params{
		Dir: filepath.Join(t.TempDir(), "nope"),
		Out: filepath.Join(t.TempDir(), "db.json"),
	}
	if err := Run(context.Background(), params, os.Stdout, os.Stderr); err == nil {
		t.Fatal("expected an error for a missing watch directory")
	}
}

func TestRunInitialGenerate(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "midi")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "twinkle.mid"), []byte("MThd"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(tmp, "db.json")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	params := &Params{Dir: dir, Out: out, DebounceMillis: 10}
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, params, os.Stdout, os.Stderr)
	}()

	// The initial pass runs before the event loop, so the database shows up
	// without any filesystem activity.
	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, err := os.Stat(out); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("database not generated by initial pass")
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var catalog songdb.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		t.Fatalf("database is not valid JSON: %v", err)
	}
	if len(catalog.MIDISongs) != 1 {
		t.Errorf("midiSongs length = %d, want 1", len(catalog.MIDISongs))
	}
}
