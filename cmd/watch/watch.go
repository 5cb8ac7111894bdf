// Package watch implements the midicat watch command: regenerate the song
// database whenever the source directory changes.
package watch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/fsnotify/fsnotify"
	"github.com/porter-smith/midicat/cmd/common"
	"github.com/porter-smith/midicat/cmd/generate"
	"github.com/porter-smith/midicat/cmd/songdb"
	"github.com/spf13/cobra"
)

type Params struct {
	Dir            string `short:"d" help:"Directory containing .mid/.midi files." default:"midi"`
	Out            string `short:"o" help:"Output path for the catalog JSON." default:"midi_songs_database.json"`
	DebounceMillis int64  `optional:"true" help:"Quiet period after a change before regenerating, in milliseconds." default:"500"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "watch",
		Short:       "Regenerate the song database on source directory changes",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			if err := Run(ctx, params, os.Stdout, os.Stderr); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

// Run generates the catalog once, then blocks regenerating it on every
// relevant change to the source directory until ctx is done.
func Run(ctx context.Context, params *Params, stdout, stderr io.Writer) error {
	if _, err := os.Stat(params.Dir); err != nil {
		return fmt.Errorf("cannot watch %s: %w", params.Dir, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(params.Dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", params.Dir, err)
	}

	genParams := &generate.Params{Dir: params.Dir, Out: params.Out, NoListing: true}
	regenerate := func() {
		if err := generate.Run(genParams, stdout, stderr); err != nil {
			fmt.Fprintf(stderr, "regenerate failed: %v\n", err)
		}
	}

	regenerate()
	fmt.Fprintf(stdout, "Watching %s for changes...\n", params.Dir)

	debounce := time.Duration(params.DebounceMillis) * time.Millisecond
	var timer *time.Timer
	pending := make(chan struct{}, 1)

	trigger := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounce, func() {
			select {
			case pending <- struct{}{}:
			default:
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-pending:
			regenerate()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if isRelevant(event) {
				trigger()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(stderr, "watch error: %v\n", err)
		}
	}
}

// isRelevant reports whether a filesystem event should trigger a catalog
// rebuild: a MIDI file was written, created, removed, or renamed.
func isRelevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return songdb.IsMIDIFile(filepath.Base(event.Name))
}
