// Package generate implements the midicat generate command: scan a directory
// of MIDI files and write the song database JSON.
package generate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/porter-smith/midicat/cmd/common"
	"github.com/porter-smith/midicat/cmd/songdb"
	"github.com/spf13/cobra"
)

type Params struct {
	Dir       string `short:"d" help:"Directory containing .mid/.midi files." default:"midi"`
	Out       string `short:"o" help:"Output path for the catalog JSON." default:"midi_songs_database.json"`
	NoListing bool   `help:"Skip the TypeScript-style listing on stdout."`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "generate",
		Short:       "Generate the MIDI song database JSON",
		Long:        "Scan a directory of MIDI files, infer song metadata from the filenames, and write the full song database as pretty-printed JSON.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			// Failures are reported but the process still exits zero,
			// leaving any previous database in place.
			if err := Run(params, os.Stdout, os.Stderr); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		},
	}.ToCobra()
}

// Run performs one full scan-classify-write pass. A missing source directory
// or an empty one is reported on stdout and returns nil without writing
// anything.
func Run(params *Params, stdout, _ io.Writer) error {
	fmt.Fprintln(stdout, "Analyzing MIDI files...")

	files, err := songdb.Scan(params.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(stdout, "MIDI directory %s not found!\n", params.Dir)
			return nil
		}
		return fmt.Errorf("failed to scan %s: %w", params.Dir, err)
	}

	if len(files) == 0 {
		fmt.Fprintln(stdout, "No MIDI songs found!")
		return nil
	}

	catalog := songdb.BuildCatalog(files)
	if err := songdb.WriteCatalog(catalog, params.Out); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Generated database with %d MIDI songs\n", len(files))
	fmt.Fprintf(stdout, "Saved to: %s\n", params.Out)

	if !params.NoListing {
		fmt.Fprintf(stdout, "\n%s\n", strings.Repeat("=", 50))
		fmt.Fprintln(stdout, "TypeScript-like structure:")
		fmt.Fprintln(stdout, strings.Repeat("=", 50))
		songdb.RenderTypeScript(stdout, catalog.MIDISongs)
	}

	return nil
}
