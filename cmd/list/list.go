// Package list implements the midicat list command: a dry run of the catalog
// build that renders the inferred metadata without writing anything.
package list

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/porter-smith/midicat/cmd/common"
	"github.com/porter-smith/midicat/cmd/songdb"
	"github.com/spf13/cobra"
)

type Params struct {
	Dir  string `short:"d" help:"Directory containing .mid/.midi files." default:"midi"`
	JSON bool   `long:"json" help:"Output as JSON instead of a table."`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "list",
		Aliases:     []string{"ls"},
		Short:       "List the songs a generate run would produce",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params, os.Stdout, os.Stderr); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params, stdout, _ io.Writer) error {
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

	if params.JSON {
		data, err := json.MarshalIndent(catalog.MIDISongs, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, string(data))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Title", "Artist", "Duration", "BPM", "Difficulty"})
	for _, song := range catalog.MIDISongs {
		t.AppendRow(table.Row{
			song.ID,
			song.Title,
			song.Artist,
			song.Duration,
			song.BPM,
			song.OverallDifficulty,
		})
	}
	t.Render()

	fmt.Fprintf(stdout, "\n%d MIDI songs in %s\n", len(files), params.Dir)

	return nil
}
