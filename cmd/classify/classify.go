// Package classify implements the midicat classify command: run the filename
// classifier on arguments and print what the catalog would record.
package classify

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/porter-smith/midicat/cmd/common"
	"github.com/porter-smith/midicat/cmd/songdb"
	"github.com/spf13/cobra"
)

type Params struct {
	Files []string `pos:"true" optional:"true" help:"MIDI filenames to classify."`
	JSON  bool     `long:"json" help:"Output as JSON."`
}

type result struct {
	Filename string `json:"filename"`
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "classify",
		Short:       "Show the metadata inferred from MIDI filenames",
		Long:        "Run the filename classifier on each argument and print the inferred title, artist, and catalog id. No files are read or written.",
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
	if len(params.Files) == 0 {
		return fmt.Errorf("no filenames given")
	}

	results := make([]result, 0, len(params.Files))
	for _, filename := range params.Files {
		info := songdb.Classify(filename)
		results = append(results, result{
			Filename: filename,
			ID:       songdb.SongID(filename),
			Title:    info.Title,
			Artist:   info.Artist,
		})
	}

	if params.JSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, string(data))
		return nil
	}

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		fmt.Fprintln(stdout, r.Filename)
		fmt.Fprintf(stdout, "  title:  %s\n", r.Title)
		fmt.Fprintf(stdout, "  artist: %s\n", r.Artist)
		fmt.Fprintf(stdout, "  id:     %s\n", r.ID)
	}

	return nil
}
