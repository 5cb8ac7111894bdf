package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/porter-smith/midicat/cmd/classify"
	"github.com/porter-smith/midicat/cmd/generate"
	"github.com/porter-smith/midicat/cmd/list"
	"github.com/porter-smith/midicat/cmd/watch"
	"github.com/spf13/cobra"
)

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "midicat",
		Short:   "MIDI song catalog generator for the rhythm-master asset set",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			generate.Cmd(),
			list.Cmd(),
			classify.Cmd(),
			watch.Cmd(),
		},
	}.Run()
}

func appVersion() string {
	bi, hasBuildInfo := debug.ReadBuildInfo()
	if !hasBuildInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
