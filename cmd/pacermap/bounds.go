package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pacermap/internal/track"
)

var boundsCmd = &cobra.Command{
	Use:          "bounds <file>",
	Short:        "Print the number of fixes and the bounding region of a file",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runBounds,
}

func runBounds(cmd *cobra.Command, args []string) error {
	cfg, log, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	p, err := track.Load(args[0], parseOptions(cfg))
	if err != nil {
		log.Error().Err(err).Str("path", args[0]).Msg("load failed")
		return err
	}
	return writeBounds(cmd, p)
}

func writeBounds(cmd *cobra.Command, p track.Path) error {
	out := cmd.OutOrStdout()
	r, ok := track.Bounds(p)
	if !ok {
		_, err := fmt.Fprintln(out, "no location records")
		return err
	}
	_, err := fmt.Fprintf(out, "points: %d\nlat: %.6f %.6f\nlon: %.6f %.6f\n",
		p.Len(), r.MinLat, r.MaxLat, r.MinLon, r.MaxLon)
	return err
}
