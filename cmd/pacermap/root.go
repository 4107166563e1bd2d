package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"pacermap/internal/config"
	"pacermap/internal/logger"
	"pacermap/internal/track"
	"pacermap/internal/tui"
)

var cfgFile string

// rootCmd opens the map viewer, optionally preloading a file.
var rootCmd = &cobra.Command{
	Use:           "pacermap [file]",
	Short:         "Show the path recorded in a pacer location log on a terminal map",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runView,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.pacermap.yaml or $HOME/.pacermap.yaml)")
	rootCmd.PersistentFlags().String("log-file", "", "diagnostic log file, - for stderr (default $HOME/.pacermap.log)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug|info|warn|error")
	rootCmd.PersistentFlags().Bool("strict", false, "drop coordinates outside lat [-90,90] / lon [-180,180]")
	rootCmd.AddCommand(boundsCmd)
}

// setup loads configuration and opens the log sink. The returned close func
// flushes the log file.
func setup(cmd *cobra.Command) (*config.Config, zerolog.Logger, func() error, error) {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}
	out, closeLog, err := logger.OpenSink(cfg.Log.File)
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}
	log := logger.Build(logger.Config{Level: cfg.Log.Level, Console: cfg.Log.Console}, out)
	return cfg, log, closeLog, nil
}

func parseOptions(cfg *config.Config) track.ParseOptions {
	return track.ParseOptions{RejectOutOfRange: cfg.Parser.StrictRanges}
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, log, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := tui.Options{
		Parse:         parseOptions(cfg),
		OverlayColor:  cfg.OverlayHex(),
		MinSpan:       cfg.View.MinSpan,
		FitFrames:     cfg.View.FitFrames,
		FrameInterval: cfg.View.FrameInterval(),
		Logger:        log,
	}
	var m tea.Model
	if len(args) > 0 {
		m = tui.NewWithPath(opts, args[0])
	} else {
		m = tui.New(opts)
	}
	log.Info().Strs("args", args).Msg("starting viewer")
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Error().Err(err).Msg("viewer stopped")
		return err
	}
	return nil
}
