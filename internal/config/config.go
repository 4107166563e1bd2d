package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyLogLevel     = "log.level"
	KeyLogFile      = "log.file"
	KeyLogConsole   = "log.console"
	KeyStrictRanges = "parser.strict_ranges"
	KeyOverlayColor = "overlay.color"
	KeyMinSpan      = "view.min_span"
	KeyFitFrames    = "view.fit_frames"
	KeyFitDuration  = "view.fit_duration"
)

// Config holds all application configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Parser  ParserConfig  `mapstructure:"parser"`
	Overlay OverlayConfig `mapstructure:"overlay"`
	View    ViewConfig    `mapstructure:"view"`
}

type LogConfig struct {
	Level   string `mapstructure:"level"`
	File    string `mapstructure:"file"`
	Console bool   `mapstructure:"console"`
}

type ParserConfig struct {
	StrictRanges bool `mapstructure:"strict_ranges"`
}

type OverlayConfig struct {
	Color string `mapstructure:"color"`
}

type ViewConfig struct {
	MinSpan     float64       `mapstructure:"min_span"`
	FitFrames   int           `mapstructure:"fit_frames"`
	FitDuration time.Duration `mapstructure:"fit_duration"`
}

// FrameInterval is the delay between two fit animation frames.
func (v ViewConfig) FrameInterval() time.Duration {
	if v.FitFrames <= 0 {
		return 0
	}
	return v.FitDuration / time.Duration(v.FitFrames)
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: "info", File: defaultLogFile()},
		Overlay: OverlayConfig{Color: "#FF0000"},
		View:    ViewConfig{MinSpan: 0.0005, FitFrames: 12, FitDuration: 300 * time.Millisecond},
	}
}

func defaultLogFile() string {
	home, err := homedir.Dir()
	if err != nil {
		return filepath.Join(os.TempDir(), "pacermap.log")
	}
	return filepath.Join(home, ".pacermap.log")
}

// Load reads defaults, an optional config file, PACERMAP_* environment
// variables and finally any flags bound in fs. cfgFile selects an explicit
// file; otherwise .pacermap.yaml is looked up in the working and home
// directories.
func Load(cfgFile string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault(KeyLogLevel, def.Log.Level)
	v.SetDefault(KeyLogFile, def.Log.File)
	v.SetDefault(KeyLogConsole, def.Log.Console)
	v.SetDefault(KeyStrictRanges, def.Parser.StrictRanges)
	v.SetDefault(KeyOverlayColor, def.Overlay.Color)
	v.SetDefault(KeyMinSpan, def.View.MinSpan)
	v.SetDefault(KeyFitFrames, def.View.FitFrames)
	v.SetDefault(KeyFitDuration, def.View.FitDuration)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName(".pacermap")
		v.SetConfigType("yaml")
		if dir, err := os.Getwd(); err == nil {
			v.AddConfigPath(dir)
		}
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// PACERMAP_VIEW_MIN_SPAN → view.min_span
	v.SetEnvPrefix("PACERMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for key, name := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// flagKeys maps config keys to the CLI flags that override them.
var flagKeys = map[string]string{
	KeyLogLevel:     "log-level",
	KeyLogFile:      "log-file",
	KeyStrictRanges: "strict",
}

// Validate checks that every field is usable and reports all problems at once.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug|info|warn|error, got %q", c.Log.Level))
	}
	if _, err := colorful.Hex(c.Overlay.Color); err != nil {
		errs = append(errs, fmt.Sprintf("overlay.color must be a #RRGGBB hex colour, got %q", c.Overlay.Color))
	}
	if c.View.MinSpan <= 0 {
		errs = append(errs, fmt.Sprintf("view.min_span must be > 0, got %g", c.View.MinSpan))
	}
	if c.View.FitFrames < 0 {
		errs = append(errs, fmt.Sprintf("view.fit_frames must be >= 0, got %d", c.View.FitFrames))
	}
	if c.View.FitDuration < 0 {
		errs = append(errs, fmt.Sprintf("view.fit_duration must be >= 0, got %s", c.View.FitDuration))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// OverlayHex returns the overlay colour normalised to lowercase #rrggbb.
func (c *Config) OverlayHex() string {
	col, err := colorful.Hex(c.Overlay.Color)
	if err != nil {
		return "#ff0000"
	}
	return col.Hex()
}
