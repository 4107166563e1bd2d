package tui

import (
	"os"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"pacermap/internal/track"
)

// Options configures the viewer. An empty OverlayColor or a non-positive
// MinSpan falls back to DefaultOptions. A zero FitFrames or FrameInterval
// snaps the view without animating, and the zero Logger discards output.
type Options struct {
	Parse         track.ParseOptions
	OverlayColor  string
	MinSpan       float64
	FitFrames     int
	FrameInterval time.Duration
	Logger        zerolog.Logger
}

func DefaultOptions() Options {
	return Options{
		OverlayColor:  "#FF0000",
		MinSpan:       0.0005,
		FitFrames:     12,
		FrameInterval: 25 * time.Millisecond,
		Logger:        zerolog.Nop(),
	}
}

// loadedTrack is everything derived from one file selection. It is replaced
// as a whole on every successful load and never mutated afterwards.
type loadedTrack struct {
	path      string
	coords    track.Path
	region    track.Region
	hasRegion bool
}

// fitAnim drives the animated transition of the visible region.
type fitAnim struct {
	gen    int
	active bool
	from   track.Region
	to     track.Region
	frame  int
}

type Model struct {
	opts Options
	log  zerolog.Logger

	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	// File explorer
	cwd string
	l   list.Model

	// Data; selected is the last chosen file even when it failed to load
	selected string
	cur      loadedTrack

	// visible region; zoom and pan edit it directly
	view    track.Region
	hasView bool
	fit     fitAnim

	// last laid out map size (for inspect)
	mapW int
	mapH int

	// open path prompt
	promptMode bool
	ti         textinput.Model

	// layer visibility
	showPoints bool
	showLine   bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverLat    float64
	hoverLon    float64

	// points table
	showTable bool
	tbl       table.Model

	overlay lipgloss.Style
	initCmd tea.Cmd
}

func New(opts Options) Model {
	def := DefaultOptions()
	if opts.OverlayColor == "" {
		opts.OverlayColor = def.OverlayColor
	}
	if opts.MinSpan <= 0 {
		opts.MinSpan = def.MinSpan
	}
	m := Model{
		opts:        opts,
		log:         opts.Logger.With().Str("component", "tui").Logger(),
		helpVisible: true,
		status:      "pacermap ready",
		showLine:    true,
		overlay:     lipgloss.NewStyle().Foreground(lipgloss.Color(opts.OverlayColor)),
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// path prompt setup
	m.ti = textinput.New()
	m.ti.Placeholder = "path to a pacer log"
	m.ti.Prompt = "open: "
	m.ti.CharLimit = 0
	// points table setup
	m.tbl = table.New(
		table.WithColumns([]table.Column{{Title: "#", Width: 6}, {Title: "lat", Width: 12}, {Title: "lon", Width: 12}}),
		table.WithFocused(true),
	)
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file at launch; the fit starts with Init.
func NewWithPath(opts Options, path string) Model {
	m := New(opts)
	m.initCmd = m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return m.initCmd }
