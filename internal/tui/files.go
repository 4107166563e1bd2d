package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	homedir "github.com/mitchellh/go-homedir"

	"pacermap/internal/track"
)

type fileItem struct {
	title, desc string
	path        string
	isDir       bool
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

// refreshDir lists the current directory: parent, sub directories, then
// regular files. Hidden entries are skipped.
func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		m.log.Warn().Err(err).Str("dir", m.cwd).Msg("read dir failed")
		return
	}
	var dirs, files []list.Item
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		p := filepath.Join(m.cwd, name)
		if e.IsDir() {
			dirs = append(dirs, fileItem{title: name + "/", desc: "dir", path: p, isDir: true})
			continue
		}
		if !e.Type().IsRegular() {
			continue
		}
		files = append(files, fileItem{title: name, desc: string(track.DetectFormat(name)), path: p})
	}
	byTitle := func(items []list.Item) {
		sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	}
	byTitle(dirs)
	byTitle(files)
	var items []list.Item
	if parent := filepath.Dir(m.cwd); parent != m.cwd {
		items = append(items, fileItem{title: "../", desc: "dir", path: parent, isDir: true})
	}
	items = append(items, dirs...)
	items = append(items, files...)
	m.l.SetItems(items)
	if len(files) == 0 {
		m.status = "no files in " + m.cwd
	}
}

// selectItem changes into directories and loads files.
func (m *Model) selectItem(it fileItem) tea.Cmd {
	if it.isDir {
		m.cwd = it.path
		m.refreshDir()
		m.l.ResetSelected()
		return nil
	}
	return m.loadPath(it.path)
}

// loadTrack reads and decodes one file. It has no side effects on the model
// so a failure can't leave a half-applied track behind.
func loadTrack(p string, opts track.ParseOptions) (loadedTrack, error) {
	fi, err := os.Stat(p)
	if err != nil {
		return loadedTrack{}, fmt.Errorf("read: %w", err)
	}
	if fi.IsDir() {
		return loadedTrack{}, fmt.Errorf("read %s: is a directory", p)
	}
	coords, err := track.Load(p, opts)
	if err != nil {
		return loadedTrack{}, err
	}
	lt := loadedTrack{path: p, coords: coords}
	lt.region, lt.hasRegion = track.Bounds(coords)
	return lt, nil
}

// loadPath applies a file selection. On failure the previous track stays on
// screen and the error goes to the log.
func (m *Model) loadPath(p string) tea.Cmd {
	if expanded, err := homedir.Expand(p); err == nil {
		p = expanded
	}
	m.selected = p
	lt, err := loadTrack(p, m.opts.Parse)
	if err != nil {
		m.log.Error().Err(err).Str("path", p).Msg("load failed")
		m.status = "load error: " + err.Error()
		return nil
	}
	m.cur = lt
	m.inspectPopup = ""
	m.hovering = false
	m.log.Info().Str("path", p).Int("points", lt.coords.Len()).Msg("track loaded")
	if m.showTable {
		m.refreshTable()
	}
	if !lt.hasRegion {
		m.status = "loaded: " + filepath.Base(p) + "  no location records"
		return nil
	}
	m.status = fmt.Sprintf("loaded: %s  points=%d", filepath.Base(p), lt.coords.Len())
	return m.fitTo(lt.region)
}
