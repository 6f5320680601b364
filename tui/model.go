// Package tui is the interactive session: a path input field and the palette
// swatches extracted from the image it names.
package tui

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/setanarut/pastel"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Runner turns an image path into a display palette.
type Runner interface {
	Run(path string) (pastel.DisplayPalette, error)
}

// Reporter is the diagnostic channel. It never draws on the terminal.
type Reporter interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

// Model owns the session state: the typed path and the last palette.
type Model struct {
	path       string
	palette    pastel.DisplayPalette
	hasPalette bool

	runner   Runner
	reporter Reporter
	keys     keyMap
	help     help.Model

	width  int
	height int
}

// New returns an empty session.
func New(runner Runner, reporter Reporter) *Model {
	return &Model{
		runner:   runner,
		reporter: reporter,
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

// Path is the typed path.
func (m *Model) Path() string {
	return m.path
}

// Palette returns the last extracted palette, if any.
func (m *Model) Palette() (pastel.DisplayPalette, bool) {
	return m.palette, m.hasPalette
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Update applies one event. Extraction runs inline on enter and blocks the
// loop until it finishes.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Confirm):
		m.extract()
	case key.Matches(msg, m.keys.Backspace):
		if m.path != "" {
			_, size := utf8.DecodeLastRuneInString(m.path)
			m.path = m.path[:len(m.path)-size]
		}
	case msg.Type == tea.KeySpace:
		m.path += " "
	case msg.Type == tea.KeyRunes:
		m.path += string(msg.Runes)
	}
	return m, nil
}

func (m *Model) extract() {
	palette, err := m.runner.Run(m.path)
	if err != nil {
		m.reporter.Errorf("extract colors from %q: %v", m.path, err)
		return
	}
	m.palette = palette
	m.hasPalette = true
	m.reporter.Infof("palette for %q: %v", m.path, palette.Hex())
}
