// Command pastel reads an image path from the terminal and shows a pastel
// palette extracted from it. Enter extracts, Esc quits.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/setanarut/pastel"
	"github.com/setanarut/pastel/logging"
	"github.com/setanarut/pastel/tui"
)

// program is the part of *tea.Program that run drives.
type program interface {
	Run() (tea.Model, error)
}

func main() {
	if err := start(); err != nil {
		color.New(color.FgHiRed, color.Bold).Fprintf(os.Stderr, "pastel: %v\n", err)
		os.Exit(1)
	}
}

func start() error {
	logger, err := logging.NewLogger("tui")
	if err != nil {
		color.New(color.FgHiYellow).Fprintf(os.Stderr, "pastel: logging to stderr: %v\n", err)
	}
	defer logger.Close()
	logger.Infof("session %s started, log %s", logger.SessionID(), logger.Path())

	model := tui.New(pastel.NewPipeline(), logger)
	return run(tea.NewProgram(model, tea.WithAltScreen()), model, logger, os.Stdout)
}

// run drives p until it exits and prints the last palette to out.
// Only terminal failures are returned.
func run(p program, model *tui.Model, logger *logging.Logger, out io.Writer) error {
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			logger.Warnf("interrupted")
			return nil
		}
		logger.Errorf("terminal: %v", err)
		return &pastel.TerminalSetupError{Op: "run", Err: err}
	}
	logger.Infof("session ended")

	if pal, ok := model.Palette(); ok {
		printPalette(out, pal)
	}
	return nil
}

// printPalette writes one true-color block per swatch followed by its hex.
func printPalette(w io.Writer, p pastel.DisplayPalette) {
	parts := make([]string, len(p))
	for i, c := range p {
		swatch := color.BgRGB(int(c.R), int(c.G), int(c.B)).Sprint("    ")
		parts[i] = swatch + " " + c.Hex()
	}
	fmt.Fprintln(w, strings.Join(parts, "  "))
}
