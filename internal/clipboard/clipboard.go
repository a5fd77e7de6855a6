// Package clipboard copies text to the system clipboard, falling back to the
// OSC 52 terminal escape sequence when no clipboard utility is available.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrNoTerminal is returned when the fallback has nowhere to write.
var ErrNoTerminal = errors.New("no terminal for osc52 fallback")

// TerminalPath is the controlling terminal. A full-screen UI owns stdout, so
// the fallback sequence is written here instead.
const TerminalPath = "/dev/tty"

// OpenTerminal opens path for writing the fallback sequence.
func OpenTerminal(path string) (io.WriteCloser, error) {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return f, nil
}

// Clipboard writes text with a primary mechanism and a fallback.
type Clipboard struct {
	write func(string) error
	term  io.Writer
	tmux  bool
}

// New uses the system clipboard and writes the OSC 52 fallback to term.
func New(term io.Writer) *Clipboard {
	return NewWithWriter(clipboard.WriteAll, term)
}

// NewWithWriter uses write as the primary mechanism.
func NewWithWriter(write func(string) error, term io.Writer) *Clipboard {
	return &Clipboard{
		write: write,
		term:  term,
		tmux:  os.Getenv("TMUX") != "",
	}
}

// Copy places text on the clipboard. It returns an error only when both the
// primary mechanism and the fallback fail.
func (c *Clipboard) Copy(text string) error {
	primaryErr := errors.New("no clipboard writer")
	if c.write != nil {
		if primaryErr = c.write(text); primaryErr == nil {
			return nil
		}
	}
	if err := c.fallback(text); err != nil {
		return fmt.Errorf("copy failed: %w", errors.Join(primaryErr, err))
	}
	return nil
}

func (c *Clipboard) fallback(text string) error {
	if c.term == nil {
		return ErrNoTerminal
	}
	seq := osc52.New(text)
	if c.tmux {
		seq = seq.Tmux()
	}
	_, err := seq.WriteTo(c.term)
	return err
}
