// Package render turns wildfire frames into something a person can look at:
// bordered text for terminals and RGBA pixels for the desktop viewer.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"wildfire/internal/sims/wildfire"
)

// Border is drawn at the start and end of every row.
const Border = '|'

// ClearScreen erases the terminal and homes the cursor.
const ClearScreen = "\x1b[2J\x1b[1;1H"

// Grid formats a frame row-major, one line per row, each wrapped in Border.
func Grid(f wildfire.Frame) string {
	var b strings.Builder
	b.Grow((f.Size.W + 3) * f.Size.H)
	writeGrid(&b, f, func(s wildfire.State) string { return string(s.Glyph()) })
	return b.String()
}

func writeGrid(b *strings.Builder, f wildfire.Frame, cell func(wildfire.State) string) {
	w := f.Size.W
	for i, s := range f.States {
		if i%w == 0 {
			b.WriteRune(Border)
		}
		b.WriteString(cell(s))
		if i%w == w-1 {
			b.WriteRune(Border)
			b.WriteByte('\n')
		}
	}
}

// Text is a display sink that redraws the whole grid on every frame.
type Text struct {
	w     io.Writer
	clear bool
	cells map[wildfire.State]string
	buf   strings.Builder
}

// TextOption customises a Text sink.
type TextOption func(*Text)

// WithClear forces the clear-screen sequence on or off. By default it is
// sent only when the writer is a terminal.
func WithClear(on bool) TextOption {
	return func(t *Text) { t.clear = on }
}

// WithColor draws each glyph in its state's color.
func WithColor() TextOption {
	return func(t *Text) {
		t.cells = make(map[wildfire.State]string, wildfire.NumStates)
		for s := wildfire.Clear; s <= wildfire.Burned; s++ {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Hex()))
			if s == wildfire.Burning || s == wildfire.Ignited {
				style = style.Bold(true)
			}
			t.cells[s] = style.Render(string(s.Glyph()))
		}
	}
}

// NewText returns a sink writing to w.
func NewText(w io.Writer, opts ...TextOption) *Text {
	t := &Text{w: w, clear: IsTerminal(w)}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Show implements wildfire.Sink.
func (t *Text) Show(f wildfire.Frame) error {
	t.buf.Reset()
	if t.clear {
		t.buf.WriteString(ClearScreen)
	}
	if t.cells == nil {
		t.buf.WriteString(Grid(f))
	} else {
		writeGrid(&t.buf, f, func(s wildfire.State) string { return t.cells[s] })
	}
	_, err := io.WriteString(t.w, t.buf.String())
	return err
}

// Report prints the final burn rate line.
func Report(w io.Writer, res wildfire.Result) error {
	_, err := fmt.Fprintf(w, "\n%% forest burned: %s\n", wildfire.FormatRate(res.BurnRate))
	return err
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
