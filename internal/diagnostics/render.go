package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Renderer pretty-prints ParseErrors against their source text, in the shape
//
//	file.ssi:3:7: E_UNIT_MISMATCH: '+' needs equal dimensions ...
//	  3 | x <- 3@m + 4@s
//	    |      ^^^^^^^^^
type Renderer struct {
	color  bool
	head   lipgloss.Style
	code   lipgloss.Style
	gutter lipgloss.Style
	caret  lipgloss.Style
}

// NewRenderer builds a renderer. With color disabled every style is a no-op,
// which also keeps test output stable.
func NewRenderer(color bool) *Renderer {
	r := &Renderer{color: color}
	if color {
		r.head = lipgloss.NewStyle().Bold(true)
		r.code = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		r.gutter = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
		r.caret = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	}
	return r
}

// WantColor reports whether w is a terminal where colored output is welcome.
func WantColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render writes one formatted error. src may be empty, in which case only the
// header line is printed.
func (r *Renderer) Render(w io.Writer, src, path string, e *ParseError) {
	if path == "" {
		path = e.File
	}
	if path == "" {
		path = "<입력>"
	}
	line, col := Position(src, e.Span.Start)

	head := fmt.Sprintf("%s:%d:%d:", path, line, col)
	fmt.Fprintf(w, "%s %s %s\n",
		r.style(r.head, head),
		r.style(r.code, string(e.Code)+":"),
		e.Message,
	)

	if src == "" {
		return
	}
	text, lineStart := sourceLine(src, e.Span.Start)
	gutter := fmt.Sprintf("%3d | ", line)
	fmt.Fprintf(w, "%s%s\n", r.style(r.gutter, gutter), text)

	pad, width := caretExtent(text, e.Span.Start-lineStart, e.Span.End-lineStart)
	fmt.Fprintf(w, "%s%s%s\n",
		r.style(r.gutter, strings.Repeat(" ", 3)+" | "),
		strings.Repeat(" ", pad),
		r.style(r.caret, strings.Repeat("^", width)),
	)
}

// RenderAll renders errors in order.
func (r *Renderer) RenderAll(w io.Writer, src, path string, errs []*ParseError) {
	for _, e := range errs {
		r.Render(w, src, path, e)
	}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// sourceLine returns the line of src containing byte offset, without its
// trailing newline, plus the byte offset of the line start.
func sourceLine(src string, offset int) (string, int) {
	if offset > len(src) {
		offset = len(src)
	}
	start := strings.LastIndexByte(src[:offset], '\n') + 1
	end := strings.IndexByte(src[start:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += start
	}
	return src[start:end], start
}

// caretExtent converts byte offsets within a line to rune-counted pad and
// caret width. Terminal double-width Hangul shifts the caret slightly; that
// approximation is acceptable for a secondary visual aid.
func caretExtent(line string, from, to int) (pad, width int) {
	if from < 0 {
		from = 0
	}
	if from > len(line) {
		from = len(line)
	}
	if to < from {
		to = from
	}
	if to > len(line) {
		to = len(line)
	}
	pad = len([]rune(line[:from]))
	width = len([]rune(line[from:to]))
	if width == 0 {
		width = 1
	}
	return pad, width
}
