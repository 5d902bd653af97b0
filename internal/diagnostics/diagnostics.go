// Package diagnostics defines the error value every front-end stage produces.
//
// A ParseError is terminal for the parse attempt that raised it: there is no
// partial-result recovery, and no stage logs and continues. The surrounding
// tool layer decides how to render or batch errors.
package diagnostics

import (
	"fmt"

	"github.com/ssiat-lang/ssiat/internal/token"
)

// ParseError is one front-end failure, pinned to a byte range of the source.
type ParseError struct {
	Code    Code
	Span    token.Span
	Message string
	File    string // filled by the pipeline; empty for in-memory sources
}

// New builds a ParseError at the given span.
func New(code Code, span token.Span, format string, args ...any) *ParseError {
	return &ParseError{
		Code:    code,
		Span:    span,
		Message: fmt.Sprintf(format, args...),
	}
}

// At builds a ParseError at a token's span.
func At(code Code, tok token.Token, format string, args ...any) *ParseError {
	return New(code, tok.Span, format, args...)
}

func (e *ParseError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Position converts a byte offset into 1-based line and column numbers.
// Columns count runes, matching what editors display for Hangul source.
func Position(src string, offset int) (line, col int) {
	if offset > len(src) {
		offset = len(src)
	}
	line, col = 1, 1
	for _, r := range src[:offset] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
