package notation

import "fmt"

// ErrorKind enumerates the ways a compile can fail.
type ErrorKind string

const (
	// ErrEmptyInput: the input is empty or whitespace only.
	ErrEmptyInput ErrorKind = "empty_input"
	// ErrNoContentInStave: a stave paragraph has annotation lines but no
	// content line.
	ErrNoContentInStave ErrorKind = "no_content_in_stave"
	// ErrMultipleContentLines: a stave paragraph has more than one
	// content line.
	ErrMultipleContentLines ErrorKind = "multiple_content_lines"
	// ErrUnknownPitch: a glyph starts like a pitch but does not lex in
	// the resolved system.
	ErrUnknownPitch ErrorKind = "unknown_pitch"
	// ErrLyricsBeforeContent: a lyrics-shaped line sits above the content
	// line of its stave.
	ErrLyricsBeforeContent ErrorKind = "lyrics_before_content"
	// ErrInvalidDirective: a header directive has no usable value.
	ErrInvalidDirective ErrorKind = "invalid_directive"
	// ErrLoopInDecomposition: the duration decomposer could not reduce a
	// value with any strategy.
	ErrLoopInDecomposition ErrorKind = "loop_in_decomposition"
)

// CompileError is the only error type the compile boundary returns. Line and
// Column are 1-based; both are zero when the error is not tied to a source
// location. Glyph holds the offending source text when there is one.
type CompileError struct {
	Kind   ErrorKind `json:"kind"`
	Line   int       `json:"line,omitempty"`
	Column int       `json:"column,omitempty"`
	Glyph  string    `json:"glyph,omitempty"`
}

func (e *CompileError) Error() string {
	switch {
	case e.Glyph != "" && e.Line > 0:
		return fmt.Sprintf("%s at line %d, column %d: %q", e.Kind, e.Line, e.Column, e.Glyph)
	case e.Line > 0:
		return fmt.Sprintf("%s at line %d, column %d", e.Kind, e.Line, e.Column)
	case e.Glyph != "":
		return fmt.Sprintf("%s: %q", e.Kind, e.Glyph)
	}
	return string(e.Kind)
}

func compileErr(kind ErrorKind, line, column int, glyph string) *CompileError {
	return &CompileError{Kind: kind, Line: line, Column: column, Glyph: glyph}
}
