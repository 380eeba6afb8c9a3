// Package diag locates errors in source text and renders them with carets
// pointing at the offending span.
package diag

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Span is a half-open byte range [Lo, Hi) of the source, plus the line on
// which it starts.
type Span struct {
	Lo, Hi int
	Line   int
}

// To returns the smallest span covering both s and other.
func (s Span) To(other Span) Span {
	r := s
	if other.Lo < r.Lo {
		r.Lo = other.Lo
	}
	if other.Hi > r.Hi {
		r.Hi = other.Hi
	}
	if other.Line < r.Line {
		r.Line = other.Line
	}
	return r
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Lo, s.Hi)
}

// Located is an error that knows where in the source it happened.
type Located interface {
	error
	Span() Span
}

// Error is a lexical or syntactic error.
type Error struct {
	Loc Span
	Msg string
}

func Errorf(span Span, format string, args ...any) *Error {
	return &Error{Loc: span, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Span() Span    { return e.Loc }

// Diagnostic pairs a message with the source it refers to.
type Diagnostic struct {
	Src  string
	Msg  string
	Span Span
}

// FromError builds a Diagnostic for err. Errors without a location are
// pointed at the end of the source.
func FromError(src string, err error) Diagnostic {
	var loc Located
	if errors.As(err, &loc) {
		return Diagnostic{Src: src, Msg: loc.Error(), Span: loc.Span()}
	}
	return Diagnostic{Src: src, Msg: err.Error(), Span: Span{Lo: len(src), Hi: len(src) + 1}}
}

// Report writes the offending line(s) followed by a caret line. A span
// reaching past the end of the source degrades to pointing at its end.
func (d Diagnostic) Report(w io.Writer) {
	if d.Span.Hi > len(d.Src) {
		d.reportOutOfBounds(w)
	} else {
		d.reportInBounds(w)
	}
}

func (d Diagnostic) String() string {
	var buf strings.Builder
	d.Report(&buf)
	return buf.String()
}

func (d Diagnostic) reportInBounds(w io.Writer) {
	start := d.lineStart(d.Span.Lo)
	end := d.lineEnd(d.Span.Hi)
	if end < start {
		end = start
	}
	fmt.Fprintln(w, d.Src[start:end])
	if strings.Count(d.Src[start:end], "\n") > 0 {
		fmt.Fprintln(w, " "+d.Msg)
		return
	}
	width := d.Span.Hi - d.Span.Lo
	if width < 1 {
		width = 1
	}
	pad := d.Span.Lo - start
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintln(w, strings.Repeat(" ", pad)+strings.Repeat("^", width)+" "+d.Msg)
}

func (d Diagnostic) reportOutOfBounds(w io.Writer) {
	start := d.lineStart(d.Span.Lo)
	end := d.lineEnd(d.Span.Hi)
	if end < start {
		end = start
	}
	fmt.Fprintln(w, d.Src[start:end])
	fmt.Fprintln(w, strings.Repeat(" ", len(d.Src)-start)+"^ "+d.Msg)
}

func (d Diagnostic) clamp(from int) int {
	if from > len(d.Src)-1 {
		from = len(d.Src) - 1
	}
	if from < 0 {
		from = 0
	}
	return from
}

func (d Diagnostic) lineStart(from int) int {
	from = d.clamp(from)
	return strings.LastIndexByte(d.Src[:from], '\n') + 1
}

func (d Diagnostic) lineEnd(from int) int {
	from = d.clamp(from)
	if i := strings.IndexByte(d.Src[from:], '\n'); i >= 0 {
		return from + i
	}
	return len(d.Src)
}
