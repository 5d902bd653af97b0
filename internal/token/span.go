package token

// Span is a half-open byte range [Start, End) into the original source text.
// Every AST node carries one; diagnostics translate it back to line/column.
type Span struct {
	Start int
	End   int
}

// Empty reports whether the span is the zero value. Offset 0 tokens always
// have End > 0, so the zero value is free to act as "no span".
func (s Span) Empty() bool { return s.Start == 0 && s.End == 0 }

// Merge returns the union range of s and o. Merging with an empty span
// returns the other span unchanged.
func (s Span) Merge(o Span) Span {
	if s.Empty() {
		return o
	}
	if o.Empty() {
		return s
	}
	out := s
	if o.Start < out.Start {
		out.Start = o.Start
	}
	if o.End > out.End {
		out.End = o.End
	}
	return out
}
