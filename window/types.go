package window

// Span is a half-open range [Start, End) of rune offsets.
type Span struct {
	Start, End int
}

// Len returns the number of runes covered by s.
func (s Span) Len() int {
	return s.End - s.Start
}
