package ansiseq

// OutputKind tags which field of Output is meaningful.
type OutputKind uint8

const (
	// OutputText marks a run of plain text between escape sequences.
	OutputText OutputKind = iota
	// OutputSequence marks a recognised CSI/OSC/ESC sequence.
	OutputSequence
)

// Output is one item of the lazy sequence C2 produces: either a TextBlock
// span or a parsed AnsiSequence. Grounded in original_source's
// `Output<'a>{TextBlock(&'a str), AnsiSequence(AnsiSequence)}`.
type Output struct {
	Kind     OutputKind
	Text     string
	Sequence AnsiSequence
}

// TextBlock constructs a plain-text Output.
func TextBlock(s string) Output { return Output{Kind: OutputText, Text: s} }

// Seq constructs a sequence Output.
func Seq(s AnsiSequence) Output { return Output{Kind: OutputSequence, Sequence: s} }

// String renders the Output back to its wire form; TextBlock returns its
// text verbatim, AnsiSequence defers to the variant's String().
func (o Output) String() string {
	if o.Kind == OutputText {
		return o.Text
	}
	if o.Sequence == nil {
		return ""
	}
	return o.Sequence.String()
}
