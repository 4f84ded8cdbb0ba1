package domain

// ExtractionSource tells which path produced a target mapping.
type ExtractionSource uint8

const (
	// SourceEmpty means no targets were produced; Extraction.Reason says why.
	SourceEmpty ExtractionSource = iota
	// SourceTool means the targets came from the build tool's project help output.
	SourceTool
	// SourceMarkup means the targets came from parsing the buildfile itself.
	SourceMarkup
)

// String returns the short label used in logs and CLI output.
func (s ExtractionSource) String() string {
	switch s {
	case SourceTool:
		return "tool"
	case SourceMarkup:
		return "markup"
	default:
		return "empty"
	}
}

// Extraction is the outcome of extracting targets from one buildfile.
type Extraction struct {
	Targets *Targets
	Source  ExtractionSource
	// Reason is set when Source is SourceEmpty, or when the tool path failed and
	// the markup path succeeded.
	Reason error
}

// EmptyExtraction returns an extraction with no targets and the given reason.
func EmptyExtraction(reason error) Extraction {
	return Extraction{
		Targets: NewTargets(),
		Source:  SourceEmpty,
		Reason:  reason,
	}
}
