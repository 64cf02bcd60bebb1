package notation

// AnnotationKind discriminates upper- and lower-line tokens.
type AnnotationKind string

const (
	AnnOctave      AnnotationKind = "octave"
	AnnUnderscores AnnotationKind = "underscores"
	AnnHashes      AnnotationKind = "hashes"
	AnnOrnament    AnnotationKind = "ornament"
	AnnChord       AnnotationKind = "chord"
	AnnMordent     AnnotationKind = "mordent"
	AnnSyllable    AnnotationKind = "syllable"
	AnnSpace       AnnotationKind = "space"
	AnnUnknown     AnnotationKind = "unknown"
)

// Annotation is one column-addressed token from an upper or lower line.
// Value preserves the exact source text; Pos.Column anchors the spatial
// attachment.
type Annotation struct {
	Kind  AnnotationKind `json:"kind"`
	Value string         `json:"value"`
	Pos   Position       `json:"pos"`
	// Offset is the octave displacement magnitude for octave markers:
	// 1 for a dot, 2 for a colon. The attacher applies the sign.
	Offset int `json:"offset,omitempty"`
}

func (a Annotation) width() int { return len([]rune(a.Value)) }
