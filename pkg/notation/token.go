package notation

// TokenKind discriminates content-line tokens.
type TokenKind string

const (
	TokenNote    TokenKind = "note"
	TokenDash    TokenKind = "dash"
	TokenBarline TokenKind = "barline"
	TokenBreath  TokenKind = "breath"
	TokenSpace   TokenKind = "space"
	TokenUnknown TokenKind = "unknown"
)

// BarlineStyle is the literal barline text; the set is closed.
type BarlineStyle string

const (
	BarSingle          BarlineStyle = "|"
	BarDouble          BarlineStyle = "||"
	BarRepeatStart     BarlineStyle = "|:"
	BarRepeatEnd       BarlineStyle = ":|"
	BarFinal           BarlineStyle = "|."
	BarRepeatStartFull BarlineStyle = "||:"
	BarRepeatEndFull   BarlineStyle = ":||"
	BarDotted          BarlineStyle = "::"
	BarSectionStart    BarlineStyle = "[:"
	BarSectionEnd      BarlineStyle = ":]"
)

// barlineStyles in longest-match order, so "||:" is tried before "||" and
// "|".
var barlineStyles = []BarlineStyle{
	BarRepeatStartFull, BarRepeatEndFull,
	BarRepeatStart, BarRepeatEnd, BarFinal, BarDouble, BarDotted,
	BarSectionStart, BarSectionEnd,
	BarSingle,
}

// Token is one lexed content-line element. Notes additionally carry the
// spatial assignments filled in by the attacher pass.
type Token struct {
	Kind    TokenKind    `json:"kind"`
	Value   string       `json:"value"`
	Pos     Position     `json:"pos"`
	Pitch   PitchCode    `json:"pitch,omitempty"`
	Barline BarlineStyle `json:"barline,omitempty"`

	// Spatial assignments (notes and dashes only).
	Octave      int         `json:"octave,omitempty"`
	SlurStart   bool        `json:"slur_start,omitempty"`
	SlurEnd     bool        `json:"slur_end,omitempty"`
	InSlur      bool        `json:"in_slur,omitempty"`
	InBeatGroup bool        `json:"in_beat_group,omitempty"`
	Syllable    string      `json:"syllable,omitempty"`
	Mordent     bool        `json:"mordent,omitempty"`
	Ornament    []PitchCode `json:"ornament,omitempty"`
	Chord       string      `json:"chord,omitempty"`
}

// width returns the rune width of the token in the source line.
func (t Token) width() int { return len([]rune(t.Value)) }
