package notation

import "testing"

func tokenKinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestLexContent(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		system string
		want   []TokenKind
	}{
		{
			"notes and barlines", "|1 2 3|", "number",
			[]TokenKind{TokenBarline, TokenNote, TokenSpace, TokenNote, TokenSpace, TokenNote, TokenBarline},
		},
		{
			"dashes stay individual", "1--2", "number",
			[]TokenKind{TokenNote, TokenDash, TokenDash, TokenNote},
		},
		{
			"breath mark", "1' 2", "number",
			[]TokenKind{TokenNote, TokenBreath, TokenSpace, TokenNote},
		},
		{
			"accidental binds to note", "1# 2b", "number",
			[]TokenKind{TokenNote, TokenSpace, TokenNote},
		},
		{
			"stray glyph is unknown", "1 x 2", "number",
			[]TokenKind{TokenNote, TokenSpace, TokenUnknown, TokenSpace, TokenNote},
		},
		{
			"sargam case", "S r G m", "sargam",
			[]TokenKind{TokenNote, TokenSpace, TokenNote, TokenSpace, TokenNote, TokenSpace, TokenNote},
		},
		{
			"tabla bols", "dha dhin", "tabla",
			[]TokenKind{TokenNote, TokenSpace, TokenNote},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := lexContent(tt.line, 1, 0, tt.system)
			if err != nil {
				t.Fatalf("lexContent(%q): %v", tt.line, err)
			}
			got := tokenKinds(tokens)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: got %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLexBarlineStyles(t *testing.T) {
	tests := []struct {
		line  string
		style BarlineStyle
	}{
		{"|", BarSingle},
		{"||", BarDouble},
		{"|:", BarRepeatStart},
		{":|", BarRepeatEnd},
		{"|.", BarFinal},
		{"||:", BarRepeatStartFull},
		{":||", BarRepeatEndFull},
		{"::", BarDotted},
		{"[:", BarSectionStart},
		{":]", BarSectionEnd},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			tokens, err := lexContent(tt.line, 1, 0, "number")
			if err != nil {
				t.Fatal(err)
			}
			if len(tokens) != 1 {
				t.Fatalf("got %d tokens for %q, want 1", len(tokens), tt.line)
			}
			if tokens[0].Kind != TokenBarline || tokens[0].Barline != tt.style {
				t.Errorf("got %s %q, want barline %q", tokens[0].Kind, tokens[0].Barline, tt.style)
			}
		})
	}
}

func TestLexPositions(t *testing.T) {
	tokens, err := lexContent("1 2#", 3, 10, "number")
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Pos.Line != 3 || tokens[0].Pos.Column != 1 || tokens[0].Pos.IndexInDoc != 10 {
		t.Errorf("first token pos = %+v", tokens[0].Pos)
	}
	last := tokens[len(tokens)-1]
	if last.Value != "2#" || last.Pos.Column != 3 {
		t.Errorf("last token = %q at column %d, want %q at 3", last.Value, last.Pos.Column, "2#")
	}
	if last.Pitch != N2s {
		t.Errorf("pitch = %v, want %v", last.Pitch, N2s)
	}
}

func TestLexUnknownPitch(t *testing.T) {
	_, err := lexContent("dha tin", 2, 0, "tabla")
	ce, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("expected *CompileError, got %v", err)
	}
	if ce.Kind != ErrUnknownPitch {
		t.Errorf("kind = %s, want %s", ce.Kind, ErrUnknownPitch)
	}
	if ce.Line != 2 || ce.Column != 5 {
		t.Errorf("position = %d:%d, want 2:5", ce.Line, ce.Column)
	}
}
