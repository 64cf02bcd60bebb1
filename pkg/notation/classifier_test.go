package notation

import "testing"

func kinds(labels []LineLabel) []LineKind {
	out := make([]LineKind, len(labels))
	for i, lb := range labels {
		out[i] = lb.Kind
	}
	return out
}

func TestClassifyLines(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []LineKind
	}{
		{
			"header then content",
			[]string{"Song", "key: D", "", "|1 2 3|"},
			[]LineKind{LineTitle, LineDirective, LineText, LineContent},
		},
		{
			"lone token is prose",
			[]string{"1"},
			[]LineKind{LineText},
		},
		{
			"lone token with evidence elsewhere",
			[]string{"|1 2 3|", "", "1"},
			[]LineKind{LineContent, LineText, LineContent},
		},
		{
			"annotations split by position",
			[]string{"  .", "|1 2|", "  ."},
			[]LineKind{LineUpper, LineContent, LineLower},
		},
		{
			"lyrics under content",
			[]string{"|1 2|", "twin-kle star"},
			[]LineKind{LineContent, LineLyrics},
		},
		{
			"prose document stays prose",
			[]string{"Dear diary.", "", "Nothing happened."},
			[]LineKind{LineText, LineText, LineText},
		},
		{
			"directive directly above content",
			[]string{"key: G", "|1 2|"},
			[]LineKind{LineDirective, LineContent},
		},
		{
			"star markers below content",
			[]string{"|1 2|", " *"},
			[]LineKind{LineContent, LineLower},
		},
		{
			"lyrics with digits",
			[]string{"|1 2|", "verse1 la"},
			[]LineKind{LineContent, LineLyrics},
		},
		{
			"unindented header prose is text",
			[]string{"buy some milk", "", "|1 2|"},
			[]LineKind{LineText, LineText, LineContent},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(ClassifyLines(tt.lines))
			if len(got) != len(tt.want) {
				t.Fatalf("got %d labels, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d: got %s, want %s", i+1, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDetectSystem(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		system string
	}{
		{"number", []string{"|1 2 3|"}, "number"},
		{"western", []string{"C D E F"}, "western"},
		{"sargam", []string{"S r G m P"}, "sargam"},
		{"sargam beats number", []string{"S 1 2 3"}, "sargam"},
		{"tabla bols", []string{"dha dhin dha ta"}, "tabla"},
		{"bhatkhande", []string{"स रे ग म"}, "bhatkhande"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels := ClassifyLines(tt.lines)
			if labels[0].Kind != LineContent {
				t.Fatalf("line not classified as content: %+v", labels[0])
			}
			if labels[0].System != tt.system {
				t.Errorf("system = %q, want %q", labels[0].System, tt.system)
			}
		})
	}
}

func TestMusicalLineRule(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		musical bool
	}{
		{"barline is decisive", "x | x", true},
		{"seventy percent", "1 2 3 lamb", true},
		{"below seventy percent", "1 said the lamb", false},
		{"dash runs count", "1-2 --", true},
		{"plain words", "mary had a full lamb", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := musicalLine(tt.line)
			if got != tt.musical {
				t.Errorf("musicalLine(%q) = %v, want %v", tt.line, got, tt.musical)
			}
		})
	}
}
