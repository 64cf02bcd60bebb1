package systems

import "testing"

func TestNumberMatch(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		glyph  string
		degree int
		alter  int
		ok     bool
	}{
		{"plain degree", "1 2 3", "1", 1, 0, true},
		{"sharp", "4#5", "4#", 4, 1, true},
		{"double sharp", "1##", "1##", 1, 2, true},
		{"flat", "7b", "7b", 7, -1, true},
		{"double flat", "3bb-", "3bb", 3, -2, true},
		{"degree eight rejected", "8", "", 0, 0, false},
		{"zero rejected", "0", "", 0, 0, false},
		{"empty", "", "", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Number{}.Match(tt.input)
			if ok != tt.ok {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if !ok {
				return
			}
			if p.Glyph != tt.glyph || p.Degree != tt.degree || p.Alter != tt.alter {
				t.Errorf("Match(%q) = %q %d/%d, want %q %d/%d",
					tt.input, p.Glyph, p.Degree, p.Alter, tt.glyph, tt.degree, tt.alter)
			}
		})
	}
}

func TestWesternMatch(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		glyph  string
		degree int
		alter  int
		ok     bool
	}{
		{"middle C", "C D E", "C", 1, 0, true},
		{"lowercase folds", "e", "e", 3, 0, true},
		{"flat suffix wins over pitch b", "Db", "Db", 2, -1, true},
		{"bare b is a pitch", "b", "b", 7, 0, true},
		{"double flat", "Bbb", "Bbb", 7, -2, true},
		{"sharp", "F#", "F#", 4, 1, true},
		{"H rejected", "H", "", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Western{}.Match(tt.input)
			if ok != tt.ok {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if !ok {
				return
			}
			if p.Glyph != tt.glyph || p.Degree != tt.degree || p.Alter != tt.alter {
				t.Errorf("Match(%q) = %q %d/%d, want %q %d/%d",
					tt.input, p.Glyph, p.Degree, p.Alter, tt.glyph, tt.degree, tt.alter)
			}
		})
	}
}

func TestSargamMatch(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		glyph  string
		degree int
		alter  int
	}{
		{"shuddha Sa", "S", "S", 1, 0},
		{"lowercase sa aliases", "s", "s", 1, 0},
		{"komal re", "r", "r", 2, -1},
		{"shuddha Re", "R", "R", 2, 0},
		{"komal ga", "g", "g", 3, -1},
		{"shuddha ma is lowercase", "m", "m", 4, 0},
		{"tivra Ma is uppercase", "M", "M", 4, 1},
		{"tivra Ma sharp clamps", "M##", "M##", 4, 2},
		{"komal dha", "d", "d", 6, -1},
		{"komal ni", "n", "n", 7, -1},
		{"shuddha Ni flat", "Nb", "Nb", 7, -1},
		{"komal glyph takes no accidental", "rb", "r", 2, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Sargam{}.Match(tt.input)
			if !ok {
				t.Fatalf("Match(%q) failed", tt.input)
			}
			if p.Glyph != tt.glyph || p.Degree != tt.degree || p.Alter != tt.alter {
				t.Errorf("Match(%q) = %q %d/%d, want %q %d/%d",
					tt.input, p.Glyph, p.Degree, p.Alter, tt.glyph, tt.degree, tt.alter)
			}
		})
	}
}

func TestBhatkhandeMatch(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		glyph  string
		degree int
		alter  int
	}{
		{"sa", "स", "स", 1, 0},
		{"re bigraph beats ra", "रे", "रे", 2, 0},
		{"bare ra", "र ग", "र", 2, 0},
		{"ni bigraph", "नि", "नि", 7, 0},
		{"bare na", "न", "न", 7, 0},
		{"ga sharp", "ग#", "ग#", 3, 1},
		{"dha flat", "धb", "धb", 6, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Bhatkhande{}.Match(tt.input)
			if !ok {
				t.Fatalf("Match(%q) failed", tt.input)
			}
			if p.Glyph != tt.glyph || p.Degree != tt.degree || p.Alter != tt.alter {
				t.Errorf("Match(%q) = %q %d/%d, want %q %d/%d",
					tt.input, p.Glyph, p.Degree, p.Alter, tt.glyph, tt.degree, tt.alter)
			}
		})
	}
}

func TestTablaMatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
		glyph string
		ok    bool
	}{
		{"dhin wins over dha prefix", "dhin", "dhin", true},
		{"dha", "dhage", "dha", true},
		{"taka wins over ta", "taka", "taka", true},
		{"ta", "ta ka", "ta", true},
		{"case insensitive", "DHA", "DHA", true},
		{"trkt", "trkt", "trkt", true},
		{"ge", "gena", "ge", true},
		{"unknown bol", "tin", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Tabla{}.Match(tt.input)
			if ok != tt.ok {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && p.Glyph != tt.glyph {
				t.Errorf("Match(%q) glyph = %q, want %q", tt.input, p.Glyph, tt.glyph)
			}
			if ok && p.Degree != 1 {
				t.Errorf("Match(%q) degree = %d, want 1", tt.input, p.Degree)
			}
		})
	}
}

func TestFor(t *testing.T) {
	for _, name := range Names() {
		sys, ok := For(name)
		if !ok {
			t.Fatalf("For(%q) not found", name)
		}
		if sys.Name() != name {
			t.Errorf("For(%q).Name() = %q", name, sys.Name())
		}
	}
	if _, ok := For("helmholtz"); ok {
		t.Error("For(helmholtz) should not resolve")
	}
}
