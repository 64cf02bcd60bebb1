package notation

import "testing"

// buildStave assembles a stave straight from source lines, letting the
// classifier and assembler do their usual work.
func buildStave(t *testing.T, lines ...string) *Stave {
	t.Helper()
	labels := ClassifyLines(lines)
	nums := make([]int, len(lines))
	offsets := make([]int, len(lines))
	off := 0
	for i := range lines {
		nums[i] = i + 1
		offsets[i] = off
		off += len([]rune(lines[i])) + 1
	}
	st, err := assembleStave(lines, labels, nums, offsets)
	if err != nil {
		t.Fatal(err)
	}
	attachSpatial(st)
	return st
}

func noteTokens(st *Stave) []Token {
	var out []Token
	for _, tok := range st.Tokens {
		if tok.Kind == TokenNote {
			out = append(out, tok)
		}
	}
	return out
}

func TestOctaveMarkers(t *testing.T) {
	st := buildStave(t,
		".   :",
		"|1 2 3|",
		"  .",
	)
	notes := noteTokens(st)
	if len(notes) != 3 {
		t.Fatalf("got %d notes, want 3", len(notes))
	}
	// The dot above column 1 has no note there; the nearest is 1 at
	// column 2.
	if notes[0].Octave != 1 {
		t.Errorf("note 1 octave = %d, want 1", notes[0].Octave)
	}
	// The dot below column 3 lowers the 2.
	if notes[1].Octave != -1 {
		t.Errorf("note 2 octave = %d, want -1", notes[1].Octave)
	}
	// The colon above column 5 does not land on a note; nearest is 3 at
	// column 6... and a colon means two octaves.
	if notes[2].Octave != 2 {
		t.Errorf("note 3 octave = %d, want 2", notes[2].Octave)
	}
}

func TestOctaveMarkersSpreadOverUnmarkedNotes(t *testing.T) {
	st := buildStave(t,
		"..",
		"1  2",
	)
	notes := noteTokens(st)
	// The first dot lands on the 1; the orphan second dot must move on to
	// the 2 instead of doubling the 1.
	if notes[0].Octave != 1 {
		t.Errorf("first note octave = %d, want 1", notes[0].Octave)
	}
	if notes[1].Octave != 1 {
		t.Errorf("second note octave = %d, want 1", notes[1].Octave)
	}
}

func TestStarOctaveMarkerBelow(t *testing.T) {
	st := buildStave(t,
		"|1 2|",
		" *",
	)
	notes := noteTokens(st)
	if notes[0].Octave != -1 {
		t.Errorf("first note octave = %d, want -1 from the star below", notes[0].Octave)
	}
	if notes[1].Octave != 0 {
		t.Errorf("second note octave = %d, want 0", notes[1].Octave)
	}
}

func TestOctaveMarkerTieBreaksRight(t *testing.T) {
	st := buildStave(t,
		"  .",
		"1   2",
	)
	notes := noteTokens(st)
	if notes[0].Octave != 0 {
		t.Errorf("left note octave = %d, want 0", notes[0].Octave)
	}
	if notes[1].Octave != 1 {
		t.Errorf("right note octave = %d, want 1", notes[1].Octave)
	}
}

func TestSlurSpan(t *testing.T) {
	st := buildStave(t,
		"___",
		"1 2 3",
	)
	notes := noteTokens(st)
	if !notes[0].SlurStart || notes[0].SlurEnd {
		t.Errorf("note 1 slur flags = %+v", notes[0])
	}
	if !notes[1].SlurEnd {
		t.Errorf("note 2 should end the slur: %+v", notes[1])
	}
	if notes[2].InSlur {
		t.Errorf("note 3 should be outside the slur: %+v", notes[2])
	}
}

func TestBeatGroupBelow(t *testing.T) {
	st := buildStave(t,
		"1 2 3",
		"___",
	)
	notes := noteTokens(st)
	if !notes[0].InBeatGroup || !notes[1].InBeatGroup {
		t.Error("first two notes should be grouped")
	}
	if notes[2].InBeatGroup {
		t.Error("third note should not be grouped")
	}
}

func TestOrnamentAndMordent(t *testing.T) {
	st := buildStave(t,
		"<23> ~",
		"1    2",
	)
	notes := noteTokens(st)
	want := []PitchCode{N2, N3}
	if len(notes[0].Ornament) != len(want) {
		t.Fatalf("ornament = %v, want %v", notes[0].Ornament, want)
	}
	for i, pc := range want {
		if notes[0].Ornament[i] != pc {
			t.Errorf("ornament[%d] = %v, want %v", i, notes[0].Ornament[i], pc)
		}
	}
	if !notes[1].Mordent {
		t.Errorf("note 2 should carry the mordent: %+v", notes[1])
	}
}

func TestLyricAttachment(t *testing.T) {
	st := buildStave(t,
		"  ___",
		"1 2 3 4",
		"twin-kle star",
	)
	notes := noteTokens(st)
	got := []string{notes[0].Syllable, notes[1].Syllable, notes[2].Syllable, notes[3].Syllable}
	// The slurred 2-3 pair sings one syllable, so 3 takes nothing.
	want := []string{"twin-", "kle", "", "star"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("syllables = %q, want %q", got, want)
			break
		}
	}
}

func TestExtraLyricsKept(t *testing.T) {
	st := buildStave(t,
		"1 2",
		"one two three",
	)
	if len(st.ExtraLyrics) != 1 || st.ExtraLyrics[0] != "three" {
		t.Errorf("extra lyrics = %v, want [three]", st.ExtraLyrics)
	}
}
