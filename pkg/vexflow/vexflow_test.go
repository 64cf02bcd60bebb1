package vexflow

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/james-see/musictext/pkg/notation"
)

func emitScore(t *testing.T, input string) Score {
	t.Helper()
	doc, err := notation.Compile(input)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	out, err := New().Emit(doc)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	var score Score
	if err := json.Unmarshal([]byte(out), &score); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	return score
}

func TestEmitNotesAndBars(t *testing.T) {
	score := emitScore(t, "|1 2 3|")
	if score.Key != "C" {
		t.Errorf("key = %q, want C", score.Key)
	}
	if len(score.Staves) != 1 {
		t.Fatalf("got %d staves", len(score.Staves))
	}
	els := score.Staves[0].Elements
	types := make([]string, len(els))
	for i, el := range els {
		types[i] = el.Type
	}
	want := []string{"barline", "note", "note", "note", "barline"}
	if strings.Join(types, ",") != strings.Join(want, ",") {
		t.Fatalf("types = %v, want %v", types, want)
	}
	if els[1].Keys[0] != "c/4" || els[1].Duration != "q" {
		t.Errorf("first note = %+v, want c/4 quarter", els[1])
	}
}

func TestEmitKeyAndAccidentals(t *testing.T) {
	score := emitScore(t, "key: D\n\n|3 3b 3|")
	if score.Key != "D" {
		t.Errorf("key = %q, want D", score.Key)
	}
	els := score.Staves[0].Elements
	var notes []Element
	for _, el := range els {
		if el.Type == "note" {
			notes = append(notes, el)
		}
	}
	if len(notes) != 3 {
		t.Fatalf("got %d notes", len(notes))
	}
	// F# is in D major's signature: no printed accidental.
	if notes[0].Keys[0] != "f#/4" || notes[0].Accidental != "" {
		t.Errorf("note 1 = %+v, want f#/4 without accidental", notes[0])
	}
	// The komal third lands on F natural, which must cancel the F#.
	if notes[1].Keys[0] != "f/4" || notes[1].Accidental != "n" {
		t.Errorf("note 2 = %+v, want f/4 with natural", notes[1])
	}
	// Back to F#: the measure state says F natural, so print the sharp.
	if notes[2].Accidental != "#" {
		t.Errorf("note 3 = %+v, want restored sharp", notes[2])
	}
}

func TestEmitAccidentalResetAtBarline(t *testing.T) {
	score := emitScore(t, "|4#|4#|")
	var notes []Element
	for _, el := range score.Staves[0].Elements {
		if el.Type == "note" {
			notes = append(notes, el)
		}
	}
	if notes[0].Accidental != "#" {
		t.Errorf("first sharp should print: %+v", notes[0])
	}
	if notes[1].Accidental != "#" {
		t.Errorf("sharp should print again after the barline: %+v", notes[1])
	}
}

func TestEmitTupletWrapper(t *testing.T) {
	score := emitScore(t, "1-2")
	els := score.Staves[0].Elements
	if len(els) != 1 || els[0].Type != "tuplet" {
		t.Fatalf("elements = %+v, want one tuplet", els)
	}
	if els[0].Ratio[0] != 3 || els[0].Ratio[1] != 2 {
		t.Errorf("ratio = %v, want [3 2]", els[0].Ratio)
	}
	if len(els[0].Elements) != 2 {
		t.Errorf("tuplet members = %d, want 2", len(els[0].Elements))
	}
}

func TestEmitTieAcrossBeats(t *testing.T) {
	score := emitScore(t, "|1- -2|")
	var notes []Element
	for _, el := range score.Staves[0].Elements {
		if el.Type == "note" {
			notes = append(notes, el)
		}
	}
	if notes[0].Tie {
		t.Errorf("first note should not be tied: %+v", notes[0])
	}
	if !notes[1].Tie {
		t.Errorf("continuation note should be tied: %+v", notes[1])
	}
}

func TestEmitOctaves(t *testing.T) {
	score := emitScore(t, ".\n1 2")
	notes := score.Staves[0].Elements
	if notes[0].Keys[0] != "c/5" {
		t.Errorf("raised note = %+v, want c/5", notes[0])
	}
	if notes[1].Keys[0] != "d/4" {
		t.Errorf("plain note = %+v, want d/4", notes[1])
	}
}
