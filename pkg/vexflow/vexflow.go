// Package vexflow renders compiled documents as staff-notation JSON for a
// browser-side VexFlow renderer.
package vexflow

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/james-see/musictext/pkg/notation"
)

// Score is the top-level JSON payload.
type Score struct {
	Title  string  `json:"title,omitempty"`
	Key    string  `json:"key"`
	Staves []Stave `json:"staves"`
}

// Stave is one rendered system.
type Stave struct {
	System   string    `json:"system"`
	Elements []Element `json:"elements"`
}

// Element is one renderable object in reading order. Tuplets nest their
// member notes.
type Element struct {
	Type       string    `json:"type"`
	Keys       []string  `json:"keys,omitempty"`
	Duration   string    `json:"duration,omitempty"`
	Dots       int       `json:"dots,omitempty"`
	Accidental string    `json:"accidental,omitempty"`
	Tie        bool      `json:"tie,omitempty"`
	BarStyle   string    `json:"bar_style,omitempty"`
	Ratio      []int     `json:"ratio,omitempty"`
	Elements   []Element `json:"elements,omitempty"`
	Syllable   string    `json:"syllable,omitempty"`
	Beamed     bool      `json:"beamed,omitempty"`
}

var durationNames = map[int]string{
	1: "w", 2: "h", 4: "q", 8: "8", 16: "16", 32: "32", 64: "64", 128: "128",
}

var alterGlyphs = map[int]string{-2: "bb", -1: "b", 0: "n", 1: "#", 2: "##"}

// Emitter renders VexFlow JSON. It implements notation.Emitter.
type Emitter struct{}

// New creates a VexFlow emitter.
func New() *Emitter { return &Emitter{} }

// Name implements notation.Emitter.
func (e *Emitter) Name() string { return "vexflow" }

// Emit implements notation.Emitter.
func (e *Emitter) Emit(doc *notation.Document) (string, error) {
	score := Score{Title: doc.Title, Key: "C"}
	tonic := notation.N1
	if doc.HasTonic {
		tonic = doc.Tonic
	}
	score.Key = keyName(tonic)

	for _, st := range doc.Staves {
		rendered, err := renderStave(st, tonic)
		if err != nil {
			return "", err
		}
		score.Staves = append(score.Staves, rendered)
	}
	data, err := json.MarshalIndent(score, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func renderStave(st *notation.Stave, tonic notation.PitchCode) (Stave, error) {
	out := Stave{System: st.System}
	table := notation.NewAccidentalTable(tonic)
	tied := false

	for _, item := range st.Items {
		switch item.Kind {
		case notation.ItemTonic:
			tonic = item.Tonic
			table = notation.NewAccidentalTable(tonic)
		case notation.ItemBarline:
			table.Reset()
			out.Elements = append(out.Elements, Element{Type: "barline", BarStyle: string(item.Barline)})
		case notation.ItemBreath:
			out.Elements = append(out.Elements, Element{Type: "breath"})
		case notation.ItemSlurStart:
			out.Elements = append(out.Elements, Element{Type: "slur_start"})
		case notation.ItemSlurEnd:
			out.Elements = append(out.Elements, Element{Type: "slur_end"})
		case notation.ItemBeat:
			tied = item.Beat.TiedToPrevious
			members, err := renderBeat(item.Beat, tonic, table, tied)
			if err != nil {
				return Stave{}, err
			}
			if item.Beat.IsTuplet {
				out.Elements = append(out.Elements, Element{
					Type:     "tuplet",
					Ratio:    []int{item.Beat.TupletNum, item.Beat.TupletDen},
					Elements: members,
				})
			} else {
				out.Elements = append(out.Elements, members...)
			}
		}
	}
	return out, nil
}

func renderBeat(b *notation.Beat, tonic notation.PitchCode, table *notation.AccidentalTable, tieFirst bool) ([]Element, error) {
	var out []Element
	beamed := len(b.Elements) > 1
	for ei, el := range b.Elements {
		values, err := notation.Decompose(el.TupletDuration)
		if err != nil {
			return nil, err
		}
		for vi, v := range values {
			name, ok := durationNames[v.Den]
			if !ok {
				name = "q"
			}
			if el.IsRest {
				out = append(out, Element{Type: "rest", Duration: name, Dots: v.Dots})
				continue
			}
			tn := notation.TransposePitch(el.Pitch, el.Octave, tonic)
			e := Element{
				Type:     "note",
				Keys:     []string{vexKey(tn)},
				Duration: name,
				Dots:     v.Dots,
				Tie:      vi > 0 || (ei == 0 && tieFirst),
				Syllable: el.Syllable,
				Beamed:   beamed,
			}
			if vi == 0 && table.Apply(tn.Step, tn.Alter) {
				e.Accidental = alterGlyphs[tn.Alter]
			}
			out = append(out, e)
		}
	}
	return out, nil
}

// vexKey formats a pitch the way VexFlow wants it, e.g. "c#/4" with middle
// octave 4.
func vexKey(tn notation.TransposedNote) string {
	name := strings.ToLower(notation.StepName(tn.Step))
	switch {
	case tn.Alter > 0:
		name += strings.Repeat("#", tn.Alter)
	case tn.Alter < 0:
		name += strings.Repeat("b", -tn.Alter)
	}
	return name + "/" + strconv.Itoa(tn.Octave+4)
}

func keyName(tonic notation.PitchCode) string {
	name := notation.StepName(tonic.Degree() - 1)
	switch {
	case tonic.Alter() > 0:
		name += strings.Repeat("#", tonic.Alter())
	case tonic.Alter() < 0:
		name += strings.Repeat("b", -tonic.Alter())
	}
	return name
}
