// Package lily renders compiled documents as LilyPond source.
package lily

import (
	"fmt"
	"strings"

	"github.com/james-see/musictext/pkg/notation"
)

var (
	noteNames  = [7]string{"c", "d", "e", "f", "g", "a", "b"}
	alterNames = [5]string{"eses", "es", "", "is", "isis"}
)

// Emitter renders LilyPond text. It implements notation.Emitter.
type Emitter struct{}

// New creates a LilyPond emitter.
func New() *Emitter { return &Emitter{} }

// Name implements notation.Emitter.
func (e *Emitter) Name() string { return "lilypond" }

// Emit implements notation.Emitter.
func (e *Emitter) Emit(doc *notation.Document) (string, error) {
	var b strings.Builder
	b.WriteString("\\version \"2.24.0\"\n")
	if doc.Title != "" {
		fmt.Fprintf(&b, "\\header {\n  title = %q\n}\n", doc.Title)
	}
	b.WriteString("\\score {\n  <<\n")
	for _, st := range doc.Staves {
		body, lyrics, err := renderStave(st)
		if err != nil {
			return "", err
		}
		b.WriteString("    \\new Staff {\n      ")
		b.WriteString(body)
		b.WriteString("\n    }\n")
		if lyrics != "" {
			fmt.Fprintf(&b, "    \\addlyrics { %s }\n", lyrics)
		}
	}
	b.WriteString("  >>\n  \\layout { }\n}\n")
	return b.String(), nil
}

// renderStave walks the item stream into LilyPond tokens plus the lyric
// line, if any syllables were attached.
func renderStave(st *notation.Stave) (string, string, error) {
	tonic := notation.N1
	var out []string
	var syllables []string
	lastNote := -1
	pendingSlurOpen := false

	for _, item := range st.Items {
		switch item.Kind {
		case notation.ItemTonic:
			tonic = item.Tonic
			out = append(out, fmt.Sprintf("\\key %s%s \\major",
				noteNames[tonic.Degree()-1], alterNames[tonic.Alter()+2]))
		case notation.ItemBarline:
			out = append(out, barToken(item.Barline))
		case notation.ItemBreath:
			out = append(out, "\\breathe")
		case notation.ItemSlurStart:
			pendingSlurOpen = true
		case notation.ItemSlurEnd:
			if lastNote >= 0 {
				out[lastNote] += ")"
			}
		case notation.ItemBeat:
			tokens, idx, err := renderBeat(out, item.Beat, tonic, &pendingSlurOpen, lastNote)
			if err != nil {
				return "", "", err
			}
			out = tokens
			if idx >= 0 {
				lastNote = idx
			}
			for _, el := range item.Beat.Elements {
				if el.Syllable != "" {
					syllables = append(syllables, lilySyllable(el.Syllable))
				}
			}
		}
	}
	return strings.Join(out, " "), strings.Join(syllables, " "), nil
}

// renderBeat appends one beat's tokens, returning the updated token list and
// the index of the last note token for tie and slur closure.
func renderBeat(out []string, b *notation.Beat, tonic notation.PitchCode, slurOpen *bool, lastNote int) ([]string, int, error) {
	if b.TiedToPrevious && lastNote >= 0 {
		out[lastNote] += "~"
	}
	if b.IsTuplet {
		out = append(out, fmt.Sprintf("\\tuplet %d/%d {", b.TupletNum, b.TupletDen))
	}
	noteIdx := -1
	for _, el := range b.Elements {
		values, err := notation.Decompose(el.TupletDuration)
		if err != nil {
			return nil, 0, err
		}
		if el.IsRest {
			for _, v := range values {
				out = append(out, "r"+durToken(v))
			}
			continue
		}
		name := pitchName(notation.TransposePitch(el.Pitch, el.Octave, tonic))
		if len(el.Ornament) > 0 {
			grace := make([]string, len(el.Ornament))
			for i, pc := range el.Ornament {
				grace[i] = pitchName(notation.TransposePitch(pc, el.Octave, tonic)) + "8"
			}
			out = append(out, fmt.Sprintf("\\grace { %s }", strings.Join(grace, " ")))
		}
		for i, v := range values {
			tok := name + durToken(v)
			if i == 0 {
				if el.Mordent {
					tok += "\\mordent"
				}
				if el.Chord != "" {
					tok += fmt.Sprintf("^%q", el.Chord)
				}
				if *slurOpen {
					tok += "("
					*slurOpen = false
				}
			}
			if i < len(values)-1 {
				tok += "~"
			}
			out = append(out, tok)
			noteIdx = len(out) - 1
		}
	}
	if b.IsTuplet {
		out = append(out, "}")
	}
	return out, noteIdx, nil
}

func durToken(v notation.NoteValue) string {
	return fmt.Sprintf("%d%s", v.Den, strings.Repeat(".", v.Dots))
}

// pitchName builds the absolute-pitch name: middle octave is one apostrophe,
// so octave 0 note 1 is c'.
func pitchName(tn notation.TransposedNote) string {
	name := noteNames[tn.Step] + alterNames[tn.Alter+2]
	marks := tn.Octave + 1
	if marks >= 0 {
		return name + strings.Repeat("'", marks)
	}
	return name + strings.Repeat(",", -marks)
}

func barToken(style notation.BarlineStyle) string {
	switch style {
	case notation.BarSingle:
		return "|"
	case notation.BarDouble:
		return `\bar "||"`
	case notation.BarFinal:
		return `\bar "|."`
	case notation.BarRepeatStart, notation.BarRepeatStartFull, notation.BarSectionStart:
		return `\bar ".|:"`
	case notation.BarRepeatEnd, notation.BarRepeatEndFull, notation.BarSectionEnd:
		return `\bar ":|."`
	case notation.BarDotted:
		return `\bar ".."`
	}
	return "|"
}

// lilySyllable converts trailing syllable hyphens to LilyPond's " --"
// continuation.
func lilySyllable(s string) string {
	if strings.HasSuffix(s, "-") {
		return strings.TrimSuffix(s, "-") + " --"
	}
	return s
}
