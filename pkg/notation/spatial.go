package notation

import (
	"strings"
	"unicode/utf8"

	"github.com/james-see/musictext/pkg/notation/systems"
)

// attachSpatial binds every annotation to content tokens by column. The
// pass is total: annotations that line up with nothing fall back to the
// nearest note or are dropped, never an error.
func attachSpatial(st *Stave) {
	for _, line := range st.Upper {
		for _, ann := range line {
			attachUpper(st, ann)
		}
	}
	for _, line := range st.Lower {
		for _, ann := range line {
			attachLower(st, ann)
		}
	}
	attachLyrics(st)
}

func attachUpper(st *Stave, ann Annotation) {
	switch ann.Kind {
	case AnnOctave:
		if i := tokenAtColumn(st.Tokens, ann.Pos.Column); i >= 0 {
			st.Tokens[i].Octave += ann.Offset
		} else if i := nearestUnmarkedNote(st.Tokens, ann.Pos.Column); i >= 0 {
			st.Tokens[i].Octave += ann.Offset
		}
	case AnnUnderscores:
		markSlur(st.Tokens, ann.Pos.Column, ann.width())
	case AnnOrnament:
		if i := noteInSpan(st.Tokens, ann.Pos.Column, ann.width()); i >= 0 {
			st.Tokens[i].Ornament = parseOrnament(ann.Value, st.System)
		}
	case AnnChord:
		if i := noteInSpan(st.Tokens, ann.Pos.Column, ann.width()); i >= 0 {
			st.Tokens[i].Chord = strings.Trim(ann.Value, "[]")
		}
	case AnnMordent:
		if i := noteInSpan(st.Tokens, ann.Pos.Column, 1); i >= 0 {
			st.Tokens[i].Mordent = true
		} else if i := nearestNote(st.Tokens, ann.Pos.Column); i >= 0 {
			st.Tokens[i].Mordent = true
		}
	}
}

func attachLower(st *Stave, ann Annotation) {
	switch ann.Kind {
	case AnnOctave:
		if i := tokenAtColumn(st.Tokens, ann.Pos.Column); i >= 0 {
			st.Tokens[i].Octave -= ann.Offset
		} else if i := nearestUnmarkedNote(st.Tokens, ann.Pos.Column); i >= 0 {
			st.Tokens[i].Octave -= ann.Offset
		}
	case AnnUnderscores:
		for i := range st.Tokens {
			t := &st.Tokens[i]
			if t.Kind != TokenNote && t.Kind != TokenDash {
				continue
			}
			if t.Pos.Column >= ann.Pos.Column && t.Pos.Column < ann.Pos.Column+ann.width() {
				t.InBeatGroup = true
			}
		}
	}
}

// markSlur flags the notes under an upper underscore run: the leftmost
// starts the slur, the rightmost ends it, and a single covered note does
// both.
func markSlur(tokens []Token, column, width int) {
	first, last := -1, -1
	for i := range tokens {
		if tokens[i].Kind != TokenNote {
			continue
		}
		c := tokens[i].Pos.Column
		if c >= column && c < column+width {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return
	}
	for i := first; i <= last; i++ {
		if tokens[i].Kind == TokenNote {
			tokens[i].InSlur = true
		}
	}
	tokens[first].SlurStart = true
	tokens[last].SlurEnd = true
}

// attachLyrics walks the flattened syllable stream over the slur-eligible
// notes left to right. Notes inside a slur other than its first sing the
// same syllable, so they take none.
func attachLyrics(st *Stave) {
	var syllables []string
	for _, line := range st.LyricLines {
		syllables = append(syllables, line...)
	}
	if len(syllables) == 0 {
		return
	}
	next := 0
	for i := range st.Tokens {
		t := &st.Tokens[i]
		if t.Kind != TokenNote {
			continue
		}
		if t.InSlur && !t.SlurStart {
			continue
		}
		if next >= len(syllables) {
			break
		}
		t.Syllable = syllables[next]
		next++
	}
	if next < len(syllables) {
		st.ExtraLyrics = syllables[next:]
	}
}

// tokenAtColumn finds the note or dash whose glyph covers the column.
func tokenAtColumn(tokens []Token, column int) int {
	for i := range tokens {
		t := tokens[i]
		if t.Kind != TokenNote && t.Kind != TokenDash {
			continue
		}
		if column >= t.Pos.Column && column < t.Pos.Column+t.width() {
			return i
		}
	}
	return -1
}

// noteInSpan finds the first note starting inside [column, column+width).
func noteInSpan(tokens []Token, column, width int) int {
	for i := range tokens {
		t := tokens[i]
		if t.Kind != TokenNote {
			continue
		}
		if t.Pos.Column >= column && t.Pos.Column < column+width {
			return i
		}
	}
	return -1
}

// nearestUnmarkedNote is the orphan octave-marker fallback: notes that
// already carry an octave are skipped, so stacked markers spread over
// neighbouring notes instead of piling onto one.
func nearestUnmarkedNote(tokens []Token, column int) int {
	best, bestDist := -1, 1<<30
	for i := range tokens {
		t := tokens[i]
		if t.Kind != TokenNote || t.Octave != 0 {
			continue
		}
		d := t.Pos.Column - column
		if d < 0 {
			d = -d
		}
		if d < bestDist || (d == bestDist && best >= 0 && t.Pos.Column > tokens[best].Pos.Column) {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return nearestNote(tokens, column)
	}
	return best
}

// nearestNote picks the note closest to the column, ties to the right.
func nearestNote(tokens []Token, column int) int {
	best, bestDist := -1, 1<<30
	for i := range tokens {
		t := tokens[i]
		if t.Kind != TokenNote {
			continue
		}
		d := t.Pos.Column - column
		if d < 0 {
			d = -d
		}
		if d < bestDist || (d == bestDist && best >= 0 && t.Pos.Column > tokens[best].Pos.Column) {
			best, bestDist = i, d
		}
	}
	return best
}

// parseOrnament lexes the pitch glyphs inside an ornament bracket.
func parseOrnament(value, systemName string) []PitchCode {
	sys, ok := systems.For(systemName)
	if !ok {
		return nil
	}
	inner := strings.Trim(value, "<>")
	var pitches []PitchCode
	for inner != "" {
		p, ok := sys.Match(inner)
		if !ok {
			_, size := utf8.DecodeRuneInString(inner)
			inner = inner[size:]
			continue
		}
		if pc, valid := PitchFor(p.Degree, p.Alter); valid {
			pitches = append(pitches, pc)
		}
		inner = inner[len(p.Glyph):]
	}
	return pitches
}
