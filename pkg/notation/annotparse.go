package notation

import "unicode"

// parseUpperLine tokenises a line above the content line. Every token keeps
// its column so the attacher can line it up with the notes underneath.
func parseUpperLine(line string, lineNum, docOffset int) []Annotation {
	runes := []rune(line)
	var anns []Annotation
	i := 0
	pos := func(at int) Position {
		return Position{Line: lineNum, Column: at + 1, IndexInLine: at, IndexInDoc: docOffset + at}
	}
	emitRun := func(start, end int, kind AnnotationKind) {
		anns = append(anns, Annotation{Kind: kind, Value: string(runes[start:end]), Pos: pos(start)})
	}
	for i < len(runes) {
		switch r := runes[i]; {
		case r == ' ' || r == '\t':
			j := i
			for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t') {
				j++
			}
			emitRun(i, j, AnnSpace)
			i = j
		case r == '.' || r == '•' || r == '*':
			anns = append(anns, Annotation{Kind: AnnOctave, Value: string(r), Offset: 1, Pos: pos(i)})
			i++
		case r == ':':
			anns = append(anns, Annotation{Kind: AnnOctave, Value: ":", Offset: 2, Pos: pos(i)})
			i++
		case r == '_':
			j := i
			for j < len(runes) && runes[j] == '_' {
				j++
			}
			if j-i >= 2 {
				emitRun(i, j, AnnUnderscores)
			} else {
				emitRun(i, j, AnnUnknown)
			}
			i = j
		case r == '#':
			j := i
			for j < len(runes) && runes[j] == '#' {
				j++
			}
			if j-i >= 2 {
				emitRun(i, j, AnnHashes)
			} else {
				emitRun(i, j, AnnUnknown)
			}
			i = j
		case r == '~':
			anns = append(anns, Annotation{Kind: AnnMordent, Value: "~", Pos: pos(i)})
			i++
		case r == '<':
			if j := closeBracket(runes, i, '>'); j > i {
				emitRun(i, j+1, AnnOrnament)
				i = j + 1
			} else {
				emitRun(i, i+1, AnnUnknown)
				i++
			}
		case r == '[':
			if j := closeBracket(runes, i, ']'); j > i {
				emitRun(i, j+1, AnnChord)
				i = j + 1
			} else {
				emitRun(i, i+1, AnnUnknown)
				i++
			}
		default:
			j := i
			for j < len(runes) && !upperSpecial(runes[j]) {
				j++
			}
			emitRun(i, j, AnnUnknown)
			i = j
		}
	}
	return anns
}

func upperSpecial(r rune) bool {
	switch r {
	case ' ', '\t', '.', '•', '*', ':', '_', '#', '~', '<', '[':
		return true
	}
	return false
}

func closeBracket(runes []rune, open int, want rune) int {
	for j := open + 1; j < len(runes); j++ {
		if runes[j] == want {
			return j
		}
	}
	return -1
}

// parseLowerLine tokenises a line below the content line: octave markers
// (sign applied later), beat-group underscores and lyric syllables. A lone
// underscore groups nothing and is kept as Unknown.
func parseLowerLine(line string, lineNum, docOffset int) []Annotation {
	runes := []rune(line)
	var anns []Annotation
	i := 0
	pos := func(at int) Position {
		return Position{Line: lineNum, Column: at + 1, IndexInLine: at, IndexInDoc: docOffset + at}
	}
	emitRun := func(start, end int, kind AnnotationKind) {
		anns = append(anns, Annotation{Kind: kind, Value: string(runes[start:end]), Pos: pos(start)})
	}
	for i < len(runes) {
		switch r := runes[i]; {
		case r == ' ' || r == '\t':
			j := i
			for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t') {
				j++
			}
			emitRun(i, j, AnnSpace)
			i = j
		case r == '.' || r == '•' || r == '*':
			anns = append(anns, Annotation{Kind: AnnOctave, Value: string(r), Offset: 1, Pos: pos(i)})
			i++
		case r == ':':
			anns = append(anns, Annotation{Kind: AnnOctave, Value: ":", Offset: 2, Pos: pos(i)})
			i++
		case r == '_':
			j := i
			for j < len(runes) && runes[j] == '_' {
				j++
			}
			if j-i >= 2 {
				emitRun(i, j, AnnUnderscores)
			} else {
				emitRun(i, j, AnnUnknown)
			}
			i = j
		case unicode.IsLetter(r):
			j := i
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '\'' || runes[j] == '-') {
				j++
			}
			emitRun(i, j, AnnSyllable)
			i = j
		default:
			emitRun(i, i+1, AnnUnknown)
			i++
		}
	}
	return anns
}
