package notation

import "strings"

// Stave is one assembled system: a content line plus every annotation line
// bound to it. Tokens carry the spatial assignments; Items is the rhythm
// stream derived from them.
type Stave struct {
	System    string `json:"system"`
	StartLine int    `json:"start_line"`

	TextBefore []string         `json:"text_before,omitempty"`
	TextAfter  []string         `json:"text_after,omitempty"`
	Upper      [][]Annotation   `json:"upper,omitempty"`
	Lower      [][]Annotation   `json:"lower,omitempty"`
	LyricLines [][]string       `json:"lyric_lines,omitempty"`

	Tokens []Token `json:"tokens"`
	Items  []Item  `json:"items"`

	// ExtraLyrics holds syllables left over when a stave has more lyrics
	// than slur-eligible notes.
	ExtraLyrics []string `json:"extra_lyrics,omitempty"`

	BeginMultiStave bool `json:"begin_multi_stave,omitempty"`
	EndMultiStave   bool `json:"end_multi_stave,omitempty"`
}

// assembleStave builds a stave from one paragraph. lineNums and docOffsets
// are parallel to lines and give each line's 1-based number and rune offset
// in the document.
func assembleStave(lines []string, labels []LineLabel, lineNums, docOffsets []int) (*Stave, error) {
	content := -1
	for i, lb := range labels {
		if lb.Kind != LineContent {
			continue
		}
		if content >= 0 {
			return nil, compileErr(ErrMultipleContentLines, lineNums[i], 1, "")
		}
		content = i
	}
	if content < 0 {
		return nil, compileErr(ErrNoContentInStave, lineNums[0], 1, "")
	}

	st := &Stave{System: labels[content].System, StartLine: lineNums[0]}

	for i := 0; i < content; i++ {
		if hashBoundary(lines[i]) {
			st.BeginMultiStave = true
			continue
		}
		switch labels[i].Kind {
		case LineUpper:
			st.Upper = append(st.Upper, parseUpperLine(lines[i], lineNums[i], docOffsets[i]))
		case LineLyrics:
			return nil, compileErr(ErrLyricsBeforeContent, lineNums[i], 1, strings.TrimSpace(lines[i]))
		default:
			st.TextBefore = append(st.TextBefore, lines[i])
		}
	}

	tokens, err := lexContent(lines[content], lineNums[content], docOffsets[content], st.System)
	if err != nil {
		return nil, err
	}
	st.Tokens = tokens

	for i := content + 1; i < len(lines); i++ {
		if hashBoundary(lines[i]) {
			st.EndMultiStave = true
			continue
		}
		switch labels[i].Kind {
		case LineLower:
			st.Lower = append(st.Lower, parseLowerLine(lines[i], lineNums[i], docOffsets[i]))
		case LineLyrics:
			st.LyricLines = append(st.LyricLines, splitSyllables(lines[i]))
		default:
			st.TextAfter = append(st.TextAfter, lines[i])
		}
	}
	return st, nil
}

// hashBoundary reports a line of nothing but hashes, the marker that opens
// or closes a multi-stave group.
func hashBoundary(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.Contains(trimmed, "##") && strings.Trim(trimmed, "# ") == ""
}

// splitSyllables breaks a lyrics line into syllables: whitespace separates
// words, and a hyphen splits a word while staying with its left part, so
// "lit-tle" yields "lit-" and "tle".
func splitSyllables(line string) []string {
	var out []string
	for _, word := range strings.Fields(line) {
		for {
			cut := strings.IndexRune(word, '-')
			if cut < 0 || cut == len(word)-1 {
				out = append(out, word)
				break
			}
			out = append(out, word[:cut+1])
			word = word[cut+1:]
		}
	}
	return out
}
