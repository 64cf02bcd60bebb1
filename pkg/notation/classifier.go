package notation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/james-see/musictext/pkg/notation/systems"
)

// LineKind labels one source line.
type LineKind string

const (
	LineTitle     LineKind = "title"
	LineDirective LineKind = "directive"
	LineText      LineKind = "text"
	LineContent   LineKind = "content"
	LineUpper     LineKind = "upper"
	LineLower     LineKind = "lower"
	LineLyrics    LineKind = "lyrics"
)

// LineLabel is the classifier's verdict for one line. System is set on
// Content lines only.
type LineLabel struct {
	Kind   LineKind `json:"kind"`
	System string   `json:"system,omitempty"`
}

var directiveRe = regexp.MustCompile(`^[A-Za-z0-9_]{1,20}:`)

// ClassifyLines labels every line of the document. The first pass gathers
// document-wide evidence (is there music at all, and in which system); the
// second pass assigns labels using that context plus each line's position
// relative to its paragraph's content line.
func ClassifyLines(lines []string) []LineLabel {
	labels := make([]LineLabel, len(lines))
	musical := make([]bool, len(lines))
	strong := false
	for i, line := range lines {
		m, s := musicalLine(line)
		musical[i] = m
		strong = strong || s
	}
	// A lone token like "1" is only content when the document carries
	// stronger evidence of music somewhere. With no such evidence the
	// whole document is prose.
	if !strong {
		for i := range labels {
			labels[i] = LineLabel{Kind: LineText}
		}
		return labels
	}
	system := detectSystem(lines, musical)

	// The header is everything before the first paragraph that contains a
	// musical line.
	bodyStart := len(lines)
	for i, m := range musical {
		if m {
			bodyStart = i
			for bodyStart > 0 && strings.TrimSpace(lines[bodyStart-1]) != "" {
				bodyStart--
			}
			break
		}
	}

	titleSeen := false
	for i := 0; i < bodyStart; i++ {
		trimmed := strings.TrimSpace(lines[i])
		switch {
		case trimmed == "":
			labels[i] = LineLabel{Kind: LineText}
		case directiveRe.MatchString(trimmed):
			labels[i] = LineLabel{Kind: LineDirective}
		case !titleSeen && titleShaped(lines[i]):
			labels[i] = LineLabel{Kind: LineTitle}
			titleSeen = true
		default:
			labels[i] = LineLabel{Kind: LineText}
		}
	}

	firstParagraph := true
	for start := bodyStart; start < len(lines); {
		if strings.TrimSpace(lines[start]) == "" {
			labels[start] = LineLabel{Kind: LineText}
			start++
			continue
		}
		end := start
		for end < len(lines) && strings.TrimSpace(lines[end]) != "" {
			end++
		}
		classifyParagraph(lines[start:end], musical[start:end], labels[start:end], system, firstParagraph)
		firstParagraph = false
		start = end
	}
	return labels
}

// classifyParagraph labels one blank-line-delimited paragraph. Annotation
// shapes are ambiguous on their own (a row of dots can sit above or below),
// so the content line's position decides upper versus lower.
func classifyParagraph(lines []string, musical []bool, labels []LineLabel, system string, first bool) {
	content := -1
	for i, m := range musical {
		labels[i] = LineLabel{Kind: LineText}
		if m && content < 0 {
			content = i
		}
		if m {
			labels[i] = LineLabel{Kind: LineContent, System: system}
		}
	}
	if content < 0 {
		// No content line, but marker-only lines are still annotation
		// shapes; the stave assembler turns an orphan annotation
		// paragraph into an error.
		for i, line := range lines {
			switch {
			case lowerShaped(line):
				labels[i] = LineLabel{Kind: LineLower}
			case markerOnly(line):
				labels[i] = LineLabel{Kind: LineUpper}
			}
		}
		return
	}
	for i := range lines {
		if musical[i] {
			continue
		}
		trimmed := strings.TrimSpace(lines[i])
		switch {
		case i < content:
			switch {
			case first && directiveRe.MatchString(trimmed):
				labels[i] = LineLabel{Kind: LineDirective}
			case titleShaped(lines[i]):
				labels[i] = LineLabel{Kind: LineTitle}
			case upperShaped(lines[i]):
				labels[i] = LineLabel{Kind: LineUpper}
			case lyricsShaped(lines[i]):
				labels[i] = LineLabel{Kind: LineLyrics}
			}
		default:
			switch {
			case lowerShaped(lines[i]):
				labels[i] = LineLabel{Kind: LineLower}
			case lyricsShaped(lines[i]):
				labels[i] = LineLabel{Kind: LineLyrics}
			case upperShaped(lines[i]):
				labels[i] = LineLabel{Kind: LineLower}
			}
		}
	}
}

// musicalLine reports whether a line is musical content, and whether it is
// strong evidence on its own. A barline anywhere is decisive; otherwise at
// least 70% of the whitespace-separated tokens must look like music.
func musicalLine(line string) (isMusical, isStrong bool) {
	if strings.TrimSpace(line) == "" {
		return false, false
	}
	if strings.ContainsRune(line, '|') {
		return true, true
	}
	tokens := strings.Fields(line)
	hits, compound := 0, false
	for _, tok := range tokens {
		if musicalToken(tok) {
			hits++
			if len([]rune(tok)) >= 2 {
				compound = true
			}
		}
	}
	if hits == 0 || float64(hits) < 0.7*float64(len(tokens)) {
		return false, false
	}
	// Two separate tokens, or one compound like "1-2", is enough evidence
	// on its own; a bare "1" is not.
	return true, hits >= 2 || compound
}

// musicalToken accepts pitch glyphs of any system, dash runs, breath marks
// and bracketed barline fragments. Bare dots and colons do NOT count: those
// are octave-marker shapes and counting them would swallow annotation lines.
func musicalToken(tok string) bool {
	if tok != "" && strings.Trim(tok, "-") == "" {
		return true
	}
	if tok == "'" {
		return true
	}
	if strings.ContainsAny(tok, "[]") && strings.Trim(tok, "[]:") == "" {
		return true
	}
	if bolRun(tok) {
		return true
	}
	// Short tokens that lex completely in a single system count; the cap
	// keeps ordinary words like "dead" from reading as D-E-A-D.
	if len([]rune(tok)) > 3 {
		return false
	}
	for _, name := range systems.Names() {
		sys, _ := systems.For(name)
		if lexesFully(tok, sys) {
			return true
		}
	}
	return false
}

// lexesFully reports whether tok is nothing but pitches, dashes and breath
// marks in the given system.
func lexesFully(tok string, sys systems.System) bool {
	for tok != "" {
		if tok[0] == '-' || tok[0] == '\'' {
			tok = tok[1:]
			continue
		}
		p, ok := sys.Match(tok)
		if !ok {
			return false
		}
		tok = tok[len(p.Glyph):]
	}
	return true
}

// bolRun reports whether tok is entirely a run of tabla bols, ignoring case
// and dashes.
func bolRun(tok string) bool {
	s := strings.ToLower(strings.ReplaceAll(tok, "-", ""))
	if s == "" {
		return false
	}
	tabla := systems.Tabla{}
	for s != "" {
		p, ok := tabla.Match(s)
		if !ok {
			return false
		}
		s = s[len(p.Glyph):]
	}
	return true
}

// detectSystem resolves the document's notation system from its musical
// lines. Devanagari is unambiguous; tabla needs multi-rune bol evidence and
// is checked before the single-letter systems so "dhin" does not read as
// sargam ni.
func detectSystem(lines []string, musical []bool) string {
	var sb strings.Builder
	for i, line := range lines {
		if musical[i] {
			sb.WriteString(line)
			sb.WriteString(" ")
		}
	}
	text := sb.String()
	if text == "" {
		return ""
	}
	if strings.IndexFunc(text, func(r rune) bool { return unicode.In(r, unicode.Devanagari) }) >= 0 {
		return "bhatkhande"
	}
	hasBol := false
	for _, tok := range strings.Fields(text) {
		if core := strings.Trim(tok, "-|:.[]'"); core != "" && bolRun(core) && len(core) >= 2 {
			hasBol = true
			break
		}
	}
	if hasBol {
		return "tabla"
	}
	if strings.ContainsAny(text, "SsRrMmPpNn") {
		return "sargam"
	}
	if strings.ContainsAny(text, "1234567") {
		return "number"
	}
	return "western"
}

// markerOnly: nothing but annotation marker glyphs, so not prose.
func markerOnly(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		switch r {
		case '.', ':', '*', '•', '~', '_', '#', ' ', '\t':
		default:
			return false
		}
	}
	return true
}

func upperShaped(line string) bool {
	return strings.ContainsAny(line, ".*:~•") || strings.Contains(line, "__") ||
		strings.ContainsRune(line, '<') || strings.ContainsRune(line, '#')
}

func lowerShaped(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	marker := false
	for _, tok := range strings.Fields(trimmed) {
		if strings.Trim(tok, ".:_*•") != "" {
			return false
		}
		marker = true
	}
	return marker
}

var lyricTokenRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9'.,!?-]*$`)

func lyricsShaped(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false
	}
	for _, tok := range tokens {
		if !lyricTokenRe.MatchString(tok) {
			return false
		}
	}
	return true
}

// titleShaped: a lone capitalised word, or visibly centred text.
func titleShaped(line string) bool {
	trimmed := strings.TrimSpace(line)
	tokens := strings.Fields(trimmed)
	if len(tokens) == 1 {
		runes := []rune(tokens[0])
		if len(runes) >= 2 && unicode.IsUpper(runes[0]) {
			rest := true
			for _, r := range runes[1:] {
				if !unicode.IsLetter(r) {
					rest = false
					break
				}
			}
			if rest {
				return true
			}
		}
	}
	return strings.HasPrefix(line, "   ") && lyricsShaped(trimmed)
}
