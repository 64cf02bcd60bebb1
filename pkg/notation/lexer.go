package notation

import (
	"strings"

	"github.com/james-see/musictext/pkg/notation/systems"
)

// lexContent tokenises one content line in a single left-to-right pass.
// Barlines use longest-match, dashes stay individual so the rhythm pass can
// count subdivisions, and runs of spaces collapse into one Space token.
// Characters that could start a pitch but fail to parse in the resolved
// system are an UnknownPitch error; anything else unrecognised becomes an
// Unknown token.
func lexContent(line string, lineNum, docOffset int, systemName string) ([]Token, error) {
	sys, ok := systems.For(systemName)
	if !ok {
		sys, _ = systems.For("number")
	}
	runes := []rune(line)
	var tokens []Token
	i := 0
	pos := func(at int) Position {
		return Position{Line: lineNum, Column: at + 1, IndexInLine: at, IndexInDoc: docOffset + at}
	}
	for i < len(runes) {
		r := runes[i]
		rest := string(runes[i:])

		if r == ' ' || r == '\t' {
			j := i
			for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t') {
				j++
			}
			tokens = append(tokens, Token{Kind: TokenSpace, Value: string(runes[i:j]), Pos: pos(i)})
			i = j
			continue
		}

		if style, ok := matchBarline(rest); ok {
			tokens = append(tokens, Token{Kind: TokenBarline, Value: string(style), Barline: style, Pos: pos(i)})
			i += len([]rune(string(style)))
			continue
		}

		if r == '-' {
			tokens = append(tokens, Token{Kind: TokenDash, Value: "-", Pos: pos(i)})
			i++
			continue
		}

		if r == '\'' {
			tokens = append(tokens, Token{Kind: TokenBreath, Value: "'", Pos: pos(i)})
			i++
			continue
		}

		if p, ok := sys.Match(rest); ok {
			pitch, valid := PitchFor(p.Degree, p.Alter)
			if !valid {
				return nil, compileErr(ErrUnknownPitch, lineNum, i+1, p.Glyph)
			}
			tokens = append(tokens, Token{Kind: TokenNote, Value: p.Glyph, Pitch: pitch, Pos: pos(i)})
			i += len([]rune(p.Glyph))
			continue
		}
		if sys.Starts(r) {
			return nil, compileErr(ErrUnknownPitch, lineNum, i+1, string(r))
		}

		tokens = append(tokens, Token{Kind: TokenUnknown, Value: string(r), Pos: pos(i)})
		i++
	}
	return tokens, nil
}

// matchBarline finds the longest barline style at the start of s.
func matchBarline(s string) (BarlineStyle, bool) {
	for _, style := range barlineStyles {
		if strings.HasPrefix(s, string(style)) {
			return style, true
		}
	}
	return "", false
}
