// Package notation compiles plain-text music notation into a structured
// document. Input text is classified line by line, grouped into staves,
// lexed per notation system, annotated from the surrounding lines and
// finally folded into a rhythm item stream that emitters consume.
package notation

import (
	"strings"

	"github.com/james-see/musictext/pkg/notation/systems"
)

// Document is the compiled form of one input text. Emitters treat it as
// read-only; nothing past assembly sees the raw source lines.
type Document struct {
	Title      string            `json:"title,omitempty"`
	Directives map[string]string `json:"directives,omitempty"`
	Tonic      PitchCode         `json:"tonic,omitempty"`
	HasTonic   bool              `json:"has_tonic,omitempty"`
	Staves     []*Stave          `json:"staves"`
	Systems    []string          `json:"systems"`
}

// Emitter renders a compiled document into one output format.
type Emitter interface {
	// Name identifies the output format, e.g. "lilypond".
	Name() string
	// Emit renders the document. The document must not be modified.
	Emit(doc *Document) (string, error)
}

// Compile runs the whole pipeline over the input text. Errors are always
// *CompileError values carrying a kind and, where possible, a source
// position.
func Compile(input string) (*Document, error) {
	if strings.TrimSpace(input) == "" {
		return nil, compileErr(ErrEmptyInput, 0, 0, "")
	}
	lines := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	labels := ClassifyLines(lines)

	offsets := make([]int, len(lines))
	runeOffset := 0
	for i, line := range lines {
		offsets[i] = runeOffset
		runeOffset += len([]rune(line)) + 1
	}

	doc := &Document{Directives: map[string]string{}}
	for i, lb := range labels {
		switch lb.Kind {
		case LineDirective:
			key, value, err := parseDirective(lines[i], i+1)
			if err != nil {
				return nil, err
			}
			doc.Directives[key] = value
		case LineTitle:
			if doc.Title == "" {
				doc.Title = strings.TrimSpace(lines[i])
			}
		}
	}
	if t, ok := doc.Directives["title"]; ok && doc.Title == "" {
		doc.Title = t
	}
	if err := resolveTonic(doc); err != nil {
		return nil, err
	}

	for start := 0; start < len(lines); {
		if strings.TrimSpace(lines[start]) == "" {
			start++
			continue
		}
		end := start
		hasMusic := false
		for end < len(lines) && strings.TrimSpace(lines[end]) != "" {
			switch labels[end].Kind {
			case LineContent, LineUpper, LineLower, LineLyrics:
				hasMusic = true
			}
			end++
		}
		if hasMusic {
			nums := make([]int, end-start)
			for i := range nums {
				nums[i] = start + i + 1
			}
			st, err := assembleStave(lines[start:end], labels[start:end], nums, offsets[start:end])
			if err != nil {
				return nil, err
			}
			attachSpatial(st)
			st.Items = buildItems(st.Tokens)
			if doc.HasTonic {
				st.Items = append([]Item{{Kind: ItemTonic, Tonic: doc.Tonic}}, st.Items...)
			}
			doc.Staves = append(doc.Staves, st)
		}
		start = end
	}

	seen := map[string]bool{}
	for _, st := range doc.Staves {
		if st.System != "" && !seen[st.System] {
			seen[st.System] = true
			doc.Systems = append(doc.Systems, st.System)
		}
	}
	return doc, nil
}

func parseDirective(line string, lineNum int) (string, string, error) {
	trimmed := strings.TrimSpace(line)
	key, value, _ := strings.Cut(trimmed, ":")
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)
	if key == "" || value == "" {
		return "", "", compileErr(ErrInvalidDirective, lineNum, 1, trimmed)
	}
	return key, value, nil
}

// resolveTonic reads the key (or tonic) directive as a western pitch.
func resolveTonic(doc *Document) error {
	value, ok := doc.Directives["key"]
	if !ok {
		value, ok = doc.Directives["tonic"]
	}
	if !ok {
		return nil
	}
	p, matched := (systems.Western{}).Match(value)
	if !matched || p.Glyph != value {
		return compileErr(ErrInvalidDirective, 0, 0, "key: "+value)
	}
	pc, valid := PitchFor(p.Degree, p.Alter)
	if !valid {
		return compileErr(ErrInvalidDirective, 0, 0, "key: "+value)
	}
	doc.Tonic = pc
	doc.HasTonic = true
	return nil
}
