package skills

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// tokenDelimiters splits resume text on comma, newline, semicolon, space and period.
var tokenDelimiters = regexp.MustCompile(`[,\n; .]`)

// Vocabulary is the closed set of canonical skill names.
type Vocabulary map[string]struct{}

// NewVocabulary unions the given skill lists.
func NewVocabulary(groups ...[]string) Vocabulary {
	v := make(Vocabulary)
	for _, g := range groups {
		for _, s := range g {
			if s == "" {
				continue
			}
			v[s] = struct{}{}
		}
	}
	return v
}

// Contains reports exact membership.
func (v Vocabulary) Contains(skill string) bool {
	_, ok := v[skill]
	return ok
}

// Extractor finds vocabulary skills in free text by exact token match.
//
// Multi-word skills such as "Machine Learning" never match because space is a
// delimiter. Mixed-case skills such as "JavaScript" never match because tokens
// are title-cased before lookup.
type Extractor struct {
	vocab Vocabulary
}

// NewExtractor constructs an Extractor over vocab.
func NewExtractor(vocab Vocabulary) *Extractor {
	return &Extractor{vocab: vocab}
}

// Extract returns the distinct vocabulary skills found in text, sorted.
func (e *Extractor) Extract(text string) []string {
	if e == nil || text == "" {
		return []string{}
	}
	seen := make(map[string]struct{})
	for _, raw := range tokenDelimiters.Split(text, -1) {
		token := TitleCase(strings.TrimSpace(raw))
		if token == "" || !e.vocab.Contains(token) {
			continue
		}
		seen[token] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// TitleCase upper-cases the first cased rune of every word and lower-cases the rest.
// A word starts after any rune that is not a cased letter, so "node-js" becomes "Node-Js"
// and "3d" becomes "3D".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevCased := false
	for _, r := range s {
		if isCased(r) {
			if prevCased {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			prevCased = true
			continue
		}
		b.WriteRune(r)
		prevCased = false
	}
	return b.String()
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}
