// Package moderation masks forbidden words in chat messages before relay.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Censor holds an Aho-Corasick automaton built from the configured word list.
// Matching is case-insensitive and ignores punctuation and spacing inside the
// message, so "b.a d" still matches "bad"; the original characters of a match
// are replaced in place.
type Censor struct {
	machine     *goahocorasick.Machine
	replacement rune
}

// NewCensor builds the automaton. An empty word list yields a pass-through censor.
func NewCensor(words []string, replacement rune) (*Censor, error) {
	if len(words) == 0 {
		return &Censor{replacement: replacement}, nil
	}

	patterns := make([][]rune, 0, len(words))
	for _, w := range words {
		if p := foldRunes([]rune(w)); len(p) > 0 {
			patterns = append(patterns, p)
		}
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	return &Censor{machine: machine, replacement: replacement}, nil
}

// Apply returns the message with every forbidden span masked.
func (c *Censor) Apply(text string) string {
	if c.machine == nil {
		return text
	}

	original := []rune(text)
	folded := make([]rune, 0, len(original))
	position := make([]int, 0, len(original))
	for i, r := range original {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		folded = append(folded, unicode.ToLower(r))
		position = append(position, i)
	}
	if len(folded) == 0 {
		return text
	}

	matches := c.machine.MultiPatternSearch(folded, false)
	if len(matches) == 0 {
		return text
	}

	for _, match := range matches {
		start := match.Pos
		end := start + len(match.Word)
		if start < 0 || end > len(position) {
			continue
		}
		for i := position[start]; i <= position[end-1]; i++ {
			original[i] = c.replacement
		}
	}
	return string(original)
}

func foldRunes(in []rune) []rune {
	out := make([]rune, 0, len(in))
	for _, r := range in {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}
