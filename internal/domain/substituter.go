package domain

import (
	"strings"

	m "plate.dev/pkg/plate/internal/model"
)

// Substituter performs literal token replacement for one substitution set.
// Replacement happens in a single scan pass, so a value that itself contains
// a token marker is never re-expanded. Unrecognized placeholders are left
// untouched.
type Substituter struct {
	replacer *strings.Replacer
}

// NewSubstituter prepares a Substituter for the given set. The set is
// expected to be fully resolved; building the replacer once amortizes the
// cost over every file name and content rewrite of a walk.
func NewSubstituter(set m.Substitutions) *Substituter {
	pairs := make([]string, 0, len(set)*2)
	for _, sub := range set {
		pairs = append(pairs, string(sub.Token), sub.Value)
	}

	return &Substituter{replacer: strings.NewReplacer(pairs...)}
}

// Substitute returns text with every token marker replaced by its value.
func (s *Substituter) Substitute(text string) string {
	return s.replacer.Replace(text)
}

// Substitute is a convenience wrapper for one-off replacements.
func Substitute(text string, set m.Substitutions) string {
	return NewSubstituter(set).Substitute(text)
}
