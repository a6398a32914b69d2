// Package model defines the data structures for template scaffolding.
package model

// Path represents a file system path.
type Path string

// Token is a literal placeholder marker recognized by the substituter.
// The set of tokens is closed; markers are plain substrings, not a
// templating language.
type Token string

const (
	// TokenProject is replaced with the new project's name.
	TokenProject Token = "{PROJECT}"
	// TokenAuthor is replaced with the author's name.
	TokenAuthor Token = "{AUTHOR}"
	// TokenYear is replaced with the current four-digit year.
	TokenYear Token = "{YEAR}"
	// TokenToday is replaced with the current date in short form (e.g. 8/26/2026).
	TokenToday Token = "{TODAY}"
	// TokenDate is replaced with the current date in medium form (e.g. Aug 26, 2026).
	TokenDate Token = "{DATE}"
	// TokenOrganization is replaced with the organization name.
	TokenOrganization Token = "{ORGANIZATION}"
	// TokenBundleID is replaced with the bundle/package identifier.
	TokenBundleID Token = "{BUNDLEID}"
)

// AllTokens lists every recognized token in substitution order.
func AllTokens() []Token {
	return []Token{
		TokenProject,
		TokenAuthor,
		TokenYear,
		TokenToday,
		TokenDate,
		TokenOrganization,
		TokenBundleID,
	}
}

// Substitution pairs a token with its replacement value.
type Substitution struct {
	Token Token
	Value string
}

// Substitutions is the resolved, ordered substitution set for one run.
// It is built once by the resolver and treated as immutable afterwards.
type Substitutions []Substitution

// Value returns the replacement for the given token and whether it is present.
func (s Substitutions) Value(token Token) (string, bool) {
	for _, sub := range s {
		if sub.Token == token {
			return sub.Value, true
		}
	}

	return "", false
}
