package domain

import (
	"strings"

	"timereport/internal/errors"
)

// SelectOne resolves a free-text query to exactly one entity. The query is
// split on commas into terms; an entity qualifies only if every term
// matches it. Zero matches and multiple matches are both errors: an
// ambiguous query would silently change which data set the report scopes
// to, so the caller has to narrow it instead.
func SelectOne[T Matcher](items []T, query string, kind string) (T, error) {
	var zero T

	terms := splitTerms(query)
	if len(terms) == 0 {
		return zero, errors.NewInvalidInputError(kind, query, "search query cannot be empty")
	}

	var matches []T
	for _, item := range items {
		if matchesAll(item, terms) {
			matches = append(matches, item)
		}
	}

	switch len(matches) {
	case 0:
		return zero, errors.NewLookupError(kind, query)
	case 1:
		return matches[0], nil
	default:
		return zero, errors.NewAmbiguousMatchError(kind, query, len(matches))
	}
}

// matchesAll reports whether the entity matches every search term
func matchesAll(m Matcher, terms []string) bool {
	for _, term := range terms {
		if !m.Match(term) {
			return false
		}
	}
	return true
}

// splitTerms splits a comma-separated query into trimmed, non-empty terms
func splitTerms(query string) []string {
	var terms []string
	for _, term := range strings.Split(query, ",") {
		term = strings.TrimSpace(term)
		if term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}
