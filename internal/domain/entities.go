package domain

import (
	"strings"
)

// Matcher is implemented by entities that can be selected by a free-text
// search term.
type Matcher interface {
	Match(term string) bool
}

// User is a tracker account that tasks are logged against
type User struct {
	Login string
	Name  string
}

// Match reports whether the term is a case-insensitive substring of the
// user's login or full name
func (u User) Match(term string) bool {
	return containsFold(u.Login, term) || containsFold(u.Name, term)
}

// Project is a billable project tasks can be scoped to
type Project struct {
	ID   int64
	Name string
}

// Match reports whether the term is a case-insensitive substring of the
// project name
func (p Project) Match(term string) bool {
	return containsFold(p.Name, term)
}

// Customer is the client a project is billed to
type Customer struct {
	ID   int64
	Name string
}

// Match reports whether the term is a case-insensitive substring of the
// customer name
func (c Customer) Match(term string) bool {
	return containsFold(c.Name, term)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
