// Package views holds the list-and-filter state behind every directory page.
package views

import (
	"strings"

	"golang.org/x/text/cases"
)

// Predicate reports whether record matches a non-empty query
type Predicate[T any] func(record T, query string) bool

// Filter is a named free-text predicate over one field of T
type Filter[T any] struct {
	Name  string
	Label string
	Match Predicate[T]
}

// Apply returns the records of all that match query, in their original order.
// An empty query matches everything.
func Apply[T any](all []T, query string, match Predicate[T]) []T {
	if query == "" || match == nil {
		return all
	}
	visible := make([]T, 0, len(all))
	for _, record := range all {
		if match(record, query) {
			visible = append(visible, record)
		}
	}
	return visible
}

// ContainsFold is case-insensitive substring containment under Unicode case folding.
func ContainsFold(value, query string) bool {
	if query == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(value), fold.String(query))
}

// AnyContainsFold matches when any element of values contains query.
func AnyContainsFold(values []string, query string) bool {
	if query == "" {
		return true
	}
	fold := cases.Fold()
	q := fold.String(query)
	for _, v := range values {
		if strings.Contains(fold.String(v), q) {
			return true
		}
	}
	return false
}

// Field builds a Predicate over a scalar field.
func Field[T any](get func(T) string) Predicate[T] {
	return func(record T, query string) bool {
		return ContainsFold(get(record), query)
	}
}

// AnyOf builds a Predicate over an array field.
func AnyOf[T any](get func(T) []string) Predicate[T] {
	return func(record T, query string) bool {
		return AnyContainsFold(get(record), query)
	}
}
