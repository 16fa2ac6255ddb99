// Package resources describes each backend collection the dashboard manages:
// its endpoints, filters, create form and card layout.
package resources

import (
	"github.com/f2fin/directory-dashboard/internal/forms"
	"github.com/f2fin/directory-dashboard/internal/repositories"
	"github.com/f2fin/directory-dashboard/internal/views"
)

const (
	KeyBankers         = "bankers"
	KeyBankerDirectory = "banker-directory"
	KeyLenders         = "lenders"
)

// Detail is one labelled line of a card
type Detail struct {
	Label string
	Value string
}

// Section is a labelled group of tags or history rows on a card
type Section struct {
	Label string
	Items []string
}

// Card is the rendering-neutral summary of one record
type Card struct {
	Title    string
	Subtitle string
	Details  []Detail
	Sections []Section
}

// Descriptor binds one entity type to its collection
type Descriptor[T any] struct {
	Key       string
	Title     string
	Paths     repositories.Paths
	Filters   []views.Filter[T]
	Exclusive bool
	Schema    forms.Schema
	Build     forms.Builder[T]
	Normalize func(T) T
	Validate  func(T) error
	ID        func(T) string
	Card      func(T) Card
}

// Filter returns the named filter of the descriptor.
func (d Descriptor[T]) Filter(name string) (views.Filter[T], bool) {
	for _, f := range d.Filters {
		if f.Name == name {
			return f, true
		}
	}
	return views.Filter[T]{}, false
}

// NewView creates a list view over repo configured with the descriptor's filters.
func (d Descriptor[T]) NewView(repo repositories.Repository[T], opts ...views.Option[T]) *views.ListView[T] {
	base := []views.Option[T]{views.WithFilters(d.Filters...), views.WithID(d.ID)}
	if d.Exclusive {
		base = append(base, views.Exclusive[T]())
	}
	return views.NewListView(d.Key, repo, append(base, opts...)...)
}

// NewForm creates a create-entry form posting through repo.
func (d Descriptor[T]) NewForm(repo repositories.Repository[T], opts ...forms.Option[T]) *forms.Form[T] {
	base := []forms.Option[T]{forms.WithNormalize(d.Normalize), forms.WithValidate(d.Validate)}
	return forms.New(d.Schema, d.Build, repo, append(base, opts...)...)
}

func nonEmpty(details ...Detail) []Detail {
	out := make([]Detail, 0, len(details))
	for _, d := range details {
		if d.Value != "" {
			out = append(out, d)
		}
	}
	return out
}
