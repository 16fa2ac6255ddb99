// Package forms implements create-entry drafts: scalar inputs plus repeatable
// rows that keep a stable id for their whole life, so removing a row from the
// middle never shifts the identity of the rows after it.
package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ValueColumn is the column of a single-value row
const ValueColumn = "value"

var (
	ErrUnknownField = errors.New("unknown field")
	ErrRowNotFound  = errors.New("row not found")
	ErrMinRows      = errors.New("row cannot be removed")
)

type Field struct {
	Key      string
	Label    string
	Required bool
}

// ListField is a repeatable field. Without Columns each row holds one string.
// Rows cannot be removed once only MinRows remain.
type ListField struct {
	Key     string
	Label   string
	Columns []Field
	MinRows int
}

func (l ListField) columns() []string {
	if len(l.Columns) == 0 {
		return []string{ValueColumn}
	}
	keys := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		keys[i] = c.Key
	}
	return keys
}

type Schema struct {
	Title         string
	Fields        []Field
	Lists         []ListField
	SuccessNotice string
}

type Row struct {
	ID     string
	Values map[string]string
}

func (r Row) Value(column string) string {
	return r.Values[column]
}

// RowList is an ordered list of rows with stable ids
type RowList struct {
	field ListField
	rows  []Row
}

func newRowList(field ListField) *RowList {
	l := &RowList{field: field}
	l.reset()
	return l
}

func (l *RowList) Field() ListField {
	return l.field
}

func (l *RowList) Len() int {
	return len(l.rows)
}

// Rows returns a copy of the rows in entry order.
func (l *RowList) Rows() []Row {
	out := make([]Row, len(l.rows))
	for i, r := range l.rows {
		values := make(map[string]string, len(r.Values))
		for k, v := range r.Values {
			values[k] = v
		}
		out[i] = Row{ID: r.ID, Values: values}
	}
	return out
}

// Add appends an empty row and returns its id.
func (l *RowList) Add() string {
	row := Row{ID: uuid.NewString(), Values: make(map[string]string)}
	for _, c := range l.field.columns() {
		row.Values[c] = ""
	}
	l.rows = append(l.rows, row)
	return row.ID
}

func (l *RowList) Remove(id string) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrRowNotFound, id)
	}
	if len(l.rows) <= l.field.MinRows {
		return fmt.Errorf("%w: %s keeps at least %d", ErrMinRows, l.field.Label, l.field.MinRows)
	}
	l.rows = append(l.rows[:i], l.rows[i+1:]...)
	return nil
}

// CanRemove reports whether a row may be removed right now.
func (l *RowList) CanRemove() bool {
	return len(l.rows) > l.field.MinRows
}

func (l *RowList) Set(id, column, value string) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrRowNotFound, id)
	}
	if _, ok := l.rows[i].Values[column]; !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, l.field.Key, column)
	}
	l.rows[i].Values[column] = value
	return nil
}

// Strings returns the value column of every row.
func (l *RowList) Strings() []string {
	out := make([]string, len(l.rows))
	for i, r := range l.rows {
		out[i] = r.Values[ValueColumn]
	}
	return out
}

func (l *RowList) index(id string) int {
	for i, r := range l.rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (l *RowList) reset() {
	l.rows = nil
	l.Add()
}

func (l *RowList) blank() bool {
	for _, r := range l.rows {
		for _, v := range r.Values {
			if strings.TrimSpace(v) != "" {
				return false
			}
		}
	}
	return true
}

// Draft is the unsaved record a form edits. It is not safe for concurrent use.
type Draft struct {
	schema Schema
	values map[string]string
	lists  map[string]*RowList
}

// NewDraft creates a draft in the schema's initial shape: every scalar empty
// and every list holding one empty row.
func NewDraft(schema Schema) *Draft {
	d := &Draft{schema: schema}
	d.Reset()
	return d
}

func (d *Draft) Schema() Schema {
	return d.schema
}

func (d *Draft) Set(key, value string) error {
	if _, ok := d.values[key]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	d.values[key] = value
	return nil
}

func (d *Draft) Get(key string) string {
	return d.values[key]
}

// List returns the repeatable field key, or nil if the schema has none.
func (d *Draft) List(key string) *RowList {
	return d.lists[key]
}

func (d *Draft) Reset() {
	d.values = make(map[string]string, len(d.schema.Fields))
	for _, f := range d.schema.Fields {
		d.values[f.Key] = ""
	}
	d.lists = make(map[string]*RowList, len(d.schema.Lists))
	for _, l := range d.schema.Lists {
		d.lists[l.Key] = newRowList(l)
	}
}

// IsPristine reports whether the draft is in its initial shape.
func (d *Draft) IsPristine() bool {
	for _, v := range d.values {
		if v != "" {
			return false
		}
	}
	for _, l := range d.lists {
		if l.Len() != 1 || !l.blank() {
			return false
		}
	}
	return true
}
