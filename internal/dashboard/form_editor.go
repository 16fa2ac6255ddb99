package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/f2fin/directory-dashboard/internal/forms"
)

// slot is one editable cell: a scalar field or one column of one list row
type slot struct {
	list     string
	row      string
	column   string
	key      string
	label    string
	required bool
}

// formEditor moves a single text input across the cells of a draft
type formEditor struct {
	schema forms.Schema
	draft  *forms.Draft
	slots  []slot
	focus  int
	input  textinput.Model
}

func newFormEditor(draft *forms.Draft) *formEditor {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 256
	e := &formEditor{schema: draft.Schema(), draft: draft, input: in}
	e.rebuild()
	return e
}

// rebuild re-derives the cells after rows were added, removed or reset.
func (e *formEditor) rebuild() {
	e.slots = e.slots[:0]
	for _, f := range e.schema.Fields {
		e.slots = append(e.slots, slot{key: f.Key, label: f.Label, required: f.Required})
	}
	for _, l := range e.schema.Lists {
		list := e.draft.List(l.Key)
		if list == nil {
			continue
		}
		for i, r := range list.Rows() {
			if len(l.Columns) == 0 {
				e.slots = append(e.slots, slot{
					list: l.Key, row: r.ID, column: forms.ValueColumn,
					label: fmt.Sprintf("%s %d", l.Label, i+1),
				})
				continue
			}
			for _, c := range l.Columns {
				e.slots = append(e.slots, slot{
					list: l.Key, row: r.ID, column: c.Key,
					label: fmt.Sprintf("%s %d · %s", l.Label, i+1, c.Label),
				})
			}
		}
	}
	if e.focus >= len(e.slots) {
		e.focus = len(e.slots) - 1
	}
	if e.focus < 0 {
		e.focus = 0
	}
	e.load()
}

func (e *formEditor) load() {
	if len(e.slots) == 0 {
		e.input.SetValue("")
		return
	}
	e.input.SetValue(e.value(e.slots[e.focus]))
	e.input.CursorEnd()
	e.input.Focus()
}

func (e *formEditor) current() (slot, bool) {
	if len(e.slots) == 0 {
		return slot{}, false
	}
	return e.slots[e.focus], true
}

func (e *formEditor) value(s slot) string {
	if s.list == "" {
		return e.draft.Get(s.key)
	}
	for _, r := range e.draft.List(s.list).Rows() {
		if r.ID == s.row {
			return r.Value(s.column)
		}
	}
	return ""
}

func (e *formEditor) set(s slot, v string) error {
	if s.list == "" {
		return e.draft.Set(s.key, v)
	}
	return e.draft.List(s.list).Set(s.row, s.column, v)
}

func (e *formEditor) move(delta int) {
	if len(e.slots) == 0 {
		return
	}
	e.focus = (e.focus + delta + len(e.slots)) % len(e.slots)
	e.load()
}

// addRow appends a row to the focused list, or to the first list when a
// scalar field has focus, and moves focus to it.
func (e *formEditor) addRow() {
	key := ""
	if s, ok := e.current(); ok && s.list != "" {
		key = s.list
	} else if len(e.schema.Lists) > 0 {
		key = e.schema.Lists[0].Key
	}
	list := e.draft.List(key)
	if list == nil {
		return
	}
	id := list.Add()
	e.rebuild()
	for i, s := range e.slots {
		if s.row == id {
			e.focus = i
			break
		}
	}
	e.load()
}

func (e *formEditor) removeRow() {
	s, ok := e.current()
	if !ok || s.list == "" {
		return
	}
	if err := e.draft.List(s.list).Remove(s.row); err != nil {
		return
	}
	e.rebuild()
}

func (e *formEditor) canRemove(s slot) bool {
	return s.list != "" && e.draft.List(s.list).CanRemove()
}

func (e *formEditor) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		e.move(1)
		return nil
	case "shift+tab", "up":
		e.move(-1)
		return nil
	case "ctrl+a":
		e.addRow()
		return nil
	case "ctrl+d":
		e.removeRow()
		return nil
	}

	s, ok := e.current()
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	if err := e.set(s, e.input.Value()); err != nil {
		e.resync(s, e.input.Value())
	}
	return cmd
}

// resync rebuilds the cells after the draft changed underneath the editor and
// writes v into the focused cell when it still edits the same field as s.
func (e *formEditor) resync(s slot, v string) {
	e.rebuild()
	cur, ok := e.current()
	if !ok || cur.list != s.list || cur.key != s.key || cur.column != s.column {
		return
	}
	if err := e.set(cur, v); err != nil {
		return
	}
	e.input.SetValue(v)
	e.input.CursorEnd()
}

func (e *formEditor) View(errMsg string, st Styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render(e.schema.Title))
	b.WriteString("\n\n")

	for i, s := range e.slots {
		marker := "  "
		if i == e.focus {
			marker = "› "
		}
		label := s.label
		if s.required {
			label += st.Required.Render(" *")
		}
		value := e.value(s)
		if i == e.focus {
			value = e.input.View()
		}
		line := marker + st.Label.Render(label+": ") + value
		if i == e.focus && e.canRemove(s) {
			line += st.Help.Render("  ctrl+d remove")
		}
		b.WriteString(line + "\n")
	}

	if errMsg != "" {
		b.WriteString("\n" + st.Error.Render(errMsg) + "\n")
	}
	help := "tab/↓ next · shift+tab/↑ prev · ctrl+s submit · esc close"
	if len(e.schema.Lists) > 0 {
		help = "tab/↓ next · ctrl+a add row · ctrl+s submit · esc close"
	}
	b.WriteString("\n" + st.Help.Render(help))
	return b.String()
}
