package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/f2fin/directory-dashboard/internal/forms"
	"github.com/f2fin/directory-dashboard/internal/repositories"
	"github.com/f2fin/directory-dashboard/internal/resources"
	"github.com/f2fin/directory-dashboard/internal/views"
)

// loadedMsg reports a finished fetch of one collection
type loadedMsg struct {
	key string
	err error
}

// submittedMsg reports a finished create submission
type submittedMsg struct {
	key string
	err error
}

// Page is one tab of the dashboard. Pages are mutated in place.
type Page interface {
	Key() string
	Title() string
	Load() tea.Cmd
	Refresh() tea.Cmd
	OpenForm() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int, st Styles) string
	// Capturing reports whether the page wants every key, e.g. while typing.
	Capturing() bool
	Status() (text string, isErr bool)
	// Mount and Unmount bracket the time the page is the selected tab.
	Mount()
	Unmount()
}

type listPage[T any] struct {
	desc   resources.Descriptor[T]
	view   *views.ListView[T]
	form   *forms.Form[T]
	ctx    context.Context
	logger *zap.Logger

	filter    textinput.Model
	filterIdx int
	filtering bool

	cursor int
	detail string

	editor     *formEditor
	submitting bool
	loading    bool

	status    string
	statusErr bool
}

// NewPage builds the tab for desc. Its list view is mounted on ctx by Mount,
// when the tab is selected.
func NewPage[T any](ctx context.Context, desc resources.Descriptor[T], repo repositories.Repository[T], logger *zap.Logger) Page {
	if logger == nil {
		logger = zap.NewNop()
	}
	view := desc.NewView(repo, views.WithLogger[T](logger))

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 80

	p := &listPage[T]{
		desc:   desc,
		view:   view,
		form:   desc.NewForm(repo),
		ctx:    ctx,
		logger: logger,
		filter: input,
	}
	p.syncPlaceholder()
	return p
}

func (p *listPage[T]) Key() string   { return p.desc.Key }
func (p *listPage[T]) Title() string { return p.desc.Title }

func (p *listPage[T]) Load() tea.Cmd {
	p.loading = true
	view, key := p.view, p.desc.Key
	return func() tea.Msg {
		return loadedMsg{key: key, err: view.Load()}
	}
}

func (p *listPage[T]) Refresh() tea.Cmd {
	p.loading = true
	view, key := p.view, p.desc.Key
	return func() tea.Msg {
		return loadedMsg{key: key, err: view.Refresh()}
	}
}

func (p *listPage[T]) OpenForm() tea.Cmd {
	p.detail = ""
	p.editor = newFormEditor(p.form.Draft())
	return textinput.Blink
}

func (p *listPage[T]) Capturing() bool {
	return p.filtering || p.editor != nil
}

func (p *listPage[T]) Status() (string, bool) {
	return p.status, p.statusErr
}

func (p *listPage[T]) Mount() {
	p.view.Mount(p.ctx)
}

// Unmount cancels the page's fetches and drops everything the tab showed:
// the collection, the queries, the open record and an unsent draft.
func (p *listPage[T]) Unmount() {
	p.view.Unmount()
	p.view.ClearAll()

	p.filter.Blur()
	p.filter.SetValue("")
	p.filtering = false
	p.filterIdx = 0
	p.syncPlaceholder()

	p.cursor = 0
	p.detail = ""
	p.loading = false
	p.editor = nil
	if !p.submitting {
		p.form.Reset()
	}
}

func (p *listPage[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.key != p.desc.Key {
			return nil
		}
		if errors.Is(msg.err, context.Canceled) || errors.Is(msg.err, views.ErrNotMounted) {
			return nil
		}
		p.loading = false
		switch {
		case msg.err == nil:
			if p.statusErr {
				p.status, p.statusErr = "", false
			}
		default:
			p.status = fmt.Sprintf("Could not load %s: %s", strings.ToLower(p.desc.Title), repositories.ErrorMessage(msg.err))
			p.statusErr = true
		}
		p.clampCursor()
		return nil

	case submittedMsg:
		if msg.key != p.desc.Key {
			return nil
		}
		p.submitting = false
		if msg.err != nil {
			if p.editor != nil {
				p.editor.rebuild()
			}
			return nil
		}
		p.editor = nil
		p.status, p.statusErr = p.form.Notice(), false
		p.form.DismissNotice()
		return p.Refresh()

	case tea.KeyMsg:
		switch {
		case p.editor != nil:
			return p.updateForm(msg)
		case p.filtering:
			return p.updateFilter(msg)
		default:
			return p.updateList(msg)
		}
	}
	return nil
}

func (p *listPage[T]) updateList(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "/":
		if len(p.desc.Filters) == 0 {
			return nil
		}
		p.filtering = true
		p.detail = ""
		return p.filter.Focus()
	case "tab":
		p.cycleFilter()
	case "esc":
		if p.detail != "" {
			p.detail = ""
		} else {
			p.clearFilters()
		}
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		p.cursor++
		p.clampCursor()
	case "enter":
		if p.detail != "" {
			p.detail = ""
			return nil
		}
		if record, ok := p.selected(); ok && p.desc.ID != nil {
			p.detail = p.desc.ID(record)
		}
	case "n":
		return p.OpenForm()
	case "r":
		return p.Refresh()
	}
	return nil
}

func (p *listPage[T]) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		p.filtering = false
		p.filter.Blur()
		return nil
	case "esc":
		p.filtering = false
		p.filter.Blur()
		p.clearFilters()
		return nil
	case "tab":
		p.cycleFilter()
		return nil
	}

	var cmd tea.Cmd
	p.filter, cmd = p.filter.Update(msg)
	p.applyQuery()
	return cmd
}

func (p *listPage[T]) updateForm(msg tea.KeyMsg) tea.Cmd {
	if p.submitting {
		return nil
	}
	switch msg.String() {
	case "esc":
		p.editor = nil
		return nil
	case "ctrl+s":
		p.submitting = true
		form, ctx, key := p.form, p.ctx, p.desc.Key
		return func() tea.Msg {
			return submittedMsg{key: key, err: form.Submit(ctx)}
		}
	}
	return p.editor.Update(msg)
}

func (p *listPage[T]) activeFilter() (views.Filter[T], bool) {
	if len(p.desc.Filters) == 0 {
		return views.Filter[T]{}, false
	}
	return p.desc.Filters[p.filterIdx], true
}

func (p *listPage[T]) applyQuery() {
	f, ok := p.activeFilter()
	if !ok {
		return
	}
	if err := p.view.SetQuery(f.Name, p.filter.Value()); err != nil {
		p.logger.Warn("set query failed", zap.String("filter", f.Name), zap.Error(err))
	}
	p.cursor = 0
}

// cycleFilter moves the search box to the next filter. In exclusive mode the
// typed text follows the box; otherwise each filter keeps its own text.
func (p *listPage[T]) cycleFilter() {
	if len(p.desc.Filters) < 2 {
		return
	}
	p.filterIdx = (p.filterIdx + 1) % len(p.desc.Filters)
	if p.view.IsExclusive() {
		p.applyQuery()
	} else {
		f, _ := p.activeFilter()
		p.filter.SetValue(p.view.Query(f.Name))
	}
	p.syncPlaceholder()
}

func (p *listPage[T]) clearFilters() {
	p.view.ClearAll()
	p.filter.SetValue("")
	p.cursor = 0
}

func (p *listPage[T]) syncPlaceholder() {
	if f, ok := p.activeFilter(); ok {
		p.filter.Placeholder = "Search by " + f.Label
	}
}

func (p *listPage[T]) selected() (T, bool) {
	visible := p.view.Visible()
	if p.cursor < 0 || p.cursor >= len(visible) {
		var zero T
		return zero, false
	}
	return visible[p.cursor], true
}

func (p *listPage[T]) clampCursor() {
	n := len(p.view.Visible())
	if p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *listPage[T]) View(width, height int, st Styles) string {
	var b strings.Builder

	visible := p.view.Visible()
	all := p.view.All()
	b.WriteString(st.Title.Render(p.desc.Title))
	b.WriteString(st.Muted.Render(fmt.Sprintf("  %d of %d", len(visible), len(all))))
	b.WriteString("\n")

	if p.editor != nil {
		if p.submitting {
			b.WriteString("\n" + st.Muted.Render("Submitting…"))
			return b.String()
		}
		b.WriteString("\n" + p.editor.View(p.form.Error(), st))
		return b.String()
	}

	if f, ok := p.activeFilter(); ok {
		value := p.filter.View()
		if !p.filtering {
			value = p.filter.Value()
			if value == "" {
				value = st.Muted.Render(p.filter.Placeholder)
			}
		}
		b.WriteString(st.Label.Render(f.Label+" ▸ ") + value + "\n")
	}
	b.WriteString("\n")

	switch {
	case p.loading && !p.view.Loaded():
		b.WriteString(st.Muted.Render("Loading…"))
		return b.String()
	case p.detail != "":
		record, ok := p.view.Find(p.detail)
		if !ok {
			b.WriteString(st.Muted.Render("This record is no longer available."))
			return b.String()
		}
		b.WriteString(renderCard(p.desc.Card(record), width, true, true, st))
		b.WriteString("\n" + st.Help.Render("esc/enter back"))
		return b.String()
	case len(visible) == 0:
		b.WriteString(st.Muted.Render("No " + strings.ToLower(p.desc.Title) + " found."))
		return b.String()
	}

	perCard := 5
	capacity := (height - 4) / perCard
	if capacity < 1 {
		capacity = 1
	}
	start := 0
	if p.cursor >= capacity {
		start = p.cursor - capacity + 1
	}
	end := start + capacity
	if end > len(visible) {
		end = len(visible)
	}
	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, renderCard(p.desc.Card(visible[i]), width, i == p.cursor, false, st))
	}
	b.WriteString(strings.Join(cards, "\n"))
	return b.String()
}
