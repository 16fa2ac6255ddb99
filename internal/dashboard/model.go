package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f2fin/directory-dashboard/internal/repositories"
	service "github.com/f2fin/directory-dashboard/internal/services"
	"github.com/f2fin/directory-dashboard/internal/shell"
)

const summaryWidth = 30

type summaryMsg struct {
	summary service.Summary
	err     error
}

type Option func(*Model)

// WithSummary shows the counts panel fed by svc.
func WithSummary(svc service.SummaryService) Option {
	return func(m *Model) {
		m.summarySvc = svc
		m.showSummary = true
	}
}

// OpenAt starts on the tab whose route prefixes path and opens its create form.
func OpenAt(path string) Option {
	return func(m *Model) { m.openPath = path }
}

// WithUser shows who is signed in on the status line.
func WithUser(name string) Option {
	return func(m *Model) { m.user = name }
}

// Model is the root bubbletea model
type Model struct {
	ctx   context.Context
	shell *shell.Shell
	pages map[string]Page

	summarySvc  service.SummaryService
	summary     *service.Summary
	summaryErr  string
	showSummary bool

	openPath string
	openForm bool
	user     string

	width, height int
	styles        Styles
	quitting      bool
}

// New builds the dashboard over pages, one tab each in the given order.
func New(ctx context.Context, pages []Page, opts ...Option) Model {
	routes := make(map[string]string)
	for _, t := range shell.DefaultTabs() {
		routes[t.Key] = t.Route
	}

	tabs := make([]shell.Tab, 0, len(pages))
	byKey := make(map[string]Page, len(pages))
	for _, p := range pages {
		tabs = append(tabs, shell.Tab{Key: p.Key(), Label: p.Title(), Route: routes[p.Key()]})
		byKey[p.Key()] = p
	}

	m := Model{
		ctx:    ctx,
		shell:  shell.New(tabs...),
		pages:  byKey,
		width:  100,
		height: 30,
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.openPath != "" {
		if key, ok := m.shell.FormFor(m.openPath); ok {
			_ = m.shell.Select(key)
			m.openForm = true
		}
	}
	return m
}

// Init mounts and loads the selected tab only. The other tabs stay unmounted
// until they are selected.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.enter(), m.fetchSummary()}
	if m.openForm {
		if p := m.activePage(); p != nil {
			cmds = append(cmds, p.OpenForm())
		}
	}
	return tea.Batch(cmds...)
}

func (m Model) fetchSummary() tea.Cmd {
	if m.summarySvc == nil {
		return nil
	}
	svc, ctx := m.summarySvc, m.ctx
	return func() tea.Msg {
		s, err := svc.Summarize(ctx)
		return summaryMsg{summary: s, err: err}
	}
}

// enter mounts the selected page and starts its fetch.
func (m Model) enter() tea.Cmd {
	p := m.activePage()
	if p == nil {
		return nil
	}
	p.Mount()
	return p.Load()
}

// switchTab applies move to the shell. When the selection changes, the page
// being left is unmounted before the new one is mounted.
func (m Model) switchTab(move func()) tea.Cmd {
	prev := m.activePage()
	move()
	if m.activePage() == prev {
		return nil
	}
	if prev != nil {
		prev.Unmount()
	}
	return m.enter()
}

func (m Model) activePage() Page {
	return m.pages[m.shell.Active().Key]
}

// Active is the key of the selected tab.
func (m Model) Active() string {
	return m.shell.Active().Key
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case summaryMsg:
		if msg.err != nil {
			m.summaryErr = repositories.ErrorMessage(msg.err)
			return m, nil
		}
		m.summary, m.summaryErr = &msg.summary, ""
		return m, nil

	case loadedMsg:
		return m, m.broadcast(msg)

	case submittedMsg:
		cmd := m.broadcast(msg)
		if msg.err == nil {
			cmd = tea.Batch(cmd, m.fetchSummary())
		}
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.pages))
	for _, p := range m.pages {
		cmds = append(cmds, p.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	active := m.activePage()
	if active == nil {
		if msg.String() == "q" {
			return m.quit()
		}
		return m, nil
	}
	if active.Capturing() {
		return m, active.Update(msg)
	}

	switch key := msg.String(); key {
	case "q":
		return m.quit()
	case "right", "l":
		return m, m.switchTab(func() { m.shell.Next() })
	case "left", "h":
		return m, m.switchTab(func() { m.shell.Prev() })
	case "s":
		m.showSummary = !m.showSummary && m.summarySvc != nil
	case "R":
		return m, m.fetchSummary()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			tabs := m.shell.Tabs()
			if i := int(key[0] - '1'); i < len(tabs) {
				return m, m.switchTab(func() { _ = m.shell.Select(tabs[i].Key) })
			}
			return m, nil
		}
		return m, active.Update(msg)
	}
	return m, nil
}

// quit unmounts every page so no in-flight fetch commits after exit.
func (m Model) quit() (tea.Model, tea.Cmd) {
	for _, p := range m.pages {
		p.Unmount()
	}
	m.quitting = true
	return m, tea.Quit
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	st := m.styles

	tabs := make([]string, 0, len(m.shell.Tabs()))
	for i, t := range m.shell.Tabs() {
		label := fmt.Sprintf("%d %s", i+1, t.Label)
		if i == m.shell.ActiveIndex() {
			tabs = append(tabs, st.TabActive.Render(label))
		} else {
			tabs = append(tabs, st.TabInactive.Render(label))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	bodyWidth := m.width
	panel := ""
	if m.showSummary && m.width >= 80 {
		panel = m.summaryView()
		bodyWidth = m.width - summaryWidth - 1
	}

	body := ""
	if p := m.activePage(); p != nil {
		body = p.View(bodyWidth, m.height-4, st)
	}
	if panel != "" {
		body = joinColumns(lipgloss.NewStyle().Width(bodyWidth).Render(body), panel)
	}

	return strings.Join([]string{header, body, m.statusLine()}, "\n")
}

func (m Model) summaryView() string {
	st := m.styles
	lines := []string{st.Title.Render("Performance")}
	switch {
	case m.summaryErr != "":
		lines = append(lines, st.Error.Render(m.summaryErr))
	case m.summary == nil:
		lines = append(lines, st.Muted.Render("Loading…"))
	default:
		s := m.summary
		lines = append(lines,
			st.Label.Render("Bankers: ")+fmt.Sprint(s.Bankers),
			st.Label.Render("Lenders: ")+fmt.Sprint(s.Lenders),
			st.Label.Render("Total: ")+fmt.Sprint(s.Total),
			"",
			st.Label.Render(fmt.Sprintf("Lender share %d%%", s.LenderShare)),
			renderSummaryBar(s.LenderShare, summaryWidth-6, st),
		)
	}
	return st.Panel.Width(summaryWidth - 2).Render(strings.Join(lines, "\n"))
}

func (m Model) statusLine() string {
	st := m.styles
	parts := make([]string, 0, 3)
	if p := m.activePage(); p != nil {
		if text, isErr := p.Status(); text != "" {
			if isErr {
				parts = append(parts, st.Error.Render(text))
			} else {
				parts = append(parts, st.Notice.Render(text))
			}
		}
	}
	if m.user != "" {
		parts = append(parts, st.Muted.Render("signed in as "+m.user))
	}
	parts = append(parts, st.Help.Render("←/→ tabs · / search · n new · enter details · r refresh · s summary · q quit"))
	return strings.Join(parts, "  ")
}
