package finder

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/lens/internal/state"
	"github.com/Paintersrp/lens/internal/suggest"
	"github.com/Paintersrp/lens/internal/vault"
)

// Mode selects which engine entry point the finder drives.
type Mode int

const (
	// ModeSwitch is the quick switcher: recent files on an empty query and a
	// "create new note" row when nothing matches.
	ModeSwitch Mode = iota
	// ModeLink is link completion: every note on an empty query and a
	// non-selectable "no matches" row when nothing matches.
	ModeLink
)

const maxVisibleRows = 15

// Model is the shared suggestion picker for both the quick switcher and the
// link completer. Selection is exposed via Selection after the program exits.
type Model struct {
	state       *state.State
	mode        Mode
	input       textinput.Model
	keys        finderKeyMap
	suggestions []suggest.Suggestion
	cursor      int
	width       int
	err         error
	selected    *suggest.Suggestion
	quitting    bool
}

func NewModel(s *state.State, mode Mode, initialQuery string) Model {
	input := textinput.New()
	input.Placeholder = placeholderFor(mode)
	input.Prompt = "> "
	input.SetValue(initialQuery)
	input.Focus()

	m := Model{
		state: s,
		mode:  mode,
		input: input,
		keys:  newFinderKeyMap(),
	}
	m.refresh()
	return m
}

func placeholderFor(mode Mode) string {
	if mode == ModeLink {
		return "link target..."
	}
	return "note..."
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.state.Watcher.Start())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case state.VaultNoteChangedMsg:
		m.refresh()
		return m, m.state.Watcher.Start()

	case state.VaultWatcherErrMsg:
		m.err = msg.Err
		return m, m.state.Watcher.Start()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.down):
			if m.cursor < len(m.suggestions)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.choose):
			if sel := m.current(); sel != nil && sel.Kind != suggest.KindNoMatch {
				chosen := *sel
				m.selected = &chosen
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(inputStyle.Render(m.input.View()))
	b.WriteString("\n\n")

	rows := m.suggestions
	if len(rows) > maxVisibleRows {
		rows = rows[:maxVisibleRows]
	}

	for i, sug := range rows {
		b.WriteString(m.renderRow(i, sug))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
	}

	return appStyle.Render(b.String())
}

// Selection returns the chosen suggestion, or nil when the user aborted.
func (m Model) Selection() *suggest.Suggestion {
	return m.selected
}

func (m *Model) refresh() {
	snapshot, err := m.state.Index.AcquireSnapshot()
	if err != nil {
		m.err = err
		m.suggestions = nil
		m.cursor = 0
		return
	}
	m.err = nil

	records := snapshot.Records()
	query := m.input.Value()

	switch m.mode {
	case ModeLink:
		m.suggestions = suggest.ForLink(records, query, m.state.Policy())
	default:
		m.suggestions = suggest.ForSwitcher(
			records,
			query,
			m.state.Policy(),
			m.state.Recents.Paths(),
			m.state.Limits(),
		)
	}

	if m.cursor >= len(m.suggestions) {
		m.cursor = 0
	}
}

func (m Model) current() *suggest.Suggestion {
	if m.cursor < 0 || m.cursor >= len(m.suggestions) {
		return nil
	}
	return &m.suggestions[m.cursor]
}

func (m Model) renderRow(i int, sug suggest.Suggestion) string {
	prefix := "  "
	if i == m.cursor {
		prefix = cursorRowStyle.Render("> ")
	}

	switch sug.Kind {
	case suggest.KindNoMatch:
		return prefix + sentinelStyle.Render(sug.Display)
	case suggest.KindCreate:
		return prefix + createStyle.Render(fmt.Sprintf("+ Create %q", sug.Query))
	}

	display := highlightMatches(sug.Display, sug.Matched, i == m.cursor)

	row := display
	if badge := reasonBadge(sug.Reason); badge != "" {
		row += " " + badgeStyle.Render(badge)
	}
	row += " " + pathStyle.Render(vault.Basename(sug.Path)+".md")
	return prefix + row
}

// reasonBadge maps the match reason to a short marker, preferring title over
// filename over alias.
func reasonBadge(r suggest.Reason) string {
	switch {
	case r.Title:
		return ""
	case r.Filename:
		return "[file]"
	case r.Alias:
		return "[alias]"
	}
	return ""
}

// highlightMatches re-renders display with the matched byte positions
// emphasized. The cursor row keeps the emphasis; its style is layered under
// the matched-rune style rather than replacing it.
func highlightMatches(display string, matched []int, onCursor bool) string {
	base := lipgloss.NewStyle()
	if onCursor {
		base = cursorRowStyle
	}

	if len(matched) == 0 {
		return base.Render(display)
	}

	hit := base.Inherit(matchedRuneStyle)

	hits := make(map[int]struct{}, len(matched))
	for _, idx := range matched {
		hits[idx] = struct{}{}
	}

	var b strings.Builder
	for i, r := range display {
		if _, ok := hits[i]; ok {
			b.WriteString(hit.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// Run drives the finder to completion and returns the user's selection, nil
// when aborted.
func Run(s *state.State, mode Mode, query string) (*suggest.Suggestion, error) {
	model := NewModel(s, mode, query)
	finished, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, err
	}

	final, ok := finished.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected finder model type %T", finished)
	}
	return final.Selection(), nil
}
