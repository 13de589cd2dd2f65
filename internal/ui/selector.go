package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Selection is the checkbox state for the interactive database picker: the
// item names, a parallel selected flag per item, and the cursor row. The
// transition methods below are the only way state changes, which keeps the
// keyboard handling unit-testable without a terminal.
type Selection struct {
	Items    []string
	Selected []bool
	Cursor   int
}

// NewSelection starts with every item selected and the cursor on the first
// row, matching what an operator backing up "everything minus a few" wants.
func NewSelection(items []string) Selection {
	selected := make([]bool, len(items))
	for i := range selected {
		selected[i] = true
	}
	return Selection{Items: items, Selected: selected}
}

// Toggle flips the selected flag under the cursor.
func (s *Selection) Toggle() {
	if len(s.Items) == 0 {
		return
	}
	s.Selected[s.Cursor] = !s.Selected[s.Cursor]
}

// SelectAll marks every item selected.
func (s *Selection) SelectAll() {
	for i := range s.Selected {
		s.Selected[i] = true
	}
}

// SelectNone clears every selected flag.
func (s *Selection) SelectNone() {
	for i := range s.Selected {
		s.Selected[i] = false
	}
}

// MoveUp moves the cursor one row up, stopping at the first row.
func (s *Selection) MoveUp() {
	if s.Cursor > 0 {
		s.Cursor--
	}
}

// MoveDown moves the cursor one row down, stopping at the last row.
func (s *Selection) MoveDown() {
	if s.Cursor < len(s.Items)-1 {
		s.Cursor++
	}
}

// PageUp moves the cursor up by page rows, clamped at the first row.
func (s *Selection) PageUp(page int) {
	s.Cursor -= page
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// PageDown moves the cursor down by page rows, clamped at the last row.
func (s *Selection) PageDown(page int) {
	s.Cursor += page
	if s.Cursor > len(s.Items)-1 {
		s.Cursor = len(s.Items) - 1
	}
}

// Count returns how many items are currently selected.
func (s *Selection) Count() int {
	n := 0
	for _, sel := range s.Selected {
		if sel {
			n++
		}
	}
	return n
}

// Chosen returns the selected item names in their original order.
func (s *Selection) Chosen() []string {
	var chosen []string
	for i, sel := range s.Selected {
		if sel {
			chosen = append(chosen, s.Items[i])
		}
	}
	return chosen
}

// scrollOffset keeps the cursor row centered in the visible window when
// possible, clamped at both ends of the list.
func scrollOffset(cursor, total, visible int) int {
	if visible >= total {
		return 0
	}
	half := visible / 2
	var offset int
	switch {
	case cursor < half:
		offset = 0
	case cursor > total-half:
		offset = total - visible
	default:
		offset = cursor - half
	}
	if offset < 0 {
		offset = 0
	}
	if offset > total-visible {
		offset = total - visible
	}
	return offset
}

// Rows above and below the database list: title, help line, rule, blank
// on top; blank, rule, footer underneath.
const (
	selectorChromeTop    = 4
	selectorChromeBottom = 3
)

type selectorModel struct {
	state     Selection
	width     int
	height    int
	confirmed bool
	cancelled bool
}

func newSelectorModel(items []string) selectorModel {
	return selectorModel{
		state: NewSelection(items),
		// Sane fallback until the first WindowSizeMsg arrives.
		width:  80,
		height: 24,
	}
}

func (m selectorModel) Init() tea.Cmd {
	return nil
}

func (m selectorModel) pageSize() int {
	visible := m.height - selectorChromeTop - selectorChromeBottom
	if visible < 1 {
		visible = 1
	}
	return visible
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.InterruptMsg:
		m.cancelled = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "Q", "esc":
			m.cancelled = true
			return m, tea.Quit

		case " ":
			m.state.Toggle()

		case "a", "A":
			m.state.SelectAll()

		case "n", "N":
			m.state.SelectNone()

		case "up", "k":
			m.state.MoveUp()

		case "down", "j":
			m.state.MoveDown()

		case "pgup":
			m.state.PageUp(m.pageSize())

		case "pgdown":
			m.state.PageDown(m.pageSize())

		case "enter":
			if m.state.Count() == 0 {
				m.cancelled = true
			} else {
				m.confirmed = true
			}
			return m, tea.Quit
		}
	}

	return m, nil
}

// truncate cuts s to at most width cells so narrow terminals never wrap.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}

func (m selectorModel) View() string {
	var b strings.Builder

	title := selectorTitleStyle.Render(truncate("MongoDB Backup - Select Databases", m.width-1))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n")

	help := "↑/↓ or k/j: Navigate | Space: Toggle | a: All | n: None | Enter: Confirm | q: Quit"
	b.WriteString(selectorHelpStyle.Render(truncate(help, m.width-1)))
	b.WriteString("\n")
	b.WriteString(selectorRuleStyle.Render(strings.Repeat("─", max(m.width-1, 1))))
	b.WriteString("\n\n")

	visible := m.pageSize()
	offset := scrollOffset(m.state.Cursor, len(m.state.Items), visible)
	end := offset + visible
	if end > len(m.state.Items) {
		end = len(m.state.Items)
	}

	for i := offset; i < end; i++ {
		checkbox := "[ ]"
		if m.state.Selected[i] {
			checkbox = "[✓]"
		}
		line := fmt.Sprintf("%s %s", checkbox, m.state.Items[i])

		switch {
		case i == m.state.Cursor:
			b.WriteString("  " + selectorCursorStyle.Render(truncate(line, m.width-3)))
		case m.state.Selected[i]:
			b.WriteString("  " + selectorCheckedStyle.Render(checkbox) + " " + truncate(m.state.Items[i], m.width-7))
		default:
			b.WriteString("  " + truncate(line, m.width-3))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(selectorRuleStyle.Render(strings.Repeat("─", max(m.width-1, 1))))
	b.WriteString("\n")
	footer := selectorFooterStyle.Render(truncate(
		fmt.Sprintf("Selected: %d/%d databases", m.state.Count(), len(m.state.Items)), m.width-1))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, footer))

	return b.String()
}

// SelectDatabases runs the interactive checkbox selector over databases and
// returns the chosen subset in original order. Quitting, interrupting, or
// confirming with nothing selected all return ErrCancelled.
func SelectDatabases(databases []string) ([]string, error) {
	program := tea.NewProgram(newSelectorModel(databases), tea.WithAltScreen())

	out, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("running database selector: %w", err)
	}

	final, ok := out.(selectorModel)
	if !ok || !final.confirmed {
		return nil, ErrCancelled
	}

	return final.state.Chosen(), nil
}
