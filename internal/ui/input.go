package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/rightclick/internal/logging/events"
)

const filterPlaceholder = "(type to search)"

// filterMove is a cursor motion inside the filter text. word selects the
// trace event for word-wise moves.
type filterMove struct {
	move func(*level) bool
	word bool
}

var filterMoves = map[string]filterMove{
	"ctrl+a": {move: (*level).MoveFilterCursorStart},
	"ctrl+e": {move: (*level).MoveFilterCursorEnd},
	"left":   {move: (*level).MoveFilterCursorRuneBackward},
	"right":  {move: (*level).MoveFilterCursorRuneForward},
	"alt+b":  {move: (*level).MoveFilterCursorWordBackward, word: true},
	"alt+f":  {move: (*level).MoveFilterCursorWordForward, word: true},
}

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(l *level, before int) {
	if l == nil {
		return
	}
	if before != l.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// handleTextInput routes typing to the filter of the current level. It
// reports false for keys the filter has no use for so navigation can take
// them.
func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	current := m.currentLevel()
	if current == nil {
		return false, nil
	}
	key := msg.String()
	if motion, ok := filterMoves[key]; ok {
		before := current.FilterCursorPos()
		if !motion.move(current) {
			return false, nil
		}
		m.noteFilterCursorChange(current, before)
		if motion.word {
			events.Filter.CursorWord(current.ID, current.FilterCursor)
		} else {
			events.Filter.Cursor(current.ID, current.FilterCursor)
		}
		return true, nil
	}
	switch key {
	case "ctrl+u":
		if current.Filter == "" {
			return false, nil
		}
		m.editFilter(current, func(l *level) bool {
			l.SetFilter("", 0)
			return true
		})
		events.Filter.Cleared(current.ID)
		return true, nil
	case "ctrl+w":
		if !m.editFilter(current, (*level).DeleteFilterWordBackward) {
			return false, nil
		}
		events.Filter.WordBackspace(current.ID, current.Filter)
		return true, nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !m.editFilter(current, (*level).DeleteFilterRuneBackward) {
			return false, nil
		}
		events.Filter.Backspace(current.ID, current.Filter)
		return true, nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
		}
		return m.appendToFilter(current, string(msg.Runes)), nil
	case tea.KeySpace:
		return m.appendToFilter(current, " "), nil
	}
	return false, nil
}

func (m *Model) appendToFilter(current *level, text string) bool {
	if text == "" {
		return false
	}
	if !m.editFilter(current, func(l *level) bool { return l.InsertFilterText(text) }) {
		return false
	}
	events.Filter.Append(current.ID, current.Filter)
	return true
}

// editFilter applies a text edit and, when it took effect, clears stale
// messages and keeps the cursor row on screen.
func (m *Model) editFilter(current *level, edit func(*level) bool) bool {
	before := current.FilterCursorPos()
	if !edit(current) {
		return false
	}
	m.noteFilterCursorChange(current, before)
	m.forceClearInfo()
	m.errMsg = ""
	m.syncViewport(current)
	return true
}

func (m *Model) filterPrompt() string {
	current := m.currentLevel()
	if current == nil {
		return ">"
	}
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	if current.Filter == "" {
		runes := []rune(filterPlaceholder)
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(current.Filter)
	pos := current.FilterCursorPos()
	caretRune, after := " ", ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	before := render(styles.Filter, string(runes[:pos]))
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
