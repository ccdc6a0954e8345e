package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/rightclick/internal/data/dispatcher"
	"github.com/atomicstack/rightclick/internal/logging/events"
	"github.com/atomicstack/rightclick/internal/menu"
	"github.com/atomicstack/rightclick/internal/ui/command"
)

// handleEscapeKey pops the current level and re-opens its parent, so the
// parent reflects any state change made while it was hidden.
func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil || len(m.stack) <= 1 {
		return tea.Quit
	}
	m.stack = m.stack[:len(m.stack)-1]
	parent := m.currentLevel()
	events.UI.MenuBack(current.ID)
	m.refreshLevel(parent)
	if parent.LastCursor >= 0 && parent.LastCursor < len(parent.Items) {
		parent.Cursor = parent.LastCursor
	} else if idx := parent.IndexOfTitle(current.Title); idx >= 0 {
		parent.Cursor = idx
	}
	parent.LastCursor = -1
	m.syncViewport(parent)
	m.errMsg = ""
	m.forceClearInfo()
	return nil
}

// handleEnterKey opens a submenu or clicks a button. Labels and separators
// do nothing.
func (m *Model) handleEnterKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	item, ok := current.Current()
	if !ok {
		return nil
	}
	path := current.ChildPath()
	events.UI.MenuEnter(current.ID, item.Title(), current.Filter)
	switch typed := item.(type) {
	case menu.Expandable:
		return m.openSubmenu(current, path, typed)
	case menu.Clickable:
		return m.click(path, typed)
	}
	return nil
}

func (m *Model) openSubmenu(current *level, path menu.Path, item menu.Expandable) tea.Cmd {
	var children []menu.Item
	m.engine.Do(func() {
		children = m.engine.Expand(path, item)
	})
	selected := current.FullIndex(current.Cursor)
	beforeCursor := current.FilterCursorPos()
	current.SetFilter("", 0)
	m.noteFilterCursorChange(current, beforeCursor)
	current.LastCursor = selected
	next := newLevel(item.Title(), item, path, children)
	m.stack = append(m.stack, next)
	m.syncViewport(next)
	m.errMsg = ""
	if len(children) == 0 {
		m.setInfo("No entries found.")
	} else {
		m.forceClearInfo()
	}
	return nil
}

// click runs the action, then folds the popup back to its root level the way
// a real menu bar closes after a selection. Any URLs the action asked for are
// opened by a command once Update has returned.
func (m *Model) click(path menu.Path, item menu.Clickable) tea.Cmd {
	var result dispatcher.Result
	m.engine.Do(func() {
		result = m.engine.Click(path, item)
	})
	m.resetToRoot()
	m.errMsg = ""
	if m.verbose {
		m.setInfo(clickInfo(result))
	} else {
		m.forceClearInfo()
	}
	return m.bus.Execute(command.Request{ID: path.String(), Label: result.Title, URLs: result.URLs})
}

func clickInfo(result dispatcher.Result) string {
	if !result.Changed() {
		return fmt.Sprintf("Clicked %s", result.Title)
	}
	return fmt.Sprintf("Clicked %s (state changed)", result.Title)
}

func (m *Model) resetToRoot() {
	root := m.stack[0]
	m.stack = m.stack[:1]
	beforeCursor := root.FilterCursorPos()
	root.SetFilter("", 0)
	m.noteFilterCursorChange(root, beforeCursor)
	m.refreshLevel(root)
	root.LastCursor = -1
	events.UI.MenuReset(root.ID)
	m.syncViewport(root)
}

// refreshLevel recomputes the level's items from the current state.
func (m *Model) refreshLevel(l *level) {
	if l == nil {
		return
	}
	var items []menu.Item
	m.engine.Do(func() {
		if l.Source == nil {
			items = m.engine.Root()
			return
		}
		items = m.engine.Expand(l.Path, l.Source)
	})
	l.UpdateItems(items)
}

func (m *Model) moveCursorUp() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorUp() {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorDown() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorDown() {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageUp() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageUp(m.maxVisibleItems()); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageDown() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageDown(m.maxVisibleItems()); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorHome() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorHome(); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorEnd() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorEnd(); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up", "ctrl+p":
		m.moveCursorUp()
	case "down", "ctrl+n":
		m.moveCursorDown()
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}
