package ui

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/rightclick/internal/data/dispatcher"
	"github.com/atomicstack/rightclick/internal/menu"
	"github.com/atomicstack/rightclick/internal/theme"
	"github.com/atomicstack/rightclick/internal/ui/command"
	uistate "github.com/atomicstack/rightclick/internal/ui/state"
)

type level = uistate.Level

const (
	menuHeaderSeparator = "→"
	defaultRootTitle    = "main menu"
	rootLevelID         = "root"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

func newLevel(title string, source menu.Expandable, path menu.Path, items []menu.Item) *level {
	id := rootLevelID
	if len(path) > 0 {
		id = path.String()
	}
	return uistate.NewLevel(id, title, source, path, items)
}

// Model implements the Bubble Tea model for the menu popup.
type Model struct {
	stack             []*level
	errMsg            string
	infoMsg           string
	infoExpire        time.Time
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	showFooter        bool
	verbose           bool
	filterCursor      cursor.Model
	filterFocused     bool
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler

	engine    *dispatcher.Dispatcher
	bus       *command.Bus
	rootTitle string
	rootMenu  string
}

// NewModel initialises the UI with the root menu of engine. URLs requested by
// clicks are handed to launcher from a tea.Cmd, never from Update.
func NewModel(engine *dispatcher.Dispatcher, launcher menu.Opener, width, height int, showFooter bool, verbose bool, rootMenu string) *Model {
	m := &Model{
		engine:     engine,
		bus:        command.New(launcher),
		showFooter: showFooter,
		verbose:    verbose,
		rootTitle:  defaultRootTitle,
	}
	var root *level
	engine.Do(func() {
		root = newLevel("Main Menu", nil, menu.Path{}, engine.Root())
	})
	m.stack = []*level{root}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.applyRootMenuOverride(rootMenu)
	m.syncViewport(m.currentLevel())
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.filterFocused = true
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):           m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):    m.handleWindowSizeMsg,
		reflect.TypeOf(command.ActionResult{}): m.handleActionResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		if m.filterFocused {
			m.filterCursor.Blink = false
			if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// State reports the game flags, for status rendering and tests.
func (m *Model) State() menu.Snapshot {
	var snap menu.Snapshot
	m.engine.Do(func() {
		snap = m.engine.State().Snapshot()
	})
	return snap
}

func (m *Model) currentLevel() *level {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// applyRootMenuOverride starts the popup inside the top-level submenu whose
// title matches requested, ignoring case.
func (m *Model) applyRootMenuOverride(requested string) {
	trimmed := strings.TrimSpace(requested)
	if trimmed == "" {
		return
	}
	var found *level
	m.engine.Do(func() {
		for i, item := range m.engine.Root() {
			expandable, ok := item.(menu.Expandable)
			if !ok || !strings.EqualFold(item.Title(), trimmed) {
				continue
			}
			path := menu.Path{i}
			found = newLevel(item.Title(), expandable, path, m.engine.Expand(path, expandable))
			return
		}
	})
	if found == nil {
		m.errMsg = fmt.Sprintf("Unknown root menu %q", trimmed)
		return
	}
	m.stack = []*level{found}
	m.rootMenu = found.Title
	m.rootTitle = found.Title
}
