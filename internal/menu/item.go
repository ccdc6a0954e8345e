package menu

import "slices"

// Item represents a menu entry. Every item has a non-empty title; what else
// it can do is decided by the optional Clickable and Expandable interfaces.
type Item interface {
	Title() string
}

// Clickable items run an action when the user selects them.
type Clickable interface {
	Item
	// Click is invoked exactly once per selection and may mutate the state.
	Click(*State)
}

// Expandable items compute their children every time they are opened.
type Expandable interface {
	Item
	// Children is called on every open. The result must only depend on the
	// state, so the same state always yields the same children.
	Children(*State) []Item
}

// Label is an inert entry: a caption, an answer in a dialog, or a separator.
// Build labels with Text; a bare conversion skips the empty-title check.
type Label string

// Title implements Item.
func (l Label) Title() string {
	return string(l)
}

// Button is a clickable entry.
type Button struct {
	title   string
	onClick func(*State)
}

// Title implements Item.
func (b Button) Title() string {
	return b.title
}

// Click implements Clickable.
func (b Button) Click(s *State) {
	if b.onClick == nil {
		return
	}
	b.onClick(s)
}

// Submenu is an expandable entry backed by a children function.
type Submenu struct {
	title    string
	children func(*State) []Item
}

// Title implements Item.
func (m Submenu) Title() string {
	return m.title
}

// Children implements Expandable.
func (m Submenu) Children(s *State) []Item {
	if m.children == nil {
		return nil
	}
	return m.children(s)
}

// Capabilities reports what the presentation layer may do with an item.
func Capabilities(item Item) (clickable, expandable bool) {
	_, clickable = item.(Clickable)
	_, expandable = item.(Expandable)
	return clickable, expandable
}

// Titles returns the titles of items in order.
func Titles(items []Item) []string {
	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title()
	}
	return titles
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	return slices.Clone(items)
}
