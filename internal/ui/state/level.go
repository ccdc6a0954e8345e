package state

import (
	"github.com/atomicstack/rightclick/internal/menu"
)

// Level encapsulates menu level state such as cursor position, filter, and viewport.
// Source is the expandable item the level was opened from; it is nil for the
// root level, whose items come from the entry point instead.
type Level struct {
	ID             string
	Title          string
	Source         menu.Expandable
	Path           menu.Path
	Items          []menu.Item
	Full           []menu.Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int

	// indices maps positions in Items back to positions in Full.
	indices []int
}

// NewLevel constructs a Level for the items produced by source.
func NewLevel(id, title string, source menu.Expandable, path menu.Path, items []menu.Item) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		Source:     source,
		Path:       path,
		LastCursor: -1,
	}
	l.UpdateItems(items)
	l.Cursor = l.firstSelectable(0, 1)
	return l
}

// IndexOfTitle returns the visible index of the first item titled title.
func (l *Level) IndexOfTitle(title string) int {
	if title == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.Title() == title {
			return i
		}
	}
	return -1
}

// FullIndex translates a visible index into the unfiltered item position.
func (l *Level) FullIndex(visible int) int {
	if visible < 0 || visible >= len(l.indices) {
		return -1
	}
	return l.indices[visible]
}

// Current returns the item under the cursor.
func (l *Level) Current() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return nil, false
	}
	return l.Items[l.Cursor], true
}

// ChildPath returns the path of the item under the cursor.
func (l *Level) ChildPath() menu.Path {
	full := l.FullIndex(l.Cursor)
	if full < 0 {
		return nil
	}
	path := make(menu.Path, 0, len(l.Path)+1)
	path = append(path, l.Path...)
	return append(path, full)
}

// UpdateItems replaces the level items, keeping the filter, cursor and
// viewport when they still fit.
func (l *Level) UpdateItems(items []menu.Item) {
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 {
		prevOffset = 0
	}
	if prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}
