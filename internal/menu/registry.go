package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNotFound is returned when a path points past the end of a menu.
	ErrNotFound = errors.New("menu item not found")
	// ErrNotExpandable is returned when a path descends through a leaf.
	ErrNotExpandable = errors.New("menu item has no children")
)

// Path addresses an item by its index at every level, starting from the root
// items. The empty path addresses the root list itself.
type Path []int

// ParsePath parses a dotted path such as "0.2.1".
func ParsePath(raw string) (Path, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Path{}, nil
	}
	parts := strings.Split(trimmed, ".")
	path := make(Path, 0, len(parts))
	for _, part := range parts {
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("invalid path segment %q", part)
		}
		path = append(path, idx)
	}
	return path, nil
}

// String renders the dotted form understood by ParsePath.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ".")
}

// Resolve follows path from roots, opening every intermediate submenu against
// s. Opening is not cached, so the walk observes the current state.
func Resolve(roots []Item, s *State, path Path) (Item, error) {
	if len(path) == 0 {
		return nil, ErrNotFound
	}
	items := roots
	var item Item
	for depth, idx := range path {
		if idx < 0 || idx >= len(items) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path[:depth+1])
		}
		item = items[idx]
		if depth == len(path)-1 {
			break
		}
		expandable, ok := item.(Expandable)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotExpandable, path[:depth+1])
		}
		items = expandable.Children(s)
	}
	return item, nil
}

// ChildrenAt lists the items shown at path: the roots for the empty path,
// otherwise the children of the addressed submenu.
func ChildrenAt(roots []Item, s *State, path Path) ([]Item, error) {
	if len(path) == 0 {
		return roots, nil
	}
	item, err := Resolve(roots, s, path)
	if err != nil {
		return nil, err
	}
	expandable, ok := item.(Expandable)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotExpandable, path)
	}
	return expandable.Children(s), nil
}

// Node is a rendered snapshot of an item and, up to some depth, its subtree.
type Node struct {
	Title      string `json:"title"`
	Clickable  bool   `json:"clickable,omitempty"`
	Expandable bool   `json:"expandable,omitempty"`
	Separator  bool   `json:"separator,omitempty"`
	Children   []Node `json:"children,omitempty"`
}

// Walk snapshots items and opens submenus down to depth levels below them.
// A depth of zero describes the items without opening anything.
func Walk(items []Item, s *State, depth int) []Node {
	if len(items) == 0 {
		return nil
	}
	nodes := make([]Node, 0, len(items))
	for _, item := range items {
		clickable, expandable := Capabilities(item)
		node := Node{
			Title:      item.Title(),
			Clickable:  clickable,
			Expandable: expandable,
			Separator:  IsSeparator(item),
		}
		if expandable && depth > 0 {
			node.Children = Walk(item.(Expandable).Children(s), s, depth-1)
		}
		nodes = append(nodes, node)
	}
	return nodes
}
