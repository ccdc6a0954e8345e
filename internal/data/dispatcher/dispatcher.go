// Package dispatcher is the single door through which presentation layers
// reach the menu tree. It owns the run's game state, traces every engine call
// and collects the URLs a click asked to open.
package dispatcher

import (
	"sync"

	"github.com/atomicstack/rightclick/internal/content"
	"github.com/atomicstack/rightclick/internal/logging/events"
	"github.com/atomicstack/rightclick/internal/menu"
	"github.com/atomicstack/rightclick/internal/opener"
)

// Observer is told about every engine call after it returns.
type Observer interface {
	Expanded(title string)
	Clicked(title string, changed bool)
}

// Result describes the effect of one click.
type Result struct {
	Title  string
	Before menu.Snapshot
	After  menu.Snapshot
	URLs   []string
}

// Changed reports whether the click mutated the game state.
func (r Result) Changed() bool {
	return r.Before != r.After
}

// Dispatcher methods are not safe for concurrent use on their own. Every
// adapter wraps its engine work in Do, so the terminal model and the HTTP
// server can share one game.
type Dispatcher struct {
	mu       sync.Mutex
	state    *menu.State
	queue    *opener.Queue
	observer Observer
}

// New returns a dispatcher over a fresh start-of-run state. observer may be
// nil.
func New(observer Observer) *Dispatcher {
	queue := opener.NewQueue()
	return &Dispatcher{
		state:    menu.NewState(queue),
		queue:    queue,
		observer: observer,
	}
}

// Do runs fn while holding the dispatcher lock. fn must not call Do.
func (d *Dispatcher) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn()
}

// State exposes the game state for read-only reporting.
func (d *Dispatcher) State() *menu.State {
	return d.state
}

// Root lists the top-level items for the current state.
func (d *Dispatcher) Root() []menu.Item {
	return content.EntryPoint(d.state)
}

// Expand opens item, which lives at path, against the current state.
func (d *Dispatcher) Expand(path menu.Path, item menu.Expandable) []menu.Item {
	children := item.Children(d.state)
	events.Engine.Expand(path.String(), item.Title(), len(children))
	if d.observer != nil {
		d.observer.Expanded(item.Title())
	}
	return children
}

// Click runs item's action once and returns what it changed together with
// any URLs it asked to open.
func (d *Dispatcher) Click(path menu.Path, item menu.Clickable) Result {
	before := d.state.Snapshot()
	item.Click(d.state)
	result := Result{
		Title:  item.Title(),
		Before: before,
		After:  d.state.Snapshot(),
		URLs:   d.queue.Drain(),
	}
	events.Engine.Click(path.String(), result.Title, result.Before, result.After)
	if d.observer != nil {
		d.observer.Clicked(result.Title, result.Changed())
	}
	return result
}

// Resolve finds the item at path, opening every submenu on the way.
func (d *Dispatcher) Resolve(path menu.Path) (menu.Item, error) {
	return menu.Resolve(d.Root(), d.state, path)
}

// ItemsAt lists the items at path: the root for the empty path, otherwise
// the children of the submenu it addresses.
func (d *Dispatcher) ItemsAt(path menu.Path) ([]menu.Item, error) {
	if len(path) == 0 {
		return d.Root(), nil
	}
	item, err := d.Resolve(path)
	if err != nil {
		return nil, err
	}
	expandable, ok := item.(menu.Expandable)
	if !ok {
		return nil, menu.ErrNotExpandable
	}
	return d.Expand(path, expandable), nil
}

// Tree snapshots the whole menu down to depth levels below the root.
func (d *Dispatcher) Tree(depth int) []menu.Node {
	return menu.Walk(d.Root(), d.state, depth)
}
