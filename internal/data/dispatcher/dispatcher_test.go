package dispatcher

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/atomicstack/rightclick/internal/menu"
)

type recorder struct {
	expanded []string
	clicked  []string
	changed  []bool
}

func (r *recorder) Expanded(title string) {
	r.expanded = append(r.expanded, title)
}

func (r *recorder) Clicked(title string, changed bool) {
	r.clicked = append(r.clicked, title)
	r.changed = append(r.changed, changed)
}

func pathTo(t *testing.T, d *Dispatcher, titles ...string) menu.Path {
	t.Helper()
	path := menu.Path{}
	items := d.Root()
	for i, title := range titles {
		idx := -1
		for j, item := range items {
			if item.Title() == title {
				idx = j
				break
			}
		}
		if idx < 0 {
			t.Fatalf("expected %q among %v", title, menu.Titles(items))
		}
		path = append(path, idx)
		if i < len(titles)-1 {
			var err error
			items, err = d.ItemsAt(path)
			if err != nil {
				t.Fatalf("unexpected error opening %v: %v", path, err)
			}
		}
	}
	return path
}

func TestClickReportsStateChange(t *testing.T) {
	obs := &recorder{}
	d := New(obs)
	path := pathTo(t, d, "File", "Open", "A:\\", "Insert", "Floppy disk")
	item, err := d.Resolve(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result := d.Click(path, item.(menu.Clickable))
	if !result.Changed() {
		t.Fatalf("expected inserting the disk to change state")
	}
	if !result.After.InsertedDiskInDriveA || result.Before.InsertedDiskInDriveA {
		t.Fatalf("unexpected snapshots %#v -> %#v", result.Before, result.After)
	}
	if len(result.URLs) != 0 {
		t.Fatalf("expected no urls, got %v", result.URLs)
	}
	if diff := cmp.Diff([]string{"Floppy disk"}, obs.clicked); diff != "" {
		t.Fatalf("unexpected observed clicks (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"File", "Open", "A:\\", "Insert"}, obs.expanded); diff != "" {
		t.Fatalf("unexpected observed expansions (-want +got):\n%s", diff)
	}
}

func TestClickDrainsQueuedURLs(t *testing.T) {
	d := New(nil)
	path := pathTo(t, d, "Help", "Credits")
	credits, err := d.ItemsAt(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	link := credits[1].(menu.Clickable)
	first := d.Click(append(path, 1), link)
	if len(first.URLs) != 1 {
		t.Fatalf("expected one url, got %v", first.URLs)
	}
	if first.Changed() {
		t.Fatalf("expected a link to leave state untouched")
	}
	second := d.Click(append(path, 1), link)
	if len(second.URLs) != 1 {
		t.Fatalf("expected queue drained between clicks, got %v", second.URLs)
	}
}

func TestItemsAtErrors(t *testing.T) {
	d := New(nil)
	if _, err := d.ItemsAt(menu.Path{99}); !errors.Is(err, menu.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	edit := pathTo(t, d, "Edit")
	if _, err := d.ItemsAt(edit); !errors.Is(err, menu.ErrNotExpandable) {
		t.Fatalf("expected ErrNotExpandable, got %v", err)
	}
	root, err := d.ItemsAt(nil)
	if err != nil || len(root) != len(d.Root()) {
		t.Fatalf("expected root for empty path, got %v (%v)", menu.Titles(root), err)
	}
}

func TestTreeDepthZeroDescribesRoot(t *testing.T) {
	d := New(nil)
	tree := d.Tree(0)
	if len(tree) != len(d.Root()) {
		t.Fatalf("expected %d nodes, got %d", len(d.Root()), len(tree))
	}
	for _, node := range tree {
		if len(node.Children) != 0 {
			t.Fatalf("expected no children at depth 0, got %v under %q", node.Children, node.Title)
		}
	}
}
