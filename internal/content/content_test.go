package content

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/atomicstack/rightclick/internal/menu"
)

type recordingOpener struct {
	urls []string
}

func (r *recordingOpener) Open(url string) error {
	r.urls = append(r.urls, url)
	return nil
}

func childByTitle(t *testing.T, s *menu.State, items []menu.Item, title string) menu.Item {
	t.Helper()
	for _, item := range items {
		if item.Title() == title {
			return item
		}
	}
	t.Fatalf("expected %q among %v", title, menu.Titles(items))
	return nil
}

func open(t *testing.T, s *menu.State, items []menu.Item, titles ...string) []menu.Item {
	t.Helper()
	for _, title := range titles {
		item := childByTitle(t, s, items, title)
		expandable, ok := item.(menu.Expandable)
		if !ok {
			t.Fatalf("expected %q to be expandable, got %T", title, item)
		}
		items = expandable.Children(s)
	}
	return items
}

func click(t *testing.T, s *menu.State, items []menu.Item, title string) {
	t.Helper()
	item := childByTitle(t, s, items, title)
	clickable, ok := item.(menu.Clickable)
	if !ok {
		t.Fatalf("expected %q to be clickable, got %T", title, item)
	}
	clickable.Click(s)
}

func checkTitles(t *testing.T, nodes []menu.Node, trail string) {
	t.Helper()
	for _, node := range nodes {
		if node.Title == "" {
			t.Fatalf("empty title under %q", trail)
		}
		checkTitles(t, node.Children, trail+"/"+node.Title)
	}
}

func allStates() []*menu.State {
	states := []*menu.State{}
	for _, disk := range []bool{false, true} {
		for _, dark := range []bool{false, true} {
			for _, won := range []bool{false, true} {
				s := menu.NewState(nil)
				s.InsertedDiskInDriveA = disk
				s.DarkWebEnabled = dark
				if won {
					Win(s)
				}
				states = append(states, s)
			}
		}
	}
	return states
}

func TestTitlesAreNonEmptyAndStable(t *testing.T) {
	for _, s := range allStates() {
		first := menu.Walk(EntryPoint(s), s, 4)
		checkTitles(t, first, "")
		second := menu.Walk(EntryPoint(s), s, 4)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("tree changed without a state change (-first +second):\n%s", diff)
		}
	}
}

func TestEntryPointDefaults(t *testing.T) {
	s := menu.NewState(nil)
	want := []string{"File", "Edit", "System", "View", "Utilities", "Games", "Help"}
	if diff := cmp.Diff(want, menu.Titles(EntryPoint(s))); diff != "" {
		t.Fatalf("unexpected root (-want +got):\n%s", diff)
	}
}

func TestDecorativeButtonsDoNothing(t *testing.T) {
	s := menu.NewState(nil)
	before := s.Snapshot()
	root := EntryPoint(s)
	click(t, s, root, "Edit")
	view := open(t, s, root, "View")
	for _, title := range []string{"Cascade", "Tile", "Minimize", "Full Screen"} {
		click(t, s, view, title)
	}
	click(t, s, File(s), "Close")
	click(t, s, File(s), "Backup")
	if s.Snapshot() != before {
		t.Fatalf("expected decorative buttons to leave state untouched, got %#v", s.Snapshot())
	}
}

func TestDriveAGate(t *testing.T) {
	s := menu.NewState(nil)
	drive := open(t, s, EntryPoint(s), "File", "Open", "A:\\")
	titles := menu.Titles(drive)
	if !slices.Contains(titles, insertDiskPrompt) || slices.Contains(titles, emptyDiskLabel) {
		t.Fatalf("expected insert prompt only, got %v", titles)
	}

	insert := open(t, s, drive, "Insert")
	click(t, s, insert, "Floppy disk")
	if !s.InsertedDiskInDriveA {
		t.Fatalf("expected disk inserted")
	}

	drive = open(t, s, EntryPoint(s), "File", "Open", "A:\\")
	titles = menu.Titles(drive)
	if slices.Contains(titles, insertDiskPrompt) || slices.Contains(titles, "Insert") {
		t.Fatalf("expected prompt gone after insert, got %v", titles)
	}
	if !slices.Contains(titles, emptyDiskLabel) {
		t.Fatalf("expected unlocked content, got %v", titles)
	}

	click(t, s, drive, "Eject")
	if s.InsertedDiskInDriveA {
		t.Fatalf("expected eject to clear the disk flag")
	}
	if titles := menu.Titles(DriveA(s)); titles[0] != insertDiskPrompt {
		t.Fatalf("expected prompt back after eject, got %v", titles)
	}
}

func TestWinSurfacesSaveAction(t *testing.T) {
	opener := &recordingOpener{}
	s := menu.NewState(opener)

	for _, item := range append(EntryPoint(s), File(s)...) {
		if item.Title() == "Save" {
			t.Fatalf("expected no save item before winning")
		}
	}

	items := open(t, s, EntryPoint(s), "File", "Open", "C:\\", "Sequences\\")
	for {
		next := items[len(items)-1]
		if expandable, ok := next.(menu.Expandable); ok {
			items = expandable.Children(s)
			continue
		}
		break
	}
	click(t, s, items, "Mmmhmm.")

	if s.SaveAction == nil {
		t.Fatalf("expected save action after the finale")
	}
	if diff := cmp.Diff([]string{links.Sequence}, opener.urls); diff != "" {
		t.Fatalf("unexpected opened urls (-want +got):\n%s", diff)
	}

	root := EntryPoint(s)
	if root[0].Title() != "Save" {
		t.Fatalf("expected save first in root, got %v", menu.Titles(root))
	}
	file := File(s)
	if file[len(file)-1].Title() != "Save" {
		t.Fatalf("expected save last in File, got %v", menu.Titles(file))
	}

	Win(s)
	root = EntryPoint(s)
	if root[0].Title() != "Save" || root[1].Title() != "File" {
		t.Fatalf("expected a single save first in root after winning twice, got %v", menu.Titles(root))
	}

	root[0].(menu.Clickable).Click(s)
	if opener.urls[len(opener.urls)-1] != links.Save {
		t.Fatalf("expected save to open %q, got %v", links.Save, opener.urls)
	}
	if s.SaveAction == nil {
		t.Fatalf("expected save action to persist after use")
	}
}

func TestWinKeepsEarnedSaveAction(t *testing.T) {
	opener := &recordingOpener{}
	s := menu.NewState(opener)
	s.SaveAction = menu.Link("Save", "https://earlier.example/")

	Win(s)

	if s.SaveAction.Title() != "Save" {
		t.Fatalf("expected save title kept, got %q", s.SaveAction.Title())
	}
	s.SaveAction.Click(s)
	if diff := cmp.Diff([]string{"https://earlier.example/"}, opener.urls); diff != "" {
		t.Fatalf("expected the earlier save action to survive a second win (-want +got):\n%s", diff)
	}
}

func countTitled(nodes []menu.Node, title string) int {
	count := 0
	for _, node := range nodes {
		if node.Title == title {
			count++
		}
		count += countTitled(node.Children, title)
	}
	return count
}

func TestNoSaveAnywhereBeforeWinning(t *testing.T) {
	for _, s := range allStates() {
		tree := menu.Walk(EntryPoint(s), s, 4)
		got := countTitled(tree, "Save")
		if s.SaveAction == nil && got != 0 {
			t.Fatalf("expected no save item before winning, found %d in state %#v", got, s.Snapshot())
		}
		if s.SaveAction != nil && got == 0 {
			t.Fatalf("expected save item after winning in state %#v", s.Snapshot())
		}
	}
}

func TestBackAndForthSequenceDepth(t *testing.T) {
	s := menu.NewState(nil)
	depth := 0
	var item menu.Item = sequences()
	for {
		expandable, ok := item.(menu.Expandable)
		if !ok {
			break
		}
		depth++
		children := expandable.Children(s)
		if len(children) != 2 {
			t.Fatalf("expected reply and next prompt at depth %d, got %v", depth, menu.Titles(children))
		}
		if _, ok := children[0].(menu.Label); !ok {
			t.Fatalf("expected reply label at depth %d", depth)
		}
		item = children[1]
	}
	if depth != 13 {
		t.Fatalf("expected 13 prompts, got %d", depth)
	}
	if item.Title() != "Mmmhmm." {
		t.Fatalf("expected finale at the bottom, got %q", item.Title())
	}
}

func TestUsrExcludesOrigin(t *testing.T) {
	s := menu.NewState(nil)
	full := Usr("")
	if len(full) != len(usrPaths) {
		t.Fatalf("expected %d entries without exclusion, got %d", len(usrPaths), len(full))
	}
	for _, sibling := range full {
		children := sibling.(menu.Expandable).Children(s)
		if len(children) != len(usrPaths)-1 {
			t.Fatalf("expected %d children under %q, got %d", len(usrPaths)-1, sibling.Title(), len(children))
		}
		if slices.Contains(menu.Titles(children), sibling.Title()) {
			t.Fatalf("expected %q to exclude itself, got %v", sibling.Title(), menu.Titles(children))
		}
		for _, grandchild := range children {
			nested := grandchild.(menu.Expandable).Children(s)
			if slices.Contains(menu.Titles(nested), grandchild.Title()) {
				t.Fatalf("expected %q to exclude itself", grandchild.Title())
			}
			if !slices.Contains(menu.Titles(nested), sibling.Title()) {
				t.Fatalf("expected lateral move back to %q from %q", sibling.Title(), grandchild.Title())
			}
		}
	}

	entered := open(t, s, EntryPoint(s), "System", "/", "usr/")
	if slices.Contains(menu.Titles(entered), "usr/") {
		t.Fatalf("expected usr/ listing to exclude itself, got %v", menu.Titles(entered))
	}
}

func TestHelpExcludesOrigin(t *testing.T) {
	s := menu.NewState(nil)
	for _, excluded := range helpTopics {
		items := Help(excluded)
		topics := items[:len(items)-2]
		if len(topics) != len(helpTopics)-1 {
			t.Fatalf("expected %d topics without %q, got %d", len(helpTopics)-1, excluded, len(topics))
		}
		if slices.Contains(menu.Titles(topics), excluded) {
			t.Fatalf("expected %q excluded, got %v", excluded, menu.Titles(topics))
		}
		if !menu.IsSeparator(items[len(items)-2]) || items[len(items)-1].Title() != "Credits" {
			t.Fatalf("expected separator and credits at the end, got %v", menu.Titles(items))
		}
	}

	help := open(t, s, EntryPoint(s), "Help")
	faq := open(t, s, help, "FAQ")
	if slices.Contains(menu.Titles(faq), "FAQ") {
		t.Fatalf("expected FAQ to exclude itself, got %v", menu.Titles(faq))
	}
	credits := open(t, s, faq, "Credits")
	if credits[0].Title() != links.Credits.Intro || len(credits) != len(links.Credits.People)+1 {
		t.Fatalf("unexpected credits %v", menu.Titles(credits))
	}
}

func TestDarkWebToggleIsReversible(t *testing.T) {
	s := menu.NewState(nil)
	s.InsertedDiskInDriveA = true
	original := menu.Titles(EntryPoint(s))
	secret := []string{"File", "Open", "C:\\", "Bookmarks\\", "Secret"}

	click(t, s, open(t, s, EntryPoint(s), secret...), "Disable Dark Web")
	if !s.DarkWebEnabled {
		t.Fatalf("expected dark web enabled")
	}
	enabled := menu.Titles(EntryPoint(s))
	if diff := cmp.Diff(append(slices.Clone(original), HiddenCategory), enabled); diff != "" {
		t.Fatalf("unexpected root with dark web (-want +got):\n%s", diff)
	}

	click(t, s, open(t, s, EntryPoint(s), secret...), "Enable Dark Web")
	if s.DarkWebEnabled {
		t.Fatalf("expected dark web disabled")
	}
	if diff := cmp.Diff(original, menu.Titles(EntryPoint(s))); diff != "" {
		t.Fatalf("expected root restored (-want +got):\n%s", diff)
	}
	if !s.InsertedDiskInDriveA || s.SaveAction != nil {
		t.Fatalf("expected unrelated fields untouched, got %#v", s.Snapshot())
	}
}

func TestParseLinksRejectsIncompleteData(t *testing.T) {
	if _, err := parseLinks([]byte("credits: {intro: hi}\n")); err == nil {
		t.Fatalf("expected error for missing save url")
	}
	if _, err := parseLinks([]byte("save: x\ncredits: {intro: hi, people: [{title: a}]}\nwho: {first: {title: a, url: b}, band: {title: c, url: d}}\n")); err == nil {
		t.Fatalf("expected error for link without url")
	}
	if _, err := parseLinks([]byte("save: [")); err == nil {
		t.Fatalf("expected yaml error")
	}
	if _, err := parseLinks(linksYAML); err != nil {
		t.Fatalf("expected embedded links to parse: %v", err)
	}
}
