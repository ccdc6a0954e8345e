// Package content holds the menus of the parody desktop. Everything here is
// data built from the combinators in internal/menu; the only logic is which
// items a submenu shows for the current state.
package content

import "github.com/atomicstack/rightclick/internal/menu"

// HiddenCategory is the title of the top-level menu unlocked by the dark web.
const HiddenCategory = "Do Crimes"

// EntryPoint returns the top-level menus for the current state. The save
// action, once earned, comes first; the hidden category comes last.
func EntryPoint(s *menu.State) []menu.Item {
	items := make([]menu.Item, 0, 9)
	if s.SaveAction != nil {
		items = append(items, s.SaveAction)
	}
	items = append(items,
		menu.Func("File", File),
		menu.NewButton("Edit", nil),
		menu.New("System",
			menu.NewButton("Shut down", nil),
			menu.New("/", rootDirectory()...),
		),
		menu.New("View",
			menu.NewButton("Cascade", nil),
			menu.NewButton("Tile", nil),
			menu.NewButton("Minimize", nil),
			menu.NewButton("Full Screen", nil),
		),
		menu.New("Utilities"),
		menu.New("Games", games()...),
		menu.New("Help", Help("")...),
	)
	if s.DarkWebEnabled {
		items = append(items, menu.New(HiddenCategory))
	}
	return items
}

// Win records the player's progress by unlocking the save action. Nothing
// ever clears it.
func Win(s *menu.State) {
	if s.SaveAction != nil {
		return
	}
	s.SaveAction = menu.Link("Save", links.Save)
}

func games() []menu.Item {
	return nil
}

func music() []menu.Item {
	return nil
}
