package content

import "github.com/atomicstack/rightclick/internal/menu"

const (
	insertDiskPrompt = "Please insert disk into Drive A"
	emptyDiskLabel   = "A:\\ contains no files."
)

// File lists the File menu. The save action, once earned, is appended at the
// end.
func File(s *menu.State) []menu.Item {
	items := []menu.Item{
		// the host closes the menu after any selection, so there is nothing to do
		menu.NewButton("Close", nil),
		menu.New("Open",
			menu.Func("A:\\", DriveA),
			menu.New("C:\\", cDrive()...),
			menu.New("/", rootDirectory()...),
		),
		find(),
		menu.NewButton("Backup", nil),
	}
	if s.SaveAction != nil {
		items = append(items, s.SaveAction)
	}
	return items
}

// DriveA is gated on the floppy disk: without it the drive only explains how
// to insert one, with it the drive shows its contents.
func DriveA(s *menu.State) []menu.Item {
	if s.InsertedDiskInDriveA {
		return []menu.Item{
			menu.Text(emptyDiskLabel),
			menu.NewButton("Eject", func(s *menu.State) {
				s.InsertedDiskInDriveA = false
			}),
		}
	}
	return []menu.Item{
		menu.Text(insertDiskPrompt),
		menu.New("Insert",
			menu.NewButton("Floppy disk", func(s *menu.State) {
				s.InsertedDiskInDriveA = true
			}),
			menu.New("Chip card"),
		),
	}
}

func find() menu.Item {
	return menu.New("Find",
		menu.New("Where"),
		menu.New("When",
			menu.NewButton("How?!", nil),
			menu.NewButton("How?!", nil),
		),
		menu.New("How",
			menu.NewButton("How?!", nil),
		),
		menu.Text("What"),
		menu.Link("Why", links.Why),
		menu.New("Who",
			menu.BackAndForth([]menu.Exchange{
				{Prompt: "'s on First", Reply: "Yes."},
				{Prompt: "I mean the fellow's name.", Reply: "Who."},
				{Prompt: "The guy on first.", Reply: "Who."},
			}, menu.Link(links.Who.First.Title, links.Who.First.URL)),
			menu.BackAndForth([]menu.Exchange{
				{Prompt: "is the Band on Stage", Reply: "The Who."},
			}, menu.Link(links.Who.Band.Title, links.Who.Band.URL)),
		),
	)
}
