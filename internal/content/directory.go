package content

import "github.com/atomicstack/rightclick/internal/menu"

var usrPaths = []string{"local/", "bin/", "share/", "opt/", "usr/", "var/", "sbin/"}

// Usr lists the usr/ tree without the directory it was entered from. Every
// entry opens the same listing minus itself, so the user can wander sideways
// forever but never straight back.
func Usr(without string) []menu.Item {
	items := make([]menu.Item, 0, len(usrPaths))
	for _, path := range usrPaths {
		if path == without {
			continue
		}
		items = append(items, menu.Func(path, func(*menu.State) []menu.Item {
			return Usr(path)
		}))
	}
	return items
}

func rootDirectory() []menu.Item {
	return []menu.Item{
		menu.New("home/",
			menu.NewButton("guest", nil),
			menu.New("user", cDrive()...),
			menu.New("root", menu.Text("You are not in the sudoers file. This incident will be reported.")),
		),
		menu.NewButton("opt/", nil),
		menu.NewButton("sbin/", nil),
		menu.Func("usr/", func(*menu.State) []menu.Item {
			return Usr("usr/")
		}),
		menu.New("dev/", linkItems(links.Devices)...),
	}
}

func cDrive() []menu.Item {
	return []menu.Item{
		// does nothing?
		menu.NewButton("Documents\\", nil),
		menu.New("Music\\", music()...),
		menu.New("Bookmarks\\",
			menu.New("Comics"),
			menu.Func("Secret", secret),
		),
		menu.New("Games\\", games()...),
		sequences(),
	}
}

// secret toggles the dark web. The button titles read backwards on purpose.
func secret(s *menu.State) []menu.Item {
	if s.DarkWebEnabled {
		return []menu.Item{menu.NewButton("Enable Dark Web", func(s *menu.State) {
			s.DarkWebEnabled = false
		})}
	}
	return []menu.Item{menu.NewButton("Disable Dark Web", func(s *menu.State) {
		s.DarkWebEnabled = true
	})}
}

// sequences is the Celery Man dialog. Reaching its end wins the game.
func sequences() menu.Item {
	finale := menu.NewButton("Mmmhmm.", func(s *menu.State) {
		Win(s)
		s.Open(links.Sequence)
	})
	return menu.BackAndForth([]menu.Exchange{
		{Prompt: "Sequences\\", Reply: "Good morning Paul. What will your first sequence of the day be?"},
		{Prompt: "Celery Man", Reply: "CELERY MAN"},
		{Prompt: "Could you kick up the 4d3d3d3?", Reply: "4d3d3d3 engaged."},
		{Prompt: "add sequence: OYSTER", Reply: "OYSTER"},
		{Prompt: "Uhhh... give me a printout of Oyster smiling.", Reply: "*whirrrrrrrr*"},
		{Prompt: "Computer?", Reply: "Yes."},
		{Prompt: "Do we have any new sequences?", Reply: "I have a BETA sequence I've been working on. Would you like to see it?"},
		{Prompt: "... alright.", Reply: "Hey Paul, I'm Tayne, your latest dancer. I can't wait to entertain ya."},
		{Prompt: "Now Tayne I can get into.", Reply: "TAYNE"},
		{Prompt: "Can I see a hat wobble?", Reply: "Yes."},
		{Prompt: "And a flarhgunnstow?", Reply: "Yes."},
		{Prompt: "Is there any way to generate a nude Tayne?", Reply: "Not computing. Please repeat."},
		{Prompt: "Nude. Tayne.", Reply: "This is not suitable for work. Are you sure?"},
	}, finale)
}
