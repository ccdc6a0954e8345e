package content

import "github.com/atomicstack/rightclick/internal/menu"

var helpTopics = []string{"Tutorial", "Support", "Manual", "Troubleshooting", "FAQ", "Guide", "Q&A", "User forums"}

// Help lists the help topics except without, followed by the credits. Each
// topic leads to the same list minus itself. An empty without keeps every
// topic.
func Help(without string) []menu.Item {
	items := make([]menu.Item, 0, len(helpTopics)+2)
	for _, topic := range helpTopics {
		if topic == without {
			continue
		}
		items = append(items, menu.Func(topic, func(*menu.State) []menu.Item {
			return Help(topic)
		}))
	}
	items = append(items, menu.Separator(), creditsMenu())
	return items
}

func creditsMenu() menu.Item {
	children := make([]menu.Item, 0, len(links.Credits.People)+1)
	children = append(children, menu.Text(links.Credits.Intro))
	children = append(children, linkItems(links.Credits.People)...)
	return menu.New("Credits", children...)
}
