package menu

const separatorTitle = "--------------"

// Text builds an inert label.
func Text(title string) Label {
	mustTitle(title)
	return Label(title)
}

// NewButton builds a clickable item. A nil onClick yields a button that does
// nothing when clicked; some entries are meant to look actionable and stay
// inert.
func NewButton(title string, onClick func(*State)) Button {
	mustTitle(title)
	return Button{title: title, onClick: onClick}
}

// Do builds a button whose action does not need the state.
func Do(title string, fn func()) Button {
	if fn == nil {
		return NewButton(title, nil)
	}
	return NewButton(title, func(*State) { fn() })
}

// New builds a submenu with a fixed list of children.
func New(title string, children ...Item) Submenu {
	mustTitle(title)
	fixed := cloneItems(children)
	return Submenu{title: title, children: func(*State) []Item {
		return cloneItems(fixed)
	}}
}

// Func builds a submenu whose children are computed from the state on every
// open.
func Func(title string, children func(*State) []Item) Submenu {
	mustTitle(title)
	return Submenu{title: title, children: children}
}

// Link builds a button that opens url.
func Link(title, url string) Button {
	return NewButton(title, func(s *State) {
		s.Open(url)
	})
}

// Separator returns the divider entry.
func Separator() Item {
	return Label(separatorTitle)
}

// IsSeparator reports whether item is a divider produced by Separator.
func IsSeparator(item Item) bool {
	label, ok := item.(Label)
	return ok && string(label) == separatorTitle
}

// Exchange is one prompt/reply step of a scripted dialog.
type Exchange struct {
	Prompt string
	Reply  string
}

// BackAndForth nests a dialog into submenus: each prompt opens to its reply
// followed by the next prompt, and the innermost prompt ends with last.
func BackAndForth(exchanges []Exchange, last Item) Item {
	current := last
	for i := len(exchanges) - 1; i >= 0; i-- {
		current = New(exchanges[i].Prompt, Text(exchanges[i].Reply), current)
	}
	return current
}

func mustTitle(title string) {
	if title == "" {
		panic("menu: empty title")
	}
}
