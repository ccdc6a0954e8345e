package command

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/rightclick/internal/logging/events"
	"github.com/atomicstack/rightclick/internal/menu"
)

// Request carries the URLs a click asked to open.
type Request struct {
	ID    string
	Label string
	URLs  []string
}

// ActionResult reports the outcome of the side effects of a click back to
// the model.
type ActionResult struct {
	Label string
	Info  string
	Err   error
}

// Bus performs click side effects away from the update loop.
type Bus struct {
	opener menu.Opener
}

// New initialises a command bus that opens URLs with opener.
func New(opener menu.Opener) *Bus {
	return &Bus{opener: opener}
}

// Execute wraps the URL launches of a click into a Bubble Tea command while
// emitting trace logs. It returns nil when there is nothing to open.
func (b *Bus) Execute(req Request) tea.Cmd {
	if len(req.URLs) == 0 || b.opener == nil {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	events.Command.Queue(req.ID, req.Label)
	urls := append([]string(nil), req.URLs...)
	return func() tea.Msg {
		var errs []error
		for _, url := range urls {
			if err := b.opener.Open(url); err != nil {
				errs = append(errs, err)
			}
		}
		msg := ActionResult{Label: req.Label, Err: errors.Join(errs...)}
		if msg.Err == nil {
			msg.Info = fmt.Sprintf("Opened %s", urls[len(urls)-1])
		}
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
