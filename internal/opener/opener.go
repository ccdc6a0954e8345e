// Package opener launches external resources for menu links.
package opener

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pkg/browser"

	"github.com/atomicstack/rightclick/internal/logging/events"
)

// Browser opens URLs with the desktop's default handler.
type Browser struct{}

func init() {
	// xdg-open and friends write to the terminal the popup is drawn on.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Open implements menu.Opener.
func (Browser) Open(url string) error {
	if strings.TrimSpace(url) == "" {
		return fmt.Errorf("empty url")
	}
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

// Discard drops every URL. It backs --no-browser and tests.
type Discard struct{}

// Open implements menu.Opener.
func (Discard) Open(url string) error {
	events.Engine.Open(url, "discarded")
	return nil
}

// Queue collects URLs requested during a click so the presentation layer can
// open them once the click has returned.
type Queue struct {
	mu      sync.Mutex
	pending []string
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Open implements menu.Opener by recording url.
func (q *Queue) Open(url string) error {
	q.mu.Lock()
	q.pending = append(q.pending, url)
	q.mu.Unlock()
	events.Engine.Open(url, "queued")
	return nil
}

// Drain returns and forgets the queued URLs in request order.
func (q *Queue) Drain() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	urls := q.pending
	q.pending = nil
	return urls
}
