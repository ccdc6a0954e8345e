package command

import (
	"errors"
	"testing"
)

type stubOpener struct {
	urls []string
	err  error
}

func (s *stubOpener) Open(url string) error {
	s.urls = append(s.urls, url)
	return s.err
}

func TestExecuteWithoutURLsIsNil(t *testing.T) {
	bus := New(&stubOpener{})
	if cmd := bus.Execute(Request{ID: "0", Label: "Edit"}); cmd != nil {
		t.Fatalf("expected nil command without urls")
	}
}

func TestExecuteOpensEveryURL(t *testing.T) {
	stub := &stubOpener{}
	bus := New(stub)
	cmd := bus.Execute(Request{ID: "0.1", Label: "Mmmhmm.", URLs: []string{"https://a.example", "https://b.example"}})
	if cmd == nil {
		t.Fatalf("expected command")
	}
	if len(stub.urls) != 0 {
		t.Fatalf("expected nothing opened before the command runs")
	}
	msg, ok := cmd().(ActionResult)
	if !ok {
		t.Fatalf("expected ActionResult")
	}
	if msg.Err != nil {
		t.Fatalf("unexpected error: %v", msg.Err)
	}
	if len(stub.urls) != 2 {
		t.Fatalf("expected 2 urls opened, got %v", stub.urls)
	}
	if msg.Info != "Opened https://b.example" {
		t.Fatalf("unexpected info %q", msg.Info)
	}
}

func TestExecuteReportsOpenerFailure(t *testing.T) {
	boom := errors.New("no browser")
	bus := New(&stubOpener{err: boom})
	msg := bus.Execute(Request{Label: "Why", URLs: []string{"https://why.example"}})().(ActionResult)
	if !errors.Is(msg.Err, boom) {
		t.Fatalf("expected wrapped opener error, got %v", msg.Err)
	}
	if msg.Info != "" {
		t.Fatalf("expected no info on failure, got %q", msg.Info)
	}
}
