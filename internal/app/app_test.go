package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atomicstack/rightclick/internal/opener"
)

func TestRunRejectsHeadlessWithoutHTTP(t *testing.T) {
	err := Run(context.Background(), Config{Headless: true})
	if !errors.Is(err, ErrNothingToRun) {
		t.Fatalf("expected ErrNothingToRun, got %v", err)
	}
}

func TestRunHeadlessStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	if err := Run(ctx, Config{Headless: true, HTTPAddr: "127.0.0.1:0", NoBrowser: true}); err != nil {
		t.Fatalf("expected clean shutdown, got %v", err)
	}
}

func TestRunHeadlessReportsListenFailure(t *testing.T) {
	err := Run(context.Background(), Config{Headless: true, HTTPAddr: "127.0.0.1:-1", NoBrowser: true})
	if err == nil {
		t.Fatalf("expected listen error")
	}
}

func TestNewLauncher(t *testing.T) {
	if _, ok := newLauncher(Config{NoBrowser: true}).(opener.Discard); !ok {
		t.Fatalf("expected discard launcher with no-browser")
	}
	if _, ok := newLauncher(Config{}).(*opener.Throttled); !ok {
		t.Fatalf("expected throttled browser launcher by default")
	}
}
