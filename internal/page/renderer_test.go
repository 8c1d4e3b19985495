package page

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

type spyTracker struct {
	err error

	calls int
	path  string
}

func (s *spyTracker) TrackView(_ context.Context, path string) error {
	s.calls++
	s.path = path
	return s.err
}

func TestRenderer_Render(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("returns page content and tracks the view once", func(t *testing.T) {
		tracker := &spyTracker{}
		renderer := NewRenderer(tracker, logger)

		content := renderer.Render(context.Background())

		if !strings.Contains(strings.ToLower(content), "content") {
			t.Errorf("expected page to contain %q, got %q", "content", content)
		}
		if tracker.calls != 1 {
			t.Errorf("expected exactly one tracking call, got %d", tracker.calls)
		}
		if tracker.path != "/home" {
			t.Errorf("expected tracked path /home, got %s", tracker.path)
		}
	})

	t.Run("tracker failure does not affect the page", func(t *testing.T) {
		tracker := &spyTracker{err: errors.New("analytics down")}
		renderer := NewRenderer(tracker, logger)

		content := renderer.Render(context.Background())

		if !strings.Contains(strings.ToLower(content), "content") {
			t.Errorf("expected page despite tracker failure, got %q", content)
		}
		if tracker.calls != 1 {
			t.Errorf("expected tracking still attempted once, got %d", tracker.calls)
		}
	})
}
