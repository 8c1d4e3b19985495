package page

import (
	"context"
	"log/slog"

	"github.com/joao-fontenele/storefront-core/internal/analytics"
)

const homePath = "/home"

const homeContent = `<html><body><main>content</main></body></html>`

// Renderer produces the home page and reports each view to analytics.
type Renderer struct {
	tracker analytics.Tracker
	logger  *slog.Logger
}

func NewRenderer(tracker analytics.Tracker, logger *slog.Logger) *Renderer {
	return &Renderer{
		tracker: tracker,
		logger:  logger,
	}
}

// Render returns the home page content. The view is tracked exactly once
// per call; a tracker failure is logged and never affects the page.
func (r *Renderer) Render(ctx context.Context) string {
	if err := r.tracker.TrackView(ctx, homePath); err != nil {
		r.logger.Error("failed to track page view", "error", err, "path", homePath)
	}
	return homeContent
}
