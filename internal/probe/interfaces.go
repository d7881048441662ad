package probe

import (
	"context"

	"github.com/samvad-hq/samvad-status-probe/internal/domain"
	"github.com/samvad-hq/samvad-status-probe/pkg/publishers"
)

// Journal persists finished reports for later inspection.
type Journal interface {
	Record(report domain.Report) error
}

// EventPublisher forwards reports to downstream sinks.
type EventPublisher interface {
	Publish(ctx context.Context, evt publishers.Event) (int, error)
}

// Recorder observes finished reports (metrics).
type Recorder interface {
	Observe(report domain.Report)
}
