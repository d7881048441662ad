package publishers

import (
	"time"

	"github.com/samvad-hq/samvad-status-probe/internal/domain"
)

// Event represents the payload published downstream.
type Event struct {
	ProbeID     string        `json:"probe_id"`
	Kind        string        `json:"kind,omitempty"`
	Report      domain.Report `json:"report"`
	PublishedAt time.Time     `json:"published_at"`
}

// NewEvent constructs an Event for the given report.
func NewEvent(report domain.Report) Event {
	return Event{
		ProbeID:     report.ProbeID,
		Kind:        report.Kind,
		Report:      report,
		PublishedAt: time.Now().UTC(),
	}
}

// attributes returns the routing attributes sinks attach to each message.
func (e Event) attributes() map[string]string {
	attrs := map[string]string{
		"probe_id": e.ProbeID,
		"outcome":  string(e.Report.Outcome),
	}
	if e.Kind != "" {
		attrs["kind"] = e.Kind
	}
	return attrs
}
