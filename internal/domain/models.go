package domain

import "time"

// Domain contains core models shared by the runner, journal and sinks.

// Outcome summarizes a single probe exchange.
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeFailure   Outcome = "failure"
	OutcomeCancelled Outcome = "cancelled"
)

// Report is the rendered diagnostic record of one probe.
type Report struct {
	ID          string    `json:"id"`
	ProbeID     string    `json:"probe_id"`
	Operation   string    `json:"operation,omitempty"`
	Outcome     Outcome   `json:"outcome"`
	Kind        string    `json:"kind,omitempty"`
	Description string    `json:"description"`
	StatusCode  int       `json:"status_code,omitempty"`
	Request     string    `json:"request,omitempty"`
	Response    string    `json:"response,omitempty"`
	Hint        string    `json:"hint,omitempty"`
	Cause       string    `json:"cause,omitempty"`
	ElapsedMs   int64     `json:"elapsed_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

// Failed reports whether the probe ended in a classified failure.
func (r Report) Failed() bool { return r.Outcome == OutcomeFailure }
