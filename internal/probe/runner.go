package probe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/samvad-hq/samvad-status-probe/internal/domain"
	"github.com/samvad-hq/samvad-status-probe/internal/logger"
	"github.com/samvad-hq/samvad-status-probe/internal/render"
	"github.com/samvad-hq/samvad-status-probe/pkg/httpclient"
	"github.com/samvad-hq/samvad-status-probe/pkg/httperr"
	"github.com/samvad-hq/samvad-status-probe/pkg/publishers"
)

// Runner issues probes one at a time and turns each exchange into a report.
type Runner struct {
	client     httpclient.Client
	baseURL    string
	strictJSON bool
	journal    Journal
	publisher  EventPublisher
	recorder   Recorder
	log        logger.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithBaseURL sets the URL that probe paths are resolved against.
func WithBaseURL(base string) RunnerOption {
	return func(r *Runner) { r.baseURL = base }
}

// WithStrictJSON rejects response bodies that are not JSON.
func WithStrictJSON(strict bool) RunnerOption {
	return func(r *Runner) { r.strictJSON = strict }
}

func WithJournal(j Journal) RunnerOption {
	return func(r *Runner) { r.journal = j }
}

func WithPublisher(p EventPublisher) RunnerOption {
	return func(r *Runner) { r.publisher = p }
}

func WithRecorder(rec Recorder) RunnerOption {
	return func(r *Runner) { r.recorder = rec }
}

func WithLogger(log logger.Logger) RunnerOption {
	return func(r *Runner) { r.log = log }
}

// NewRunner wires a runner around the HTTP client collaborator.
func NewRunner(client httpclient.Client, opts ...RunnerOption) *Runner {
	r := &Runner{client: client}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	r.log = logger.Ensure(r.log)
	return r
}

// Run checks every probe in order and delivers each report to the journal,
// the recorder and the publisher. Classified failures are part of the reports,
// not the returned error; the error aggregates delivery failures and
// cancellation.
func (r *Runner) Run(ctx context.Context, probes []Probe) ([]domain.Report, error) {
	if r == nil || r.client == nil {
		return nil, fmt.Errorf("probe runner is not initialized")
	}
	if len(probes) == 0 {
		return nil, fmt.Errorf("no probes configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	reports := make([]domain.Report, 0, len(probes))
	var errs []error
	for _, p := range probes {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		report := r.Check(ctx, p)
		reports = append(reports, report)
		if report.Outcome == domain.OutcomeCancelled {
			errs = append(errs, ctx.Err())
			break
		}

		if err := r.deliver(ctx, report); err != nil {
			errs = append(errs, err)
			r.log.ErrorObj("probe report delivery failed", "delivery_error", map[string]any{
				"probe_id": p.ID,
				"error":    err.Error(),
			})
		}
	}

	return reports, errors.Join(errs...)
}

// Check issues a single probe and builds its report. It never fails: every
// outcome, including cancellation, is described by the report.
func (r *Runner) Check(ctx context.Context, p Probe) domain.Report {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	req := httperr.Request{
		Method: p.Method,
		URL:    p.ResolveURL(r.baseURL),
		Header: p.Headers,
	}
	if p.Body != "" {
		req.Body = []byte(p.Body)
	}

	resp, err := httperr.Perform(ctx, r.client, req, httperr.WithStrictJSON(r.strictJSON))

	report := domain.Report{
		ID:        uuid.NewString(),
		ProbeID:   p.ID,
		Operation: p.Operation,
		CreatedAt: start.UTC(),
		ElapsedMs: time.Since(start).Milliseconds(),
	}

	var herr *httperr.Error
	switch {
	case err == nil:
		report.Outcome = domain.OutcomeSuccess
		report.Description = "ok"
		report.StatusCode = resp.StatusCode
		report.Response = resp.Describe()
	case !errors.As(err, &herr):
		report.Outcome = domain.OutcomeCancelled
		report.Description = err.Error()
	default:
		opErr := &OperationError{Operation: p.Operation, Err: err}
		report.Outcome = domain.OutcomeFailure
		report.Kind = herr.Kind.Slug()
		report.Description = opErr.Describe()
		if herr.Cause != nil {
			report.Cause = herr.Cause.Error()
		}
		if tx := herr.Transaction; tx != nil {
			txResp := tx.Response()
			report.StatusCode = txResp.StatusCode
			report.Request = tx.Request().Describe()
			report.Response = txResp.Describe()
			if txResp.JSON == nil {
				report.Hint = render.Hint(txResp.Header, txResp.Body)
			}
		}
	}

	r.logReport(report)
	return report
}

func (r *Runner) deliver(ctx context.Context, report domain.Report) error {
	if r.recorder != nil {
		r.recorder.Observe(report)
	}

	var errs []error
	if r.journal != nil {
		if err := r.journal.Record(report); err != nil {
			errs = append(errs, fmt.Errorf("journal report %s: %w", report.ID, err))
		}
	}
	if r.publisher != nil {
		if _, err := r.publisher.Publish(ctx, publishers.NewEvent(report)); err != nil {
			errs = append(errs, fmt.Errorf("publish report %s: %w", report.ID, err))
		}
	}
	return errors.Join(errs...)
}

func (r *Runner) logReport(report domain.Report) {
	meta := map[string]any{
		"probe_id":    report.ProbeID,
		"outcome":     report.Outcome,
		"kind":        report.Kind,
		"status_code": report.StatusCode,
		"elapsed_ms":  report.ElapsedMs,
	}
	switch report.Outcome {
	case domain.OutcomeFailure:
		r.log.WarnObj(report.Description, "probe_result", meta)
	case domain.OutcomeCancelled:
		r.log.DebugObj("probe cancelled", "probe_result", meta)
	default:
		r.log.InfoObj("probe succeeded", "probe_result", meta)
	}
}
