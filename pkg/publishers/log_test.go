package publishers

import (
	"context"
	"testing"

	"github.com/samvad-hq/samvad-status-probe/internal/domain"
)

type recordingLogger struct {
	noopLogger
	infos []string
	warns []string
}

func (r *recordingLogger) InfoObj(msg, _ string, _ interface{}) { r.infos = append(r.infos, msg) }
func (r *recordingLogger) WarnObj(msg, _ string, _ interface{}) { r.warns = append(r.warns, msg) }

func TestLogPublisherLevelFollowsOutcome(t *testing.T) {
	log := &recordingLogger{}
	pub := NewLogPublisher("stdout", log)

	if err := pub.Publish(context.Background(), NewEvent(domain.Report{Outcome: domain.OutcomeSuccess})); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := pub.Publish(context.Background(), NewEvent(domain.Report{Outcome: domain.OutcomeFailure})); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(log.infos) != 1 || len(log.warns) != 1 {
		t.Fatalf("expected one info and one warn, got %d/%d", len(log.infos), len(log.warns))
	}
}
