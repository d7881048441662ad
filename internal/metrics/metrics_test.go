package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/samvad-hq/samvad-status-probe/internal/domain"
)

func TestObserveCountsByOutcomeAndKind(t *testing.T) {
	c := New(prometheus.NewRegistry())

	c.Observe(domain.Report{ProbeID: "p404", Outcome: domain.OutcomeFailure, Kind: "not_found", StatusCode: 404, ElapsedMs: 12})
	c.Observe(domain.Report{ProbeID: "p404", Outcome: domain.OutcomeFailure, Kind: "not_found", StatusCode: 404, ElapsedMs: 8})
	c.Observe(domain.Report{ProbeID: "p200", Outcome: domain.OutcomeSuccess, StatusCode: 200})

	if got := testutil.ToFloat64(c.probesTotal.WithLabelValues("p404", "failure", "not_found")); got != 2 {
		t.Fatalf("not_found count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.probesTotal.WithLabelValues("p200", "success", "none")); got != 1 {
		t.Fatalf("success count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.lastStatus.WithLabelValues("p404")); got != 404 {
		t.Fatalf("last status = %v, want 404", got)
	}
}

func TestNilCollectorObserveIsNoop(t *testing.T) {
	var c *Collector
	c.Observe(domain.Report{ProbeID: "x"})
}

func TestHandlerServesRegistry(t *testing.T) {
	c := New(nil)
	c.Observe(domain.Report{ProbeID: "p500", Outcome: domain.OutcomeFailure, Kind: "internal_server_error", StatusCode: 500})

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("get metrics: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if !strings.Contains(string(body), `statusprobe_probes_total{kind="internal_server_error",outcome="failure",probe="p500"} 1`) {
		t.Fatalf("metrics output missing counter:\n%s", body)
	}
}
