package render

import (
	"bytes"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/samvad-hq/samvad-status-probe/internal/domain"
)

func TestHintPrefersHTMLTitle(t *testing.T) {
	body := []byte(`<html><head><title> 502 Bad
	Gateway </title></head><body><h1>nginx</h1></body></html>`)
	header := http.Header{"Content-Type": {"text/html; charset=utf-8"}}

	if got := Hint(header, body); got != "502 Bad Gateway" {
		t.Fatalf("Hint = %q", got)
	}
}

func TestHintSniffsHTMLWithoutContentType(t *testing.T) {
	body := []byte(`<!DOCTYPE html><html><body><h1>Service Unavailable</h1></body></html>`)
	if got := Hint(nil, body); got != "Service Unavailable" {
		t.Fatalf("Hint = %q", got)
	}
}

func TestHintPlainTextSnippet(t *testing.T) {
	body := []byte(strings.Repeat("word ", 100))
	got := Hint(http.Header{"Content-Type": {"text/plain"}}, body)
	if !strings.HasSuffix(got, "...") || len(got) != maxHintLen+3 {
		t.Fatalf("expected truncated snippet, got %d chars", len(got))
	}
}

func TestHintEmptyBody(t *testing.T) {
	if got := Hint(nil, []byte("  \n")); got != "" {
		t.Fatalf("expected empty hint, got %q", got)
	}
}

func TestTextIncludesPanes(t *testing.T) {
	var buf bytes.Buffer
	err := Text(&buf, domain.Report{
		ProbeID:     "user-profile",
		Outcome:     domain.OutcomeFailure,
		Description: "failed getting user profile(bad request)",
		Request:     "GET https://httpbin.org/status/400",
		Response:    "400 Bad Request",
	})
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"failed getting user profile(bad request)", "-- request", "-- response", "400 Bad Request"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTextOmitsPanesWithoutTransaction(t *testing.T) {
	var buf bytes.Buffer
	_ = Text(&buf, domain.Report{ProbeID: "redirect", Outcome: domain.OutcomeFailure, Description: "server error(bad response)"})
	if strings.Contains(buf.String(), "-- request") {
		t.Fatalf("unexpected request pane:\n%s", buf.String())
	}
}

func TestTableListsReports(t *testing.T) {
	var buf bytes.Buffer
	err := Table(&buf, []domain.Report{
		{ProbeID: "a", StatusCode: 404, Outcome: domain.OutcomeFailure, Description: "not found", CreatedAt: time.Unix(0, 0)},
		{ProbeID: "b", Outcome: domain.OutcomeSuccess, CreatedAt: time.Unix(0, 0)},
	})
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], "404") || !strings.Contains(lines[2], " - ") {
		t.Fatalf("unexpected rows:\n%s", buf.String())
	}
}
