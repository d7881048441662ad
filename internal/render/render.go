package render

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/samvad-hq/samvad-status-probe/internal/domain"
)

const maxHintLen = 200

// Panes mirrors the three diagnostic views: error, request and response.
type Panes struct {
	Error    string
	Request  string
	Response string
}

// FromReport splits a report into panes. Request/response stay empty for
// failures that carry no transaction.
func FromReport(r domain.Report) Panes {
	return Panes{
		Error:    r.Description,
		Request:  r.Request,
		Response: r.Response,
	}
}

// Text writes a human readable report.
func Text(w io.Writer, r domain.Report) error {
	p := FromReport(r)
	var b strings.Builder
	fmt.Fprintf(&b, "== %s [%s]\n", r.ProbeID, r.Outcome)
	fmt.Fprintf(&b, "error:    %s\n", orDash(p.Error))
	if r.Cause != "" {
		fmt.Fprintf(&b, "cause:    %s\n", r.Cause)
	}
	if p.Request != "" {
		fmt.Fprintf(&b, "\n-- request\n%s\n", p.Request)
	}
	if p.Response != "" {
		fmt.Fprintf(&b, "\n-- response\n%s\n", p.Response)
	}
	if r.Hint != "" {
		fmt.Fprintf(&b, "\n-- body hint\n%s\n", r.Hint)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Table writes a compact listing of reports.
func Table(w io.Writer, reports []domain.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CREATED\tPROBE\tSTATUS\tOUTCOME\tDESCRIPTION")
	for _, r := range reports {
		status := "-"
		if r.StatusCode > 0 {
			status = fmt.Sprint(r.StatusCode)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"), r.ProbeID, status, r.Outcome, r.Description)
	}
	return tw.Flush()
}

// Hint extracts a short human readable summary from a non-JSON body: the
// <title> (or first heading) of an HTML page, or a trimmed text snippet.
func Hint(header http.Header, body []byte) string {
	if len(bytes.TrimSpace(body)) == 0 {
		return ""
	}
	if isHTML(header, body) {
		if title := htmlTitle(body); title != "" {
			return truncate(title)
		}
	}
	if !utf8.Valid(body) {
		return fmt.Sprintf("<%d bytes binary>", len(body))
	}
	return truncate(strings.Join(strings.Fields(string(body)), " "))
}

func isHTML(header http.Header, body []byte) bool {
	if ct := header.Get("Content-Type"); ct != "" {
		if mt, _, err := mime.ParseMediaType(ct); err == nil {
			return mt == "text/html" || mt == "application/xhtml+xml"
		}
	}
	head := bytes.ToLower(bytes.TrimSpace(body))
	return bytes.HasPrefix(head, []byte("<!doctype html")) || bytes.HasPrefix(head, []byte("<html"))
}

func htmlTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	for _, sel := range []string{"title", "h1", "h2"} {
		if text := strings.TrimSpace(doc.Find(sel).First().Text()); text != "" {
			return strings.Join(strings.Fields(text), " ")
		}
	}
	return ""
}

func truncate(s string) string {
	if len(s) <= maxHintLen {
		return s
	}
	cut := maxHintLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
