package httperr

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Describe renders the request for diagnostic display.
func (r Request) Describe() string {
	var b strings.Builder
	if r.Method != "" {
		b.WriteString(r.Method)
		b.WriteByte(' ')
	}
	b.WriteString(r.URL)

	if len(r.Header) > 0 {
		keys := make([]string, 0, len(r.Header))
		for k := range r.Header {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString("\n")
		for _, k := range keys {
			fmt.Fprintf(&b, "\n%s: %s", k, r.Header[k])
		}
	}
	if r.Body != nil {
		fmt.Fprintf(&b, "\n\n%d bytes", len(r.Body))
	}
	return b.String()
}

// Describe renders the response status, headers and decoded JSON.
func (r Response) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s", r.StatusCode, http.StatusText(r.StatusCode))

	if len(r.Header) > 0 {
		keys := make([]string, 0, len(r.Header))
		for k := range r.Header {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString("\n")
		for _, k := range keys {
			fmt.Fprintf(&b, "\n%s: %s", k, strings.Join(r.Header[k], ", "))
		}
	}
	if r.JSON != nil {
		pretty, err := json.MarshalIndent(r.JSON, "", "  ")
		if err == nil {
			b.WriteString("\n\n")
			b.Write(pretty)
		}
	}
	return b.String()
}
