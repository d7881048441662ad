package probe

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, name, raw string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestLoadCatalogYAML(t *testing.T) {
	path := writeCatalog(t, "probes.yaml", `
probes:
  - id: profile
    operation: " getting user profile "
    path: /status/400
  - id: register
    operation: register user
    method: post
    path: /status/401
    headers:
      X-Empty: ""
      Accept: application/json
`)

	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	all := cat.All()
	if len(all) != 2 || all[0].ID != "profile" || all[1].ID != "register" {
		t.Fatalf("unexpected probes: %#v", all)
	}
	if all[0].Operation != "getting user profile" || all[0].Method != http.MethodGet {
		t.Fatalf("profile not sanitized: %#v", all[0])
	}
	reg, ok := cat.ByID("register")
	if !ok {
		t.Fatalf("register probe missing")
	}
	if reg.Method != http.MethodPost {
		t.Fatalf("method = %s, want POST", reg.Method)
	}
	if _, ok := reg.Headers["X-Empty"]; ok || reg.Headers["Accept"] != "application/json" {
		t.Fatalf("headers not sanitized: %#v", reg.Headers)
	}
}

func TestLoadCatalogJSON(t *testing.T) {
	path := writeCatalog(t, "probes.json", `{"probes":[{"id":"p500","path":"/status/500"}]}`)
	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if _, ok := cat.ByID("p500"); !ok {
		t.Fatalf("p500 probe missing")
	}
}

func TestLoadCatalogRejectsInvalidEntries(t *testing.T) {
	cases := map[string]string{
		"missing path": "probes:\n  - id: a\n",
		"missing id":   "probes:\n  - path: /status/200\n",
		"duplicate":    "probes:\n  - id: a\n    path: /a\n  - id: a\n    path: /b\n",
		"empty":        "probes: []\n",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadCatalog(writeCatalog(t, "probes.yaml", raw)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadCatalogEmptyPath(t *testing.T) {
	if _, err := LoadCatalog("  "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestResolveURL(t *testing.T) {
	p := StatusProbe(404)
	if got := p.ResolveURL("https://httpbin.org/"); got != "https://httpbin.org/status/404" {
		t.Fatalf("ResolveURL = %s", got)
	}
	p.URL = "http://other.example/x"
	if got := p.ResolveURL("https://httpbin.org"); got != "http://other.example/x" {
		t.Fatalf("absolute URL not preferred: %s", got)
	}
}

func TestNilCatalog(t *testing.T) {
	var c *Catalog
	if c.All() != nil {
		t.Fatalf("expected nil probes")
	}
	if _, ok := c.ByID("x"); ok {
		t.Fatalf("expected miss on nil catalog")
	}
}
