package probe

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Probe is a named operation issued against the target service.
type Probe struct {
	ID        string            `json:"id" yaml:"id"`
	Operation string            `json:"operation" yaml:"operation"`
	Method    string            `json:"method" yaml:"method"`
	Path      string            `json:"path" yaml:"path"`
	URL       string            `json:"url" yaml:"url"`
	Headers   map[string]string `json:"headers" yaml:"headers"`
	Body      string            `json:"body" yaml:"body"`
}

type catalogFile struct {
	Probes []Probe `json:"probes" yaml:"probes"`
}

// Catalog holds probe definitions loaded from a YAML/JSON file.
type Catalog struct {
	mu     sync.RWMutex
	probes []Probe
	idx    map[string]Probe
}

// LoadCatalog loads probe definitions from a YAML/JSON file.
func LoadCatalog(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("probes file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open probes file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read probes file: %w", err)
	}

	parsed, err := parseCatalog(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	return NewCatalog(parsed.Probes)
}

// NewCatalog validates probes and indexes them by id.
func NewCatalog(probes []Probe) (*Catalog, error) {
	if len(probes) == 0 {
		return nil, errors.New("probes file contains no probes entries")
	}

	c := &Catalog{
		probes: make([]Probe, len(probes)),
		idx:    make(map[string]Probe, len(probes)),
	}
	for i := range probes {
		p := sanitizeProbe(probes[i])
		if err := validateProbe(p); err != nil {
			return nil, fmt.Errorf("probes[%d]: %w", i, err)
		}
		if _, exists := c.idx[p.ID]; exists {
			return nil, fmt.Errorf("duplicate probe id %q", p.ID)
		}
		c.probes[i] = p
		c.idx[p.ID] = p
	}
	return c, nil
}

func parseCatalog(data []byte, ext string) (catalogFile, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))

	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		var out catalogFile
		if err := d.fn(data, &out); err == nil {
			return out, nil
		}
	}

	return catalogFile{}, errors.New("probes file format not recognized (expected YAML or JSON)")
}

func sanitizeProbe(p Probe) Probe {
	p.ID = strings.TrimSpace(p.ID)
	p.Operation = strings.TrimSpace(p.Operation)
	p.Method = strings.ToUpper(strings.TrimSpace(p.Method))
	if p.Method == "" {
		p.Method = http.MethodGet
	}
	p.Path = strings.TrimSpace(p.Path)
	p.URL = strings.TrimSpace(p.URL)

	if len(p.Headers) > 0 {
		headers := make(map[string]string, len(p.Headers))
		for k, v := range p.Headers {
			key, val := strings.TrimSpace(k), strings.TrimSpace(v)
			if key == "" || val == "" {
				continue
			}
			headers[key] = val
		}
		p.Headers = headers
	}
	return p
}

func validateProbe(p Probe) error {
	if p.ID == "" {
		return errors.New("id is required")
	}
	if p.Path == "" && p.URL == "" {
		return fmt.Errorf("path or url is required for probe %q", p.ID)
	}
	return nil
}

// ByID returns the probe by id.
func (c *Catalog) ByID(id string) (Probe, bool) {
	if c == nil {
		return Probe{}, false
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Probe{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.idx[id]
	return p, ok
}

// All returns all configured probes in file order.
func (c *Catalog) All() []Probe {
	if c == nil {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Probe, len(c.probes))
	copy(out, c.probes)
	return out
}

// StatusProbe builds an ad-hoc probe for /status/<code>.
func StatusProbe(code int) Probe {
	return Probe{
		ID:     fmt.Sprintf("status-%d", code),
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/status/%d", code),
	}
}

// ResolveURL joins the probe path onto base unless the probe has its own URL.
func (p Probe) ResolveURL(base string) string {
	if p.URL != "" {
		return p.URL
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(p.Path, "/")
}
