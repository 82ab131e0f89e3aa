// Package newsapi loads headline source definitions and fetches articles from them.
package newsapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Source describes one headlines endpoint.
type Source struct {
	ID       string            `json:"id" yaml:"id"`
	Name     string            `json:"name" yaml:"name"`
	Type     string            `json:"type" yaml:"type"`
	Endpoint string            `json:"endpoint" yaml:"endpoint"`
	PageSize int               `json:"page_size" yaml:"page_size"`
	Params   map[string]string `json:"params" yaml:"params"`
	Headers  map[string]string `json:"headers" yaml:"headers"`
}

const (
	DefaultEndpoint = "https://newsapi.org/v2/top-headlines"
	defaultPageSize = 20
	maxPageSize     = 100
)

// DefaultSource is the US technology top-headlines feed.
func DefaultSource() Source {
	return sanitizeSource(Source{
		ID:       "newsapi-tech-us",
		Name:     "NewsAPI technology headlines (US)",
		Type:     SourceTypeTopHeadlines,
		Endpoint: DefaultEndpoint,
		Params: map[string]string{
			"country":  "us",
			"category": "technology",
		},
	})
}

type sourcesFile struct {
	Sources []Source `json:"sources" yaml:"sources"`
}

// Registry holds the sources declared in the sources file.
type Registry struct {
	mu      sync.RWMutex
	sources []Source
	idx     map[string]Source
}

// NewRegistry builds a registry from already validated sources.
func NewRegistry(sources ...Source) (*Registry, error) {
	reg := &Registry{
		sources: make([]Source, 0, len(sources)),
		idx:     make(map[string]Source, len(sources)),
	}
	for i, src := range sources {
		src = sanitizeSource(src)
		if err := validateSource(src); err != nil {
			return nil, fmt.Errorf("sources[%d]: %w", i, err)
		}
		if _, exists := reg.idx[src.ID]; exists {
			return nil, fmt.Errorf("duplicate source id %q", src.ID)
		}
		reg.sources = append(reg.sources, src)
		reg.idx[src.ID] = src
	}
	return reg, nil
}

// LoadRegistry loads sources from a YAML/JSON file. An empty path yields the default source.
func LoadRegistry(path string) (*Registry, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return NewRegistry(DefaultSource())
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sources file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}

	parsed, err := parseSources(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if len(parsed.Sources) == 0 {
		return nil, errors.New("sources file contains no sources entries")
	}
	return NewRegistry(parsed.Sources...)
}

func parseSources(data []byte, ext string) (sourcesFile, error) {
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

	var errs []error
	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		var out sourcesFile
		if err := d.fn(data, &out); err != nil {
			errs = append(errs, fmt.Errorf("decode %s sources: %w", d.name, err))
			continue
		}
		return out, nil
	}
	if len(errs) > 0 {
		return sourcesFile{}, errors.Join(errs...)
	}
	return sourcesFile{}, errors.New("sources file format not recognized (expected YAML or JSON)")
}

func sanitizeSource(s Source) Source {
	s.ID = strings.TrimSpace(s.ID)
	s.Name = strings.TrimSpace(s.Name)
	s.Type = strings.ToLower(strings.TrimSpace(s.Type))
	s.Endpoint = strings.TrimSpace(s.Endpoint)

	if s.Type == "" {
		s.Type = SourceTypeTopHeadlines
	}
	if s.Endpoint == "" {
		s.Endpoint = DefaultEndpoint
	}
	if s.PageSize <= 0 {
		s.PageSize = defaultPageSize
	}
	if s.PageSize > maxPageSize {
		s.PageSize = maxPageSize
	}
	s.Params = trimMap(s.Params)
	s.Headers = trimMap(s.Headers)
	return s
}

func trimMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		key := strings.TrimSpace(k)
		val := strings.TrimSpace(v)
		if key == "" || val == "" {
			continue
		}
		out[key] = val
	}
	return out
}

func validateSource(s Source) error {
	if s.ID == "" {
		return errors.New("id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("name is required for source %q", s.ID)
	}
	if err := checkNoEmbeddedKey(s); err != nil {
		return fmt.Errorf("source %q %w; set NEWS_API_KEY instead", s.ID, err)
	}
	return nil
}

// checkNoEmbeddedKey rejects credentials in the endpoint query, params or headers.
func checkNoEmbeddedKey(s Source) error {
	if s.Endpoint != "" {
		u, err := url.Parse(s.Endpoint)
		if err != nil {
			return fmt.Errorf("has invalid endpoint: %w", err)
		}
		for key := range u.Query() {
			if strings.EqualFold(key, "apiKey") {
				return errors.New("must not embed apiKey in endpoint")
			}
		}
	}
	for key := range s.Params {
		if strings.EqualFold(strings.TrimSpace(key), "apiKey") {
			return errors.New("must not embed apiKey in params")
		}
	}
	for key := range s.Headers {
		if strings.EqualFold(strings.TrimSpace(key), "X-Api-Key") || strings.EqualFold(strings.TrimSpace(key), "Authorization") {
			return fmt.Errorf("must not embed %s header", key)
		}
	}
	return nil
}

// All returns a copy of the configured sources.
func (r *Registry) All() []Source {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Source, len(r.sources))
	copy(out, r.sources)
	return out
}

// ByID returns the source for id, or the first source when id is empty.
func (r *Registry) ByID(id string) (Source, bool) {
	if r == nil {
		return Source{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	id = strings.TrimSpace(id)
	if id == "" {
		if len(r.sources) == 0 {
			return Source{}, false
		}
		return r.sources[0], true
	}
	src, ok := r.idx[id]
	return src, ok
}
