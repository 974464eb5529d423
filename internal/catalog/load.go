package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// maxPayload caps how much of a remote catalog is read.
const maxPayload = 8 << 20

// LoadError reports that the catalog could not be read or parsed.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading catalog %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Loader reads a catalog from a file path or an http(s) URL.
type Loader struct {
	Source string
	Client *http.Client
}

// NewLoader returns a Loader for source. Remote sources use a client with a
// 30 second timeout.
func NewLoader(source string) *Loader {
	return &Loader{
		Source: source,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

// IsRemote reports whether the source is fetched over HTTP.
func (l *Loader) IsRemote() bool {
	return strings.HasPrefix(l.Source, "http://") || strings.HasPrefix(l.Source, "https://")
}

// Load reads and parses the catalog. Any failure is returned as *LoadError.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	var (
		data []byte
		err  error
	)
	if l.IsRemote() {
		data, err = l.fetch(ctx)
	} else {
		data, err = os.ReadFile(l.Source)
	}
	if err != nil {
		return nil, &LoadError{Source: l.Source, Err: err}
	}

	c, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Source: l.Source, Err: err}
	}
	return c, nil
}

// fetch downloads the catalog, bypassing any HTTP caches so that edits show
// up without a hard reload.
func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.Source, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "application/json")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxPayload))
}

// Parse decodes a JSON array of records. Only the top-level shape is
// checked; missing fields take their defaults.
func Parse(data []byte) (*Catalog, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("catalog must be a JSON array")
	}
	var records []Record
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	c := New(records)
	c.raw = append([]byte(nil), trimmed...)
	return c, nil
}
