package kb

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Source fetches data files and resources relative to a site root.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
	// Resolve returns a link for a resource path: a URL for HTTP sites, a
	// file path for directories. Absolute URLs are returned unchanged.
	Resolve(name string) string
}

// OpenSource returns an HTTPSource for http(s) locations and a DirSource for
// anything else.
func OpenSource(location string) Source {
	if isURL(location) {
		return NewHTTPSource(location)
	}
	return NewDirSource(location)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// --- Directory ---

// DirSource reads a site from a local directory.
type DirSource struct {
	root string
	fsys fs.FS
}

// NewDirSource opens a directory site.
func NewDirSource(root string) *DirSource {
	if root == "" {
		root = "."
	}
	return &DirSource{root: root, fsys: os.DirFS(root)}
}

// Root returns the directory the source reads from.
func (s *DirSource) Root() string {
	return s.root
}

// FS exposes the site as a file system.
func (s *DirSource) FS() fs.FS {
	return s.fsys
}

func (s *DirSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean := path.Clean(strings.TrimPrefix(name, "/"))
	if !fs.ValidPath(clean) {
		return nil, fmt.Errorf("invalid path %q", name)
	}
	return fs.ReadFile(s.fsys, clean)
}

func (s *DirSource) Resolve(name string) string {
	if name == "" || isURL(name) {
		return name
	}
	return filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(name, "/")))
}

// --- HTTP ---

// HTTPSource fetches a site over HTTP.
type HTTPSource struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPSource creates a source rooted at baseURL.
func NewHTTPSource(baseURL string, timeout ...time.Duration) *HTTPSource {
	httpTimeout := 30 * time.Second
	if len(timeout) > 0 && timeout[0] > 0 {
		httpTimeout = timeout[0]
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &HTTPSource{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
	}
}

// WithTimeout clones the source with a different HTTP timeout.
func (s *HTTPSource) WithTimeout(timeout time.Duration) *HTTPSource {
	return NewHTTPSource(s.baseURL, timeout)
}

func (s *HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Resolve(name), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return body, nil
}

func (s *HTTPSource) Resolve(name string) string {
	if name == "" || isURL(name) {
		return name
	}
	base, err := url.Parse(s.baseURL)
	if err != nil {
		return s.baseURL + strings.TrimPrefix(name, "/")
	}
	ref, err := url.Parse(name)
	if err != nil {
		return s.baseURL + strings.TrimPrefix(name, "/")
	}
	return base.ResolveReference(ref).String()
}
