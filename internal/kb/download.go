package kb

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// Download fetches a resource and writes it into dir under its base name.
// It returns the written file path.
func Download(ctx context.Context, src Source, res Resource, dir string) (string, error) {
	name := downloadName(res.Path)
	if name == "" {
		return "", fmt.Errorf("resource %q has no path", res.DisplayTitle())
	}
	if isURL(res.Path) {
		// Absolute links live outside the site, whatever the source.
		src = NewHTTPSource(res.Path)
	}
	data, err := src.Fetch(ctx, res.Path)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", res.Path, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}
	dest := filepath.Join(dir, name)
	if err := atomic.WriteFile(dest, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("write %s: %w", dest, err)
	}
	return dest, nil
}

func downloadName(p string) string {
	if p == "" {
		return ""
	}
	if u, err := url.Parse(p); err == nil && u.Path != "" {
		p = u.Path
	}
	base := path.Base(p)
	if base == "." || base == "/" {
		return ""
	}
	return base
}
