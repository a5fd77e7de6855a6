package kb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tailscale/hujson"
	"go.uber.org/zap"
)

const (
	// DefaultDataDir is where data files live relative to the site root.
	DefaultDataDir = "data/"
	// IndexFile is the section index inside the data directory.
	IndexFile = "sections.json"
	// DefaultFAQFile is the FAQ collection inside the data directory.
	DefaultFAQFile = "faq.json"
)

// Loader reads a library from a Source.
type Loader struct {
	src     Source
	dataDir string
	logger  *zap.Logger
}

// NewLoader creates a loader. An empty dataDir means DefaultDataDir; a nil
// logger disables logging.
func NewLoader(src Source, dataDir string, logger *zap.Logger) *Loader {
	if dataDir == "" {
		dataDir = DefaultDataDir
	}
	if !strings.HasSuffix(dataDir, "/") {
		dataDir += "/"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{src: src, dataDir: dataDir, logger: logger}
}

// Source returns the source the loader reads from.
func (l *Loader) Source() Source {
	return l.src
}

// Load fetches the section index and then every section's items, one after
// another in index order. The first failure aborts the whole load.
func (l *Loader) Load(ctx context.Context) (*Library, error) {
	var sections []Section
	if err := l.fetchJSON(ctx, IndexFile, &sections); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(sections))
	for _, s := range sections {
		if _, ok := seen[s.ID]; ok {
			return nil, fmt.Errorf("duplicate section id %q", s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	lib := &Library{
		Sections: sections,
		Items:    make(map[string][]Item, len(sections)),
	}
	for _, s := range sections {
		var items []Item
		if err := l.fetchJSON(ctx, s.File, &items); err != nil {
			return nil, err
		}
		lib.Items[s.ID] = items
		l.logger.Debug("section loaded",
			zap.String("section", s.ID),
			zap.Int("items", len(items)))
	}
	l.logger.Info("library loaded", zap.Int("sections", len(sections)))
	return lib, nil
}

// LoadFAQ fetches the FAQ collection. An empty file means DefaultFAQFile.
func (l *Loader) LoadFAQ(ctx context.Context, file string) ([]FAQEntry, error) {
	if file == "" {
		file = DefaultFAQFile
	}
	var entries []FAQEntry
	if err := l.fetchJSON(ctx, file, &entries); err != nil {
		return nil, err
	}
	l.logger.Info("faq loaded", zap.Int("entries", len(entries)))
	return entries, nil
}

func (l *Loader) fetchJSON(ctx context.Context, file string, v any) error {
	name := l.dataDir + strings.TrimPrefix(file, "/")
	data, err := l.src.Fetch(ctx, name)
	if err != nil {
		l.logger.Warn("fetch failed", zap.String("path", name), zap.Error(err))
		return fmt.Errorf("could not load %s: %w", name, err)
	}
	if err := decodeJSON(data, v); err != nil {
		return fmt.Errorf("could not load %s: %w", name, err)
	}
	return nil
}

// decodeJSON accepts comments and trailing commas so data files stay easy to
// edit by hand.
func decodeJSON(data []byte, v any) error {
	std, err := hujson.Standardize(data)
	if err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	if err := json.Unmarshal(std, v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}
