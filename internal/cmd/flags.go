package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gravitrone/kbase/internal/config"
	"github.com/gravitrone/kbase/internal/kb"
	"github.com/gravitrone/kbase/internal/logging"
	"github.com/gravitrone/kbase/internal/search"
)

// Flags are the persistent flags shared by every command. Set values win over
// the config file.
type Flags struct {
	Site    string
	DataDir string
	LogFile string
	Debug   bool
}

// Register adds the flags to root as persistent flags.
func (f *Flags) Register(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.StringVar(&f.Site, "site", "", "site directory or base URL")
	pf.StringVar(&f.DataDir, "data-dir", "", "data directory inside the site")
	pf.StringVar(&f.LogFile, "log-file", "", "write JSON logs to this file")
	pf.BoolVar(&f.Debug, "debug", false, "log at debug level")
}

// Config loads the config file and applies the flag overrides.
func (f *Flags) Config() (*config.Config, error) {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return nil, err
	}
	if f.Site != "" {
		cfg.Site = f.Site
	}
	if f.DataDir != "" {
		cfg.DataDir = f.DataDir
	}
	if f.LogFile != "" {
		cfg.LogFile = f.LogFile
	}
	return cfg, nil
}

// Logger builds the logger for cfg. fallback is the output used when no log
// file is configured; empty means no logging.
func (f *Flags) Logger(cfg *config.Config, fallback string) (*zap.Logger, error) {
	path := cfg.LogFile
	if path == "" {
		path = fallback
	}
	return logging.New(path, f.Debug)
}

// Env is everything a command needs to read the knowledge base.
type Env struct {
	Config *config.Config
	Logger *zap.Logger
	Table  search.Table
	Loader *kb.Loader
}

// Env resolves the config, logger, search table and loader in one go.
func (f *Flags) Env(logFallback string) (*Env, error) {
	cfg, err := f.Config()
	if err != nil {
		return nil, err
	}
	logger, err := f.Logger(cfg, logFallback)
	if err != nil {
		return nil, err
	}
	table, err := search.LoadTable(cfg.SearchTable)
	if err != nil {
		return nil, err
	}
	loader := kb.NewLoader(kb.OpenSource(cfg.Site), cfg.DataDir, logger)
	return &Env{Config: cfg, Logger: logger, Table: table, Loader: loader}, nil
}

// Close flushes the logger.
func (e *Env) Close() {
	_ = e.Logger.Sync()
}

// NameStore saves the display name straight into the config file, leaving
// out any flag overrides.
type NameStore struct{}

func (NameStore) SaveDisplayName(name string) error {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}
	return cfg.SaveDisplayName(name)
}
