package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// NameKey is the config key holding the remembered display name.
const NameKey = "teleop_name"

// Config holds CLI configuration stored at ~/.kbase/config.
type Config struct {
	DisplayName string `yaml:"teleop_name"`
	Site        string `yaml:"site"`
	DataDir     string `yaml:"data_dir"`
	FAQFile     string `yaml:"faq_file"`
	SearchTable string `yaml:"search_table,omitempty"`
	DownloadDir string `yaml:"download_dir"`
	LogFile     string `yaml:"log_file,omitempty"`
	Addr        string `yaml:"addr"`
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".kbase", "config")
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Site == "" {
		c.Site = "."
	}
	if c.DataDir == "" {
		c.DataDir = "data/"
	}
	if c.FAQFile == "" {
		c.FAQFile = "faq.json"
	}
	if c.DownloadDir == "" {
		home, _ := os.UserHomeDir()
		c.DownloadDir = filepath.Join(home, "Downloads")
	}
	if c.Addr == "" {
		c.Addr = "127.0.0.1:8080"
	}
}

// Load reads and parses the config file. Returns error if missing or insecure.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return writeFile(data)
}

// SaveDisplayName stores the trimmed name under NameKey. Only that key is
// written; the rest of the file stays as the user wrote it.
func (c *Config) SaveDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if err := setKey(NameKey, name); err != nil {
		return err
	}
	c.DisplayName = name
	return nil
}

// setKey rewrites one top-level scalar of the config file, keeping the other
// keys, their order and comments.
func setKey(key, value string) error {
	var doc yaml.Node
	data, err := os.ReadFile(Path())
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("read config: %w", err)
	}

	if doc.Kind == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("config is not a mapping")
	}
	root := doc.Content[0]

	val := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
	replaced := false
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == key {
			root.Content[i+1] = val
			replaced = true
		}
	}
	if !replaced {
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, val)
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return writeFile(out)
}

func writeFile(data []byte) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return os.Chmod(path, 0600)
}
