package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"ngram/internal/domain"
)

// DataDir is the per-project directory holding the model database.
const DataDir = ".ngram"

// Config holds all configuration for the ngram tool.
type Config struct {
	Corpus  CorpusConfig  `yaml:"corpus"`
	Model   ModelConfig   `yaml:"model"`
	Store   StoreConfig   `yaml:"store"`
	Logging LoggingConfig `yaml:"logging"`
}

// CorpusConfig controls how training text is selected and read.
type CorpusConfig struct {
	Includes  []string `yaml:"includes"`
	Excludes  []string `yaml:"excludes"`
	Language  string   `yaml:"language"`  // "en" or "fr"
	Lowercase bool     `yaml:"lowercase"` // lowercase paragraphs on read
}

// ModelConfig holds training configuration.
type ModelConfig struct {
	Order   string `yaml:"order"` // "unigram" or "bigram"
	Workers int    `yaml:"workers"`
}

// StoreConfig locates the model database. An empty path means
// .ngram/models.db under the working directory.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Includes:  []string{"**/*.txt"},
			Excludes:  []string{"**/.git/**", "**/.ngram/**"},
			Language:  string(domain.English),
			Lowercase: true,
		},
		Model: ModelConfig{
			Order:   string(domain.Bigram),
			Workers: 4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for ngram.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "ngram.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, DataDir, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that language, order and workers hold usable values.
func (c *Config) Validate() error {
	if _, err := domain.ParseLanguage(c.Corpus.Language); err != nil {
		return fmt.Errorf("corpus.language: %w", err)
	}
	if _, err := domain.ParseOrder(c.Model.Order); err != nil {
		return fmt.Errorf("model.order: %w", err)
	}
	if c.Model.Workers < 1 {
		return fmt.Errorf("model.workers must be at least 1, got %d", c.Model.Workers)
	}
	return nil
}

// Language returns the parsed corpus language.
func (c *Config) Language() (domain.Language, error) {
	return domain.ParseLanguage(c.Corpus.Language)
}

// Order returns the parsed model order.
func (c *Config) Order() (domain.Order, error) {
	return domain.ParseOrder(c.Model.Order)
}

// StoreDBPath returns the path to the model database.
func StoreDBPath(dir string) string {
	return filepath.Join(dir, DataDir, "models.db")
}

// DBPath returns the configured database path, falling back to StoreDBPath.
// Relative paths are resolved against dir.
func (c *Config) DBPath(dir string) string {
	if c.Store.Path == "" {
		return StoreDBPath(dir)
	}
	if filepath.IsAbs(c.Store.Path) {
		return c.Store.Path
	}
	return filepath.Join(dir, c.Store.Path)
}

// EnsureDataDir ensures the .ngram directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, DataDir), 0755)
}
