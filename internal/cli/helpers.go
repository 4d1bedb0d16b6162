package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"ngram/config"
	"ngram/internal/adapter/store"
)

// openStore opens the model database. With create unset a missing database
// is reported instead of created.
func openStore(create bool) (*store.BoltStore, error) {
	cfg := GetConfig()
	dir := GetRootDir()
	dbPath := cfg.DBPath(dir)

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		if !create {
			return nil, fmt.Errorf("no model database at %s. Run 'ngram train' first", dbPath)
		}
		if cfg.Store.Path == "" {
			if err := config.EnsureDataDir(dir); err != nil {
				return nil, fmt.Errorf("failed to create %s directory: %w", config.DataDir, err)
			}
		}
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open model store: %w", err)
	}

	result, err := st.CheckMigration(cfg)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to check migration: %w", err)
	}
	if result.NeedsRebuild {
		GetLogger().Warn("stored models were built with a different corpus configuration",
			zap.String("reason", result.Reason))
	}
	if result.NeedsMigration {
		GetLogger().Info("running schema migration", zap.String("reason", result.Reason))
		if err := st.Migrate(cfg); err != nil {
			st.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}
	return st, nil
}

// openOutput returns stdout for an empty path, otherwise a created file.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output: %w", err)
	}
	return f, f.Close, nil
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
