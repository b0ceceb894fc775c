package main

import (
	"context"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestWatchConfig_ReloadsOnWrite(t *testing.T) {
	path := writeConfig(t, "locale: pt-BR\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan Config, 4)
	stop, err := watchConfig(ctx, path, func(cfg Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer func() { _ = stop() }()

	if err := os.WriteFile(path, []byte("locale: en\n"), 0o600); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-reloaded:
			if cfg.Locale == "en" {
				return
			}
		case <-deadline:
			t.Fatalf("config was not reloaded")
		}
	}
}

func TestWatchConfig_MissingDirectory(t *testing.T) {
	_, err := watchConfig(context.Background(), "/nonexistent/storefront/config.yaml", func(Config) {}, zap.NewNop())
	if err == nil {
		t.Fatalf("expected error for a missing directory")
	}
}
