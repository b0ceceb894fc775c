package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

const (
	defaultAddr   = ":8080"
	defaultLocale = "pt-BR"
)

// Config is the storefront YAML configuration. Flags override file values.
type Config struct {
	Addr   string      `yaml:"addr"`
	Dev    bool        `yaml:"dev"`
	Locale string      `yaml:"locale"`
	Theme  ThemeConfig `yaml:"theme"`
	// Stylesheet replaces the embedded default CSS when set.
	Stylesheet string `yaml:"stylesheet"`
}

// ThemeConfig carries the go-theme selection emitted into every page.
type ThemeConfig struct {
	Name    string            `yaml:"name"`
	Variant string            `yaml:"variant"`
	CSSVars map[string]string `yaml:"css_vars"`
}

func defaultConfig() Config {
	return Config{
		Addr:   defaultAddr,
		Locale: defaultLocale,
	}
}

// loadConfig reads path over the defaults. An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := decodeConfig(bytes.NewReader(raw), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func decodeConfig(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		cfg.Addr = defaultAddr
	}
	if strings.TrimSpace(cfg.Locale) == "" {
		cfg.Locale = defaultLocale
	}
	return nil
}

// RendererTheme converts the theme section for render options. Nil when no
// theme is configured.
func (c Config) RendererTheme() *theme.RendererConfig {
	t := c.Theme
	if t.Name == "" && t.Variant == "" && len(t.CSSVars) == 0 {
		return nil
	}
	vars := make(map[string]string, len(t.CSSVars))
	for key, value := range t.CSSVars {
		vars[key] = value
	}
	return &theme.RendererConfig{
		Theme:   t.Name,
		Variant: t.Variant,
		CSSVars: vars,
	}
}
