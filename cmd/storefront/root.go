package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	configPath string
	dev        bool
	addr       string
	locale     string
}

func newRootCommand() *cobra.Command {
	return buildRootCommand(&rootOptions{})
}

func buildRootCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Coffee storefront: catalog and checkout",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flags.BoolVar(&opts.dev, "dev", false, "development logging")
	flags.StringVar(&opts.locale, "locale", "", "locale for page chrome (default pt-BR)")

	cmd.AddCommand(newServeCommand(opts), newCheckoutCommand(opts))
	return cmd
}

// resolve loads the config file and applies flags that were set explicitly.
func (o *rootOptions) resolve(cmd *cobra.Command) (Config, error) {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("dev") {
		cfg.Dev = o.dev
	}
	if flags.Changed("locale") && o.locale != "" {
		cfg.Locale = o.locale
	}
	if flags.Changed("addr") && o.addr != "" {
		cfg.Addr = o.addr
	}
	return cfg, nil
}

func newLogger(dev bool) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if dev {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
