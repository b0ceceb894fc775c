package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-storefront"
	"github.com/goliatone/go-storefront/pkg/checkout"
	"github.com/goliatone/go-storefront/pkg/render"
	"github.com/goliatone/go-storefront/pkg/renderers/tui"
)

const defaultAttempts = 3

var errCheckoutRejected = errors.New("checkout rejected")

// order is printed once a terminal checkout is confirmed.
type order struct {
	Product string            `json:"product,omitempty"`
	Address map[string]string `json:"address"`
	Notice  string            `json:"notice"`
}

type checkoutOptions struct {
	attempts int
	confirm  bool
	driver   tui.PromptDriver
	render   render.RenderOptions
}

func newCheckoutCommand(root *rootOptions) *cobra.Command {
	opts := checkoutOptions{}

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Pick a coffee and fill the delivery address in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.resolve(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.Dev)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			store, err := storefront.New()
			if err != nil {
				return err
			}
			opts.render = render.RenderOptions{
				Locale:     cfg.Locale,
				Translator: chromeTranslations,
			}
			return runCheckout(cmd.Context(), store, opts, cmd.OutOrStdout(), logger)
		},
	}

	cmd.Flags().IntVar(&opts.attempts, "attempts", defaultAttempts, "how many times to prompt again after validation errors")
	cmd.Flags().BoolVar(&opts.confirm, "confirm", true, "ask for confirmation before submitting")
	return cmd
}

// runCheckout prompts for a product and the address until the form validates
// or the attempts run out, then writes the order as JSON to out.
func runCheckout(ctx context.Context, store *storefront.Storefront, opts checkoutOptions, out io.Writer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	attempts := opts.attempts
	if attempts <= 0 {
		attempts = 1
	}

	rendererOptions := []tui.Option{tui.WithConfirm(opts.confirm)}
	if opts.driver != nil {
		rendererOptions = append(rendererOptions, tui.WithPromptDriver(opts.driver))
	}
	renderer, err := tui.New(rendererOptions...)
	if err != nil {
		return err
	}

	form, err := store.NewCheckout()
	if err != nil {
		return err
	}

	renderOptions := opts.render
	product := ""
	for attempt := 1; attempt <= attempts; attempt++ {
		page := store.CheckoutPage(form)
		if product == "" {
			page.Products = store.Products()
		}

		raw, err := renderer.Render(ctx, page, renderOptions)
		if err != nil {
			return fmt.Errorf("checkout: %w", err)
		}
		answers, err := decodeAnswers(raw)
		if err != nil {
			return err
		}
		if id, ok := answers[tui.ProductKey]; ok {
			product = id
		}

		result, err := form.Submit(ctx, answers)
		if err != nil {
			return fmt.Errorf("checkout: %w", err)
		}
		if result.Valid {
			logger.Info("checkout confirmed", zap.String("product", product), zap.Int("attempt", attempt))
			return writeOrder(out, order{
				Product: product,
				Address: result.Values,
				Notice:  checkout.NoticeConfirmed,
			})
		}

		logger.Debug("checkout rejected", zap.Int("attempt", attempt), zap.Any("errors", result.Errors))
		renderOptions.Errors = result.Errors
	}
	return fmt.Errorf("checkout: %w after %d attempts", errCheckoutRejected, attempts)
}

func decodeAnswers(raw []byte) (map[string]string, error) {
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("checkout: decode answers: %w", err)
	}
	answers := make(map[string]string, len(decoded))
	for key, value := range decoded {
		if s, ok := value.(string); ok {
			answers[key] = s
		}
	}
	return answers, nil
}

func writeOrder(out io.Writer, o order) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(o); err != nil {
		return fmt.Errorf("checkout: write order: %w", err)
	}
	return nil
}
