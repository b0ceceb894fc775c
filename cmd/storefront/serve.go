package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-storefront"
	catalogcomponent "github.com/goliatone/go-storefront/components/catalog"
	"github.com/goliatone/go-storefront/pkg/checkout"
	"github.com/goliatone/go-storefront/pkg/render"
	"github.com/goliatone/go-storefront/pkg/renderers/vanilla"
)

const (
	checkoutPath = "/checkout"
	apiBasePath  = "/"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog and checkout pages over HTTP",
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

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if !cmd.Flags().Changed("watch") {
				watch = cfg.Dev
			}
			return serve(ctx, cfg, root.configPath, watch, logger)
		},
	}
	cmd.Flags().StringVar(&root.addr, "addr", "", "HTTP listen address (default :8080)")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload theme and locale when the config file changes (default on with --dev)")
	return cmd
}

func serve(ctx context.Context, cfg Config, configPath string, watch bool, logger *zap.Logger) error {
	s, err := newServer(cfg, logger)
	if err != nil {
		return err
	}

	if watch && configPath != "" {
		stopWatch, err := watchConfig(ctx, configPath, s.reload, logger)
		if err != nil {
			return err
		}
		defer func() { _ = stopWatch() }()
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("storefront listening", zap.String("addr", cfg.Addr), zap.Bool("dev", cfg.Dev))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("storefront shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type server struct {
	http.Handler

	store   *storefront.Storefront
	logger  *zap.Logger
	options atomic.Pointer[render.RenderOptions]
}

// newServer wires the storefront pages, the product API and the embedded
// assets onto a chi router.
func newServer(cfg Config, logger *zap.Logger) (*server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var rendererOptions []vanilla.Option
	if cfg.Stylesheet != "" {
		rendererOptions = append(rendererOptions,
			vanilla.WithDefaultStyles(false),
			vanilla.WithStylesheet(cfg.Stylesheet),
		)
	}
	registry, err := storefront.NewRenderRegistry(rendererOptions...)
	if err != nil {
		return nil, err
	}
	store, err := storefront.New(
		storefront.WithRegistry(registry),
		storefront.WithCheckoutOptions(checkout.WithAction(checkoutPath)),
	)
	if err != nil {
		return nil, err
	}

	s := &server{
		store:  store,
		logger: logger,
	}
	s.reload(cfg)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(storefront.AssetsFS()))))

	r.Get("/", s.home)
	r.Get(checkoutPath, s.checkoutForm)
	r.Post(checkoutPath, s.checkoutSubmit)

	products := catalogcomponent.New(catalogcomponent.WithSource(store.Source()))
	if _, err := products.RegisterRoutes(r, apiBasePath); err != nil {
		return nil, err
	}

	s.Handler = r
	return s, nil
}

// reload swaps the per-request render options. The stylesheet and listen
// address only change on restart.
func (s *server) reload(cfg Config) {
	s.options.Store(&render.RenderOptions{
		Theme:      cfg.RendererTheme(),
		Locale:     cfg.Locale,
		Translator: chromeTranslations,
	})
}

func (s *server) renderOptions() render.RenderOptions {
	if opts := s.options.Load(); opts != nil {
		return *opts
	}
	return render.RenderOptions{}
}

func (s *server) home(w http.ResponseWriter, r *http.Request) {
	body, contentType, err := s.store.RenderHome(r.Context(), storefront.DefaultRenderer, s.renderOptions())
	s.write(w, r, http.StatusOK, body, contentType, err)
}

func (s *server) checkoutForm(w http.ResponseWriter, r *http.Request) {
	form, err := s.store.NewCheckout()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	body, contentType, err := s.store.RenderCheckout(r.Context(), storefront.DefaultRenderer, form, s.renderOptions())
	s.write(w, r, http.StatusOK, body, contentType, err)
}

func (s *server) checkoutSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	values := make(map[string]string, len(checkout.FieldNames()))
	for _, name := range checkout.FieldNames() {
		if _, ok := r.PostForm[name]; ok {
			values[name] = r.PostForm.Get(name)
		}
	}

	form, err := s.store.NewCheckout()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	result, err := form.Submit(r.Context(), values)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	status := http.StatusOK
	if !result.Valid {
		status = http.StatusUnprocessableEntity
		s.logger.Debug("checkout rejected",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Any("errors", result.Errors),
			zap.Strings("form_errors", result.FormErrors),
		)
	} else {
		s.logger.Info("checkout confirmed",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("cep", result.Values[checkout.FieldCEP]),
		)
	}

	body, contentType, err := s.store.RenderCheckout(r.Context(), storefront.DefaultRenderer, form, s.renderOptions())
	s.write(w, r, status, body, contentType, err)
}

func (s *server) write(w http.ResponseWriter, r *http.Request, status int, body []byte, contentType string, err error) {
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("render failed",
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// requestLogger logs one structured line per request.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
