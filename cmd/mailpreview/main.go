package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/mailpreview/emails"
	"github.com/dmitrymomot/mailpreview/pkg/config"
	"github.com/dmitrymomot/mailpreview/pkg/email"
	"github.com/dmitrymomot/mailpreview/pkg/httpserver"
	"github.com/dmitrymomot/mailpreview/pkg/i18n"
	"github.com/dmitrymomot/mailpreview/pkg/logger"
	"github.com/dmitrymomot/mailpreview/pkg/preview"
	"github.com/dmitrymomot/mailpreview/pkg/registry"
	"github.com/dmitrymomot/mailpreview/pkg/render"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg) // panic on error

	log := logger.New(logger.WithEnvironment(cfg.AppEnv, cfg.AppName))
	logger.SetAsDefault(log)

	locales, err := cfg.I18n.LocaleSet()
	if err != nil {
		log.Error("Invalid locale configuration", logger.Component("i18n"), logger.Error(err))
		os.Exit(1)
	}

	// Catalogs on disk take precedence over the embedded ones and can be watched
	var adapter i18n.TranslationAdapter = emails.Catalogs()
	if cfg.I18n.CatalogDir != "" {
		adapter = i18n.NewDirectoryAdapter(cfg.I18n.CatalogDir)
	}
	store, err := i18n.NewStore(ctx, adapter, i18n.WithLogger(log.With(logger.Component("i18n"))))
	if err != nil {
		log.Error("Failed to load catalogs", logger.Component("i18n"), logger.Error(err))
		os.Exit(1)
	}

	reg := registry.New(emails.Sources(), registry.WithLogger(log.With(logger.Component("registry"))))
	pipeline := render.NewPipeline(
		render.NewProvider(locales, store, render.WithProviderLogger(log)),
		render.WithLogger(log.With(logger.Component("render"))),
	)

	shellOpts := []preview.Option{
		preview.WithLogger(log.With(logger.Component("preview"))),
		preview.WithCatalogs(store),
	}
	sender, err := email.NewSender(cfg.Email)
	if err != nil {
		log.Warn("Test sends disabled", logger.Component("email"), logger.Error(err))
	} else {
		shellOpts = append(shellOpts, preview.WithSender(sender, cfg.Preview.TestRecipient))
	}

	shell := preview.NewShell(reg, pipeline, locales, shellOpts...)
	if err := shell.Start(ctx); err != nil {
		// The shell keeps running with the load error shown in the UI
		log.Error("Failed to load templates", logger.Component("registry"), logger.Error(err))
	}
	defer func() { _ = shell.Close() }()

	h := preview.NewHandler(shell,
		preview.WithHandlerLogger(log.With(logger.Component("http"))),
		preview.WithCatalogExporter(store),
		preview.WithBaseURL(cfg.Preview.BaseURL),
		preview.WithPageProps(preview.PageProps{Title: "Email preview", Recipient: cfg.Preview.TestRecipient}),
	)

	eg, ctx := errgroup.WithContext(ctx)

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log.With(logger.Component("server"))))
	eg.Go(func() error { return srv.Run(ctx, h.Routes()) })

	if cfg.Preview.Watch && cfg.I18n.CatalogDir != "" {
		w := preview.NewWatcher(shell.Reload,
			preview.WithDebounce(cfg.Preview.WatchDebounce),
			preview.WithWatcherLogger(log.With(logger.Component("watcher"))),
		)
		eg.Go(func() error { return w.Run(ctx, cfg.I18n.CatalogDir) })
	}

	if err := eg.Wait(); err != nil {
		log.Error("Previewer stopped with error", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Previewer stopped")
}
