// Command mailexport renders every email template in every configured
// locale and writes the result to a directory or an S3 bucket.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/mailpreview/emails"
	"github.com/dmitrymomot/mailpreview/pkg/config"
	"github.com/dmitrymomot/mailpreview/pkg/export"
	"github.com/dmitrymomot/mailpreview/pkg/i18n"
	"github.com/dmitrymomot/mailpreview/pkg/logger"
	"github.com/dmitrymomot/mailpreview/pkg/registry"
	"github.com/dmitrymomot/mailpreview/pkg/render"
)

type Config struct {
	AppName string `env:"APP_NAME" envDefault:"mailexport"`
	AppEnv  string `env:"APP_ENV" envDefault:"development"`

	I18n   i18n.Config
	Export export.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg) // panic on error

	log := logger.New(logger.WithEnvironment(cfg.AppEnv, cfg.AppName))

	locales, err := cfg.I18n.LocaleSet()
	if err != nil {
		log.Error("Invalid locale configuration", logger.Component("i18n"), logger.Error(err))
		os.Exit(1)
	}

	var adapter i18n.TranslationAdapter = emails.Catalogs()
	if cfg.I18n.CatalogDir != "" {
		adapter = i18n.NewDirectoryAdapter(cfg.I18n.CatalogDir)
	}
	store, err := i18n.NewStore(ctx, adapter, i18n.WithLogger(log.With(logger.Component("i18n"))))
	if err != nil {
		log.Error("Failed to load catalogs", logger.Component("i18n"), logger.Error(err))
		os.Exit(1)
	}

	storage, err := export.NewStorage(ctx, cfg.Export)
	if err != nil {
		log.Error("Failed to open export storage", logger.Component("storage"), logger.Error(err))
		os.Exit(1)
	}

	reg := registry.New(emails.Sources(), registry.WithLogger(log.With(logger.Component("registry"))))
	pipeline := render.NewPipeline(
		render.NewProvider(locales, store, render.WithProviderLogger(log)),
		render.WithLogger(log.With(logger.Component("render"))),
	)

	exp := export.New(reg, pipeline, locales, storage,
		export.WithLogger(log.With(logger.Component("export"))),
		export.WithClean(cfg.Export.Clean),
		export.WithConcurrency(cfg.Export.Concurrency),
	)
	m, err := exp.Export(ctx)
	if err != nil {
		log.Error("Export failed", logger.Component("export"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Export written",
		logger.Count(len(m.Templates)),
		logger.Path(storage.URL(export.ManifestFile)),
	)
}
