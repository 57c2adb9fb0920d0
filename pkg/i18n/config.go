package i18n

type Config struct {
	SourceLocale string   `env:"I18N_SOURCE_LOCALE" envDefault:"en"`
	Locales      []string `env:"I18N_LOCALES" envDefault:"en,es,fr,de,ja" envSeparator:","`
	// CatalogDir switches from the embedded catalogs to files on disk,
	// which is what the dev server watches for hot reload.
	CatalogDir string `env:"I18N_CATALOG_DIR"`
}

// Locales builds the configured locale set.
func (c Config) LocaleSet() (Locales, error) {
	return NewLocales(c.SourceLocale, c.Locales...)
}
