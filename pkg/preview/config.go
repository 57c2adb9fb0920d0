package preview

import "time"

type Config struct {
	// Watch enables catalog hot reload when catalogs are read from disk.
	Watch         bool          `env:"PREVIEW_WATCH" envDefault:"true"`
	WatchDebounce time.Duration `env:"PREVIEW_WATCH_DEBOUNCE" envDefault:"250ms"`
	// BaseURL is the externally reachable address used in QR codes.
	// Empty means the request host.
	BaseURL       string `env:"PREVIEW_BASE_URL"`
	TestRecipient string `env:"PREVIEW_TEST_RECIPIENT"`
}
