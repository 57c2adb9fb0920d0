package export

import (
	"context"

	"github.com/dmitrymomot/mailpreview/pkg/file"
)

type Config struct {
	Dir         string `env:"EXPORT_DIR" envDefault:"dist/emails"`
	BaseURL     string `env:"EXPORT_BASE_URL"`
	Clean       bool   `env:"EXPORT_CLEAN" envDefault:"true"`
	Concurrency int    `env:"EXPORT_CONCURRENCY" envDefault:"4"`
	S3          file.S3Config
}

// NewStorage returns S3 storage when a bucket is configured and a local
// directory otherwise.
func NewStorage(ctx context.Context, cfg Config, opts ...file.S3Option) (file.Storage, error) {
	if cfg.S3.Enabled() {
		return file.NewS3Storage(ctx, cfg.S3, opts...)
	}
	return file.NewLocalStorage(cfg.Dir, cfg.BaseURL)
}
