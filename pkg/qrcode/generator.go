package qrcode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	ErrEmptyContent = errors.New("qrcode: content cannot be empty")
	ErrGenerate     = errors.New("qrcode: failed to generate QR code")
)

const (
	DefaultSize = 256
	MaxSize     = 1024
)

// Level is the error recovery level.
type Level = skipqrcode.RecoveryLevel

const (
	Low     Level = skipqrcode.Low
	Medium  Level = skipqrcode.Medium
	High    Level = skipqrcode.High
	Highest Level = skipqrcode.Highest
)

type options struct {
	size  int
	level Level
}

type Option func(*options)

// WithSize sets the image width in pixels. Values outside (0, MaxSize] fall
// back to DefaultSize.
func WithSize(px int) Option {
	return func(o *options) {
		if px > 0 && px <= MaxSize {
			o.size = px
		}
	}
}

func WithLevel(l Level) Option {
	return func(o *options) { o.level = l }
}

// Generate encodes content as a square PNG.
func Generate(content string, opts ...Option) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	o := options{size: DefaultSize, level: Medium}
	for _, opt := range opts {
		opt(&o)
	}
	png, err := skipqrcode.Encode(content, o.level, o.size)
	if err != nil {
		return nil, errors.Join(ErrGenerate, err)
	}
	return png, nil
}

// DataURI is Generate encoded as a data:image/png URI for inline <img> use.
func DataURI(content string, opts ...Option) (string, error) {
	png, err := Generate(content, opts...)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
