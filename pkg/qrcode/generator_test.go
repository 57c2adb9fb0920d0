package qrcode_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailpreview/pkg/qrcode"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     []qrcode.Option
		wantSize int
	}{
		{name: "default size", wantSize: qrcode.DefaultSize},
		{name: "custom size", opts: []qrcode.Option{qrcode.WithSize(128)}, wantSize: 128},
		{name: "oversized falls back", opts: []qrcode.Option{qrcode.WithSize(qrcode.MaxSize + 1)}, wantSize: qrcode.DefaultSize},
		{name: "high level", opts: []qrcode.Option{qrcode.WithLevel(qrcode.High), qrcode.WithSize(300)}, wantSize: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := qrcode.Generate("http://localhost:8080/raw/email-1/fr.html", tt.opts...)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, tt.wantSize, img.Bounds().Dx())
			assert.Equal(t, tt.wantSize, img.Bounds().Dy())
		})
	}
}

func TestGenerate_EmptyContent(t *testing.T) {
	t.Parallel()

	for _, content := range []string{"", "  \t\n"} {
		data, err := qrcode.Generate(content)
		assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
		assert.Nil(t, data)
	}
}

func TestDataURI(t *testing.T) {
	t.Parallel()

	uri, err := qrcode.DataURI("http://localhost:8080/")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(raw))
	assert.NoError(t, err)
}
