package templates_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailpreview/pkg/email/templates"
)

func TestRender(t *testing.T) {
	t.Parallel()

	out, err := templates.Render(context.Background(), templ.Raw("<p>hello</p>"))
	require.NoError(t, err)
	assert.Equal(t, "<p>hello</p>", out)

	_, err = templates.Render(context.Background(), nil)
	assert.ErrorIs(t, err, templates.ErrNilComponent)

	boom := errors.New("boom")
	_, err = templates.Render(context.Background(), templ.ComponentFunc(func(context.Context, io.Writer) error {
		return boom
	}))
	assert.ErrorIs(t, err, boom)
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "strips head and collapses whitespace",
			html: `<html><head><title>T</title><style>*{color:red}</style></head><body><p>Hello
				   <strong>there</strong>,   friend</p></body></html>`,
			want: "Hello there, friend",
		},
		{
			name: "blocks become paragraphs",
			html: `<h1>Welcome</h1><p>One</p><p>Two<br>Three</p>`,
			want: "Welcome\n\nOne\n\nTwo\nThree",
		},
		{
			name: "links keep their target",
			html: `<p><a href="https://app.zkdms.com/dashboard">Complete Your Setup</a> or <a href="https://example.com">https://example.com</a></p>`,
			want: "Complete Your Setup [https://app.zkdms.com/dashboard] or https://example.com",
		},
		{
			name: "list items are bulleted",
			html: `<p>Steps:</p><ul><li>Secure</li><li>Invite</li></ul>`,
			want: "Steps:\n\n- Secure\n- Invite",
		},
		{
			name: "preview line is skipped",
			html: `<body><div data-skip-in-text="true">inbox teaser</div><p>Body</p></body>`,
			want: "Body",
		},
		{
			name: "rule and image alt",
			html: `<p>Above</p><hr><img alt="Logo" src="x.png">`,
			want: "Above\n\n--------------------------------\n\nLogo",
		},
		{
			name: "table cells are separated",
			html: `<table><tr><td>📅</td><td>Plan</td></tr></table>`,
			want: "📅 Plan",
		},
		{
			name: "empty",
			html: ``,
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := templates.PlainText(tt.html)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
