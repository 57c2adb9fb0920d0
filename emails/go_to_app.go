package emails

import (
	"github.com/a-h/templ"

	c "github.com/dmitrymomot/mailpreview/pkg/email/components"
	"github.com/dmitrymomot/mailpreview/pkg/i18n"
)

func goToAppSubject(cat *i18n.Catalog) string {
	return cat.T("app.subject", "Your dashboard is ready")
}

func GoToApp(cat *i18n.Catalog) templ.Component {
	return c.Container(
		c.Heading(2, c.Plain(cat.T("app.title", "Your dashboard is ready"))),
		c.Text(c.Plain(cat.T("app.body", "Pick up where you left off. Your check-in schedule and trusted contacts are waiting."))),
		c.ButtonGroup(c.PrimaryButton(cat.T("app.cta", "Go to app"), DashboardURL)),
		c.Footer(
			c.Plain("ZKDMS"),
			c.FooterLink(cat.T("app.settings", "Notification settings"), DashboardURL+"/settings"),
		),
	)
}
