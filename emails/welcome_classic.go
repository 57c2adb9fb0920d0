package emails

import (
	"github.com/a-h/templ"

	c "github.com/dmitrymomot/mailpreview/pkg/email/components"
	"github.com/dmitrymomot/mailpreview/pkg/i18n"
)

func welcomeClassicSubject(cat *i18n.Catalog) string {
	return cat.T("welcome.subject", "Welcome to ZKDMS")
}

// WelcomeClassic is the single-column welcome email with the first steps
// as bullets.
func WelcomeClassic(cat *i18n.Catalog) templ.Component {
	bullets := make([]templ.Component, 0, len(firstSteps))
	for _, s := range firstSteps {
		bullets = append(bullets, c.ListItem(c.Plain(cat.T("steps."+s.key+".title", s.title))))
	}

	return c.Container(
		c.Section(
			c.Heading(1, c.Plain(cat.T("welcome.title", "Welcome to ZKDMS"))),
			c.TextSecondary(c.Plain(cat.T("welcome.tagline", "The Last App You'll Ever Need"))),
		),
		c.Section(
			c.Text(c.Strong(c.Plain(cat.T("welcome.greeting", "Hi there,")))),
			c.Text(c.Plain(cat.T("welcome.intro", "Welcome aboard! You've just taken the most important step in securing your digital legacy. We hope you use us, but we also hope you don't."))),
			c.Text(c.Plain(cat.T("welcome.protocol", "With ZKDMS, you can finally rest easy knowing your secrets, messages, and important data are protected by our zero-knowledge protocol. We never see your data - not even when you're unavailable."))),
			c.Notice("🎯",
				c.Strong(c.Plain(cat.T("welcome.first_steps", "🎯 Your First Steps:"))),
				c.List(bullets...),
			),
			c.Quote(c.Plain(cat.T("welcome.quote", "\"Finally, an app that works better when you don't.\""))),
		),
		c.Section(
			c.TextSecondary(c.Plain(cat.T("welcome.ready", "Ready to secure your digital afterlife?"))),
			c.ButtonGroup(c.PrimaryButton(cat.T("welcome.cta", "Complete Your Setup"), DashboardURL)),
		),
		c.Divider(),
		c.TextSecondary(c.Plain(cat.T("welcome.security", "While we use humor to make a difficult topic approachable, we take the security of your data and your legacy with the utmost seriousness."))),
		signature(cat),
	)
}
