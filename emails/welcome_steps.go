package emails

import (
	"github.com/a-h/templ"

	c "github.com/dmitrymomot/mailpreview/pkg/email/components"
	"github.com/dmitrymomot/mailpreview/pkg/i18n"
)

type step struct {
	icon        string
	key         string
	title       string
	description string
}

var firstSteps = []step{
	{"📅", "schedule", "Set up your check-in schedule", "Configure your regular check-in intervals to keep your account active and secure."},
	{"📁", "upload", "Upload your important files and messages", "Securely store your critical documents, passwords, and personal messages."},
	{"👥", "contacts", "Designate your trusted contacts", "Choose who you trust to access your information when needed."},
	{"✨", "live", "Then go live your life - we've got this", "Rest easy knowing your digital legacy is protected and automated."},
}

func welcomeStepsSubject(cat *i18n.Catalog) string {
	return cat.T("steps.subject", "Welcome to ZKDMS")
}

// WelcomeSteps walks a new user through the first steps, one row each.
func WelcomeSteps(cat *i18n.Catalog) templ.Component {
	steps := make([]templ.Component, 0, 2*len(firstSteps))
	for i, s := range firstSteps {
		if i > 0 {
			steps = append(steps, c.Divider())
		}
		steps = append(steps, c.Step(
			s.icon,
			cat.T("steps."+s.key+".title", s.title),
			cat.T("steps."+s.key+".description", s.description),
		))
	}

	return c.Group(
		c.Preview(cat.T("steps.preview", "Four steps to secure your digital legacy.")),
		c.Container(
			c.Header(
				cat.T("welcome.title", "Welcome to ZKDMS"),
				cat.T("welcome.tagline", "The Last App You'll Ever Need"),
			),
			c.Text(c.Plain(cat.T("welcome.greeting", "Hi there,"))),
			c.Text(c.Plain(cat.T("welcome.intro", "Welcome aboard! You've just taken the most important step in securing your digital legacy. We hope you use us, but we also hope you don't."))),
			c.Text(c.Plain(cat.T("welcome.protocol", "With ZKDMS, you can finally rest easy knowing your secrets, messages, and important data are protected by our zero-knowledge protocol. We never see your data - not even when you're unavailable."))),
			c.Section(
				c.Heading(2, c.Plain(cat.T("welcome.first_steps", "🎯 Your First Steps:"))),
				c.Group(steps...),
			),
			c.Quote(c.Plain(cat.T("welcome.quote", "\"Finally, an app that works better when you don't.\""))),
			c.Text(c.Plain(cat.T("welcome.ready", "Ready to secure your digital afterlife?"))),
			c.ButtonGroup(c.PrimaryButton(cat.T("welcome.cta", "Complete Your Setup"), DashboardURL)),
			c.Notice("🔒", c.Plain(cat.T("welcome.security", "While we use humor to make a difficult topic approachable, we take the security of your data and your legacy with the utmost seriousness."))),
			signature(cat),
		),
	)
}

// signature is the shared sign-off. The translation may carry <br> and
// <span> markup, which is sanitized.
func signature(cat *i18n.Catalog) templ.Component {
	return c.Footer(c.Rich(cat.HTML("welcome.signature",
		"Stay safe out there,<br>The ZKDMS Team<br><span>Your friendly neighborhood digital grim reaper</span>")))
}
