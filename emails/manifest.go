package emails

import (
	"embed"

	"github.com/dmitrymomot/mailpreview/pkg/i18n"
	"github.com/dmitrymomot/mailpreview/pkg/registry"
)

// DashboardURL is where every call to action points.
const DashboardURL = "https://app.zkdms.com/dashboard"

//go:embed locales/*.yaml
var catalogFS embed.FS

// Catalogs returns an adapter over the embedded catalogs.
func Catalogs() i18n.TranslationAdapter {
	return i18n.NewFSAdapter(catalogFS, "locales")
}

// Sources is the template manifest.
func Sources() []registry.Source {
	return []registry.Source{
		registry.Static("emails/welcome_steps.go", registry.Template{
			Name:        "Welcome",
			Category:    "Onboarding",
			Description: "First steps as a numbered list",
			Subject:     welcomeStepsSubject,
			Content:     WelcomeSteps,
		}),
		registry.Static("emails/welcome_classic.go", registry.Template{
			Name:        "Welcome (classic)",
			Category:    "Onboarding",
			Description: "Single column welcome with bullet list",
			Subject:     welcomeClassicSubject,
			Content:     WelcomeClassic,
		}),
		registry.Static("emails/go_to_app.go", registry.Template{
			Name:    "Go to app",
			Subject: goToAppSubject,
			Content: GoToApp,
		}),
	}
}
