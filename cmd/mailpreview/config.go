package main

import (
	"github.com/dmitrymomot/mailpreview/pkg/email"
	"github.com/dmitrymomot/mailpreview/pkg/httpserver"
	"github.com/dmitrymomot/mailpreview/pkg/i18n"
	"github.com/dmitrymomot/mailpreview/pkg/preview"
)

type Config struct {
	AppName string `env:"APP_NAME" envDefault:"mailpreview"`
	AppEnv  string `env:"APP_ENV" envDefault:"development"`

	Server  httpserver.Config
	I18n    i18n.Config
	Email   email.Config
	Preview preview.Config
}
