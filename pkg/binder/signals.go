package binder

import (
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals decodes the Datastar signals of a request into v using its json
// tags. Requests not sent by Datastar are skipped.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Header.Get("Datastar-Request") != "true" && !r.URL.Query().Has("datastar") {
			return nil
		}
		if _, err := structValue(v, ErrFailedToParseSignals); err != nil {
			return err
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseSignals, err)
		}
		return nil
	}
}
