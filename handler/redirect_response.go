package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

type redirectResponse struct {
	url  string
	code int
}

func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	if IsDataStar(req) {
		return datastar.NewSSE(w, req).Redirect(r.url)
	}
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect answers with 303 See Other. Datastar requests are redirected on
// the client through an event instead.
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusSeeOther}
}

// Done acknowledges an action. Datastar requests get 204 and learn about the
// outcome over their event stream; plain form posts are sent back to
// fallback.
func Done(fallback string) Response {
	return doneResponse{fallback: fallback}
}

type doneResponse struct {
	fallback string
}

func (d doneResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}
	http.Redirect(w, r, d.fallback, http.StatusSeeOther)
	return nil
}
