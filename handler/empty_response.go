package handler

import "net/http"

type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty responds 204 No Content. Datastar actions that only trigger
// server-side state changes use it; the resulting UI update arrives on the
// event stream.
func Empty() Response { return emptyResponse{status: http.StatusNoContent} }

func EmptyWithStatus(status int) Response { return emptyResponse{status: status} }
