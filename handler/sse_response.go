package handler

import "net/http"

// SSEHandler runs for the lifetime of an event stream. The stream closes
// when it returns or the client disconnects.
type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "datastar_required")
	}
	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}
	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE opens an event stream and runs fn on it.
//
//	handler.SSE(func(stream handler.StreamContext) error {
//		sub := shell.Subscribe(stream)
//		defer sub.Close()
//		for range sub.Receive() {
//			if err := stream.SendComponent(view(shell.State())); err != nil {
//				return err
//			}
//		}
//		return nil
//	})
func SSE(fn SSEHandler) Response { return sseResponse{handler: fn} }
