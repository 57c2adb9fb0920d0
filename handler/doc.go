// Package handler wires typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a bound request value and returns a
// Response. Wrap turns it into an http.HandlerFunc: it builds the Context,
// runs the configured binders against the request, applies decorators and
// renders the Response, sending any failure to the ErrorHandler.
//
//	type selectRequest struct {
//		ID string `path:"id"`
//	}
//
//	func selectTemplate(ctx handler.Context, req selectRequest) handler.Response {
//		if err := shell.Select(ctx, req.ID); err != nil {
//			return handler.Error(err)
//		}
//		return handler.Empty()
//	}
//
//	r.Post("/select/{id}", handler.Wrap(selectTemplate,
//		handler.WithBinders[handler.Context, selectRequest](binder.Path(chi.URLParam)),
//	))
//
// # Responses
//
// Templ, TemplMulti and SSE speak Datastar: a request carrying the Datastar
// Accept header gets element patches over server-sent events, any other
// request gets plain HTML. JSON, Blob, Text and Empty cover the rest.
//
// # Errors
//
// HTTPError carries a status code and a message key. NewErrorHandler
// renders a full error page for regular requests and a toast patch for
// Datastar requests, logging every error with the request id.
package handler
