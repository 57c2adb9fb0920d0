// Package async runs work in the background and hands back a Future.
//
// Renders and template discovery are the suspension points of the preview
// server; they run through Go or Async so callers can either block on Await
// or react to Done from a select loop. A panic inside the function is
// recovered and reported as ErrPanic instead of taking the process down.
package async
