// Package httpserver runs the preview UI's http.Server until its context is
// cancelled, then shuts it down gracefully.
//
// The write timeout is disabled by default because the preview page keeps a
// server-sent events stream open for as long as the tab is.
package httpserver
