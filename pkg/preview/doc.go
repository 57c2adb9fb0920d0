// Package preview is the interactive email previewer.
//
// Shell owns the view state: the selected template, locale and tab, and the
// last rendered email or error. Every change to the selection starts one
// render tagged with a sequence number; a completion whose sequence is no
// longer current is dropped, so rapid switching never shows a stale result.
// State changes are announced to subscribers, which the HTTP layer turns
// into Datastar element patches over server-sent events.
//
// Handler mounts the page, the event stream, the actions and a small JSON
// API on a chi router. Watcher reloads catalogs and templates when catalog
// files change on disk.
package preview
