// Package registry keeps the ordered set of email templates the preview
// server can render.
//
// Templates are declared in a static manifest: an ordered list of Sources,
// each pairing a source path with a factory that builds the Template. Load
// runs every factory and publishes an immutable snapshot of Descriptors whose
// ids follow manifest order ("email-1", "email-2", ...). Refresh repeats the
// discovery and swaps the snapshot atomically; a Refresh that arrives while
// another discovery is running is dropped rather than queued, so at most one
// pass runs at a time.
//
// Descriptors are values. A reference obtained before a refresh keeps
// describing the template as it was when it was loaded.
package registry
