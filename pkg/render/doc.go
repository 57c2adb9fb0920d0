// Package render turns a registry template and a locale into a finished
// email.
//
// A Provider resolves the locale, looks up its message catalog and wraps the
// template body in the shared document chrome. The catalog is passed to the
// template explicitly, so renders for different locales can run at the same
// time without sharing any translation state. A locale without a catalog
// renders with source text.
//
// A Pipeline validates the locale against the configured set, renders the
// wrapped document to HTML and derives the plain-text body. Rendering is a
// pure function of (template, locale, catalogs, theme): the same inputs give
// byte-identical output. Any failure, including a panic inside a component,
// is returned as a *RenderError.
package render
