// Package binder fills request structs from path parameters, query strings,
// form bodies and Datastar signals.
//
// Each binder reads one struct tag (path, query, form) and leaves fields
// without a value untouched, so several binders can be chained on the same
// request:
//
//	type rawRequest struct {
//		ID     string `path:"id"`
//		Locale string `path:"locale"`
//		Inline bool   `query:"inline"`
//	}
//
// Fields without a tag bind to the lower-cased field name; `tag:"-"` skips a
// field. Supported kinds are strings, integers, floats, bools, pointers to
// those and slices of those.
package binder
