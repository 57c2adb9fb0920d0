// Package templates turns templ components into the two bodies of an email:
// Render serializes a component to HTML and PlainText derives the text/plain
// alternative from that HTML.
package templates
