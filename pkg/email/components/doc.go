// Package components provides email-safe templ components for building
// transactional emails and the document chrome every email is wrapped in.
//
// Components render table-based markup with inline styles so the output
// survives the common mail clients. Colors and fonts come from the Theme
// stored in the render context; Document installs it, so content built from
// these components always matches the chrome around it:
//
//	body := components.Container(
//		components.Header("Welcome to ZKDMS", "The Last App You'll Ever Need"),
//		components.Text(components.Plain("Hi there,")),
//		components.ButtonGroup(
//			components.PrimaryButton("Complete Your Setup", "https://app.zkdms.com/dashboard"),
//		),
//	)
//	doc := components.Document(components.DocumentProps{Lang: "en"}, body)
//
// Available components:
//
//   - Document, Preview - html/head/body chrome and the inbox preview line
//   - Container, Section, Row, Column - layout tables
//   - Header, Heading, Text, TextSecondary, Notice, Quote - typography
//   - Plain, Rich, Strong, Link - inline content
//   - ButtonGroup, PrimaryButton, Button - calls to action
//   - List, ListItem, Step - bullet lists and numbered steps with an icon
//   - Divider, Footer, FooterLink - separators and the footer block
//
// Output is deterministic: the same inputs always produce the same bytes.
package components
