// Package emails holds the transactional email templates and their
// translation catalogs.
//
// Manifest order is significant: a template's id is derived from its
// position, so new templates are appended.
package emails
