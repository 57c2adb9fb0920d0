// Package email sends rendered previews to a real inbox.
//
// EmailSender has two implementations: a Postmark client for actual delivery
// and DevSender, which writes each message to a directory as .html, .txt and
// .json files. NewSender picks Postmark when both tokens are configured and
// falls back to DevSender otherwise, so "send test email" works on a laptop
// without credentials.
package email
