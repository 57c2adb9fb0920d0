// Package broadcast fans messages out to in-process subscribers.
//
// The preview shell publishes a message after every state change and each
// open browser tab holds one subscription. Sends never block: when a
// subscriber's buffer is full the message is skipped for that subscriber
// only, which suits notifications that mean "state changed, read it again".
// Subscriptions end when their context is cancelled or Close is called.
package broadcast
