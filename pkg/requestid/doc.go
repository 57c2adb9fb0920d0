// Package requestid tags every preview request with a correlation id.
//
// Middleware reuses a well-formed X-Request-ID header sent by the client or
// generates a UUID, stores it in the request context and echoes it back in
// the response. LoggerExtractor plugs the id into pkg/logger so every record
// written while serving the request carries it.
package requestid
