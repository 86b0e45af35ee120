// Package requestid correlates a user interaction across sitekit and the
// website API it calls.
//
// Middleware assigns every inbound request an id (reusing a valid
// X-Request-ID header, generating a UUID otherwise), stores it in the context
// and echoes it in the response. Transport copies the id from an outbound
// request's context onto the same header, so editor saves and slug lookups
// can be matched with the API's own logs. LoggerExtractor plugs the id into
// pkg/logger.
package requestid
