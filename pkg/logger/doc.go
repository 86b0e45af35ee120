// Package logger builds the *slog.Logger used across sitekit.
//
// New takes functional options for format (json or text), level, output,
// static attributes and ContextExtractor callbacks. Extractors run on every
// record, so request-scoped values such as the request id end up in the log
// line without being threaded through call sites by hand.
//
// attr.go keeps attribute names consistent: SiteID, Slug, Page, ContentPath,
// Version, Provider, Component and Error are the keys used by the editor,
// bootstrap and email packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "sitekit"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "site resolved", logger.Slug("maria"), logger.SiteID(id))
//
// Packages that accept a logger fall back to Discard() when none is given.
package logger
