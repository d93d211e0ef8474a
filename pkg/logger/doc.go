// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// The package standardises structured logging across the toolkit through a
// single factory, New, that creates a *slog.Logger configured by Option
// functions:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//   - Register ContextExtractor callbacks that inject attributes pulled
//     from a context value every time Handle is invoked
//
// # Architecture
//
// New builds a decorated slog.Handler. It first picks the concrete handler,
// slog.NewTextHandler or slog.NewJSONHandler, based on the configured Format,
// then wraps it with ContextHandler, which runs any registered
// ContextExtractor callbacks before delegating to the underlying handler.
// ContextHandler is a plain wrapper around the handler it decorates; the
// same layering technique the decorator package applies to notification
// messages.
//
// Helper constructors such as Error, Component, and Kind live in attr.go and
// return commonly used slog.Attr values to keep attribute naming consistent
// across the codebase.
//
// Diagnostics default to stderr so they never mix with notification lines
// written to stdout.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("notifykit-demo"),
//	    logger.WithContextValue("run_id", ctxKeyRunID),
//	)
//	logger.SetAsDefault(log)
//
//	ctx := context.WithValue(context.Background(), ctxKeyRunID, "abc-123")
//	log.InfoContext(ctx, "notification delivered",
//	    logger.Kind("Email"),
//	    logger.Error(err),
//	)
//
// # Error Handling
//
// Error and Errors produce attributes only when the supplied error value is
// non-nil, allowing calls like:
//
//	log.Info("operation finished", logger.Error(err))
//
// without an additional nil check.
package logger
