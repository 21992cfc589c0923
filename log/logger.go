// Package log defines the logging interface the server bootstrap injects
// into long-running components, decoupling them from the concrete backend.
package log

import "context"

// Logger is a minimal structured logging interface.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...map[string]interface{})
	Info(ctx context.Context, msg string, fields ...map[string]interface{})
	Warn(ctx context.Context, msg string, fields ...map[string]interface{})
	Error(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	// With returns a logger carrying the given fields on every event.
	With(fields map[string]interface{}) Logger
}
