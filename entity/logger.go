package entity

import "context"

// Logger specifies a contextual, structured logger.
// The action layer logs every query mutation through one of these.
type Logger interface {
	Info(ctx context.Context, msg string, kv ...any)
	Error(ctx context.Context, msg string, err error, kv ...any)
}
