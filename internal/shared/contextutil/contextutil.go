package contextutil

import (
	"context"

	"go.uber.org/zap"
)

// contextKey is private so keys never collide with other packages.
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
	roleIDKey    contextKey = "role_id"
	loggerKey    contextKey = "logger"
)

// --- Request ID Helpers ---

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// --- Caller Helpers ---

func WithUserID(ctx context.Context, uid uint) context.Context {
	return context.WithValue(ctx, userIDKey, uid)
}

// GetUserID returns 0 when the request is anonymous.
func GetUserID(ctx context.Context) uint {
	if uid, ok := ctx.Value(userIDKey).(uint); ok {
		return uid
	}
	return 0
}

func WithRoleID(ctx context.Context, roleID uint) context.Context {
	return context.WithValue(ctx, roleIDKey, roleID)
}

func GetRoleID(ctx context.Context) uint {
	if rid, ok := ctx.Value(roleIDKey).(uint); ok {
		return rid
	}
	return 0
}

// --- Logger Helpers ---

// WithLogger stores a request-scoped zap logger in ctx.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the logger stored in ctx, then defaultLogger, then a no-op
// logger, so callers never get nil.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	if defaultLogger != nil {
		return defaultLogger
	}

	return zap.NewNop()
}

// Metadata holds the tracing fields attached to every log line.
type Metadata struct {
	RequestID string
	UserID    uint
	RoleID    uint
}

func ExtractMetadata(ctx context.Context) Metadata {
	return Metadata{
		RequestID: GetRequestID(ctx),
		UserID:    GetUserID(ctx),
		RoleID:    GetRoleID(ctx),
	}
}
