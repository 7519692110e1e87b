package httpx

import "context"

type ctxKey string

const (
	// CtxKeyCallerName holds the display name of the authenticated API key.
	CtxKeyCallerName ctxKey = "caller_name"
	// CtxKeyCallerKey holds the full secret of the authenticated API key,
	// used as the rate limiting identity.
	CtxKeyCallerKey ctxKey = "caller_key"
	// CtxKeySuperUser marks requests authenticated with the super-user key.
	CtxKeySuperUser ctxKey = "super_user"
)

// CallerName returns the authenticated caller's display name, if any.
func CallerName(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyCallerName).(string); ok {
		return v
	}
	return ""
}

// CallerKey returns the authenticated caller's full key secret, if any.
func CallerKey(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyCallerKey).(string); ok {
		return v
	}
	return ""
}

// IsSuperUser reports whether the request was authenticated with the
// super-user key.
func IsSuperUser(ctx context.Context) bool {
	v, ok := ctx.Value(CtxKeySuperUser).(bool)
	return ok && v
}

// WithCaller attaches the authenticated API key identity to the context.
func WithCaller(ctx context.Context, name, key string) context.Context {
	ctx = context.WithValue(ctx, CtxKeyCallerName, name)
	return context.WithValue(ctx, CtxKeyCallerKey, key)
}

// WithSuperUser marks the context as authenticated with the super-user key.
func WithSuperUser(ctx context.Context) context.Context {
	return context.WithValue(ctx, CtxKeySuperUser, true)
}
