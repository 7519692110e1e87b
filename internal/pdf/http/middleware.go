package http

import (
	"math"
	"net/http"
	"strconv"

	"github.com/systemifyautomation/html-to-pdf/internal/pdf/ratelimit"
	"github.com/systemifyautomation/html-to-pdf/internal/pdf/store"
	"github.com/systemifyautomation/html-to-pdf/pkg/httpx"
	"github.com/systemifyautomation/html-to-pdf/pkg/pdfsdk"
	"github.com/systemifyautomation/html-to-pdf/pkg/slogx"
)

// Credential header names. Lookup is case-insensitive (net/http canonical
// headers), values compare byte-exact.
const (
	HeaderAPIKey       = "X-API-Key"
	HeaderSuperUserKey = "X-Super-User-Key"
)

// requireAPIKey authenticates conversion requests. A missing header is
// 401, an unknown or inactive secret is 403. The super-user key is
// accepted here too and marks the context so the per-key rate limit is
// bypassed downstream.
func requireAPIKey(st store.Store) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			secret := r.Header.Get(HeaderAPIKey)
			if secret == "" {
				httpx.WriteJSON(w, http.StatusUnauthorized, pdfsdk.ErrorResponse{
					Error:            "missing_credential",
					ErrorDescription: "API key required. Include the " + HeaderAPIKey + " header.",
				})
				return
			}

			cred, ok := st.FindBySecret(secret)
			if !ok {
				log.Warn("invalid api key", "key_preview", previewSecret(secret))
				httpx.WriteJSON(w, http.StatusForbidden, pdfsdk.ErrorResponse{
					Error:            "invalid_credential",
					ErrorDescription: "Invalid or inactive API key.",
				})
				return
			}

			ctx = httpx.WithCaller(ctx, cred.Name, cred.Key)
			if cred.SuperUser {
				ctx = httpx.WithSuperUser(ctx)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// rateLimitByKey enforces the per-key sliding windows for authenticated
// callers. Super-user requests pass through untouched. Successful
// responses carry the X-RateLimit-* headers; denials answer 429 with a
// Retry-After hint and do not consume window capacity.
func rateLimitByKey(limiter *ratelimit.Limiter) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if httpx.IsSuperUser(ctx) {
				next.ServeHTTP(w, r)
				return
			}

			key := httpx.CallerKey(ctx)
			if key == "" {
				// requireAPIKey must run first on any limited route.
				httpx.WriteJSON(w, http.StatusInternalServerError, pdfsdk.ErrorResponse{
					Error:            "server_error",
					ErrorDescription: "Rate limiting requires an authenticated caller.",
				})
				return
			}

			res := limiter.Check(key)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.Reset.Unix(), 10))

			if !res.Allowed {
				retry := res.RetryAfter.Seconds()
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retry))))

				slogx.FromContext(ctx).Warn("rate limit exceeded",
					"caller", httpx.CallerName(ctx),
					"retry_after_seconds", retry,
				)

				httpx.WriteJSON(w, http.StatusTooManyRequests, pdfsdk.ErrorResponse{
					Error:             "rate_limit_exceeded",
					ErrorDescription:  "Rate limit exceeded. Try again later.",
					RetryAfterSeconds: math.Round(retry*10) / 10,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// requireSuperUser gates the admin surface. Only the super-user key is
// accepted; a valid ordinary key is 403, never elevated.
func requireSuperUser(st store.Store) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			secret := r.Header.Get(HeaderSuperUserKey)
			if secret == "" {
				httpx.WriteJSON(w, http.StatusUnauthorized, pdfsdk.ErrorResponse{
					Error:            "missing_credential",
					ErrorDescription: "Super-user key required. Include the " + HeaderSuperUserKey + " header.",
				})
				return
			}

			cred, ok := st.FindBySecret(secret)
			if !ok {
				log.Warn("invalid super-user key", "key_preview", previewSecret(secret))
				httpx.WriteJSON(w, http.StatusForbidden, pdfsdk.ErrorResponse{
					Error:            "invalid_credential",
					ErrorDescription: "Invalid super-user key.",
				})
				return
			}
			if !cred.SuperUser {
				log.Warn("ordinary key used against admin route", "caller", cred.Name)
				httpx.WriteJSON(w, http.StatusForbidden, pdfsdk.ErrorResponse{
					Error:            "insufficient_privilege",
					ErrorDescription: "This operation requires the super-user key.",
				})
				return
			}

			ctx = httpx.WithCaller(ctx, cred.Name, cred.Key)
			ctx = httpx.WithSuperUser(ctx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// previewSecret truncates a secret for log lines without revealing it.
func previewSecret(secret string) string {
	if len(secret) <= 8 {
		return "********"
	}
	return secret[:8] + "..."
}
