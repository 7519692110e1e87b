package http

import (
	"log/slog"
	"net/http"

	"github.com/systemifyautomation/html-to-pdf/internal/pdf/domain"
	"github.com/systemifyautomation/html-to-pdf/internal/pdf/ratelimit"
	"github.com/systemifyautomation/html-to-pdf/internal/pdf/service"
	"github.com/systemifyautomation/html-to-pdf/internal/pdf/store"
	"github.com/systemifyautomation/html-to-pdf/pkg/httpx"
	"github.com/systemifyautomation/html-to-pdf/pkg/slogx"

	_ "github.com/systemifyautomation/html-to-pdf/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	info   domain.VersionInfo
	logger *slog.Logger

	store   store.Store
	limiter *ratelimit.Limiter

	KeyService     *service.KeyService
	ConvertService *service.ConvertService
}

func NewRouter(info domain.VersionInfo, st store.Store, limiter *ratelimit.Limiter, logger *slog.Logger) *Router {
	r := &Router{
		Mux:     http.NewServeMux(),
		info:    info,
		store:   st,
		limiter: limiter,
		logger:  logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerConvert()
	r.registerAdminKeys()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			HTML to PDF Conversion API
//	@version		2.0.2
//	@description	REST API for converting HTML documents to PDF using headless Chromium.
//	@description
//	@description				Conversion requests are authenticated with an API key and rate limited
//	@description				per key on sliding per-minute and per-hour windows. Key management is
//	@description				restricted to the super user.
//
//	@contact.name				Systemify Automation
//	@contact.url				https://github.com/systemifyautomation/html-to-pdf
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:5000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	APIKeyAuth
//	@in							header
//	@name						X-API-Key
//	@description				API key issued by the super user.
//
//	@securityDefinitions.apikey	SuperUserAuth
//	@in							header
//	@name						X-Super-User-Key
//	@description				Super user key. Required for admin key management endpoints.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerConvert() {
	h := &ConvertHandler{ConvertService: r.ConvertService}

	// POST /convert - IP limited before auth so invalid-key guessing is
	// throttled too, then authenticated and rate limited per key (super
	// user bypasses the per-key limits)
	r.Mux.Handle("POST /convert",
		httpx.Chain(http.HandlerFunc(h.Handle),
			httpx.RateLimitByIP(httpx.PublicLimit),
			requireAPIKey(r.store),
			rateLimitByKey(r.limiter),
		),
	)
}

func (r *Router) registerAdminKeys() {
	h := &KeysHandler{KeyService: r.KeyService}

	// Admin endpoints are gated on the super user key and kept on a strict
	// IP limit since each mutation rewrites the key file. The limiter runs
	// before auth so failed key guesses count against it.
	limited := httpx.RateLimitByIP(httpx.StrictLimit)
	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			limited,
			requireSuperUser(r.store),
		)
	}

	r.Mux.Handle("GET /admin/keys", secured(h.HandleList))
	r.Mux.Handle("POST /admin/keys", secured(h.HandleCreate))
	r.Mux.Handle("PATCH /admin/keys/{prefix}", secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /admin/keys/{prefix}", secured(h.HandleDelete))
}

func (r *Router) registerSystem() {
	// Public endpoints - generous IP limit (monitoring systems may poll frequently)
	r.Mux.Handle("GET /{$}",
		httpx.Chain(HomeHandler(r.info),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /health",
		httpx.Chain(HealthHandler(r.info),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /version",
		httpx.Chain(VersionHandler(r.info),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
