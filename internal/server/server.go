// Package server assembles the HTTP router, middleware stack and http.Server.
package server

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/janisto/welcome-api/internal/config"
	"github.com/janisto/welcome-api/internal/http/routes"
	applog "github.com/janisto/welcome-api/internal/platform/logging"
	"github.com/janisto/welcome-api/internal/platform/metrics"
	appmiddleware "github.com/janisto/welcome-api/internal/platform/middleware"
	"github.com/janisto/welcome-api/internal/platform/respond"
)

const (
	// Title is the API title shown in the OpenAPI document.
	Title = "Welcome API"

	DocsPath    = "/api-docs"
	MetricsPath = "/metrics"

	maxBodyBytes   = 1 << 20 // 1 MB
	maxHeaderBytes = 64 << 10
)

// NewRouter builds the chi router with the full middleware stack and every
// route registered. rec may be nil, in which case no metrics are recorded or
// exposed.
func NewRouter(cfg *config.Config, version string, rec *metrics.Recorder) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	stack := []func(http.Handler) http.Handler{
		appmiddleware.Security(DocsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(cfg.CORSAllowedOrigins),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP / X-Forwarded-For; only run behind a trusted proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(maxBodyBytes),
		applog.RequestLogger(cfg.TraceProjectID()),
		applog.AccessLogger(),
	}
	if rec != nil {
		stack = append(stack, rec.Middleware())
	}
	stack = append(stack, respond.Recoverer())
	router.Use(stack...)

	if rec != nil {
		router.Method(http.MethodGet, MetricsPath, rec.Handler())
	}

	api := humachi.New(router, humaConfig(version))
	routes.Register(api)
	return router
}

// humaConfig returns the huma configuration. The default create hooks are
// dropped so success bodies carry no $schema member.
func humaConfig(version string) huma.Config {
	cfg := huma.DefaultConfig(Title, version)
	cfg.DocsPath = DocsPath
	cfg.CreateHooks = nil
	cfg.OnAddOperation = append(cfg.OnAddOperation, addCBORContent)
	return cfg
}

// addCBORContent mirrors every JSON request and response schema as CBOR in the OpenAPI document.
func addCBORContent(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}

// NewHTTPServer wraps handler in an http.Server using the configured address and timeouts.
func NewHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           handler,
		ReadTimeout:       cfg.Timeout.Read,
		ReadHeaderTimeout: cfg.Timeout.ReadHeader,
		WriteTimeout:      cfg.Timeout.Write,
		IdleTimeout:       cfg.Timeout.Idle,
		MaxHeaderBytes:    maxHeaderBytes,
	}
}
