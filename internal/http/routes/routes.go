package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/welcome-api/internal/http/health"
	"github.com/janisto/welcome-api/internal/http/welcome"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API) {
	welcome.Register(api)
	health.Register(api)
}
