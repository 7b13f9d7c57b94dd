// Package health serves the liveness endpoint.
package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/welcome-api/internal/platform/logging"
)

// Path is where the health check is served.
const Path = "/api/health"

// Register wires the health route into the provided API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-health",
		Method:      http.MethodGet,
		Path:        Path,
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LogInfo(ctx, "health check", zap.String("path", Path))
	return &GetOutput{Body: Health{Status: StatusHealthy}}, nil
}
