// Package welcome serves the root greeting.
package welcome

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/welcome-api/internal/platform/logging"
)

// Path is where the greeting is served.
const Path = "/"

// Register wires the welcome route into the provided API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-welcome",
		Method:      http.MethodGet,
		Path:        Path,
		Summary:     "Welcome message",
		Tags:        []string{"Welcome"},
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LogInfo(ctx, "welcome get", zap.String("path", Path))
	return &GetOutput{Body: Welcome{Msgs: Message}}, nil
}
