package health

// GetOutput is the response wrapper for GET /api/health.
type GetOutput struct {
	Body Health
}
