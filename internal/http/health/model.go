package health

// StatusHealthy is the only status the endpoint reports; a process that can
// answer is healthy.
const StatusHealthy = "healthy"

// Health is the liveness payload.
type Health struct {
	Status string `json:"status" doc:"Service health status" example:"healthy"`
}
