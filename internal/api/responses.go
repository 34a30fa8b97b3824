package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type HealthResponse struct {
	Status       string `json:"status" example:"ok"`
	Database     string `json:"database" example:"ok"`
	Events       string `json:"events,omitempty" example:"ok"`
	QueuedEvents *int64 `json:"queued_events,omitempty" example:"0"`
}
