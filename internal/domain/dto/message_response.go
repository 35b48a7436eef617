package dto

// MessageResponse is returned by GET /.
type MessageResponse struct {
	Message string `json:"message" example:"Stock API is running!"`
}

// StatusResponse is returned by the liveness and readiness probes.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
