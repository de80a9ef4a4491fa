package http

// APIResponse represents the generic error envelope.
type APIResponse struct {
	Status  int         `json:"status" example:"400"`
	Message string      `json:"message" example:"Bad Request"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationError represents validation error detail.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_ONEOF"`
	Field   string                 `json:"field,omitempty" example:"status"`
	Message string                 `json:"message,omitempty" example:"status must be one of: upcoming, filed"`
	Params  map[string]interface{} `json:"params,omitempty"`
}
