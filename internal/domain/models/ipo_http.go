package models

// Requests and responses for the calendar HTTP endpoints.

type IPOListRequest struct {
	Status string `query:"status" json:"status" validate:"omitempty,ipo_status"`
}

type IPOTickerRequest struct {
	Ticker string `param:"ticker" json:"ticker" validate:"required,max=16"`
}

// IPOListResponse is the wire envelope consumed by the calendar UI.
type IPOListResponse struct {
	Success bool   `json:"success"`
	Data    []IPO  `json:"data"`
	Error   string `json:"error,omitempty"`
	Count   int    `json:"count"`
}

// NewIPOListResponse builds the envelope, keeping Count in step with Data.
func NewIPOListResponse(success bool, data []IPO, errMsg string) IPOListResponse {
	if data == nil {
		data = []IPO{}
	}
	return IPOListResponse{Success: success, Data: data, Error: errMsg, Count: len(data)}
}
