package dto

import "time"

type PassResponse struct {
	RiseTime int64     `json:"risetime"`
	Duration int64     `json:"duration"`
	RiseAt   time.Time `json:"rise_at"`
}

type ListPassesResponse struct {
	Passes []PassResponse `json:"passes"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Stage string `json:"stage,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
