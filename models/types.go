package models

import "time"

// Domain types

// PopularResult is one published popular query.
type PopularResult struct {
	ID          string    `json:"id"`
	Period      string    `json:"period"`
	Query       string    `json:"query"`
	ComputedAt  time.Time `json:"computed_at"`
	PublishedAt time.Time `json:"published_at"`
}

// Response types

type PublishResultResponse struct {
	ID         string    `json:"id"`
	Period     string    `json:"period"`
	ComputedAt time.Time `json:"computed_at"`
}

type PopularListResponse struct {
	Results []PopularResult `json:"results"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
