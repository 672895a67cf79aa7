package responses

import "github.com/goccy/go-json"

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Envelope is the outermost shape shared by every upstream deployment.
// Data nesting below it varies per endpoint and is probed, not assumed.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// ListView is the rendered form of a client-side filtered, paginated list.
// Partial marks results served from the empty-result policy after every
// upstream source failed.
type ListView[T any] struct {
	Items      []T    `json:"items"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	PageWindow []int  `json:"page_window"`
	Search     string `json:"search,omitempty"`
	Status     string `json:"status,omitempty"`
	Partial    bool   `json:"partial,omitempty"`
}
