package models

// StatusResponse is the body of the liveness endpoint.
type StatusResponse struct {
	Status string `json:"Status"`
}

// ErrorResponse is the uniform error body returned by every handler.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of endpoints that acknowledge an action
// without returning an entity.
type MessageResponse struct {
	Message string `json:"message"`
}

// Page is the envelope wrapped around every paginated list response. Next and
// Previous hold ready-to-follow URLs, or null at the edges of the result set.
type Page struct {
	// Count is the total number of matching records across all pages.
	Count int64 `json:"count"`

	// TotalPages is Count divided by the page size, rounded up. At least 1
	// even when the result set is empty.
	TotalPages int `json:"total_pages"`

	// CurrentPage is the 1-based page number served in Results.
	CurrentPage int `json:"current_page"`

	Next     *string `json:"next"`
	Previous *string `json:"previous"`

	// Results is the records of the current page. Never null: an empty page
	// serializes as [].
	Results any `json:"results"`
}

// HealthResponse is the body of the health endpoint. It combines collaborator
// reachability with a snapshot of the serving process.
type HealthResponse struct {
	Status   string          `json:"status"`
	Database string          `json:"database"`
	Media    string          `json:"media"`
	Process  *ProcessMetrics `json:"process,omitempty"`
}

// ProcessMetrics is a point-in-time snapshot of the serving process taken
// from the host process table.
type ProcessMetrics struct {
	PID           int32   `json:"pid"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryRSS     uint64  `json:"memory_rss_bytes"`
	MemoryPercent float32 `json:"memory_percent"`
	NumThreads    int32   `json:"num_threads"`
	UptimeSeconds int64   `json:"uptime_seconds"`
}
