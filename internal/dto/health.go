package dto

// DatabaseHealth reports store connectivity.
type DatabaseHealth struct {
	Status     string `json:"status"` // connected | disconnected | error
	Configured bool   `json:"configured"`
	Error      string `json:"error,omitempty"`
}

// SystemHealth reports process runtime information.
type SystemHealth struct {
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
	Arch      string `json:"arch"`
	Uptime    int64  `json:"uptime"` // seconds since process start
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	OK           bool           `json:"ok"`
	Status       string         `json:"status"` // healthy | unhealthy
	Timestamp    string         `json:"timestamp"`
	ResponseTime string         `json:"responseTime"`
	Environment  string         `json:"environment"`
	Database     DatabaseHealth `json:"database"`
	System       SystemHealth   `json:"system"`
}
