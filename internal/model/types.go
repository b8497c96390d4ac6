package model

// LogRecord represents one parsed access-log line used across the system.
// It is the canonical type shared by the analysis passes and the report layer.
// All fields are kept as raw text; validation happens in the pass that needs
// the field (the hourly pass parses Timestamp, the other passes ignore it).
type LogRecord struct {
	Path        string // requested resource path
	Timestamp   string // raw timestamp text, expected MM/DD/YYYY HH:MM:SS
	AgentString string // raw client-agent header, may be empty
	Status      string // raw status code, unvalidated
	Size        string // raw response size in bytes, unvalidated
}

// ImageStats holds the image-request share of a run.
type ImageStats struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// AgentCount represents an agent family and its hit count.
type AgentCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// HourCount represents request volume for one hour of the day.
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// Report is the structured result of one full run over a log file.
type Report struct {
	TotalRecords int         `json:"total_records"`
	Images       ImageStats  `json:"images"`
	TopAgent     AgentCount  `json:"top_agent"`
	HitsByHour   []HourCount `json:"hits_by_hour"`
}
