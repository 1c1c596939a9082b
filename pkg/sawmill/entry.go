package sawmill

import "time"

// Entry is one parsed access-log line.
// This is the stable public type — internal representations may evolve
// independently without breaking consumers.
type Entry struct {
	IP        string    `json:"ip"`
	Timestamp time.Time `json:"timestamp"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	Status    int       `json:"status"`
	Size      int64     `json:"size"`
}

// LabelCount pairs a path, IP, or method with its request count.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary bundles every computed metric for one analysis run.
type Summary struct {
	TotalRequests  int            `json:"total_requests"`
	TotalBytes     int64          `json:"total_bytes"`
	AverageSize    float64        `json:"average_size"`
	ErrorRate      float64        `json:"error_rate"`
	SuccessRate    float64        `json:"success_rate"`
	StatusCounts   map[int]int    `json:"status_counts"`
	MethodCounts   map[string]int `json:"method_counts"`
	TopPaths       []LabelCount   `json:"top_paths"`
	TopIPs         []LabelCount   `json:"top_ips"`
	RequestsByHour map[int]int    `json:"requests_by_hour"`
}
