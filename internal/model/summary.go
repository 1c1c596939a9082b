package model

// PathCount pairs a label (path, IP, method) with its request count.
type PathCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary bundles every analyzer metric into one exportable structure.
type Summary struct {
	TotalRequests  int            `json:"total_requests"`
	TotalBytes     int64          `json:"total_bytes"`
	AverageSize    float64        `json:"average_size"`
	ErrorRate      float64        `json:"error_rate"`
	SuccessRate    float64        `json:"success_rate"`
	StatusCounts   map[int]int    `json:"status_counts"`
	MethodCounts   map[string]int `json:"method_counts"`
	TopPaths       []PathCount    `json:"top_paths"`
	TopIPs         []PathCount    `json:"top_ips"`
	RequestsByHour map[int]int    `json:"requests_by_hour"`
}
