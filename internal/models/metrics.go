package models

import "time"

// SystemMetrics is a lightweight snapshot of the service instrumentation.
type SystemMetrics struct {
	CacheHitRatio               float64   `json:"cache_hit_ratio"`
	CacheHits                   uint64    `json:"cache_hits"`
	CacheMisses                 uint64    `json:"cache_misses"`
	RequestsTotal               uint64    `json:"requests_total"`
	AverageRequestDurationMs    float64   `json:"average_request_duration_ms"`
	StoreOperations             uint64    `json:"store_operations"`
	AverageStoreOperationTimeMs float64   `json:"average_store_operation_time_ms"`
	Transitions                 uint64    `json:"transitions"`
	ExportsFinished             uint64    `json:"exports_finished"`
	ExportsFailed               uint64    `json:"exports_failed"`
	Goroutines                  int       `json:"goroutines"`
	GeneratedAt                 time.Time `json:"generated_at"`
}
