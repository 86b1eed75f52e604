package dto

// OptimizeRouteRequest selects a single optimization strategy.
type OptimizeRouteRequest struct {
	Method string `json:"method" validate:"required,oneof=naive random nearest_neighbor nearest_neighbor_2opt"`
	// Seed overrides the fixed shuffle seed for the random baseline.
	Seed int64 `json:"seed,omitempty" validate:"omitempty,min=1"`
}

// RouteMetricsRequest derives time, fuel and emission metrics for a tour
// produced by the given method, or for an explicit Tour when one is
// supplied (Tour takes precedence over Method). StartTime is a departure
// clock time in 24-hour HH:MM; it defaults to 09:00.
type RouteMetricsRequest struct {
	Method string `json:"method,omitempty" validate:"omitempty,oneof=naive random nearest_neighbor nearest_neighbor_2opt"`
	// Tour must be a closed cycle over the current stop set, e.g.
	// [0, 2, 1, 3, 0].
	Tour      []int  `json:"tour,omitempty"`
	StartTime string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
}

// CreateRouteJobRequest enqueues a background optimization job.
type CreateRouteJobRequest struct {
	Method    string `json:"method" validate:"required,oneof=naive random nearest_neighbor nearest_neighbor_2opt"`
	StartTime string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
}
