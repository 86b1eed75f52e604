package domain

import "time"

// Optimization method identifiers accepted by the engine.
const (
	MethodNaive               = "naive"
	MethodRandom              = "random"
	MethodNearestNeighbor     = "nearest_neighbor"
	MethodNearestNeighbor2Opt = "nearest_neighbor_2opt"

	// MethodCustom labels metrics derived for a caller-supplied tour.
	MethodCustom = "custom"
)

// TwoOptStats describes one 2-opt run. Improvement is measured against the
// distance of the tour the improver was seeded with, not the naive baseline.
type TwoOptStats struct {
	InitialDistanceKm   float64 `json:"initial_distance_km"`
	OptimizedDistanceKm float64 `json:"optimized_distance_km"`
	ImprovementKm       float64 `json:"improvement_km"`
	ImprovementPct      float64 `json:"improvement_pct"`
	Iterations          int     `json:"iterations"`
	TotalImprovements   int     `json:"total_improvements"`
	// Capped is set when the pass bound stopped the search before
	// convergence. The result is still the best found, not an error.
	Capped bool `json:"capped"`
}

// OptimizationResult is the outcome of running a single strategy.
type OptimizationResult struct {
	Method     string        `json:"method"`
	Algorithm  string        `json:"algorithm"`
	Tour       Tour          `json:"tour"`
	DistanceKm float64       `json:"distance_km"`
	Elapsed    time.Duration `json:"elapsed"`
	Stats      *TwoOptStats  `json:"stats,omitempty"`
}

// Savings compares two strategies: how many kilometers strategy B saves
// over strategy A, and the relative share of A's distance.
type Savings struct {
	KmSaved float64 `json:"km_saved"`
	Percent float64 `json:"percent"`
}

// Comparison bundles the three canonical strategies plus pairwise savings.
type Comparison struct {
	Naive           *OptimizationResult `json:"naive"`
	NearestNeighbor *OptimizationResult `json:"nearest_neighbor"`
	Optimized       *OptimizationResult `json:"optimized"`

	NNVsNaive  Savings `json:"nn_vs_naive"`
	OptVsNaive Savings `json:"opt_vs_naive"`
	OptVsNN    Savings `json:"opt_vs_nn"`
}

// RouteMetrics is a derived, read-only view over a finished tour.
type RouteMetrics struct {
	TotalDistanceKm      float64     `json:"total_distance_km"`
	TotalTimeHours       float64     `json:"total_time_hours"`
	TotalTimeFormatted   string      `json:"total_time_formatted"`
	FuelLiters           float64     `json:"fuel_liters"`
	FuelCost             float64     `json:"fuel_cost"`
	CO2Kg                float64     `json:"co2_kg"`
	StartTime            time.Time   `json:"start_time"`
	EndTime              time.Time   `json:"end_time"`
	ArrivalTimes         []time.Time `json:"arrival_times"`
	NumStops             int         `json:"num_stops"`
	AvgDistancePerStopKm float64     `json:"avg_distance_per_stop_km"`
}
