package dto

import (
	"time"

	"github.com/route-optimizer/internal/domain"
)

const clockLayout = "15:04"

// StopDTO mirrors domain.Stop for API responses.
type StopDTO struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address,omitempty"`
	Locality     string  `json:"locality,omitempty"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	PackageCount int     `json:"package_count"`
	IsDepot      bool    `json:"is_depot"`
}

// StopsResponse lists the configured stop set, depot first.
type StopsResponse struct {
	Stops []StopDTO `json:"stops"`
	Total int       `json:"total"`
}

// OptimizationResultDTO is a single strategy run. RouteNames spells the
// tour out as stop names in visiting order.
type OptimizationResultDTO struct {
	Method     string              `json:"method"`
	Algorithm  string              `json:"algorithm"`
	Tour       []int               `json:"tour"`
	RouteNames []string            `json:"route_names"`
	DistanceKm float64             `json:"distance_km"`
	ElapsedMs  float64             `json:"elapsed_ms"`
	Stats      *domain.TwoOptStats `json:"stats,omitempty"`
}

// SavingsDTO is a pairwise strategy comparison.
type SavingsDTO struct {
	KmSaved float64 `json:"km_saved"`
	Percent float64 `json:"percent"`
}

// ComparisonDTO bundles the three canonical strategies.
type ComparisonDTO struct {
	Naive           *OptimizationResultDTO `json:"naive"`
	NearestNeighbor *OptimizationResultDTO `json:"nearest_neighbor"`
	Optimized       *OptimizationResultDTO `json:"optimized"`

	NNVsNaive  SavingsDTO `json:"nn_vs_naive"`
	OptVsNaive SavingsDTO `json:"opt_vs_naive"`
	OptVsNN    SavingsDTO `json:"opt_vs_nn"`
}

// RouteMetricsDTO reports derived time, fuel and emission figures. Clock
// fields are 24-hour HH:MM strings.
type RouteMetricsDTO struct {
	Method               string   `json:"method"`
	Tour                 []int    `json:"tour"`
	TotalDistanceKm      float64  `json:"total_distance_km"`
	TotalTimeHours       float64  `json:"total_time_hours"`
	TotalTimeFormatted   string   `json:"total_time_formatted"`
	FuelLiters           float64  `json:"fuel_liters"`
	FuelCost             float64  `json:"fuel_cost"`
	CO2Kg                float64  `json:"co2_kg"`
	StartTime            string   `json:"start_time"`
	EndTime              string   `json:"end_time"`
	ArrivalTimes         []string `json:"arrival_times"`
	NumStops             int      `json:"num_stops"`
	AvgDistancePerStopKm float64  `json:"avg_distance_per_stop_km"`
}

// CreateRouteJobResponse acknowledges an enqueued background job.
type CreateRouteJobResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

func ConvertStop(s domain.Stop) StopDTO {
	return StopDTO{
		ID:           s.ID,
		Name:         s.Name,
		Address:      s.Address,
		Locality:     s.Locality,
		Lat:          s.Lat,
		Lon:          s.Lon,
		PackageCount: s.PackageCount,
		IsDepot:      s.IsDepot,
	}
}

func ConvertOptimizationResult(res *domain.OptimizationResult, stops []domain.Stop) *OptimizationResultDTO {
	if res == nil {
		return nil
	}

	names := make([]string, 0, len(res.Tour))
	for _, idx := range res.Tour {
		if idx >= 0 && idx < len(stops) {
			names = append(names, stops[idx].Name)
		}
	}

	return &OptimizationResultDTO{
		Method:     res.Method,
		Algorithm:  res.Algorithm,
		Tour:       res.Tour,
		RouteNames: names,
		DistanceKm: res.DistanceKm,
		ElapsedMs:  float64(res.Elapsed.Microseconds()) / 1000.0,
		Stats:      res.Stats,
	}
}

func ConvertComparison(cmp *domain.Comparison, stops []domain.Stop) *ComparisonDTO {
	return &ComparisonDTO{
		Naive:           ConvertOptimizationResult(cmp.Naive, stops),
		NearestNeighbor: ConvertOptimizationResult(cmp.NearestNeighbor, stops),
		Optimized:       ConvertOptimizationResult(cmp.Optimized, stops),
		NNVsNaive:       SavingsDTO(cmp.NNVsNaive),
		OptVsNaive:      SavingsDTO(cmp.OptVsNaive),
		OptVsNN:         SavingsDTO(cmp.OptVsNN),
	}
}

func ConvertRouteMetrics(method string, tour domain.Tour, m *domain.RouteMetrics) *RouteMetricsDTO {
	arrivals := make([]string, len(m.ArrivalTimes))
	for i, t := range m.ArrivalTimes {
		arrivals[i] = t.Format(clockLayout)
	}

	return &RouteMetricsDTO{
		Method:               method,
		Tour:                 tour,
		TotalDistanceKm:      m.TotalDistanceKm,
		TotalTimeHours:       m.TotalTimeHours,
		TotalTimeFormatted:   m.TotalTimeFormatted,
		FuelLiters:           m.FuelLiters,
		FuelCost:             m.FuelCost,
		CO2Kg:                m.CO2Kg,
		StartTime:            m.StartTime.Format(clockLayout),
		EndTime:              m.EndTime.Format(clockLayout),
		ArrivalTimes:         arrivals,
		NumStops:             m.NumStops,
		AvgDistancePerStopKm: m.AvgDistancePerStopKm,
	}
}

// ParseClock resolves an HH:MM string against today's date. An empty
// string returns the zero time so the metrics layer applies its default.
func ParseClock(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	clock, err := time.Parse(clockLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location()), nil
}
