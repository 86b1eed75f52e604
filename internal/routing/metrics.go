package routing

import (
	"fmt"
	"math"
	"time"

	"github.com/route-optimizer/internal/domain"
)

// TrafficCondition is a time-of-day traffic bucket.
type TrafficCondition string

const (
	TrafficMorningRush TrafficCondition = "morning_rush" // [06:00, 09:00)
	TrafficEveningRush TrafficCondition = "evening_rush" // [17:00, 20:00)
	TrafficNight       TrafficCondition = "night"        // [20:00, 06:00)
	TrafficNormal      TrafficCondition = "normal"
)

// MetricsParams holds the vehicle and cost assumptions behind derived
// metrics. Zero fields fall back to the defaults below.
type MetricsParams struct {
	BaseSpeedKmph      float64
	FuelEfficiencyKmpl float64
	FuelPricePerLiter  float64
	CO2KgPerLiter      float64
}

// DefaultMetricsParams returns the reference city assumptions: 35 km/h
// average speed, 12 km per liter, fuel at 95 per liter, 2.31 kg CO2 per
// liter of diesel.
func DefaultMetricsParams() MetricsParams {
	return MetricsParams{
		BaseSpeedKmph:      35,
		FuelEfficiencyKmpl: 12,
		FuelPricePerLiter:  95,
		CO2KgPerLiter:      2.31,
	}
}

func (p MetricsParams) withDefaults() MetricsParams {
	def := DefaultMetricsParams()
	if p.BaseSpeedKmph <= 0 {
		p.BaseSpeedKmph = def.BaseSpeedKmph
	}
	if p.FuelEfficiencyKmpl <= 0 {
		p.FuelEfficiencyKmpl = def.FuelEfficiencyKmpl
	}
	if p.FuelPricePerLiter <= 0 {
		p.FuelPricePerLiter = def.FuelPricePerLiter
	}
	if p.CO2KgPerLiter <= 0 {
		p.CO2KgPerLiter = def.CO2KgPerLiter
	}
	return p
}

// TrafficConditionAt buckets a clock reading by hour of day.
func TrafficConditionAt(t time.Time) TrafficCondition {
	hour := t.Hour()
	switch {
	case hour >= 6 && hour < 9:
		return TrafficMorningRush
	case hour >= 17 && hour < 20:
		return TrafficEveningRush
	case hour >= 20 || hour < 6:
		return TrafficNight
	default:
		return TrafficNormal
	}
}

// trafficMultiplier slows (>1) or speeds up (<1) the base speed.
func trafficMultiplier(c TrafficCondition) float64 {
	switch c {
	case TrafficMorningRush:
		return 1.4
	case TrafficEveningRush:
		return 1.5
	case TrafficNight:
		return 0.9
	default:
		return 1.0
	}
}

// DefaultStartTime is the conventional 09:00 departure used when the
// caller does not supply one.
func DefaultStartTime() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, now.Location())
}

// DeriveMetrics walks a finished tour leg by leg and derives travel time,
// fuel cost, CO2 and per-leg arrival timestamps.
//
// The traffic bucket of each leg is taken from the simulated clock (the
// departure time advanced by all previous leg durations), not from wall
// clock, so the model is path-dependent on cumulative elapsed time.
func DeriveMetrics(tour domain.Tour, m Matrix, start time.Time, params MetricsParams) (*domain.RouteMetrics, error) {
	if len(tour) < 2 {
		return nil, ErrInvalidTour
	}
	if err := ValidateTour(tour, m.Len(), tour[0]); err != nil {
		return nil, err
	}

	if start.IsZero() {
		start = DefaultStartTime()
	}
	p := params.withDefaults()

	clock := start
	totalHours := 0.0
	arrivals := make([]time.Time, 0, len(tour))
	arrivals = append(arrivals, start)

	for i := 0; i < len(tour)-1; i++ {
		legKm := m[tour[i]][tour[i+1]]

		condition := TrafficConditionAt(clock)
		effectiveSpeed := p.BaseSpeedKmph / trafficMultiplier(condition)
		legHours := legKm / effectiveSpeed

		totalHours += legHours
		clock = clock.Add(time.Duration(legHours * float64(time.Hour)))
		arrivals = append(arrivals, clock)
	}

	totalKm := TourDistance(tour, m)
	liters := totalKm / p.FuelEfficiencyKmpl

	return &domain.RouteMetrics{
		TotalDistanceKm:      totalKm,
		TotalTimeHours:       totalHours,
		TotalTimeFormatted:   FormatDuration(totalHours),
		FuelLiters:           liters,
		FuelCost:             liters * p.FuelPricePerLiter,
		CO2Kg:                liters * p.CO2KgPerLiter,
		StartTime:            start,
		EndTime:              clock,
		ArrivalTimes:         arrivals,
		NumStops:             len(tour) - 1,
		AvgDistancePerStopKm: totalKm / float64(len(tour)-1),
	}, nil
}

// FormatDuration renders fractional hours as "2h 30m", dropping the hour
// component below one hour ("45m"). Minutes are rounded, not truncated,
// so a sum of legs a hair under a whole minute does not lose it.
func FormatDuration(hours float64) string {
	totalMinutes := int(math.Round(hours * 60))
	h := totalMinutes / 60
	min := totalMinutes % 60

	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, min)
	}
	return fmt.Sprintf("%dm", min)
}
