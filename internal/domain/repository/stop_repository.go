package repository

import (
	"context"

	"github.com/route-optimizer/internal/domain"
)

// StopRepository loads the validated problem instance. The depot is always
// the first element of the returned slice; the optimization core relies on
// this ordering.
type StopRepository interface {
	// GetStops returns all stops with the depot at index 0.
	GetStops(ctx context.Context) ([]domain.Stop, error)

	// GetDepot returns the depot stop.
	GetDepot(ctx context.Context) (*domain.Stop, error)
}
