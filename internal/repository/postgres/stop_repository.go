package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/domain/repository"
	"github.com/route-optimizer/internal/pkg/errors"
	"go.uber.org/zap"
)

type stopRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStopRepository(db *DB) repository.StopRepository {
	return &stopRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// GetStops returns the full stop set with the depot first, then delivery
// stops in insertion order. The returned slice indexes are what tours refer
// to, so the ordering must be stable across calls.
func (r *stopRepository) GetStops(ctx context.Context) ([]domain.Stop, error) {
	query := `
		SELECT id, name, address, locality, lat, lon, package_count, is_depot
		FROM stops
		ORDER BY is_depot DESC, id
	`

	var stops []domain.Stop
	if err := r.db.SelectContext(ctx, &stops, query); err != nil {
		r.logger.Error("Failed to get stops", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if len(stops) == 0 {
		return nil, errors.ErrStopsNotFound
	}
	if !stops[0].IsDepot {
		r.logger.Error("Stop set has no depot")
		return nil, errors.ErrStopsNotFound
	}

	return stops, nil
}

func (r *stopRepository) GetDepot(ctx context.Context) (*domain.Stop, error) {
	query := `
		SELECT id, name, address, locality, lat, lon, package_count, is_depot
		FROM stops
		WHERE is_depot
		LIMIT 1
	`

	var depot domain.Stop
	err := r.db.GetContext(ctx, &depot, query)
	if err == sql.ErrNoRows {
		return nil, errors.ErrStopsNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get depot", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &depot, nil
}
