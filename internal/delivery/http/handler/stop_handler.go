package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/route-optimizer/internal/pkg/utils"
	"github.com/route-optimizer/internal/usecase"
)

// StopHandler serves the configured stop set.
type StopHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

func NewStopHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *StopHandler {
	return &StopHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// GetStops lists all stops, depot first.
func (h *StopHandler) GetStops(c *fiber.Ctx) error {
	result, err := h.routeUC.GetStops(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetDepot returns the depot stop.
func (h *StopHandler) GetDepot(c *fiber.Ctx) error {
	result, err := h.routeUC.GetDepot(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
