package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/route-optimizer/internal/pkg/utils"
	"github.com/route-optimizer/internal/pkg/validator"
	"github.com/route-optimizer/internal/usecase"
	"github.com/route-optimizer/internal/usecase/dto"
)

// RouteHandler exposes the optimization engine over HTTP.
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	jobUC   *usecase.RouteJobUseCase
	logger  *zap.Logger
}

func NewRouteHandler(routeUC *usecase.RouteUseCase, jobUC *usecase.RouteJobUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		jobUC:   jobUC,
		logger:  logger,
	}
}

// Optimize runs a single strategy over the configured stop set.
func (h *RouteHandler) Optimize(c *fiber.Ctx) error {
	var req dto.OptimizeRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routeUC.Optimize(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		TimeMSec: result.ElapsedMs,
	})
}

// Compare runs all three canonical strategies and reports savings.
func (h *RouteHandler) Compare(c *fiber.Ctx) error {
	result, err := h.routeUC.Compare(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Metrics derives time, fuel and emission figures for an optimized tour.
func (h *RouteHandler) Metrics(c *fiber.Ctx) error {
	var req dto.RouteMetricsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routeUC.Metrics(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// CreateJob enqueues a background optimization job.
func (h *RouteHandler) CreateJob(c *fiber.Ctx) error {
	var req dto.CreateRouteJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.jobUC.Enqueue(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(utils.SuccessResponse{Data: result})
}
