package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/pkg/errors"
	"github.com/saferoute-service/internal/pkg/utils"
	"github.com/saferoute-service/internal/pkg/validator"
	"github.com/saferoute-service/internal/usecase"
	"github.com/saferoute-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteHandler - обработчик запросов маршрутов
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// GetSafeRoutes - построение маршрутов с оценкой безопасности
func (h *RouteHandler) GetSafeRoutes(c *fiber.Ctx) error {
	var req dto.SafeRoutesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.routeUC.GetSafeRoutes(
		c.Context(),
		userID,
		domain.Point{Lat: req.Origin.Lat, Lon: req.Origin.Lon},
		domain.Point{Lat: req.Destination.Lat, Lon: req.Destination.Lon},
		domain.RoutePreference(req.Preference),
	)
	if err != nil {
		return utils.SendError(c, err)
	}

	resp := toSafeRoutesResponse(result)
	return utils.SendSuccess(c, resp, &utils.Meta{
		Total: len(resp.Routes),
	})
}

// GetRoute - получение сохраненного маршрута по ID
func (h *RouteHandler) GetRoute(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	record, err := h.routeUC.GetRoute(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.RouteRecordResponse{Route: record}, nil)
}

// ListRoutes - история маршрутов пользователя
func (h *RouteHandler) ListRoutes(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	limit := c.QueryInt("limit")

	records, err := h.routeUC.ListRoutes(c.Context(), userID, limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.RouteHistoryResponse{
		Routes: records,
		Total:  len(records),
	}, &utils.Meta{Total: len(records)})
}

// PatchRoute - частичное обновление записи маршрута (save/feedback/completed)
func (h *RouteHandler) PatchRoute(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var patch domain.RouteRecordPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&patch); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	record, err := h.routeUC.PatchRoute(c.Context(), id, &patch)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.RouteRecordResponse{Route: record}, nil)
}

// toSafeRoutesResponse собирает ответ из ранжированных маршрутов и
// идентификаторов сохраненных записей (порядок совпадает)
func toSafeRoutesResponse(result *domain.SafeRoutesResult) *dto.SafeRoutesResponse {
	routes := make([]dto.RouteResult, 0, len(result.Routes))
	for i, route := range result.Routes {
		steps := make([]domain.RouteStep, 0)
		for _, leg := range route.Candidate.Legs {
			steps = append(steps, leg.Steps...)
		}

		routeID := ""
		if i < len(result.RecordIDs) {
			routeID = result.RecordIDs[i].String()
		}

		routes = append(routes, dto.RouteResult{
			RouteID:   routeID,
			RouteType: string(route.RouteType),
			Summary:   route.Candidate.Summary,
			Distance: dto.Distance{
				Meters: route.Candidate.DistanceMeters,
				Text:   route.Candidate.DistanceText,
			},
			Duration: dto.Duration{
				Seconds: route.Candidate.DurationSeconds,
				Text:    route.Candidate.DurationText,
			},
			SafetyScore:   route.Score.Overall,
			SafetyFactors: route.Score.Factors,
			Tags:          route.Tags,
			Polyline:      route.Candidate.Polyline,
			Steps:         steps,
		})
	}

	return &dto.SafeRoutesResponse{
		Preference: string(result.Preference),
		Routes:     routes,
	}
}
