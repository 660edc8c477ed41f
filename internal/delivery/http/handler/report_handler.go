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

// ReportHandler - обработчик отчетов о безопасности
type ReportHandler struct {
	reportUC *usecase.ReportUseCase
	logger   *zap.Logger
}

// NewReportHandler - создание нового ReportHandler
func NewReportHandler(reportUC *usecase.ReportUseCase, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportUC: reportUC,
		logger:   logger,
	}
}

// CreateReport - создание отчета о безопасности
func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	var req dto.CreateReportRequest
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

	report, err := h.reportUC.CreateReport(
		c.Context(),
		userID,
		domain.ReportType(req.Type),
		domain.ReportSeverity(req.Severity),
		req.Description,
		req.Lat, req.Lon,
	)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{
		Data: dto.ReportResponse{Report: report},
	})
}

// GetNearbyReports - отчеты в радиусе от точки
func (h *ReportHandler) GetNearbyReports(c *fiber.Ctx) error {
	var req dto.NearbyReportsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	reports, err := h.reportUC.GetNearbyReports(c.Context(), req.Lat, req.Lon, req.Radius)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NearbyReportsResponse{
		Reports: reports,
		Total:   len(reports),
	}, &utils.Meta{Total: len(reports)})
}

// GetNearbyReportsGET - GET-вариант для отладки из браузера
func (h *ReportHandler) GetNearbyReportsGET(c *fiber.Ctx) error {
	req := dto.NearbyReportsRequest{
		Lat:    c.QueryFloat("lat"),
		Lon:    c.QueryFloat("lon"),
		Radius: c.QueryFloat("radius"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	reports, err := h.reportUC.GetNearbyReports(c.Context(), req.Lat, req.Lon, req.Radius)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NearbyReportsResponse{
		Reports: reports,
		Total:   len(reports),
	}, &utils.Meta{Total: len(reports)})
}

// GetReport - отчет по идентификатору
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	report, err := h.reportUC.GetReport(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ReportResponse{Report: report}, nil)
}

// UpdateReportStatus - смена статуса модерации отчета
func (h *ReportHandler) UpdateReportStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.UpdateReportStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	report, err := h.reportUC.UpdateReportStatus(c.Context(), id, domain.ReportStatus(req.Status))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ReportResponse{Report: report}, nil)
}
