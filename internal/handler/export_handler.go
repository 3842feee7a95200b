package handler

import (
	"github.com/ooh112526-sudo/physics-exam-generator/internal/dto"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/service"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ExportHandler handles exam export requests.
type ExportHandler struct {
	service   service.ExportService
	validator *validation.Validator
}

// NewExportHandler creates a new ExportHandler instance
func NewExportHandler(service service.ExportService) *ExportHandler {
	return &ExportHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// CreateExport handles POST /api/exports: selects a subset of the pool,
// shuffles (unless disabled), and stages the exam paper and answer key.
func (h *ExportHandler) CreateExport(c *fiber.Ctx) error {
	var req dto.ExportRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "INVALID_REQUEST",
			})
		}
	}
	if errs := h.validator.ValidateExportRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.CreateExport(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetExamPaper handles GET /api/exports/:id/exam.
func (h *ExportHandler) GetExamPaper(c *fiber.Ctx) error {
	paper, err := h.service.GetExamPaper(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(paper)
}

// GetAnswerKey handles GET /api/exports/:id/answers.
func (h *ExportHandler) GetAnswerKey(c *fiber.Ctx) error {
	key, err := h.service.GetAnswerKey(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(key)
}
