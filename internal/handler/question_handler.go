package handler

import (
	"github.com/ooh112526-sudo/physics-exam-generator/internal/dto"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/service"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles pool management HTTP requests.
type QuestionHandler struct {
	service   service.PoolService
	validator *validation.Validator
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.PoolService) *QuestionHandler {
	return &QuestionHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// AddQuestion handles POST /api/questions (manual entry).
func (h *QuestionHandler) AddQuestion(c *fiber.Ctx) error {
	var req dto.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "INVALID_REQUEST",
		})
	}
	if errs := h.validator.ValidateQuestionRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.AddQuestion(&req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListQuestions handles GET /api/questions.
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	return c.JSON(h.service.ListQuestions())
}

// GetQuestion handles GET /api/questions/:id.
func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateQuestionID(id); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.GetQuestion(id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateQuestion handles PUT /api/questions/:id (whole-value replacement).
func (h *QuestionHandler) UpdateQuestion(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateQuestionID(id); len(errs) > 0 {
		return errs
	}

	var req dto.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "INVALID_REQUEST",
		})
	}
	if errs := h.validator.ValidateQuestionRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.UpdateQuestion(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// RemoveQuestion handles DELETE /api/questions/:id.
func (h *QuestionHandler) RemoveQuestion(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateQuestionID(id); len(errs) > 0 {
		return errs
	}

	if err := h.service.RemoveQuestion(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ClearPool handles DELETE /api/questions.
func (h *QuestionHandler) ClearPool(c *fiber.Ctx) error {
	h.service.ClearPool()
	return c.SendStatus(fiber.StatusNoContent)
}
