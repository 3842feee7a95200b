package handler

import (
	"github.com/ooh112526-sudo/physics-exam-generator/internal/dto"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ImportHandler handles tagged-document import requests.
type ImportHandler struct {
	service service.ImportService
}

// NewImportHandler creates a new ImportHandler instance
func NewImportHandler(service service.ImportService) *ImportHandler {
	return &ImportHandler{service: service}
}

// ImportDocument handles POST /api/imports. The request body is the tagged
// document as plain UTF-8 text, one paragraph per line.
func (h *ImportHandler) ImportDocument(c *fiber.Ctx) error {
	doc := string(c.Body())
	if doc == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "EMPTY_DOCUMENT",
		})
	}

	resp, err := h.service.ImportDocument(doc)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Template handles GET /api/imports/template: the sample document showing
// the tag vocabulary.
func (h *ImportHandler) Template(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(h.service.Template())
}
