package handler

import (
	"feline-fascination/internal/dto"
	"feline-fascination/internal/middleware"
	"feline-fascination/internal/service"
	"feline-fascination/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

func sessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.LocalSessionID).(string); ok {
		return id
	}
	return c.Params("id")
}

// StartSession handles POST /api/quiz/sessions
func (h *QuizHandler) StartSession(c *fiber.Ctx) error {
	resp, err := h.service.Start(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetSession handles GET /api/quiz/sessions/:id
func (h *QuizHandler) GetSession(c *fiber.Ctx) error {
	resp, err := h.service.Get(c.UserContext(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SelectOption handles POST /api/quiz/sessions/:id/select
func (h *QuizHandler) SelectOption(c *fiber.Ctx) error {
	var req dto.SelectOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errs := h.validator.ValidateSelectOptionRequest(req.Choice); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.Select(c.UserContext(), sessionID(c), req.Choice)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Confirm handles POST /api/quiz/sessions/:id/confirm
func (h *QuizHandler) Confirm(c *fiber.Ctx) error {
	resp, err := h.service.Confirm(c.UserContext(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Reset handles POST /api/quiz/sessions/:id/reset ("try again")
func (h *QuizHandler) Reset(c *fiber.Ctx) error {
	resp, err := h.service.Reset(c.UserContext(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// EndSession handles DELETE /api/quiz/sessions/:id
func (h *QuizHandler) EndSession(c *fiber.Ctx) error {
	if err := h.service.End(c.UserContext(), sessionID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
