package handler

import (
	"feline-fascination/internal/domain"
	"feline-fascination/internal/dto"
	"feline-fascination/internal/middleware"
	"feline-fascination/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PageHandler serves the page view model and its independent widgets.
type PageHandler struct {
	page  service.PageService
	facts service.FactService
	likes service.LikeService
}

func NewPageHandler(page service.PageService, facts service.FactService, likes service.LikeService) *PageHandler {
	return &PageHandler{
		page:  page,
		facts: facts,
		likes: likes,
	}
}

// GetPage handles GET /api/page?theme=light|dark
func (h *PageHandler) GetPage(c *fiber.Ctx) error {
	theme, err := domain.ParseTheme(c.Query("theme"))
	if err != nil {
		return err
	}
	resp, err := h.page.Render(c.UserContext(), theme)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetCurrentFact handles GET /api/facts/current
func (h *PageHandler) GetCurrentFact(c *fiber.Ctx) error {
	return c.JSON(h.facts.Current())
}

// GetBreeds handles GET /api/breeds
func (h *PageHandler) GetBreeds(c *fiber.Ctx) error {
	return c.JSON(h.page.Breeds())
}

// GetBreed handles GET /api/breeds/:name
func (h *PageHandler) GetBreed(c *fiber.Ctx) error {
	name, _ := c.Locals(middleware.LocalBreedName).(string)
	if name == "" {
		name = c.Params("name")
	}
	resp, err := h.page.Breed(name)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetLikes handles GET /api/likes
func (h *PageHandler) GetLikes(c *fiber.Ctx) error {
	n, err := h.likes.Count(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.LikeResponse{Likes: n})
}

// Like handles POST /api/likes
func (h *PageHandler) Like(c *fiber.Ctx) error {
	resp, err := h.likes.Like(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
