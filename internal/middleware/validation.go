package middleware

import (
	"feline-fascination/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalSessionID = "validated_session_id"
	LocalBreedName = "validated_breed_name"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateSessionID validates the :id path parameter of quiz session routes
func (vm *ValidationMiddleware) ValidateSessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Params("id")
		if errors := vm.validator.ValidateSessionID(sessionID); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(LocalSessionID, sessionID)
		return c.Next()
	}
}

// ValidateBreedName validates the :name path parameter
func (vm *ValidationMiddleware) ValidateBreedName() fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")
		if errors := vm.validator.ValidateBreedName(name); len(errors) > 0 {
			return errors
		}

		c.Locals(LocalBreedName, name)
		return c.Next()
	}
}
