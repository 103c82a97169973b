package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the uniform error body. Code carries the stable
// machine-readable error code when one exists.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, code, message string) error {
	return JSON(c, status, ErrorResponse{Code: code, Message: message})
}
