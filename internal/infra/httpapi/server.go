package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewServer builds the fiber application with all routes registered.
// The recover middleware is the outermost boundary: anything unexpected
// surfaces as a 500 with a generic body instead of tearing the process down.
func NewServer(h *Handler) *fiber.App {
	fapp := fiber.New(fiber.Config{
		AppName: "event-notifier",
	})
	fapp.Use(recover.New())
	h.Register(fapp)
	return fapp
}
