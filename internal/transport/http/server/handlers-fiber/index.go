package handlers_fiber

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
)

//go:embed static/index.html
var indexPage []byte

// GetIndex serves the single-page team directory UI.
func (h *Handler) GetIndex(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.Send(indexPage)
}
