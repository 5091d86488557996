package handlers

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/services"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Pick up the token the CSRF middleware put into Locals
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		tok = c.Cookies("csrf_")
	}
	if tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}

// withNotice attaches a user-facing notice for err, if it has one.
func withNotice(data fiber.Map, err error, input string) fiber.Map {
	if n, ok := services.NoticeFor(err, input); ok {
		data["Notice"] = n
	}
	return data
}

// merge copies extra over base; extra wins.
func merge(base, extra fiber.Map) fiber.Map {
	for k, v := range extra {
		base[k] = v
	}
	return base
}
