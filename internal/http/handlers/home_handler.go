package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/content"
	"portfolio/internal/domain"
	"portfolio/internal/log"
)

type HomeHandler struct {
	Site      *content.Site
	ResumeURL string
}

func (h *HomeHandler) Home(c *fiber.Ctx) error {
	featured, rest := h.splitProjects()
	return render(c, "home", fiber.Map{
		"Title":    "Portfolio",
		"Profile":  h.Site.Profile,
		"About":    h.Site.AboutHTML(),
		"Skills":   h.Site.Skills,
		"Featured": featured,
		"Projects": rest,
		"Social":   h.Site.Social,
		"Year":     time.Now().Year(),
	})
}

func (h *HomeHandler) splitProjects() (featured, rest []domain.Project) {
	for _, p := range h.Site.Projects {
		if p.Featured {
			featured = append(featured, p)
		} else {
			rest = append(rest, p)
		}
	}
	return featured, rest
}

// Resume sends the visitor to the resume download.
func (h *HomeHandler) Resume(c *fiber.Ctx) error {
	log.Info(c, "resume.download", nil)
	return c.Redirect(h.ResumeURL, fiber.StatusFound)
}
