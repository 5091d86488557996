package handlers

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/content"
	"portfolio/internal/log"
	"portfolio/internal/repos"
	"portfolio/internal/services"
	"portfolio/internal/validate"
)

type LMSHandler struct {
	Site  *content.Site
	Store repos.StateStore
}

func (h *LMSHandler) Page(c *fiber.Ctx) error {
	st := services.InitialLMS(h.Site)
	scope, err := mintScope(c, h.Store, repos.PageLMS, st)
	if err != nil {
		return err
	}
	return h.render(c, scope, st, nil)
}

func (h *LMSHandler) Enroll(c *fiber.Ctx) error {
	var st services.LMSState
	scope, ok, err := formScope(c, h.Store, repos.PageLMS, &st)
	if !ok {
		return err
	}
	id, valid := validate.IntID(c.FormValue("course_id"))
	if !valid {
		log.Security(c, "validation.fail", map[string]any{"field": "course_id"})
		c.Status(fiber.StatusBadRequest)
		return h.render(c, scope, st, fiber.Map{"Err": "Unknown course"})
	}
	st.Enrolled = services.Enroll(st.Enrolled, id, h.Site.Courses)
	if err := h.Store.Save(c.UserContext(), scope, repos.PageLMS, st); err != nil {
		return err
	}
	log.Audit(c, "lms.enroll", map[string]any{"course_id": id, "enrolled": len(st.Enrolled)})
	return h.render(c, scope, st, nil)
}

func (h *LMSHandler) Tab(c *fiber.Ctx) error {
	var st services.LMSState
	scope, ok, err := formScope(c, h.Store, repos.PageLMS, &st)
	if !ok {
		return err
	}
	st.Tab = services.SelectTab(st.Tab, c.FormValue("tab"))
	if err := h.Store.Save(c.UserContext(), scope, repos.PageLMS, st); err != nil {
		return err
	}
	return h.render(c, scope, st, nil)
}

func (h *LMSHandler) render(c *fiber.Ctx, scope string, st services.LMSState, extra fiber.Map) error {
	mine, browse := services.Partition(h.Site.Courses, st.Enrolled)
	return render(c, "lms", merge(fiber.Map{
		"Title":    "Learning Management System",
		"Scope":    scope,
		"Tab":      st.Tab,
		"Mine":     mine,
		"Browse":   browse,
		"Enrolled": st.Enrolled,
	}, extra))
}
