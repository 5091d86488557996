package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/content"
	"portfolio/internal/domain"
	"portfolio/internal/log"
	"portfolio/internal/repos"
	"portfolio/internal/services"
	"portfolio/internal/validate"
)

// postPlatforms are the choices offered by the schedule form.
var postPlatforms = []string{"Instagram", "Twitter", "Facebook"}

type DashboardHandler struct {
	Site      *content.Site
	Store     repos.StateStore
	Scheduler *services.Scheduler
}

func (h *DashboardHandler) Page(c *fiber.Ctx) error {
	st := services.InitialDashboard(h.Site, h.Scheduler)
	scope, err := mintScope(c, h.Store, repos.PageDashboard, st)
	if err != nil {
		return err
	}
	return h.render(c, scope, st, nil)
}

func (h *DashboardHandler) Platform(c *fiber.Ctx) error {
	var st services.DashboardState
	scope, ok, err := formScope(c, h.Store, repos.PageDashboard, &st)
	if !ok {
		return err
	}
	platform, _ := validate.Slug(c.FormValue("platform"))
	next, err := h.Scheduler.SelectPlatform(st, platform)
	if err != nil {
		log.Security(c, "validation.fail", map[string]any{"field": "platform"})
		c.Status(fiber.StatusBadRequest)
		return h.render(c, scope, st, fiber.Map{"Err": "Unknown platform"})
	}
	return h.save(c, scope, next, nil)
}

// postForm reads the shared schedule/edit form. ok is false when a field is
// over its length bound; emptiness is left to the scheduler.
func postForm(c *fiber.Ctx) (services.PostForm, bool) {
	platform, ok1 := validate.Field(c.FormValue("platform"))
	body, ok2 := validate.Content(c.FormValue("content"))
	when, ok3 := validate.Field(c.FormValue("scheduled_time"))
	return services.PostForm{Platform: platform, Content: body, ScheduledTime: when}, ok1 && ok2 && ok3
}

func (h *DashboardHandler) Schedule(c *fiber.Ctx) error {
	var st services.DashboardState
	scope, ok, err := formScope(c, h.Store, repos.PageDashboard, &st)
	if !ok {
		return err
	}
	f, valid := postForm(c)
	if !valid {
		return h.tooLong(c, scope, st, f)
	}
	next, err := h.Scheduler.Schedule(st, f)
	if errors.Is(err, services.ErrMissingFields) {
		log.Info(c, "post.schedule.rejected", map[string]any{"reason": "missing_fields"})
		return h.render(c, scope, st, withNotice(fiber.Map{"Form": f}, err, ""))
	}
	if err != nil {
		return err
	}
	log.Audit(c, "post.schedule", map[string]any{"post_id": next.Posts[len(next.Posts)-1].ID, "platform": f.Platform})
	return h.save(c, scope, next, nil)
}

func (h *DashboardHandler) Edit(c *fiber.Ctx) error {
	var st services.DashboardState
	scope, ok, err := formScope(c, h.Store, repos.PageDashboard, &st)
	if !ok {
		return err
	}
	id, valid := validate.PostID(c.FormValue("id"))
	if !valid {
		log.Security(c, "validation.fail", map[string]any{"field": "id"})
		c.Status(fiber.StatusBadRequest)
		return h.render(c, scope, st, fiber.Map{"Err": "Unknown post"})
	}
	next, err := h.Scheduler.BeginEdit(st, id)
	if errors.Is(err, services.ErrUnknownPost) {
		c.Status(fiber.StatusNotFound)
		return h.render(c, scope, st, fiber.Map{"Err": "That post no longer exists"})
	}
	if err != nil {
		return err
	}
	return h.save(c, scope, next, nil)
}

func (h *DashboardHandler) Commit(c *fiber.Ctx) error {
	var st services.DashboardState
	scope, ok, err := formScope(c, h.Store, repos.PageDashboard, &st)
	if !ok {
		return err
	}
	f, valid := postForm(c)
	if !valid {
		return h.tooLong(c, scope, st, f)
	}
	editing := st.EditingID
	next, err := h.Scheduler.CommitEdit(st, f)
	switch {
	case errors.Is(err, services.ErrMissingFields):
		log.Info(c, "post.edit.rejected", map[string]any{"reason": "missing_fields", "post_id": editing})
		return h.render(c, scope, st, withNotice(fiber.Map{"Form": f}, err, ""))
	case errors.Is(err, services.ErrUnknownPost):
		c.Status(fiber.StatusNotFound)
		return h.save(c, scope, h.Scheduler.CancelEdit(st), fiber.Map{"Err": "That post no longer exists"})
	case err != nil:
		return err
	}
	log.Audit(c, "post.edit", map[string]any{"post_id": editing})
	return h.save(c, scope, next, nil)
}

func (h *DashboardHandler) Cancel(c *fiber.Ctx) error {
	var st services.DashboardState
	scope, ok, err := formScope(c, h.Store, repos.PageDashboard, &st)
	if !ok {
		return err
	}
	return h.save(c, scope, h.Scheduler.CancelEdit(st), nil)
}

func (h *DashboardHandler) Delete(c *fiber.Ctx) error {
	var st services.DashboardState
	scope, ok, err := formScope(c, h.Store, repos.PageDashboard, &st)
	if !ok {
		return err
	}
	id, valid := validate.PostID(c.FormValue("id"))
	if !valid {
		log.Security(c, "validation.fail", map[string]any{"field": "id"})
		c.Status(fiber.StatusBadRequest)
		return h.render(c, scope, st, fiber.Map{"Err": "Unknown post"})
	}
	next := h.Scheduler.Delete(st, id)
	log.Audit(c, "post.delete", map[string]any{"post_id": id, "removed": len(st.Posts) - len(next.Posts)})
	return h.save(c, scope, next, nil)
}

func (h *DashboardHandler) tooLong(c *fiber.Ctx, scope string, st services.DashboardState, f services.PostForm) error {
	log.Security(c, "validation.fail", map[string]any{"field": "post"})
	c.Status(fiber.StatusBadRequest)
	return h.render(c, scope, st, fiber.Map{"Err": "Post content is limited to 500 characters", "Form": f})
}

func (h *DashboardHandler) save(c *fiber.Ctx, scope string, st services.DashboardState, extra fiber.Map) error {
	if err := h.Store.Save(c.UserContext(), scope, repos.PageDashboard, st); err != nil {
		return err
	}
	return h.render(c, scope, st, extra)
}

func (h *DashboardHandler) render(c *fiber.Ctx, scope string, st services.DashboardState, extra fiber.Map) error {
	stats, ok := h.Site.PlatformStats[st.Platform]
	if !ok {
		stats = h.Site.PlatformStats[domain.PlatformOverview]
	}
	return render(c, "dashboard", merge(fiber.Map{
		"Title":         "Social Media Dashboard",
		"Scope":         scope,
		"Platform":      st.Platform,
		"Platforms":     domain.Platforms,
		"PostPlatforms": postPlatforms,
		"Stats":         stats,
		"RecentPosts":   h.Site.RecentPosts,
		"Posts":         st.Posts,
		"Form":          st.Form,
		"EditingID":     st.EditingID,
	}, extra))
}
