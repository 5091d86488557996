package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"portfolio/internal/log"
	"portfolio/internal/repos"
	"portfolio/internal/validate"
)

// pagePath is where a page's fresh state can be fetched.
func pagePath(page string) string { return "/projects/" + page }

// mintScope starts a page scope holding initial state. Every GET of a demo
// page gets its own scope, so a reload starts over.
func mintScope(c *fiber.Ctx, store repos.StateStore, page string, initial any) (string, error) {
	scope := uuid.NewString()
	if err := store.Save(c.UserContext(), scope, page, initial); err != nil {
		return "", err
	}
	log.Info(c, "scope.new", map[string]any{"page": page, "scope": scope})
	return scope, nil
}

// loadScope decodes the state of the scope named by raw into dst. When ok is
// false a response has already been chosen and the handler should return err.
func loadScope(c *fiber.Ctx, store repos.StateStore, page, raw string, dst any) (scope string, ok bool, err error) {
	scope, valid := validate.Scope(raw)
	if !valid {
		log.Security(c, "validation.fail", map[string]any{"field": "scope"})
		return "", false, c.Status(fiber.StatusBadRequest).Render("notfound", fiber.Map{"Message": "Invalid request. Please reload the page."})
	}
	err = store.Load(c.UserContext(), scope, page, dst)
	if errors.Is(err, repos.ErrScopeNotFound) {
		// Expired or foreign scope: behave like a reload.
		log.Info(c, "scope.expired", map[string]any{"page": page, "scope": scope})
		return "", false, c.Redirect(pagePath(page), fiber.StatusSeeOther)
	}
	if err != nil {
		return "", false, err
	}
	return scope, true, nil
}

// formScope loads the scope posted in the hidden "scope" field.
func formScope(c *fiber.Ctx, store repos.StateStore, page string, dst any) (string, bool, error) {
	return loadScope(c, store, page, c.FormValue("scope"), dst)
}
