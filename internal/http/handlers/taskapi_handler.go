package handlers

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/content"
	"portfolio/internal/domain"
	"portfolio/internal/log"
	"portfolio/internal/repos"
	"portfolio/internal/services"
	"portfolio/internal/validate"
)

type TaskAPIHandler struct {
	Site   *content.Site
	Store  repos.StateStore
	Tester *services.APITester
}

func (h *TaskAPIHandler) Page(c *fiber.Ctx) error {
	st := services.InitialTaskAPI()
	scope, err := mintScope(c, h.Store, repos.PageTaskAPI, st)
	if err != nil {
		return err
	}
	return h.render(c, scope, st, nil)
}

// Test submits the "Test API" form. The response arrives later; the page
// polls the result route until it does.
func (h *TaskAPIHandler) Test(c *fiber.Ctx) error {
	var st services.TaskAPIState
	scope, ok, err := formScope(c, h.Store, repos.PageTaskAPI, &st)
	if !ok {
		return err
	}
	method, okM := domain.ParseMethod(c.FormValue("method"))
	endpoint, okE := validate.Endpoint(c.FormValue("endpoint"))
	if !okM || !okE {
		log.Security(c, "validation.fail", map[string]any{"field": "method_or_endpoint"})
		c.Status(fiber.StatusBadRequest)
		return h.render(c, scope, st, fiber.Map{"Err": "Pick a method and enter a valid endpoint path"})
	}
	next, err := h.Tester.Run(c.UserContext(), scope, method, endpoint)
	if err != nil {
		return err
	}
	log.Info(c, "taskapi.test", map[string]any{"method": string(method), "endpoint": endpoint})
	return h.render(c, scope, next, nil)
}

// Result shows the tester state of a scope, for polling.
func (h *TaskAPIHandler) Result(c *fiber.Ctx) error {
	var st services.TaskAPIState
	scope, ok, err := loadScope(c, h.Store, repos.PageTaskAPI, c.Params("scope"), &st)
	if !ok {
		return err
	}
	return h.render(c, scope, st, nil)
}

func (h *TaskAPIHandler) render(c *fiber.Ctx, scope string, st services.TaskAPIState, extra fiber.Map) error {
	resultURL := "/projects/task-api/test/" + scope
	if st.Loading {
		// Browsers follow the Refresh header, which keeps the page polling
		// until the delivery lands.
		c.Set("Refresh", "1; url="+resultURL+"#testing")
	}
	return render(c, "taskapi", merge(fiber.Map{
		"Title":     "Task Management API",
		"Scope":     scope,
		"API":       h.Site.TaskAPI,
		"Methods":   domain.Methods,
		"Method":    st.Method,
		"Endpoint":  st.Endpoint,
		"Response":  st.Response,
		"Loading":   st.Loading,
		"ResultURL": resultURL,
	}, extra))
}
