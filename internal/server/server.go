// Package server assembles the fiber application: view engine, middleware
// stack, routes and the error surface.
package server

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"portfolio/internal/config"
	"portfolio/internal/content"
	"portfolio/internal/format"
	"portfolio/internal/http/handlers"
	applog "portfolio/internal/log"
	"portfolio/internal/repos"
	"portfolio/internal/telemetry"
	"portfolio/web"
)

const bodyLimit = 1 << 20 // 1 MiB

// NewEngine builds the view engine. TemplateReload serves templates from
// ./web/templates on disk so edits show without a rebuild.
func NewEngine(cfg config.Config) (*html.Engine, error) {
	var engine *html.Engine
	if cfg.TemplateReload {
		engine = html.New("./web/templates", ".html")
		engine.Reload(true)
	} else {
		sub, err := web.TemplatesFS()
		if err != nil {
			return nil, err
		}
		engine = html.NewFileSystem(http.FS(sub), ".html")
	}
	engine.AddFuncMap(format.Funcs())
	return engine, nil
}

// ErrorHandler logs the failure and shows a friendly page without internals.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Something went wrong. Please try again."
	if fe, ok := err.(*fiber.Error); ok && fe.Code < 500 {
		code = fe.Code
		msg = "Page not found"
		if code != fiber.StatusNotFound {
			msg = "That request could not be handled."
		}
	}
	if code >= 500 {
		applog.Error(c, "server.error", err, nil)
	} else {
		applog.Info(c, "client.error", map[string]any{"code": code})
	}
	if rerr := c.Status(code).Render("notfound", fiber.Map{"Message": msg}); rerr != nil {
		return c.Status(code).SendString(msg)
	}
	return nil
}

// New builds the application with every route registered.
func New(cfg config.Config, site *content.Site, store repos.StateStore) (*fiber.App, *handlers.Deps, error) {
	engine, err := NewEngine(cfg)
	if err != nil {
		return nil, nil, err
	}
	app := fiber.New(fiber.Config{
		// Handlers hand form values to work that outlives the request.
		Immutable:    true,
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: ErrorHandler,
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = bodyLimit

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		Output: os.Stdout,
	}))
	app.Use(telemetry.Middleware(nil))
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(string(c.Request().URI().Path()), "/static/")
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.global.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("notfound", fiber.Map{"Message": "Too many requests. Please slow down."})
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ContextKey:     "csrf",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok, ok := c.Locals("csrf").(string); ok {
			c.Locals("CSRFToken", tok)
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	static, err := web.StaticFS()
	if err != nil {
		return nil, nil, err
	}
	app.Use("/static", filesystem.New(filesystem.Config{Root: http.FS(static), MaxAge: 3600}))

	deps := handlers.NewDeps(site, store, cfg)
	Register(app, deps)
	return app, deps, nil
}

// Register wires every route. The catch-all 404 goes last.
func Register(app *fiber.App, d *handlers.Deps) {
	app.Get("/", d.HomeHandler.Home)
	app.Get("/resume", d.HomeHandler.Resume)

	shop := app.Group("/projects/ecommerce")
	shop.Get("/", d.EcommerceHandler.Page)
	shop.Post("/search", d.EcommerceHandler.Search)
	shop.Post("/cart/add", d.EcommerceHandler.Add)
	shop.Post("/cart/remove", d.EcommerceHandler.Remove)

	lms := app.Group("/projects/lms")
	lms.Get("/", d.LMSHandler.Page)
	lms.Post("/enroll", d.LMSHandler.Enroll)
	lms.Post("/tab", d.LMSHandler.Tab)

	dash := app.Group("/projects/dashboard")
	dash.Get("/", d.DashboardHandler.Page)
	dash.Post("/platform", d.DashboardHandler.Platform)
	dash.Post("/posts", d.DashboardHandler.Schedule)
	dash.Post("/posts/edit", d.DashboardHandler.Edit)
	dash.Post("/posts/commit", d.DashboardHandler.Commit)
	dash.Post("/posts/cancel", d.DashboardHandler.Cancel)
	dash.Post("/posts/delete", d.DashboardHandler.Delete)

	weather := app.Group("/projects/weather")
	weather.Get("/", d.WeatherHandler.Page)
	weather.Post("/search", limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|weather"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.weather.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("notfound", fiber.Map{"Message": "Too many searches. Please try again in a minute."})
		},
	}), d.WeatherHandler.Search)

	task := app.Group("/projects/task-api")
	task.Get("/", d.TaskAPIHandler.Page)
	task.Post("/test", d.TaskAPIHandler.Test)
	task.Get("/test/:scope", d.TaskAPIHandler.Result)

	chat := app.Group("/projects/chat-api")
	chat.Get("/", d.ChatHandler.Page)
	chat.Post("/room", d.ChatHandler.Room)
	chat.Post("/send", d.ChatHandler.Send)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})
}
