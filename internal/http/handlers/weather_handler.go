package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/content"
	"portfolio/internal/log"
	"portfolio/internal/repos"
	"portfolio/internal/services"
	"portfolio/internal/validate"
)

type WeatherHandler struct {
	Site    *content.Site
	Store   repos.StateStore
	Weather *services.WeatherService
}

func (h *WeatherHandler) Page(c *fiber.Ctx) error {
	st := services.InitialWeatherState(h.Site)
	scope, err := mintScope(c, h.Store, repos.PageWeather, st)
	if err != nil {
		return err
	}
	return h.render(c, scope, st, nil)
}

func (h *WeatherHandler) Search(c *fiber.Ctx) error {
	var st services.WeatherState
	scope, ok, err := formScope(c, h.Store, repos.PageWeather, &st)
	if !ok {
		return err
	}
	raw, valid := validate.City(c.FormValue("city"))
	if !valid {
		// No city is that long: report it like any other unknown city.
		log.Security(c, "validation.fail", map[string]any{"field": "city"})
		return h.render(c, scope, st, withNotice(fiber.Map{}, services.ErrCityNotFound, raw))
	}

	next, err := h.Weather.Search(st, raw)
	var extra fiber.Map
	switch {
	case errors.Is(err, services.ErrCityNotFound):
		log.Info(c, "weather.search.miss", map[string]any{"city": raw})
		extra = withNotice(fiber.Map{}, err, raw)
	case err != nil:
		return err
	default:
		log.Info(c, "weather.search", map[string]any{"city": next.Current.City})
	}
	if err := h.Store.Save(c.UserContext(), scope, repos.PageWeather, next); err != nil {
		return err
	}
	return h.render(c, scope, next, extra)
}

func (h *WeatherHandler) render(c *fiber.Ctx, scope string, st services.WeatherState, extra fiber.Map) error {
	return render(c, "weather", merge(fiber.Map{
		"Title":    "Weather App",
		"Scope":    scope,
		"Current":  st.Current,
		"Forecast": st.Forecast,
		"Query":    st.Query,
		"Date":     time.Now().Format("Monday, January 2, 2006"),
	}, extra))
}
