package handlers

import (
	"portfolio/internal/config"
	"portfolio/internal/content"
	"portfolio/internal/repos"
	"portfolio/internal/services"
)

type Deps struct {
	HomeHandler      *HomeHandler
	EcommerceHandler *EcommerceHandler
	LMSHandler       *LMSHandler
	DashboardHandler *DashboardHandler
	WeatherHandler   *WeatherHandler
	TaskAPIHandler   *TaskAPIHandler
	ChatHandler      *ChatHandler
}

func NewDeps(site *content.Site, store repos.StateStore, cfg config.Config) *Deps {
	scheduler := services.NewScheduler(services.NewIDGenerator(nil))
	weather := services.NewWeatherService(site.Cities, nil)
	tester := services.NewAPITester(store, services.NewMockTransport(cfg.APITestLatency))

	return &Deps{
		HomeHandler:      &HomeHandler{Site: site, ResumeURL: cfg.ResumeURL},
		EcommerceHandler: &EcommerceHandler{Site: site, Store: store},
		LMSHandler:       &LMSHandler{Site: site, Store: store},
		DashboardHandler: &DashboardHandler{Site: site, Store: store, Scheduler: scheduler},
		WeatherHandler:   &WeatherHandler{Site: site, Store: store, Weather: weather},
		TaskAPIHandler:   &TaskAPIHandler{Site: site, Store: store, Tester: tester},
		ChatHandler:      &ChatHandler{Site: site, Store: store},
	}
}
