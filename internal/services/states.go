package services

import (
	"slices"

	"portfolio/internal/content"
	"portfolio/internal/domain"
)

// Page states. Each is the whole page-local state of one page scope and is
// what the state store persists between form posts.

type EcommerceState struct {
	Cart  Cart   `json:"cart"`
	Query string `json:"query"`
}

type LMSState struct {
	Enrolled EnrollmentSet `json:"enrolled"`
	Tab      string        `json:"tab"`
}

func InitialEcommerce() EcommerceState { return EcommerceState{Cart: Cart{}} }

func InitialLMS(site *content.Site) LMSState {
	return LMSState{Enrolled: EnrollmentSet(slices.Clone(site.InitialEnrollment)), Tab: TabMyCourses}
}

func InitialDashboard(site *content.Site, s *Scheduler) DashboardState {
	return s.Initial(site.UpcomingPosts)
}

func InitialWeatherState(site *content.Site) WeatherState {
	return InitialWeather(site.InitialWeather.Current, site.InitialWeather.Forecast)
}

func InitialChat(site *content.Site) ChatState {
	return ChatState{ActiveRoom: site.ChatAPI.DefaultRoom}
}

// ActiveRoom resolves the selected room, falling back to the default room
// and then to a placeholder so the header always has a name.
func ActiveRoom(st ChatState, rooms []domain.ChatRoom, defaultID string) domain.ChatRoom {
	for _, id := range []string{st.ActiveRoom, defaultID} {
		if i := slices.IndexFunc(rooms, func(r domain.ChatRoom) bool { return r.ID == id }); i >= 0 {
			return rooms[i]
		}
	}
	return domain.ChatRoom{ID: defaultID, Name: "General Discussion"}
}
