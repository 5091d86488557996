package services

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strings"

	"portfolio/internal/domain"
)

var ErrCityNotFound = errors.New("city not found")

// Rand is the random source behind the cosmetic weather fields.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

type WeatherState struct {
	Current  domain.WeatherRecord `json:"current"`
	Forecast []domain.ForecastDay `json:"forecast"`
	Query    string               `json:"query"`
}

type WeatherService struct {
	Cities map[string]domain.City
	Rand   Rand
}

func NewWeatherService(cities map[string]domain.City, r Rand) *WeatherService {
	if r == nil {
		r = globalRand{}
	}
	return &WeatherService{Cities: cities, Rand: r}
}

type forecastSlot struct {
	day       string
	high      int
	low       int
	precipCap int
}

var forecastSlots = []forecastSlot{
	{"Today", 2, -4, 30},
	{"Tomorrow", 3, -3, 40},
	{"Wednesday", 1, -5, 60},
	{"Thursday", -1, -6, 50},
	{"Friday", 2, -4, 30},
}

// Search looks the input up in the city dictionary. Blank input is a no-op.
// An unknown city returns ErrCityNotFound and the state untouched, including
// the typed query.
func (s *WeatherService) Search(st WeatherState, input string) (WeatherState, error) {
	key := strings.ToLower(strings.TrimSpace(input))
	if key == "" {
		return st, nil
	}
	city, ok := s.Cities[key]
	if !ok {
		st.Query = input
		return st, ErrCityNotFound
	}

	r := s.Rand
	st.Current = domain.WeatherRecord{
		City:        DisplayCity(input),
		Country:     city.Country,
		Temperature: city.Temperature,
		Condition:   city.Condition,
		Humidity:    r.IntN(40) + 40,
		WindSpeed:   r.IntN(20) + 5,
		Visibility:  r.IntN(5) + 8,
		FeelsLike:   city.Temperature + r.IntN(6) - 3,
		UVIndex:     r.IntN(10) + 1,
		Pressure:    r.IntN(50) + 1000,
	}

	forecast := make([]domain.ForecastDay, 0, len(forecastSlots))
	for i, slot := range forecastSlots {
		cond := city.Condition
		if i > 0 {
			cond = domain.ForecastConditions[r.IntN(len(domain.ForecastConditions))]
		}
		forecast = append(forecast, domain.ForecastDay{
			Day:           slot.day,
			High:          city.Temperature + slot.high,
			Low:           city.Temperature + slot.low,
			Condition:     cond,
			Precipitation: r.IntN(slot.precipCap),
		})
	}
	st.Forecast = forecast
	st.Query = ""
	return st, nil
}

// DisplayCity title-cases each space separated word of the trimmed input.
func DisplayCity(input string) string {
	words := strings.Split(strings.TrimSpace(input), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		rs := []rune(strings.ToLower(w))
		words[i] = strings.ToUpper(string(rs[0])) + string(rs[1:])
	}
	return strings.Join(words, " ")
}

// InitialWeather copies the seeded weather so stored states never alias content.
func InitialWeather(current domain.WeatherRecord, forecast []domain.ForecastDay) WeatherState {
	return WeatherState{Current: current, Forecast: slices.Clone(forecast)}
}
