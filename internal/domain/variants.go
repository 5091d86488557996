package domain

import "strings"

type WeatherCondition string

const (
	Sunny        WeatherCondition = "Sunny"
	PartlyCloudy WeatherCondition = "Partly Cloudy"
	Cloudy       WeatherCondition = "Cloudy"
	Rainy        WeatherCondition = "Rainy"
	Snowy        WeatherCondition = "Snowy"
)

// ForecastConditions is the set days two to five of a forecast are drawn from.
var ForecastConditions = []WeatherCondition{Sunny, PartlyCloudy, Cloudy, Rainy}

// ParseCondition matches case-insensitively; ok is false for unknown text.
func ParseCondition(s string) (WeatherCondition, bool) {
	for _, c := range []WeatherCondition{Sunny, PartlyCloudy, Cloudy, Rainy, Snowy} {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, true
		}
	}
	return WeatherCondition(s), false
}

type Level string

const (
	Beginner     Level = "Beginner"
	Intermediate Level = "Intermediate"
	Advanced     Level = "Advanced"
)

type PostStatus string

const (
	StatusScheduled PostStatus = "scheduled"
	StatusDraft     PostStatus = "draft"
)

type MessageType string

const (
	MessageText   MessageType = "text"
	MessageFile   MessageType = "file"
	MessageSystem MessageType = "system"
)

type Method string

const (
	GET    Method = "GET"
	POST   Method = "POST"
	PUT    Method = "PUT"
	DELETE Method = "DELETE"
)

// Methods lists the verbs offered by the API tester.
var Methods = []Method{GET, POST, PUT, DELETE}

func ParseMethod(s string) (Method, bool) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Methods {
		if m == known {
			return m, true
		}
	}
	return "", false
}

// Platform keys of the dashboard statistics.
const (
	PlatformOverview  = "overview"
	PlatformInstagram = "instagram"
	PlatformTwitter   = "twitter"
	PlatformFacebook  = "facebook"
)

var Platforms = []string{PlatformOverview, PlatformInstagram, PlatformTwitter, PlatformFacebook}
