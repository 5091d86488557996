// Package content holds the static catalogs every page renders from. All of it
// is embedded in the binary and decoded once at startup.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"sort"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"

	"portfolio/internal/domain"
)

//go:embed site.yaml
var siteYAML []byte

type TaskAPI struct {
	Version          string            `yaml:"version"`
	Overview         []domain.Feature  `yaml:"overview"`
	CoreFeatures     []string          `yaml:"core_features"`
	AdvancedFeatures []string          `yaml:"advanced_features"`
	Endpoints        []domain.Endpoint `yaml:"endpoints"`
	Auth             struct {
		LoginRequest  string   `yaml:"login_request"`
		LoginResponse string   `yaml:"login_response"`
		HeaderExample string   `yaml:"header_example"`
		Notes         []string `yaml:"notes"`
	} `yaml:"auth"`
}

type WebSocketEvent struct {
	Name string `yaml:"name"`
	Body string `yaml:"body"`
}

type ChatAPI struct {
	DefaultRoom string               `yaml:"default_room"`
	Rooms       []domain.ChatRoom    `yaml:"rooms"`
	Messages    []domain.ChatMessage `yaml:"messages"`
	Features    []domain.Feature     `yaml:"features"`
	Endpoints   []domain.Endpoint    `yaml:"endpoints"`
	WebSocket   struct {
		URL    string           `yaml:"url"`
		Events []WebSocketEvent `yaml:"events"`
	} `yaml:"websocket"`
}

type Weather struct {
	Current  domain.WeatherRecord `yaml:"current"`
	Forecast []domain.ForecastDay `yaml:"forecast"`
}

// Site is the full decoded content tree.
type Site struct {
	Profile           domain.Profile                  `yaml:"profile"`
	About             string                          `yaml:"about"`
	Skills            []domain.SkillGroup             `yaml:"skills"`
	Projects          []domain.Project                `yaml:"projects"`
	Social            []domain.SocialLink             `yaml:"social"`
	Products          []domain.Product                `yaml:"products"`
	Courses           []domain.Course                 `yaml:"courses"`
	InitialEnrollment []int                           `yaml:"initial_enrollment"`
	PlatformStats     map[string]domain.PlatformStats `yaml:"platform_stats"`
	RecentPosts       []domain.RecentPost             `yaml:"recent_posts"`
	UpcomingPosts     []domain.ScheduledPost          `yaml:"upcoming_posts"`
	InitialWeather    Weather                         `yaml:"initial_weather"`
	Cities            map[string]domain.City          `yaml:"cities"`
	TaskAPI           TaskAPI                         `yaml:"task_api"`
	ChatAPI           ChatAPI                         `yaml:"chat_api"`

	aboutHTML template.HTML
}

// Load decodes the embedded site content.
func Load() (*Site, error) {
	return Parse(siteYAML)
}

// Parse decodes site content from raw YAML and checks catalog invariants.
func Parse(raw []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	html, err := renderMarkdown(s.About)
	if err != nil {
		return nil, fmt.Errorf("content: about: %w", err)
	}
	s.aboutHTML = html
	return &s, nil
}

// MustLoad is Load for tests.
func MustLoad() *Site {
	s, err := Load()
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Site) validate() error {
	seen := map[int]bool{}
	for _, p := range s.Products {
		if seen[p.ID] {
			return fmt.Errorf("content: duplicate product id %d", p.ID)
		}
		if p.Price < 0 {
			return fmt.Errorf("content: product %d has negative price", p.ID)
		}
		seen[p.ID] = true
	}
	courses := map[int]bool{}
	for _, c := range s.Courses {
		if courses[c.ID] {
			return fmt.Errorf("content: duplicate course id %d", c.ID)
		}
		courses[c.ID] = true
	}
	for _, id := range s.InitialEnrollment {
		if !courses[id] {
			return fmt.Errorf("content: initial enrollment references unknown course %d", id)
		}
	}
	for key, c := range s.Cities {
		if _, ok := domain.ParseCondition(string(c.Condition)); !ok {
			return fmt.Errorf("content: city %q has unknown condition %q", key, c.Condition)
		}
	}
	if _, ok := s.Room(s.ChatAPI.DefaultRoom); !ok {
		return fmt.Errorf("content: default chat room %q not in room list", s.ChatAPI.DefaultRoom)
	}
	if _, ok := s.PlatformStats[domain.PlatformOverview]; !ok {
		return fmt.Errorf("content: missing %q platform stats", domain.PlatformOverview)
	}
	return nil
}

// AboutHTML is the sanitised rendering of the about section.
func (s *Site) AboutHTML() template.HTML { return s.aboutHTML }

func (s *Site) Product(id int) (domain.Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *Site) Course(id int) (domain.Course, bool) {
	for _, c := range s.Courses {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Course{}, false
}

func (s *Site) Room(id string) (domain.ChatRoom, bool) {
	for _, r := range s.ChatAPI.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return domain.ChatRoom{}, false
}

// City looks up an already normalised (trimmed, lower-case) key.
func (s *Site) City(key string) (domain.City, bool) {
	c, ok := s.Cities[key]
	return c, ok
}

// CityNames returns the dictionary keys sorted, for hints and tests.
func (s *Site) CityNames() []string {
	out := make([]string, 0, len(s.Cities))
	for k := range s.Cities {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var sanitizer = bluemonday.UGCPolicy()

func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes())), nil
}
