package domain

// Catalog records. They are loaded once from embedded content and never mutated.

type Product struct {
	ID       int     `yaml:"id" json:"id"`
	Name     string  `yaml:"name" json:"name"`
	Price    float64 `yaml:"price" json:"price"`
	Rating   float64 `yaml:"rating" json:"rating"`
	Image    string  `yaml:"image" json:"image"`
	Category string  `yaml:"category" json:"category"`
}

type Course struct {
	ID         int     `yaml:"id"`
	Title      string  `yaml:"title"`
	Instructor string  `yaml:"instructor"`
	Duration   string  `yaml:"duration"`
	Students   int     `yaml:"students"`
	Rating     float64 `yaml:"rating"`
	Progress   int     `yaml:"progress"` // 0-100
	Level      Level   `yaml:"level"`
	Category   string  `yaml:"category"`
	Price      float64 `yaml:"price"`
	Image      string  `yaml:"image"`
}

type PlatformStats struct {
	Followers  int     `yaml:"followers"`
	Engagement float64 `yaml:"engagement"`
	Posts      int     `yaml:"posts"`
	Reach      int     `yaml:"reach"`
}

type RecentPost struct {
	ID         int     `yaml:"id"`
	Platform   string  `yaml:"platform"`
	Content    string  `yaml:"content"`
	Timestamp  string  `yaml:"timestamp"`
	Likes      int     `yaml:"likes"`
	Comments   int     `yaml:"comments"`
	Shares     int     `yaml:"shares"`
	Views      int     `yaml:"views"`
	Engagement float64 `yaml:"engagement"`
}

type ScheduledPost struct {
	ID            string     `yaml:"id" json:"id"`
	Platform      string     `yaml:"platform" json:"platform"`
	Content       string     `yaml:"content" json:"content"`
	ScheduledTime string     `yaml:"scheduled_time" json:"scheduled_time"`
	Status        PostStatus `yaml:"status" json:"status"`
}

// City is one entry of the fixed weather dictionary.
type City struct {
	Country     string           `yaml:"country"`
	Temperature int              `yaml:"temp"`
	Condition   WeatherCondition `yaml:"condition"`
}

type WeatherRecord struct {
	City        string           `yaml:"city" json:"city"`
	Country     string           `yaml:"country" json:"country"`
	Temperature int              `yaml:"temperature" json:"temperature"`
	Condition   WeatherCondition `yaml:"condition" json:"condition"`
	Humidity    int              `yaml:"humidity" json:"humidity"`
	WindSpeed   int              `yaml:"wind_speed" json:"wind_speed"`
	Visibility  int              `yaml:"visibility" json:"visibility"`
	FeelsLike   int              `yaml:"feels_like" json:"feels_like"`
	UVIndex     int              `yaml:"uv_index" json:"uv_index"`
	Pressure    int              `yaml:"pressure" json:"pressure"`
}

type ForecastDay struct {
	Day           string           `yaml:"day" json:"day"`
	High          int              `yaml:"high" json:"high"`
	Low           int              `yaml:"low" json:"low"`
	Condition     WeatherCondition `yaml:"condition" json:"condition"`
	Precipitation int              `yaml:"precipitation" json:"precipitation"`
}

type ChatRoom struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Participants int    `yaml:"participants"`
	LastMessage  string `yaml:"last_message"`
	Timestamp    string `yaml:"timestamp"`
	Online       bool   `yaml:"online"`
}

type ChatMessage struct {
	ID        string      `yaml:"id"`
	User      string      `yaml:"user"`
	Content   string      `yaml:"content"`
	Timestamp string      `yaml:"timestamp"`
	Type      MessageType `yaml:"type"`
}

// Endpoint is documentation text only; nothing serves these paths.
type Endpoint struct {
	Method      Method   `yaml:"method"`
	Path        string   `yaml:"path"`
	Description string   `yaml:"description"`
	RequestBody string   `yaml:"request_body"`
	Response    string   `yaml:"response"`
	Headers     []string `yaml:"headers"`
}

type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Landing page records.

type Profile struct {
	Initials  string `yaml:"initials"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Role      string `yaml:"role"`
	Tagline   string `yaml:"tagline"`
	Summary   string `yaml:"summary"`
	Email     string `yaml:"email"`
	Phone     string `yaml:"phone"`
	ResumeAs  string `yaml:"resume_filename"`
}

type SkillGroup struct {
	Category     string   `yaml:"category"`
	Icon         string   `yaml:"icon"`
	Technologies []string `yaml:"technologies"`
	Color        string   `yaml:"color"`
}

type Project struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	Image        string   `yaml:"image"`
	GithubURL    string   `yaml:"github_url"`
	LiveURL      string   `yaml:"live_url"`
	DemoPath     string   `yaml:"demo_path"`
	Featured     bool     `yaml:"featured"`
}

type SocialLink struct {
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
	Href  string `yaml:"href"`
}
