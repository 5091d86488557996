package format

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"portfolio/internal/domain"
)

var printer = message.NewPrinter(language.English)

// Money renders an amount with exactly two decimals, e.g. 199.98.
func Money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Price renders a catalog price as entered, e.g. 99.99 or 20.
func Price(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Count groups thousands: 45672 => "45,672".
func Count(n int) string {
	return printer.Sprintf("%d", n)
}

// Decimal renders a figure with its shortest representation, e.g. 8.5.
func Decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Title upper-cases the first letter of a key, e.g. "instagram" => "Instagram".
func Title(s string) string {
	if s == "" {
		return s
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}

// Badge is the presentation of a tagged value.
type Badge struct {
	Variant string // default | secondary | destructive | outline
	Label   string
	Class   string
}

// Icon is an icon name plus a colour class.
type Icon struct {
	Name  string
	Class string
}

var conditionIcons = map[domain.WeatherCondition]Icon{
	domain.Sunny:        {Name: "sun", Class: "text-yellow-500"},
	domain.PartlyCloudy: {Name: "cloud", Class: "text-gray-500"},
	domain.Rainy:        {Name: "cloud-rain", Class: "text-blue-500"},
	domain.Cloudy:       {Name: "cloud", Class: "text-gray-600"},
	domain.Snowy:        {Name: "cloud-snow", Class: "text-blue-200"},
}

// ConditionIcon maps a weather condition to its icon; unknown conditions
// show the sun.
func ConditionIcon(c domain.WeatherCondition) Icon {
	if parsed, ok := domain.ParseCondition(string(c)); ok {
		return conditionIcons[parsed]
	}
	return conditionIcons[domain.Sunny]
}

var levelVariants = map[domain.Level]string{
	domain.Beginner:     "default",
	domain.Intermediate: "secondary",
	domain.Advanced:     "destructive",
}

func LevelBadge(l domain.Level) Badge {
	v, ok := levelVariants[l]
	if !ok {
		v = "destructive"
	}
	return Badge{Variant: v, Label: string(l)}
}

// UVBadge grades the UV index: above 7 is High, above 4 Moderate.
func UVBadge(uv int) Badge {
	switch {
	case uv > 7:
		return Badge{Variant: "destructive", Label: "High"}
	case uv > 4:
		return Badge{Variant: "secondary", Label: "Moderate"}
	default:
		return Badge{Variant: "default", Label: "Low"}
	}
}

var methodColors = map[domain.Method]string{
	domain.GET:    "bg-green-500",
	domain.POST:   "bg-blue-500",
	domain.PUT:    "bg-yellow-500",
	domain.DELETE: "bg-red-500",
}

func MethodBadge(m domain.Method) Badge {
	c, ok := methodColors[m]
	if !ok {
		c = "bg-gray-500"
	}
	return Badge{Variant: "default", Label: string(m), Class: c}
}

var statusVariants = map[domain.PostStatus]string{
	domain.StatusScheduled: "default",
	domain.StatusDraft:     "secondary",
}

func StatusBadge(s domain.PostStatus) Badge {
	v, ok := statusVariants[s]
	if !ok {
		v = "secondary"
	}
	return Badge{Variant: v, Label: string(s)}
}

var messageStyles = map[domain.MessageType]string{
	domain.MessageText:   "bubble",
	domain.MessageFile:   "bubble bubble-file",
	domain.MessageSystem: "system",
}

func MessageStyle(t domain.MessageType) string {
	if s, ok := messageStyles[t]; ok {
		return s
	}
	return messageStyles[domain.MessageText]
}

// Funcs is the template function set registered on the view engine.
func Funcs() map[string]any {
	return map[string]any{
		"money":         Money,
		"price":         Price,
		"count":         Count,
		"decimal":       Decimal,
		"title":         Title,
		"conditionIcon": ConditionIcon,
		"levelBadge":    LevelBadge,
		"uvBadge":       UVBadge,
		"methodBadge":   MethodBadge,
		"statusBadge":   StatusBadge,
		"messageStyle":  MessageStyle,
		"lineTotal": func(price float64, qty int) string {
			return Money(price * float64(qty))
		},
	}
}
