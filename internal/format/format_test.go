package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio/internal/domain"
	"portfolio/internal/format"
)

func TestMoneyAndPrice(t *testing.T) {
	assert.Equal(t, "199.98", format.Money(99.99*2))
	assert.Equal(t, "0.00", format.Money(0))
	assert.Equal(t, "99.99", format.Price(99.99))
	assert.Equal(t, "20", format.Price(20))
}

func TestCountGroupsThousands(t *testing.T) {
	assert.Equal(t, "45,672", format.Count(45672))
	assert.Equal(t, "125,890", format.Count(125890))
	assert.Equal(t, "156", format.Count(156))
}

func TestConditionIcon(t *testing.T) {
	assert.Equal(t, "sun", format.ConditionIcon(domain.Sunny).Name)
	assert.Equal(t, "cloud-rain", format.ConditionIcon("rainy").Name)
	assert.Equal(t, "text-gray-500", format.ConditionIcon(domain.PartlyCloudy).Class)
	assert.Equal(t, "text-gray-600", format.ConditionIcon(domain.Cloudy).Class)
	// unknown falls back to the sun
	assert.Equal(t, format.ConditionIcon(domain.Sunny), format.ConditionIcon("Hail"))
}

func TestUVBadgeThresholds(t *testing.T) {
	cases := []struct {
		uv      int
		label   string
		variant string
	}{
		{1, "Low", "default"},
		{4, "Low", "default"},
		{5, "Moderate", "secondary"},
		{7, "Moderate", "secondary"},
		{8, "High", "destructive"},
	}
	for _, tc := range cases {
		b := format.UVBadge(tc.uv)
		assert.Equal(t, tc.label, b.Label, "uv=%d", tc.uv)
		assert.Equal(t, tc.variant, b.Variant, "uv=%d", tc.uv)
	}
}

func TestBadgeMappings(t *testing.T) {
	assert.Equal(t, "default", format.LevelBadge(domain.Beginner).Variant)
	assert.Equal(t, "secondary", format.LevelBadge(domain.Intermediate).Variant)
	assert.Equal(t, "destructive", format.LevelBadge(domain.Advanced).Variant)

	assert.Equal(t, "bg-green-500", format.MethodBadge(domain.GET).Class)
	assert.Equal(t, "bg-red-500", format.MethodBadge(domain.DELETE).Class)
	assert.Equal(t, "bg-gray-500", format.MethodBadge("PATCH").Class)

	assert.Equal(t, "default", format.StatusBadge(domain.StatusScheduled).Variant)
	assert.Equal(t, "secondary", format.StatusBadge(domain.StatusDraft).Variant)

	assert.Equal(t, "system", format.MessageStyle(domain.MessageSystem))
	assert.Equal(t, "bubble", format.MessageStyle("unknown"))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Instagram", format.Title("instagram"))
	assert.Equal(t, "", format.Title(""))
}
