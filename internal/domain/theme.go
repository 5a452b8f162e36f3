package domain

import (
	"fmt"
	"strings"
)

// Theme is the colour scheme a page is rendered with. It is passed to
// renderers explicitly per request.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme accepts "light", "dark" or an empty string (light).
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case "", ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", NewInvalidInputError(fmt.Sprintf("unknown theme: %q", s))
	}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Palette holds the colours a client needs to paint the page.
type Palette struct {
	GradientFrom string `json:"gradient_from"`
	GradientTo   string `json:"gradient_to"`
	Text         string `json:"text"`
	Accent       string `json:"accent"`
	Card         string `json:"card"`
}

func (t Theme) Palette() Palette {
	if t == ThemeDark {
		return Palette{
			GradientFrom: "#1e1b4b",
			GradientTo:   "#4a044e",
			Text:         "#e9d5ff",
			Accent:       "#f472b6",
			Card:         "#1f2937",
		}
	}
	return Palette{
		GradientFrom: "#f3e8ff",
		GradientTo:   "#fce7f3",
		Text:         "#6b21a8",
		Accent:       "#ec4899",
		Card:         "#ffffff",
	}
}
