package dto

import "feline-fascination/internal/domain"

// FactResponse is the fact currently on display.
type FactResponse struct {
	Text  string `json:"text"`
	Index int    `json:"index"`
	Total int    `json:"total"`
}

// LikeResponse carries the like count and, after a like, the toast to show.
type LikeResponse struct {
	Likes int64         `json:"likes"`
	Toast *domain.Toast `json:"toast,omitempty"`
}

type BreedResponse struct {
	Name        string   `json:"name"`
	Origin      string   `json:"origin"`
	Temperament string   `json:"temperament"`
	Traits      []string `json:"traits"`
}

// TabResponse is one of the page tabs. Body and Items are filled depending
// on the tab: about has a body, characteristics has items, breeds has neither.
type TabResponse struct {
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body,omitempty"`
	Items       []string `json:"items,omitempty"`
}

// PageResponse is the full view model of the page for one theme.
type PageResponse struct {
	Title string       `json:"title"`
	Theme domain.Theme `json:"theme"`
	// ToggleTheme is the theme the toggle switch requests next.
	ToggleTheme domain.Theme    `json:"toggle_theme"`
	Palette     domain.Palette  `json:"palette"`
	Hero        domain.Hero     `json:"hero"`
	Likes       int64           `json:"likes"`
	Fact        FactResponse    `json:"fact"`
	Tabs        []TabResponse   `json:"tabs"`
	Breeds      []BreedResponse `json:"breeds"`
	Quote       domain.Quote    `json:"quote"`
}

// HealthResponse reports the cache dependency status.
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}
