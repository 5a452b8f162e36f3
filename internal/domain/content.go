package domain

import "strings"

// Breed is a popular cat breed shown on the breeds tab.
type Breed struct {
	Name        string `yaml:"name" json:"name"`
	Origin      string `yaml:"origin" json:"origin"`
	Temperament string `yaml:"temperament" json:"temperament"`
}

// Traits splits the comma separated temperament.
func (b Breed) Traits() []string {
	parts := strings.Split(b.Temperament, ",")
	traits := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			traits = append(traits, p)
		}
	}
	return traits
}

type Hero struct {
	ImageURL string `yaml:"image_url" json:"image_url"`
	Alt      string `yaml:"alt" json:"alt"`
}

// Section is the header of a tab card.
type Section struct {
	Key         string `yaml:"key" json:"key"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

type Quote struct {
	Text   string `yaml:"text" json:"text"`
	Author string `yaml:"author" json:"author"`
}

// PageContent is the static copy of the page.
type PageContent struct {
	Title           string   `yaml:"title"`
	Hero            Hero     `yaml:"hero"`
	About           Section  `yaml:"about"`
	AboutBody       string   `yaml:"about_body"`
	Characteristics Section  `yaml:"characteristics"`
	Traits          []string `yaml:"traits"`
	Breeds          Section  `yaml:"breeds"`
	Quote           Quote    `yaml:"quote"`
	LikeToast       Toast    `yaml:"like_toast"`
}

// Toast is the notification shown after a like.
type Toast struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}
