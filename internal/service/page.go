package service

import (
	"context"

	"feline-fascination/internal/content"
	"feline-fascination/internal/domain"
	"feline-fascination/internal/dto"
)

// PageService assembles the page view model from the static catalog and
// the independent pieces of runtime state.
type PageService interface {
	Render(ctx context.Context, theme domain.Theme) (*dto.PageResponse, error)
	Breeds() []dto.BreedResponse
	Breed(name string) (*dto.BreedResponse, error)
}

type pageService struct {
	catalog *content.Catalog
	facts   FactService
	likes   LikeService
}

func NewPageService(catalog *content.Catalog, facts FactService, likes LikeService) PageService {
	return &pageService{
		catalog: catalog,
		facts:   facts,
		likes:   likes,
	}
}

// Render builds the page for the given theme. The theme only selects the
// palette; nothing about it is remembered between calls.
func (s *pageService) Render(ctx context.Context, theme domain.Theme) (*dto.PageResponse, error) {
	likes, err := s.likes.Count(ctx)
	if err != nil {
		return nil, err
	}

	page := s.catalog.Page
	return &dto.PageResponse{
		Title:       page.Title,
		Theme:       theme,
		ToggleTheme: theme.Toggle(),
		Palette:     theme.Palette(),
		Hero:        page.Hero,
		Likes:       likes,
		Fact:        s.facts.Current(),
		Tabs: []dto.TabResponse{
			{Key: page.About.Key, Title: page.About.Title, Description: page.About.Description, Body: page.AboutBody},
			{Key: page.Characteristics.Key, Title: page.Characteristics.Title, Description: page.Characteristics.Description, Items: page.Traits},
			{Key: page.Breeds.Key, Title: page.Breeds.Title, Description: page.Breeds.Description},
		},
		Breeds: s.Breeds(),
		Quote:  page.Quote,
	}, nil
}

func (s *pageService) Breeds() []dto.BreedResponse {
	breeds := make([]dto.BreedResponse, 0, len(s.catalog.Breeds))
	for _, b := range s.catalog.Breeds {
		breeds = append(breeds, toBreedResponse(b))
	}
	return breeds
}

func (s *pageService) Breed(name string) (*dto.BreedResponse, error) {
	b, err := s.catalog.Breed(name)
	if err != nil {
		return nil, err
	}
	resp := toBreedResponse(b)
	return &resp, nil
}

func toBreedResponse(b domain.Breed) dto.BreedResponse {
	return dto.BreedResponse{
		Name:        b.Name,
		Origin:      b.Origin,
		Temperament: b.Temperament,
		Traits:      b.Traits(),
	}
}
