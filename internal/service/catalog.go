package service

import (
	"context"
	"errors"
	"time"

	"github.com/bakehouse/bakehouse-go/internal/model"
	"github.com/bakehouse/bakehouse-go/internal/repository"
)

var (
	ErrNameRequired        = errors.New("name is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrFlavorRequired      = errors.New("flavor is required")
	ErrCategoryRequired    = errors.New("category is required")
	ErrPriceRangeRequired  = errors.New("priceRange is required")
	ErrImageRequired       = errors.New("image is required")
	ErrCakeNotFound        = errors.New("cake not found")
)

// IsValidationError reports whether err is one of the required-field errors
// returned by CreateCake.
func IsValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrDescriptionRequired),
		errors.Is(err, ErrFlavorRequired),
		errors.Is(err, ErrCategoryRequired),
		errors.Is(err, ErrPriceRangeRequired),
		errors.Is(err, ErrImageRequired):
		return true
	}
	return false
}

// CatalogService handles cake catalog business logic.
type CatalogService struct {
	repo *repository.CakeRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo *repository.CakeRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// CreateCake validates and persists a new cake listing, assigning its id and
// timestamps.
func (s *CatalogService) CreateCake(ctx context.Context, in model.CakeInput) (model.CakeResponse, error) {
	switch {
	case in.Name == "":
		return model.CakeResponse{}, ErrNameRequired
	case in.Description == "":
		return model.CakeResponse{}, ErrDescriptionRequired
	case in.Flavor == "":
		return model.CakeResponse{}, ErrFlavorRequired
	case in.Category == "":
		return model.CakeResponse{}, ErrCategoryRequired
	case in.PriceRange == "":
		return model.CakeResponse{}, ErrPriceRangeRequired
	case in.ImageURL == "":
		return model.CakeResponse{}, ErrImageRequired
	}

	now := time.Now().UTC()
	cake := model.Cake{
		Name:        in.Name,
		Description: in.Description,
		Flavor:      in.Flavor,
		Category:    in.Category,
		PriceRange:  in.PriceRange,
		ImageURL:    in.ImageURL,
		Tags:        in.Tags,
		Featured:    in.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if cake.Tags == nil {
		cake.Tags = []string{}
	}

	if err := s.repo.Create(ctx, &cake); err != nil {
		return model.CakeResponse{}, err
	}

	return cakeToResponse(&cake), nil
}

// UpdateCake applies a partial update to an existing cake. Soft-deleted
// listings are still updatable so an admin can correct them.
func (s *CatalogService) UpdateCake(ctx context.Context, id int64, upd model.CakeUpdate) (model.CakeResponse, error) {
	cake, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCakeNotFound) {
			return model.CakeResponse{}, ErrCakeNotFound
		}
		return model.CakeResponse{}, err
	}

	applyUpdate(cake, upd)
	cake.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, cake); err != nil {
		return model.CakeResponse{}, err
	}

	return cakeToResponse(cake), nil
}

// DeleteCake soft-deletes a cake. Deleting an already-deleted cake succeeds;
// an unknown id is the only failure.
func (s *CatalogService) DeleteCake(ctx context.Context, id int64) error {
	cake, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCakeNotFound) {
			return ErrCakeNotFound
		}
		return err
	}

	cake.UpdatedAt = time.Now().UTC()
	return s.repo.SoftDelete(ctx, cake)
}

// GetCake looks a cake up by id, including soft-deleted listings, for the
// admin recovery path.
func (s *CatalogService) GetCake(ctx context.Context, id int64) (model.CakeResponse, error) {
	cake, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCakeNotFound) {
			return model.CakeResponse{}, ErrCakeNotFound
		}
		return model.CakeResponse{}, err
	}

	return cakeToResponse(cake), nil
}

// ListCakes returns all non-deleted cakes, newest first.
func (s *CatalogService) ListCakes(ctx context.Context) ([]model.CakeResponse, error) {
	cakes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return cakesToResponse(cakes), nil
}

// ListCakesByCategory returns the non-deleted cakes in a category, newest
// first.
func (s *CatalogService) ListCakesByCategory(ctx context.Context, category string) ([]model.CakeResponse, error) {
	cakes, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return cakesToResponse(cakes), nil
}

// ListFeaturedCakes returns the non-deleted cakes flagged for the storefront
// hero section.
func (s *CatalogService) ListFeaturedCakes(ctx context.Context) ([]model.CakeResponse, error) {
	cakes, err := s.repo.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}
	return cakesToResponse(cakes), nil
}

// ListCategories returns the distinct categories among non-deleted cakes.
func (s *CatalogService) ListCategories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// applyUpdate overlays the supplied fields onto an existing cake. Empty
// strings leave the stored value intact; a supplied tag list replaces the
// stored one wholesale.
func applyUpdate(cake *model.Cake, upd model.CakeUpdate) {
	if upd.Name != "" {
		cake.Name = upd.Name
	}
	if upd.Description != "" {
		cake.Description = upd.Description
	}
	if upd.Flavor != "" {
		cake.Flavor = upd.Flavor
	}
	if upd.Category != "" {
		cake.Category = upd.Category
	}
	if upd.PriceRange != "" {
		cake.PriceRange = upd.PriceRange
	}
	if upd.ImageURL != "" {
		cake.ImageURL = upd.ImageURL
	}
	if upd.TagsSet {
		cake.Tags = upd.Tags
		if cake.Tags == nil {
			cake.Tags = []string{}
		}
	}
	if upd.Featured != nil {
		cake.Featured = *upd.Featured
	}
}

func cakeToResponse(cake *model.Cake) model.CakeResponse {
	return model.CakeResponse{
		ID:          cake.ID,
		Name:        cake.Name,
		Description: cake.Description,
		Flavor:      cake.Flavor,
		Category:    cake.Category,
		PriceRange:  cake.PriceRange,
		ImageURL:    cake.ImageURL,
		Tags:        cake.Tags,
		IsFeatured:  cake.Featured,
		IsDeleted:   cake.Deleted,
		CreatedAt:   cake.CreatedAt,
		UpdatedAt:   cake.UpdatedAt,
	}
}

// cakesToResponse converts a slice of Cake to a slice of CakeResponse.
func cakesToResponse(cakes []model.Cake) []model.CakeResponse {
	result := make([]model.CakeResponse, len(cakes))
	for i := range cakes {
		result[i] = cakeToResponse(&cakes[i])
	}
	return result
}
