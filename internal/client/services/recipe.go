package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/dmitrijs2005/recipebook/internal/client/repositories/recipes"
	"github.com/dmitrijs2005/recipebook/internal/common"
)

// RecipeService applies the collection rules on top of a recipes.Repository.
//
// Contract:
//   - Add and Update reject a blank title or description with common.ErrValidation.
//   - Mutations without a session fail with common.ErrorUnauthorized.
//   - Update and Delete by a session that does not own the record fail with
//     common.ErrForbidden.
//   - Delete of an unknown id is a no-op.
//
// A failed call never changes the stored collection.
type RecipeService interface {
	List(ctx context.Context) ([]models.Recipe, error)
	Get(ctx context.Context, id int64) (*models.Recipe, error)
	Add(ctx context.Context, session string, d models.Draft) (models.Recipe, error)
	Update(ctx context.Context, session string, id int64, d models.Draft) error
	Delete(ctx context.Context, session string, id int64) error
}

type recipeService struct {
	repo recipes.Repository
}

func NewRecipeService(repo recipes.Repository) RecipeService {
	return &recipeService{repo: repo}
}

// List returns an empty, non-nil slice for a missing collection.
func (s *recipeService) List(ctx context.Context) ([]models.Recipe, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	if list == nil {
		list = []models.Recipe{}
	}
	return list, nil
}

func (s *recipeService) Get(ctx context.Context, id int64) (*models.Recipe, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get recipe %d: %w", id, err)
	}
	return r, nil
}

func (s *recipeService) Add(ctx context.Context, session string, d models.Draft) (models.Recipe, error) {
	if !d.Complete() {
		return models.Recipe{}, common.ErrValidation
	}
	if session == "" {
		return models.Recipe{}, common.ErrorUnauthorized
	}

	r, err := s.repo.Append(ctx, models.Recipe{
		Title:       d.Title,
		Description: d.Description,
		Image:       d.Image,
		UserEmail:   session,
	})
	if err != nil {
		return models.Recipe{}, fmt.Errorf("add recipe: %w", err)
	}
	return r, nil
}

func (s *recipeService) Update(ctx context.Context, session string, id int64, d models.Draft) error {
	if !d.Complete() {
		return common.ErrValidation
	}
	if session == "" {
		return common.ErrorUnauthorized
	}

	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("update recipe %d: %w", id, err)
	}
	if !r.OwnedBy(session) {
		return common.ErrForbidden
	}

	r.Title = d.Title
	r.Description = d.Description
	r.Image = d.Image

	if err := s.repo.Update(ctx, *r); err != nil {
		return fmt.Errorf("update recipe %d: %w", id, err)
	}
	return nil
}

func (s *recipeService) Delete(ctx context.Context, session string, id int64) error {
	if session == "" {
		return common.ErrorUnauthorized
	}

	r, err := s.repo.Get(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete recipe %d: %w", id, err)
	}
	if !r.OwnedBy(session) {
		return common.ErrForbidden
	}

	if _, err := s.repo.Remove(ctx, id); err != nil {
		return fmt.Errorf("delete recipe %d: %w", id, err)
	}
	return nil
}
