package service

import (
	"context"
	"errors"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/dto"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/model"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const defaultLineUnit = "g"

// RecipeService owns the recipe aggregate: the recipe itself, its titled
// ingredient groups with free-text quantities, the numeric composition lines
// the costing engine reads, and recipe variants.
type RecipeService interface {
	Create(ctx context.Context, req dto.CreateRecipeRequest) (*dto.RecipeResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.RecipeResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateRecipeRequest) (*dto.RecipeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddLine(ctx context.Context, recipeID uuid.UUID, req dto.IngredientLineRequest) (*dto.IngredientLineResponse, error)
	ListLines(ctx context.Context, recipeID uuid.UUID) ([]dto.IngredientLineResponse, error)
	DeleteLine(ctx context.Context, lineID uuid.UUID) error

	CreateVariant(ctx context.Context, recipeID uuid.UUID, req dto.CreateVariantRequest) (*dto.VariantResponse, error)
	ListVariants(ctx context.Context, recipeID uuid.UUID) ([]dto.VariantResponse, error)
	UpdateVariant(ctx context.Context, id uuid.UUID, req dto.UpdateVariantRequest) (*dto.VariantResponse, error)
	DeactivateVariant(ctx context.Context, id uuid.UUID) error
}

type recipeService struct {
	recipes  repository.RecipeRepository
	products repository.ProductRepository
	dish     DishOfTheDayService
}

func NewRecipeService(recipes repository.RecipeRepository, products repository.ProductRepository, dish DishOfTheDayService) RecipeService {
	return &recipeService{recipes: recipes, products: products, dish: dish}
}

func mapRecipe(rec model.Recipe, featured bool) dto.RecipeResponse {
	resp := dto.RecipeResponse{
		ID:        rec.ID.String(),
		ProductID: rec.ProductID.String(),
		Name:      rec.Name,
		Steps:     rec.Steps,
		Servings:  rec.Servings,
		ImageURL:  rec.ImageURL,
		Featured:  featured,
	}
	for _, g := range rec.Groups {
		group := dto.IngredientGroupResponse{ID: g.ID.String(), Title: g.Title}
		for _, it := range g.Items {
			group.Items = append(group.Items, dto.GroupItemResponse{
				ID:             it.ID.String(),
				IngredientID:   it.IngredientID.String(),
				CustomQuantity: it.CustomQuantity,
			})
		}
		resp.Groups = append(resp.Groups, group)
	}
	return resp
}

func mapLine(line model.IngredientLine) dto.IngredientLineResponse {
	return dto.IngredientLineResponse{
		ID:           line.ID.String(),
		IngredientID: line.IngredientID.String(),
		QuantityUsed: line.QuantityUsed,
		Unit:         line.Unit,
	}
}

// Create persists a recipe and runs the dish-of-the-day enrollment rule.
// The product link is resolved up front: besides being required to know
// which product a qualifying dish would feature, it also derives the media
// namespace for recipe images, so a broken link aborts the whole creation.
func (s *recipeService) Create(ctx context.Context, req dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, ErrInvalidID
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, ErrDependencyNotFound
	}
	if existing, err := s.recipes.FindByProductID(ctx, productID); err == nil && existing != nil {
		return nil, ErrConflict
	}

	rec := &model.Recipe{
		ProductID: productID,
		Name:      req.Name,
		Steps:     req.Steps,
		Servings:  req.Servings,
	}
	for gi, g := range req.Groups {
		group := model.IngredientGroup{Title: g.Title, Position: gi}
		for ii, it := range g.Items {
			ingID, err := uuid.Parse(it.IngredientID)
			if err != nil {
				return nil, ErrInvalidID
			}
			group.Items = append(group.Items, model.GroupItem{
				IngredientID:   ingID,
				CustomQuantity: it.CustomQuantity,
				Position:       ii,
			})
		}
		rec.Groups = append(rec.Groups, group)
	}
	for _, l := range req.Lines {
		ingID, err := uuid.Parse(l.IngredientID)
		if err != nil {
			return nil, ErrInvalidID
		}
		unit := l.Unit
		if unit == "" {
			unit = defaultLineUnit
		}
		rec.Lines = append(rec.Lines, model.IngredientLine{
			IngredientID: ingID,
			QuantityUsed: l.QuantityUsed,
			Unit:         unit,
		})
	}

	if err := s.recipes.Create(ctx, rec); err != nil {
		return nil, err
	}

	// Enrollment runs once, on create only — edits never re-qualify or demote
	promoted := s.dish.QualifyAndPromote(ctx, rec)
	if promoted {
		log.Info().Str("recipe_id", rec.ID.String()).
			Str("product_id", rec.ProductID.String()).
			Msg("recipe promoted to dish of the day")
	}

	resp := mapRecipe(*rec, promoted)
	return &resp, nil
}

func (s *recipeService) GetByID(ctx context.Context, id uuid.UUID) (*dto.RecipeResponse, error) {
	rec, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := mapRecipe(*rec, false)
	return &resp, nil
}

func (s *recipeService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
	rec, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if req.Name != nil {
		rec.Name = *req.Name
	}
	if req.Steps != nil {
		rec.Steps = req.Steps
	}
	if req.Servings != nil {
		rec.Servings = req.Servings
	}
	if err := s.recipes.Update(ctx, rec); err != nil {
		return nil, err
	}
	resp := mapRecipe(*rec, false)
	return &resp, nil
}

func (s *recipeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.recipes.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.recipes.Delete(ctx, id)
}

func (s *recipeService) AddLine(ctx context.Context, recipeID uuid.UUID, req dto.IngredientLineRequest) (*dto.IngredientLineResponse, error) {
	ingID, err := uuid.Parse(req.IngredientID)
	if err != nil {
		return nil, ErrInvalidID
	}
	unit := req.Unit
	if unit == "" {
		unit = defaultLineUnit
	}
	line := &model.IngredientLine{
		RecipeID:     recipeID,
		IngredientID: ingID,
		QuantityUsed: req.QuantityUsed,
		Unit:         unit,
	}
	if err := s.recipes.AddLine(ctx, line); err != nil {
		return nil, err
	}
	resp := mapLine(*line)
	return &resp, nil
}

func (s *recipeService) ListLines(ctx context.Context, recipeID uuid.UUID) ([]dto.IngredientLineResponse, error) {
	lines, err := s.recipes.ListLines(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.IngredientLineResponse, 0, len(lines))
	for _, l := range lines {
		resp = append(resp, mapLine(l))
	}
	return resp, nil
}

func (s *recipeService) DeleteLine(ctx context.Context, lineID uuid.UUID) error {
	return s.recipes.DeleteLine(ctx, lineID)
}

func mapVariant(v model.RecipeVariant) dto.VariantResponse {
	return dto.VariantResponse{
		ID:       v.ID.String(),
		RecipeID: v.RecipeID.String(),
		Name:     v.Name,
		Note:     v.Note,
		Steps:    v.Steps,
		Active:   v.Active,
	}
}

func (s *recipeService) CreateVariant(ctx context.Context, recipeID uuid.UUID, req dto.CreateVariantRequest) (*dto.VariantResponse, error) {
	if _, err := s.recipes.FindByID(ctx, recipeID); err != nil {
		return nil, ErrNotFound
	}
	v := &model.RecipeVariant{
		RecipeID: recipeID,
		Name:     req.Name,
		Note:     req.Note,
		Steps:    req.Steps,
		Active:   true,
	}
	if err := s.recipes.CreateVariant(ctx, v); err != nil {
		return nil, err
	}
	resp := mapVariant(*v)
	return &resp, nil
}

func (s *recipeService) ListVariants(ctx context.Context, recipeID uuid.UUID) ([]dto.VariantResponse, error) {
	list, err := s.recipes.ListVariants(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VariantResponse, 0, len(list))
	for _, v := range list {
		resp = append(resp, mapVariant(v))
	}
	return resp, nil
}

func (s *recipeService) UpdateVariant(ctx context.Context, id uuid.UUID, req dto.UpdateVariantRequest) (*dto.VariantResponse, error) {
	v, err := s.recipes.FindVariantByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if req.Name != nil {
		v.Name = *req.Name
	}
	if req.Note != nil {
		v.Note = req.Note
	}
	if req.Steps != nil {
		v.Steps = req.Steps
	}
	if err := s.recipes.UpdateVariant(ctx, v); err != nil {
		return nil, err
	}
	resp := mapVariant(*v)
	return &resp, nil
}

func (s *recipeService) DeactivateVariant(ctx context.Context, id uuid.UUID) error {
	return s.recipes.DeactivateVariant(ctx, id)
}
