package repository

import (
	"context"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeRepository covers the recipe aggregate: recipes, their ingredient
// groups and the numeric composition lines used by the costing engine.
type RecipeRepository interface {
	Create(ctx context.Context, rec *model.Recipe) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
	FindByProductID(ctx context.Context, productID uuid.UUID) (*model.Recipe, error)
	List(ctx context.Context) ([]model.Recipe, error)
	Update(ctx context.Context, rec *model.Recipe) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Composition lines — lifecycle independent of the recipe
	AddLine(ctx context.Context, line *model.IngredientLine) error
	ListLines(ctx context.Context, recipeID uuid.UUID) ([]model.IngredientLine, error)
	DeleteLine(ctx context.Context, id uuid.UUID) error

	// Variants
	CreateVariant(ctx context.Context, v *model.RecipeVariant) error
	FindVariantByID(ctx context.Context, id uuid.UUID) (*model.RecipeVariant, error)
	ListVariants(ctx context.Context, recipeID uuid.UUID) ([]model.RecipeVariant, error)
	UpdateVariant(ctx context.Context, v *model.RecipeVariant) error
	DeactivateVariant(ctx context.Context, id uuid.UUID) error
}

type recipeRepo struct{ db *gorm.DB }

func NewRecipeRepository(db *gorm.DB) RecipeRepository { return &recipeRepo{db: db} }

func (r *recipeRepo) Create(ctx context.Context, rec *model.Recipe) error {
	// FullSaveAssociations persists nested groups and items in one call
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Create(rec).Error
}

func (r *recipeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var rec model.Recipe
	err := r.db.WithContext(ctx).
		Preload("Groups", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Preload("Groups.Items", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Preload("Variants").
		First(&rec, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recipeRepo) FindByProductID(ctx context.Context, productID uuid.UUID) (*model.Recipe, error) {
	var rec model.Recipe
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recipeRepo) List(ctx context.Context) ([]model.Recipe, error) {
	var list []model.Recipe
	// Storage order — the costing report imposes no explicit sort
	err := r.db.WithContext(ctx).Preload("Product").Find(&list).Error
	return list, err
}

func (r *recipeRepo) Update(ctx context.Context, rec *model.Recipe) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *recipeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id).Error
}

func (r *recipeRepo) AddLine(ctx context.Context, line *model.IngredientLine) error {
	return r.db.WithContext(ctx).Create(line).Error
}

// ListLines returns the composition lines of a recipe with their ingredient
// preloaded. Lines whose ingredient row was deleted come back with a nil
// Ingredient — the costing engine's lenient join drops them there, not here.
func (r *recipeRepo) ListLines(ctx context.Context, recipeID uuid.UUID) ([]model.IngredientLine, error) {
	var lines []model.IngredientLine
	err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("recipe_id = ?", recipeID).
		Find(&lines).Error
	return lines, err
}

func (r *recipeRepo) DeleteLine(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.IngredientLine{}, "id = ?", id).Error
}

func (r *recipeRepo) CreateVariant(ctx context.Context, v *model.RecipeVariant) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *recipeRepo) FindVariantByID(ctx context.Context, id uuid.UUID) (*model.RecipeVariant, error) {
	var v model.RecipeVariant
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *recipeRepo) ListVariants(ctx context.Context, recipeID uuid.UUID) ([]model.RecipeVariant, error) {
	var list []model.RecipeVariant
	err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND active = true", recipeID).
		Find(&list).Error
	return list, err
}

func (r *recipeRepo) UpdateVariant(ctx context.Context, v *model.RecipeVariant) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *recipeRepo) DeactivateVariant(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.RecipeVariant{}).Where("id = ?", id).Update("active", false).Error
}
