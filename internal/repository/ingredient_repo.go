package repository

import (
	"context"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IngredientRepository defines the data access contract for ingredients.
type IngredientRepository interface {
	Create(ctx context.Context, ing *model.Ingredient) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Ingredient, error)
	FindByName(ctx context.Context, name string) (*model.Ingredient, error)
	List(ctx context.Context, includeInactive bool) ([]model.Ingredient, error)
	ListBelowMin(ctx context.Context) ([]model.Ingredient, error)
	Update(ctx context.Context, ing *model.Ingredient) error
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type ingredientRepo struct{ db *gorm.DB }

func NewIngredientRepository(db *gorm.DB) IngredientRepository { return &ingredientRepo{db: db} }

func (r *ingredientRepo) Create(ctx context.Context, ing *model.Ingredient) error {
	return r.db.WithContext(ctx).Create(ing).Error
}

func (r *ingredientRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Ingredient, error) {
	var ing model.Ingredient
	err := r.db.WithContext(ctx).First(&ing, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

func (r *ingredientRepo) FindByName(ctx context.Context, name string) (*model.Ingredient, error) {
	var ing model.Ingredient
	err := r.db.WithContext(ctx).Where("lower(name) = lower(?)", name).First(&ing).Error
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

func (r *ingredientRepo) List(ctx context.Context, includeInactive bool) ([]model.Ingredient, error) {
	var list []model.Ingredient
	q := r.db.WithContext(ctx).Order("name asc")
	if !includeInactive {
		q = q.Where("active = true")
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *ingredientRepo) ListBelowMin(ctx context.Context) ([]model.Ingredient, error) {
	var list []model.Ingredient
	err := r.db.WithContext(ctx).
		Where("active = true AND quantity_on_hand < min_qty").
		Order("name asc").Find(&list).Error
	return list, err
}

func (r *ingredientRepo) Update(ctx context.Context, ing *model.Ingredient) error {
	return r.db.WithContext(ctx).Save(ing).Error
}

func (r *ingredientRepo) AdjustQuantity(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.Ingredient{}).
		Where("id = ? AND active = true", id).
		Update("quantity_on_hand", gorm.Expr("quantity_on_hand + ?", delta)).Error
}

func (r *ingredientRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Ingredient{}).Where("id = ?", id).Update("active", false).Error
}
