package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrDuplicateFeatured is returned when the partial unique index rejects a
// second Active featured entry for the same product. Callers treat it as a
// no-op, not a failure.
var ErrDuplicateFeatured = errors.New("an active featured entry already exists for this product")

// DishOfTheDayRepository stores featured-entry records.
type DishOfTheDayRepository interface {
	Create(ctx context.Context, d *model.DishOfTheDay) error
	FindActiveByProduct(ctx context.Context, productID uuid.UUID) (*model.DishOfTheDay, error)
	List(ctx context.Context, activeOnly bool) ([]model.DishOfTheDay, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type dishRepo struct{ db *gorm.DB }

func NewDishOfTheDayRepository(db *gorm.DB) DishOfTheDayRepository { return &dishRepo{db: db} }

func (r *dishRepo) Create(ctx context.Context, d *model.DishOfTheDay) error {
	err := r.db.WithContext(ctx).Create(d).Error
	if err != nil && isUniqueViolation(err) {
		return ErrDuplicateFeatured
	}
	return err
}

func (r *dishRepo) FindActiveByProduct(ctx context.Context, productID uuid.UUID) (*model.DishOfTheDay, error) {
	var d model.DishOfTheDay
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND status = ?", productID, model.DishStatusActive).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *dishRepo) List(ctx context.Context, activeOnly bool) ([]model.DishOfTheDay, error) {
	var list []model.DishOfTheDay
	q := r.db.WithContext(ctx).Preload("Product").Order("date desc")
	if activeOnly {
		q = q.Where("status = ?", model.DishStatusActive)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *dishRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.DishOfTheDay{}).
		Where("id = ?", id).
		Update("status", model.DishStatusInactive).Error
}

// isUniqueViolation matches postgres SQLSTATE 23505 without importing the
// driver error types here.
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key value")
}
