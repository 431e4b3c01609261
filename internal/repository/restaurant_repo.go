package repository

import (
	"context"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RestaurantRepository defines CRUD operations for Restaurant.
type RestaurantRepository interface {
	Create(ctx context.Context, r *model.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error)
	FindByName(ctx context.Context, name string) (*model.Restaurant, error)
	List(ctx context.Context) ([]model.Restaurant, error)
	Update(ctx context.Context, r *model.Restaurant) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type restaurantRepo struct{ db *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository { return &restaurantRepo{db: db} }

func (r *restaurantRepo) Create(ctx context.Context, m *model.Restaurant) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *restaurantRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	var m model.Restaurant
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *restaurantRepo) FindByName(ctx context.Context, name string) (*model.Restaurant, error) {
	var m model.Restaurant
	err := r.db.WithContext(ctx).Where("lower(name) = lower(?)", name).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *restaurantRepo) List(ctx context.Context) ([]model.Restaurant, error) {
	var list []model.Restaurant
	err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error
	return list, err
}

func (r *restaurantRepo) Update(ctx context.Context, m *model.Restaurant) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *restaurantRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Restaurant{}).Where("id = ?", id).Update("active", false).Error
}
