package repository

import (
	"context"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuRepository defines CRUD operations for Menu.
type MenuRepository interface {
	Create(ctx context.Context, m *model.Menu) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Menu, error)
	FindByName(ctx context.Context, restaurantID uuid.UUID, name string) (*model.Menu, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.Menu, error)
	Update(ctx context.Context, m *model.Menu) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type menuRepo struct{ db *gorm.DB }

func NewMenuRepository(db *gorm.DB) MenuRepository { return &menuRepo{db: db} }

func (r *menuRepo) Create(ctx context.Context, m *model.Menu) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *menuRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	var m model.Menu
	err := r.db.WithContext(ctx).Preload("Categories").First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *menuRepo) FindByName(ctx context.Context, restaurantID uuid.UUID, name string) (*model.Menu, error) {
	var m model.Menu
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND lower(name) = lower(?)", restaurantID, name).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *menuRepo) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.Menu, error) {
	var list []model.Menu
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("name asc").Find(&list).Error
	return list, err
}

func (r *menuRepo) Update(ctx context.Context, m *model.Menu) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *menuRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Menu{}).Where("id = ?", id).Update("active", false).Error
}
