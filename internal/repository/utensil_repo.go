package repository

import (
	"context"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UtensilRepository defines CRUD operations for Utensil.
type UtensilRepository interface {
	Create(ctx context.Context, u *model.Utensil) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Utensil, error)
	FindByName(ctx context.Context, name string) (*model.Utensil, error)
	List(ctx context.Context) ([]model.Utensil, error)
	Update(ctx context.Context, u *model.Utensil) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type utensilRepo struct{ db *gorm.DB }

func NewUtensilRepository(db *gorm.DB) UtensilRepository { return &utensilRepo{db: db} }

func (r *utensilRepo) Create(ctx context.Context, u *model.Utensil) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *utensilRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Utensil, error) {
	var u model.Utensil
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *utensilRepo) FindByName(ctx context.Context, name string) (*model.Utensil, error) {
	var u model.Utensil
	err := r.db.WithContext(ctx).Where("lower(name) = lower(?)", name).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *utensilRepo) List(ctx context.Context) ([]model.Utensil, error) {
	var list []model.Utensil
	err := r.db.WithContext(ctx).Where("active = true").Order("name asc").Find(&list).Error
	return list, err
}

func (r *utensilRepo) Update(ctx context.Context, u *model.Utensil) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *utensilRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Utensil{}).Where("id = ?", id).Update("active", false).Error
}
