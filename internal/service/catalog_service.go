package service

import (
	"context"
	"errors"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/dto"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/model"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ─── Restaurant ──────────────────────────────────────────────────────────────

type RestaurantService interface {
	Create(ctx context.Context, req dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.RestaurantResponse, error)
	List(ctx context.Context) ([]dto.RestaurantResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type restaurantService struct {
	repo repository.RestaurantRepository
}

func NewRestaurantService(repo repository.RestaurantRepository) RestaurantService {
	return &restaurantService{repo: repo}
}

func mapRestaurant(r model.Restaurant) dto.RestaurantResponse {
	return dto.RestaurantResponse{
		ID:      r.ID.String(),
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
		LogoURL: r.LogoURL,
		Active:  r.Active,
	}
}

func (s *restaurantService) Create(ctx context.Context, req dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}
	r := &model.Restaurant{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
		Active:  true,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	resp := mapRestaurant(*r)
	return &resp, nil
}

func (s *restaurantService) GetByID(ctx context.Context, id uuid.UUID) (*dto.RestaurantResponse, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	resp := mapRestaurant(*r)
	return &resp, nil
}

func (s *restaurantService) List(ctx context.Context) ([]dto.RestaurantResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RestaurantResponse, 0, len(list))
	for _, r := range list {
		resp = append(resp, mapRestaurant(r))
	}
	return resp, nil
}

func (s *restaurantService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if req.Name != nil && *req.Name != r.Name {
		existing, err := s.repo.FindByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrConflict
		}
		r.Name = *req.Name
	}
	if req.Address != nil {
		r.Address = req.Address
	}
	if req.Phone != nil {
		r.Phone = req.Phone
	}
	if req.Email != nil {
		r.Email = req.Email
	}
	if req.Active != nil {
		r.Active = *req.Active
	}
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	resp := mapRestaurant(*r)
	return &resp, nil
}

func (s *restaurantService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.repo.Deactivate(ctx, id)
}

// ─── Menu ────────────────────────────────────────────────────────────────────

type MenuService interface {
	Create(ctx context.Context, req dto.CreateMenuRequest) (*dto.MenuResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.MenuResponse, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]dto.MenuResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateMenuRequest) (*dto.MenuResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type menuService struct {
	repo        repository.MenuRepository
	restaurants repository.RestaurantRepository
}

func NewMenuService(repo repository.MenuRepository, restaurants repository.RestaurantRepository) MenuService {
	return &menuService{repo: repo, restaurants: restaurants}
}

func mapMenu(m model.Menu) dto.MenuResponse {
	resp := dto.MenuResponse{
		ID:           m.ID.String(),
		RestaurantID: m.RestaurantID.String(),
		Name:         m.Name,
		Description:  m.Description,
		ImageURL:     m.ImageURL,
		Active:       m.Active,
	}
	for _, c := range m.Categories {
		resp.Categories = append(resp.Categories, mapCategory(c))
	}
	return resp
}

func (s *menuService) Create(ctx context.Context, req dto.CreateMenuRequest) (*dto.MenuResponse, error) {
	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return nil, ErrInvalidID
	}
	if _, err := s.restaurants.FindByID(ctx, restaurantID); err != nil {
		return nil, ErrDependencyNotFound
	}
	existing, err := s.repo.FindByName(ctx, restaurantID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	m := &model.Menu{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Active:       true,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	resp := mapMenu(*m)
	return &resp, nil
}

func (s *menuService) GetByID(ctx context.Context, id uuid.UUID) (*dto.MenuResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	resp := mapMenu(*m)
	return &resp, nil
}

func (s *menuService) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]dto.MenuResponse, error) {
	list, err := s.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MenuResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, mapMenu(m))
	}
	return resp, nil
}

func (s *menuService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateMenuRequest) (*dto.MenuResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if req.Name != nil && *req.Name != m.Name {
		existing, err := s.repo.FindByName(ctx, m.RestaurantID, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrConflict
		}
		m.Name = *req.Name
	}
	if req.Description != nil {
		m.Description = req.Description
	}
	if req.Active != nil {
		m.Active = *req.Active
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	resp := mapMenu(*m)
	return &resp, nil
}

func (s *menuService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.repo.Deactivate(ctx, id)
}

// ─── Category ────────────────────────────────────────────────────────────────

type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error)
	ListByMenu(ctx context.Context, menuID uuid.UUID) ([]dto.CategoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	repo  repository.CategoryRepository
	menus repository.MenuRepository
}

func NewCategoryService(repo repository.CategoryRepository, menus repository.MenuRepository) CategoryService {
	return &categoryService{repo: repo, menus: menus}
}

func mapCategory(c model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID.String(),
		MenuID:      c.MenuID.String(),
		Name:        c.Name,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Active:      c.Active,
	}
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	menuID, err := uuid.Parse(req.MenuID)
	if err != nil {
		return nil, ErrInvalidID
	}
	if _, err := s.menus.FindByID(ctx, menuID); err != nil {
		return nil, ErrDependencyNotFound
	}
	existing, err := s.repo.FindByName(ctx, menuID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	c := &model.Category{
		MenuID:      menuID,
		Name:        req.Name,
		Description: req.Description,
		Active:      true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCategory(*c)
	return &resp, nil
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	resp := mapCategory(*c)
	return &resp, nil
}

func (s *categoryService) ListByMenu(ctx context.Context, menuID uuid.UUID) ([]dto.CategoryResponse, error) {
	list, err := s.repo.ListByMenu(ctx, menuID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		resp = append(resp, mapCategory(c))
	}
	return resp, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if req.Name != nil && *req.Name != c.Name {
		existing, err := s.repo.FindByName(ctx, c.MenuID, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrConflict
		}
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = req.Description
	}
	if req.Active != nil {
		c.Active = *req.Active
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCategory(*c)
	return &resp, nil
}

func (s *categoryService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.repo.Deactivate(ctx, id)
}

// ─── Utensil ─────────────────────────────────────────────────────────────────

type UtensilService interface {
	Create(ctx context.Context, req dto.CreateUtensilRequest) (*dto.UtensilResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.UtensilResponse, error)
	List(ctx context.Context) ([]dto.UtensilResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateUtensilRequest) (*dto.UtensilResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type utensilService struct {
	repo repository.UtensilRepository
}

func NewUtensilService(repo repository.UtensilRepository) UtensilService {
	return &utensilService{repo: repo}
}

func mapUtensil(u model.Utensil) dto.UtensilResponse {
	return dto.UtensilResponse{
		ID:          u.ID.String(),
		Name:        u.Name,
		Quantity:    u.Quantity,
		Description: u.Description,
		ImageURL:    u.ImageURL,
		Active:      u.Active,
	}
}

func (s *utensilService) Create(ctx context.Context, req dto.CreateUtensilRequest) (*dto.UtensilResponse, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}
	u := &model.Utensil{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Description: req.Description,
		Active:      true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	resp := mapUtensil(*u)
	return &resp, nil
}

func (s *utensilService) GetByID(ctx context.Context, id uuid.UUID) (*dto.UtensilResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	resp := mapUtensil(*u)
	return &resp, nil
}

func (s *utensilService) List(ctx context.Context) ([]dto.UtensilResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UtensilResponse, 0, len(list))
	for _, u := range list {
		resp = append(resp, mapUtensil(u))
	}
	return resp, nil
}

func (s *utensilService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUtensilRequest) (*dto.UtensilResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Quantity != nil {
		u.Quantity = *req.Quantity
	}
	if req.Description != nil {
		u.Description = req.Description
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	resp := mapUtensil(*u)
	return &resp, nil
}

func (s *utensilService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.repo.Deactivate(ctx, id)
}
