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

// ErrInvalidThresholds is returned when min/max stock thresholds are
// inconsistent or a price/quantity is negative.
var ErrInvalidThresholds = errors.New("invalid stock thresholds")

// IngredientService manages the ingredient catalog and its stock levels.
type IngredientService interface {
	Create(ctx context.Context, req dto.CreateIngredientRequest) (*dto.IngredientResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.IngredientResponse, error)
	List(ctx context.Context, includeInactive bool) ([]dto.IngredientResponse, error)
	ListBelowMin(ctx context.Context) ([]dto.IngredientResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateIngredientRequest) (*dto.IngredientResponse, error)
	AdjustQuantity(ctx context.Context, id uuid.UUID, req dto.AdjustQuantityRequest) (*dto.IngredientResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type ingredientService struct {
	repo      repository.IngredientRepository
	notifiers []StockNotifier
}

// NewIngredientService wires the catalog repository plus any number of stock
// event notifiers (realtime broadcast, alert mailer, ...).
func NewIngredientService(repo repository.IngredientRepository, notifiers ...StockNotifier) IngredientService {
	return &ingredientService{repo: repo, notifiers: notifiers}
}

func mapIngredient(ing model.Ingredient) dto.IngredientResponse {
	return dto.IngredientResponse{
		ID:             ing.ID.String(),
		Name:           ing.Name,
		Unit:           ing.Unit,
		Price:          ing.Price,
		QuantityOnHand: ing.QuantityOnHand,
		MinQty:         ing.MinQty,
		MaxQty:         ing.MaxQty,
		ImageURL:       ing.ImageURL,
		Active:         ing.Active,
		BelowMin:       ing.QuantityOnHand.LessThan(ing.MinQty),
	}
}

func validateThresholds(ing *model.Ingredient) error {
	if ing.Price.IsNegative() || ing.QuantityOnHand.IsNegative() || ing.MinQty.IsNegative() {
		return ErrInvalidThresholds
	}
	if ing.MaxQty != nil && ing.MinQty.GreaterThan(*ing.MaxQty) {
		return ErrInvalidThresholds
	}
	return nil
}

func (s *ingredientService) Create(ctx context.Context, req dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	unit := req.Unit
	if unit == "" {
		unit = defaultLineUnit
	}
	ing := &model.Ingredient{
		Name:           req.Name,
		Unit:           unit,
		Price:          req.Price,
		QuantityOnHand: req.QuantityOnHand,
		MinQty:         req.MinQty,
		MaxQty:         req.MaxQty,
		Active:         true,
	}
	if err := validateThresholds(ing); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, ing); err != nil {
		return nil, err
	}
	resp := mapIngredient(*ing)
	return &resp, nil
}

func (s *ingredientService) GetByID(ctx context.Context, id uuid.UUID) (*dto.IngredientResponse, error) {
	ing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	resp := mapIngredient(*ing)
	return &resp, nil
}

func (s *ingredientService) List(ctx context.Context, includeInactive bool) ([]dto.IngredientResponse, error) {
	list, err := s.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.IngredientResponse, 0, len(list))
	for _, ing := range list {
		resp = append(resp, mapIngredient(ing))
	}
	return resp, nil
}

func (s *ingredientService) ListBelowMin(ctx context.Context) ([]dto.IngredientResponse, error) {
	list, err := s.repo.ListBelowMin(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.IngredientResponse, 0, len(list))
	for _, ing := range list {
		resp = append(resp, mapIngredient(ing))
	}
	return resp, nil
}

func (s *ingredientService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateIngredientRequest) (*dto.IngredientResponse, error) {
	ing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if req.Name != nil {
		ing.Name = *req.Name
	}
	if req.Unit != nil {
		ing.Unit = *req.Unit
	}
	if req.Price != nil {
		ing.Price = *req.Price
	}
	if req.MinQty != nil {
		ing.MinQty = *req.MinQty
	}
	if req.MaxQty != nil {
		ing.MaxQty = req.MaxQty
	}
	if err := validateThresholds(ing); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, ing); err != nil {
		return nil, err
	}

	s.publish(ctx, ing)

	resp := mapIngredient(*ing)
	return &resp, nil
}

func (s *ingredientService) AdjustQuantity(ctx context.Context, id uuid.UUID, req dto.AdjustQuantityRequest) (*dto.IngredientResponse, error) {
	if err := s.repo.AdjustQuantity(ctx, id, req.Delta); err != nil {
		return nil, err
	}
	ing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if ing.QuantityOnHand.IsNegative() {
		// Roll the adjustment back rather than leaving negative stock
		_ = s.repo.AdjustQuantity(ctx, id, req.Delta.Neg())
		return nil, ErrInvalidThresholds
	}

	s.publish(ctx, ing)

	resp := mapIngredient(*ing)
	return &resp, nil
}

func (s *ingredientService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.repo.Deactivate(ctx, id)
}

// publish fans the mutation out to every injected notifier. Low-stock is a
// separate event so alerting and realtime consumers can subscribe narrowly.
func (s *ingredientService) publish(ctx context.Context, ing *model.Ingredient) {
	for _, n := range s.notifiers {
		n.IngredientUpdated(ctx, ing)
		if ing.QuantityOnHand.LessThan(ing.MinQty) {
			n.LowStock(ctx, ing)
		}
	}
}
