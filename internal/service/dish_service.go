package service

import (
	"context"
	"errors"
	"time"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/dto"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/model"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// servingDivisor scales an ingredient's declared maximum stock level down to
// an expected per-serving allotment. Policy constant, not configuration.
var servingDivisor = decimal.NewFromInt(50)

var dishPromotionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "dish_of_the_day_promotions_total",
		Help: "Recipes automatically promoted to dish of the day.",
	},
)

// DishOfTheDayService decides, at recipe-creation time, whether the dish a
// recipe belongs to should be automatically promoted to dish of the day, and
// performs that promotion idempotently. The rule is promotion-only: it runs
// on create, never on update, and never demotes an existing entry.
type DishOfTheDayService interface {
	// QualifyAndPromote evaluates the enrollment rule for a freshly created
	// recipe. It returns true when a new featured entry was created.
	QualifyAndPromote(ctx context.Context, rec *model.Recipe) bool
	List(ctx context.Context, activeOnly bool) ([]dto.DishOfTheDayResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type dishService struct {
	ingredients repository.IngredientRepository
	dishes      repository.DishOfTheDayRepository
}

func NewDishOfTheDayService(ingredients repository.IngredientRepository, dishes repository.DishOfTheDayRepository) DishOfTheDayService {
	return &dishService{ingredients: ingredients, dishes: dishes}
}

// qualifies walks every group item in authoring order and short-circuits on
// the first item whose ingredient satisfies maxQty/servingDivisor > quantity.
// Items with a missing ingredient or an unset maxQty never count toward
// qualification; malformed quantity text degrades to zero instead of failing.
func (s *dishService) qualifies(ctx context.Context, rec *model.Recipe) bool {
	for _, group := range rec.Groups {
		for _, item := range group.Items {
			quantityUsed := ParseLeadingMagnitude(item.CustomQuantity)

			ing, err := s.ingredients.FindByID(ctx, item.IngredientID)
			if err != nil || ing.MaxQty == nil {
				continue
			}

			adjustedMax := ing.MaxQty.Div(servingDivisor)
			if adjustedMax.GreaterThan(quantityUsed) {
				return true
			}
		}
	}
	return false
}

func (s *dishService) QualifyAndPromote(ctx context.Context, rec *model.Recipe) bool {
	if !s.qualifies(ctx, rec) {
		return false
	}

	// Idempotent promote: an existing entry for this product wins. The
	// advisory pre-check keeps the common path quiet; the partial unique
	// index backs it up against concurrent creations.
	if _, err := s.dishes.FindActiveByProduct(ctx, rec.ProductID); err == nil {
		return false
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Str("product_id", rec.ProductID.String()).
			Msg("dish_of_the_day: featured-entry lookup failed")
		return false
	}

	entry := &model.DishOfTheDay{
		Date:      time.Now().UTC(),
		Status:    model.DishStatusActive,
		ProductID: rec.ProductID,
	}
	if err := s.dishes.Create(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrDuplicateFeatured) {
			// Lost the race to a concurrent promotion — recoverable no-op
			return false
		}
		// Promotion is a fire-and-forget side effect of recipe creation;
		// a failed write is logged, never surfaced to the creation caller.
		log.Error().Err(err).Str("product_id", rec.ProductID.String()).
			Msg("dish_of_the_day: failed to create featured entry")
		return false
	}
	dishPromotionsTotal.Inc()
	return true
}

func (s *dishService) List(ctx context.Context, activeOnly bool) ([]dto.DishOfTheDayResponse, error) {
	entries, err := s.dishes.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DishOfTheDayResponse, 0, len(entries))
	for _, e := range entries {
		item := dto.DishOfTheDayResponse{
			ID:        e.ID.String(),
			Date:      e.Date.Format(time.RFC3339),
			Status:    e.Status,
			ProductID: e.ProductID.String(),
		}
		if e.Product != nil {
			p := mapProduct(*e.Product)
			item.Product = &p
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *dishService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.dishes.Deactivate(ctx, id)
}
