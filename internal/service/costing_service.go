package service

import (
	"context"
	"fmt"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/dto"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/model"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CostingService computes the monetary cost of producing recipes and the
// margin against their sale price. Both operations are read-only snapshots:
// reads are not transactional, and a report may observe a price mid-update.
type CostingService interface {
	RecipeCost(ctx context.Context, recipeID string) (*dto.RecipeCostResponse, error)
	AllRecipeCosts(ctx context.Context) ([]dto.RecipeProfitResponse, error)
}

type costingService struct {
	recipes repository.RecipeRepository
}

func NewCostingService(recipes repository.RecipeRepository) CostingService {
	return &costingService{recipes: recipes}
}

// sumLines resolves every composition line to its ingredient's current unit
// price and accumulates the total at full precision. Lines whose ingredient
// no longer resolves are silently excluded from both the sum and the
// breakdown — a deliberate lenient join so stale references never block
// reporting. Rounding to 2 decimals happens here, at the output boundary,
// never inside the accumulation.
func sumLines(lines []model.IngredientLine) (decimal.Decimal, []dto.CostLine) {
	total := decimal.Zero
	breakdown := make([]dto.CostLine, 0, len(lines))
	for _, line := range lines {
		if line.Ingredient == nil {
			continue
		}
		lineCost := line.QuantityUsed.Mul(line.Ingredient.Price)
		total = total.Add(lineCost)
		breakdown = append(breakdown, dto.CostLine{
			IngredientID:   line.IngredientID.String(),
			IngredientName: line.Ingredient.Name,
			QuantityUsed:   line.QuantityUsed,
			Unit:           line.Unit,
			UnitPrice:      line.Ingredient.Price,
			LineCost:       lineCost.Round(2),
		})
	}
	return total, breakdown
}

func (s *costingService) RecipeCost(ctx context.Context, recipeID string) (*dto.RecipeCostResponse, error) {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid recipe id", ErrInvalidID, recipeID)
	}

	rec, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	lines, err := s.recipes.ListLines(ctx, id)
	if err != nil {
		return nil, err
	}

	total, breakdown := sumLines(lines)
	return &dto.RecipeCostResponse{
		RecipeID:   rec.ID.String(),
		RecipeName: rec.Name,
		TotalCost:  total.Round(2),
		Lines:      breakdown,
	}, nil
}

func (s *costingService) AllRecipeCosts(ctx context.Context) ([]dto.RecipeProfitResponse, error) {
	recs, err := s.recipes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAggregation, err)
	}

	// One entry per recipe, storage order preserved — no sort is imposed.
	report := make([]dto.RecipeProfitResponse, 0, len(recs))
	for _, rec := range recs {
		lines, err := s.recipes.ListLines(ctx, rec.ID)
		if err != nil {
			// All-or-nothing: a failed line listing voids the whole report
			return nil, fmt.Errorf("%w: %v", ErrAggregation, err)
		}
		total, breakdown := sumLines(lines)
		entry := dto.RecipeProfitResponse{
			RecipeID:   rec.ID.String(),
			RecipeName: rec.Name,
			TotalCost:  total.Round(2),
			Lines:      breakdown,
		}
		// Absent product ⇒ absent price and profit, never zero
		if rec.Product != nil {
			price := rec.Product.Price
			profit := price.Sub(total).Round(2)
			entry.SellingPrice = &price
			entry.Profit = &profit
		}
		report = append(report, entry)
	}
	return report, nil
}
