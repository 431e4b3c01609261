package service

import (
	"context"
	"errors"
	"testing"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedRecipeWithLines(repo *stubRecipeRepo, name string, lines []model.IngredientLine) *model.Recipe {
	rec := &model.Recipe{ID: uuid.New(), ProductID: uuid.New(), Name: name}
	_ = repo.Create(context.Background(), rec)
	for i := range lines {
		lines[i].RecipeID = rec.ID
		_ = repo.AddLine(context.Background(), &lines[i])
	}
	return rec
}

func costedLine(name, price, qty string) model.IngredientLine {
	id := uuid.New()
	return model.IngredientLine{
		IngredientID: id,
		QuantityUsed: dec(qty),
		Unit:         "g",
		Ingredient:   &model.Ingredient{ID: id, Name: name, Price: dec(price)},
	}
}

func TestRecipeCost_SumsResolvedLines(t *testing.T) {
	repo := newStubRecipeRepo()
	rec := seedRecipeWithLines(repo, "Carbonara", []model.IngredientLine{
		costedLine("Spaghetti", "2.00", "3"),
		costedLine("Guanciale", "5.00", "1"),
	})
	svc := NewCostingService(repo)

	resp, err := svc.RecipeCost(context.Background(), rec.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "11", resp.TotalCost.String())
	require.Len(t, resp.Lines, 2)
	assert.Equal(t, "6", resp.Lines[0].LineCost.String())
	assert.Equal(t, "5", resp.Lines[1].LineCost.String())
}

func TestRecipeCost_EmptyRecipeIsZero(t *testing.T) {
	repo := newStubRecipeRepo()
	rec := seedRecipeWithLines(repo, "Water", nil)
	svc := NewCostingService(repo)

	resp, err := svc.RecipeCost(context.Background(), rec.ID.String())
	require.NoError(t, err)
	assert.True(t, resp.TotalCost.IsZero())
	assert.Empty(t, resp.Lines)
}

func TestRecipeCost_DroppedIngredientExcludedFromSumAndBreakdown(t *testing.T) {
	repo := newStubRecipeRepo()
	stale := model.IngredientLine{
		IngredientID: uuid.New(),
		QuantityUsed: dec("10"),
		Unit:         "g",
		Ingredient:   nil, // ingredient deleted after the line was written
	}
	rec := seedRecipeWithLines(repo, "Stale", []model.IngredientLine{
		costedLine("Flour", "1.50", "2"),
		stale,
	})
	svc := NewCostingService(repo)

	resp, err := svc.RecipeCost(context.Background(), rec.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "3", resp.TotalCost.String())
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "Flour", resp.Lines[0].IngredientName)
}

func TestRecipeCost_Idempotent(t *testing.T) {
	repo := newStubRecipeRepo()
	rec := seedRecipeWithLines(repo, "Carbonara", []model.IngredientLine{
		costedLine("Spaghetti", "2.00", "3"),
	})
	svc := NewCostingService(repo)

	first, err := svc.RecipeCost(context.Background(), rec.ID.String())
	require.NoError(t, err)
	second, err := svc.RecipeCost(context.Background(), rec.ID.String())
	require.NoError(t, err)
	assert.True(t, first.TotalCost.Equal(second.TotalCost))
}

func TestRecipeCost_InvalidAndMissingIDs(t *testing.T) {
	svc := NewCostingService(newStubRecipeRepo())

	_, err := svc.RecipeCost(context.Background(), "not-a-uuid")
	assert.True(t, errors.Is(err, ErrInvalidID))

	_, err = svc.RecipeCost(context.Background(), uuid.NewString())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAllRecipeCosts_ProfitLawAndAbsentPrice(t *testing.T) {
	repo := newStubRecipeRepo()

	withProduct := seedRecipeWithLines(repo, "Priced", []model.IngredientLine{
		costedLine("Spaghetti", "2.00", "3"),
		costedLine("Guanciale", "5.00", "1"),
	})
	withProduct.Product = &model.Product{ID: withProduct.ProductID, Name: "Carbonara", Price: dec("20.00")}

	orphan := seedRecipeWithLines(repo, "Orphan", []model.IngredientLine{
		costedLine("Flour", "1.00", "1"),
	})
	_ = orphan

	svc := NewCostingService(repo)
	report, err := svc.AllRecipeCosts(context.Background())
	require.NoError(t, err)
	require.Len(t, report, 2)

	// Storage order preserved
	assert.Equal(t, "Priced", report[0].RecipeName)
	assert.Equal(t, "Orphan", report[1].RecipeName)

	priced := report[0]
	require.NotNil(t, priced.SellingPrice)
	require.NotNil(t, priced.Profit)
	assert.True(t, priced.Profit.Equal(priced.SellingPrice.Sub(priced.TotalCost).Round(2)))
	assert.Equal(t, "9", priced.Profit.String())

	// No linked product: price and profit are absent, not zero
	assert.Nil(t, report[1].SellingPrice)
	assert.Nil(t, report[1].Profit)
}

func TestAllRecipeCosts_AllOrNothing(t *testing.T) {
	repo := newStubRecipeRepo()
	ok := seedRecipeWithLines(repo, "Fine", []model.IngredientLine{
		costedLine("Flour", "1.00", "1"),
	})
	_ = ok
	broken := seedRecipeWithLines(repo, "Broken", nil)
	repo.failLines[broken.ID] = true

	svc := NewCostingService(repo)
	report, err := svc.AllRecipeCosts(context.Background())
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, ErrAggregation))
}
