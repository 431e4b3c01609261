package service

import (
	"context"
	"testing"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedIngredient(repo *stubIngredientRepo, name string, maxQty *string) uuid.UUID {
	ing := &model.Ingredient{
		ID:     uuid.New(),
		Name:   name,
		Unit:   "g",
		Price:  dec("1.00"),
		Active: true,
	}
	if maxQty != nil {
		v := dec(*maxQty)
		ing.MaxQty = &v
	}
	_ = repo.Create(context.Background(), ing)
	return ing.ID
}

func recipeWithItem(ingredientID uuid.UUID, customQuantity string) *model.Recipe {
	return &model.Recipe{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		Name:      "Test dish",
		Groups: []model.IngredientGroup{
			{
				Title: "Main",
				Items: []model.GroupItem{
					{IngredientID: ingredientID, CustomQuantity: customQuantity},
				},
			},
		},
	}
}

func strPtr(s string) *string { return &s }

func TestQualifyAndPromote_CreatesFeaturedEntry(t *testing.T) {
	ingredients := newStubIngredientRepo()
	dishes := newStubDishRepo()
	svc := NewDishOfTheDayService(ingredients, dishes)

	// 600/50 = 12 > 2 — qualifies
	ingID := seedIngredient(ingredients, "Basil", strPtr("600"))
	rec := recipeWithItem(ingID, "2 tbsp")

	promoted := svc.QualifyAndPromote(context.Background(), rec)
	assert.True(t, promoted)

	entries, err := dishes.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, rec.ProductID, entries[0].ProductID)
	assert.Equal(t, model.DishStatusActive, entries[0].Status)
}

func TestQualifyAndPromote_BelowThresholdDoesNotPromote(t *testing.T) {
	ingredients := newStubIngredientRepo()
	dishes := newStubDishRepo()
	svc := NewDishOfTheDayService(ingredients, dishes)

	// 50/50 = 1, not > 2
	ingID := seedIngredient(ingredients, "Saffron", strPtr("50"))
	rec := recipeWithItem(ingID, "2 tbsp")

	assert.False(t, svc.QualifyAndPromote(context.Background(), rec))
	entries, _ := dishes.List(context.Background(), false)
	assert.Empty(t, entries)
}

func TestQualifyAndPromote_UnsetMaxQtyNeverQualifies(t *testing.T) {
	ingredients := newStubIngredientRepo()
	dishes := newStubDishRepo()
	svc := NewDishOfTheDayService(ingredients, dishes)

	ingID := seedIngredient(ingredients, "Salt", nil)
	rec := recipeWithItem(ingID, "1g")

	assert.False(t, svc.QualifyAndPromote(context.Background(), rec))
}

func TestQualifyAndPromote_MissingIngredientSkipped(t *testing.T) {
	ingredients := newStubIngredientRepo()
	dishes := newStubDishRepo()
	svc := NewDishOfTheDayService(ingredients, dishes)

	rec := recipeWithItem(uuid.New(), "1g")
	assert.False(t, svc.QualifyAndPromote(context.Background(), rec))
}

func TestQualifyAndPromote_MalformedQuantityDegradesToZero(t *testing.T) {
	ingredients := newStubIngredientRepo()
	dishes := newStubDishRepo()
	svc := NewDishOfTheDayService(ingredients, dishes)

	// "two cups" parses to 0; any positive adjusted max qualifies
	ingID := seedIngredient(ingredients, "Basil", strPtr("50"))
	rec := recipeWithItem(ingID, "two cups")

	assert.True(t, svc.QualifyAndPromote(context.Background(), rec))
}

func TestQualifyAndPromote_ShortCircuitsInAuthoringOrder(t *testing.T) {
	ingredients := newStubIngredientRepo()
	dishes := newStubDishRepo()
	svc := NewDishOfTheDayService(ingredients, dishes)

	qualifying := seedIngredient(ingredients, "Basil", strPtr("600"))
	rec := &model.Recipe{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		Name:      "Layered",
		Groups: []model.IngredientGroup{
			{Title: "First", Items: []model.GroupItem{
				{IngredientID: uuid.New(), CustomQuantity: "999g"}, // unresolvable
				{IngredientID: qualifying, CustomQuantity: "2g"},
			}},
		},
	}
	assert.True(t, svc.QualifyAndPromote(context.Background(), rec))
}

func TestQualifyAndPromote_IdempotentPerProduct(t *testing.T) {
	ingredients := newStubIngredientRepo()
	dishes := newStubDishRepo()
	svc := NewDishOfTheDayService(ingredients, dishes)

	ingID := seedIngredient(ingredients, "Basil", strPtr("600"))
	rec := recipeWithItem(ingID, "2g")

	assert.True(t, svc.QualifyAndPromote(context.Background(), rec))
	// Same product again: existing Active entry wins, no duplicate
	assert.False(t, svc.QualifyAndPromote(context.Background(), rec))

	entries, _ := dishes.List(context.Background(), false)
	assert.Len(t, entries, 1)
}

func TestDeactivateThenRepromote(t *testing.T) {
	ingredients := newStubIngredientRepo()
	dishes := newStubDishRepo()
	svc := NewDishOfTheDayService(ingredients, dishes)

	ingID := seedIngredient(ingredients, "Basil", strPtr("600"))
	rec := recipeWithItem(ingID, "2g")

	require.True(t, svc.QualifyAndPromote(context.Background(), rec))
	entries, _ := dishes.List(context.Background(), true)
	require.Len(t, entries, 1)

	require.NoError(t, svc.Deactivate(context.Background(), entries[0].ID))
	active, _ := svc.List(context.Background(), true)
	assert.Empty(t, active)

	// A retired entry does not block a fresh promotion
	assert.True(t, svc.QualifyAndPromote(context.Background(), rec))
}
