package service

import (
	"context"
	"errors"
	"testing"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/dto"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecipeFixture() (RecipeService, *stubRecipeRepo, *stubProductRepo, *stubIngredientRepo, *stubDishRepo) {
	recipes := newStubRecipeRepo()
	products := newStubProductRepo()
	ingredients := newStubIngredientRepo()
	dishes := newStubDishRepo()
	dishSvc := NewDishOfTheDayService(ingredients, dishes)
	return NewRecipeService(recipes, products, dishSvc), recipes, products, ingredients, dishes
}

func seedProduct(repo *stubProductRepo) uuid.UUID {
	p := &model.Product{ID: uuid.New(), Name: "Margherita", Available: true}
	_ = repo.Create(context.Background(), p)
	return p.ID
}

func TestCreateRecipe_RejectsMalformedProductID(t *testing.T) {
	svc, _, _, _, _ := newRecipeFixture()

	_, err := svc.Create(context.Background(), dto.CreateRecipeRequest{
		ProductID: "not-a-uuid", Name: "Pizza dough",
	})
	assert.True(t, errors.Is(err, ErrInvalidID))
}

func TestCreateRecipe_RejectsMissingProduct(t *testing.T) {
	svc, _, _, _, _ := newRecipeFixture()

	_, err := svc.Create(context.Background(), dto.CreateRecipeRequest{
		ProductID: uuid.NewString(), Name: "Pizza dough",
	})
	assert.True(t, errors.Is(err, ErrDependencyNotFound))
}

func TestCreateRecipe_OneRecipePerProduct(t *testing.T) {
	svc, _, products, _, _ := newRecipeFixture()
	productID := seedProduct(products)

	_, err := svc.Create(context.Background(), dto.CreateRecipeRequest{
		ProductID: productID.String(), Name: "First",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreateRecipeRequest{
		ProductID: productID.String(), Name: "Second",
	})
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestCreateRecipe_PreservesAuthoringOrderAndDefaultsUnit(t *testing.T) {
	svc, recipes, products, ingredients, _ := newRecipeFixture()
	productID := seedProduct(products)
	flour := seedIngredient(ingredients, "Flour", nil)
	water := seedIngredient(ingredients, "Water", nil)

	resp, err := svc.Create(context.Background(), dto.CreateRecipeRequest{
		ProductID: productID.String(),
		Name:      "Pizza dough",
		Groups: []dto.IngredientGroupRequest{
			{Title: "Dough", Items: []dto.GroupItemRequest{
				{IngredientID: flour.String(), CustomQuantity: "500g"},
				{IngredientID: water.String(), CustomQuantity: "300ml"},
			}},
			{Title: "Topping", Items: []dto.GroupItemRequest{
				{IngredientID: flour.String(), CustomQuantity: "a dusting"},
			}},
		},
		Lines: []dto.IngredientLineRequest{
			{IngredientID: flour.String(), QuantityUsed: dec("500")},
			{IngredientID: water.String(), QuantityUsed: dec("300"), Unit: "ml"},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Groups, 2)
	assert.Equal(t, "Dough", resp.Groups[0].Title)
	assert.Equal(t, "Topping", resp.Groups[1].Title)
	require.Len(t, resp.Groups[0].Items, 2)
	assert.Equal(t, flour.String(), resp.Groups[0].Items[0].IngredientID)
	assert.Equal(t, water.String(), resp.Groups[0].Items[1].IngredientID)

	rec, err := recipes.FindByID(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Groups[0].Position)
	assert.Equal(t, 1, rec.Groups[1].Position)
	assert.Equal(t, 0, rec.Groups[0].Items[0].Position)
	assert.Equal(t, 1, rec.Groups[0].Items[1].Position)

	require.Len(t, rec.Lines, 2)
	assert.Equal(t, "g", rec.Lines[0].Unit)
	assert.Equal(t, "ml", rec.Lines[1].Unit)
}

func TestCreateRecipe_PromotesQualifyingDish(t *testing.T) {
	svc, _, products, ingredients, dishes := newRecipeFixture()
	productID := seedProduct(products)
	ing := seedIngredient(ingredients, "Saffron", strPtr("600"))

	resp, err := svc.Create(context.Background(), dto.CreateRecipeRequest{
		ProductID: productID.String(),
		Name:      "Risotto",
		Groups: []dto.IngredientGroupRequest{
			{Title: "Base", Items: []dto.GroupItemRequest{
				{IngredientID: ing.String(), CustomQuantity: "2g"},
			}},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Featured)

	entry, err := dishes.FindActiveByProduct(context.Background(), productID)
	require.NoError(t, err)
	assert.Equal(t, model.DishStatusActive, entry.Status)
}

func TestCreateRecipe_NonQualifyingDishNotPromoted(t *testing.T) {
	svc, _, products, ingredients, dishes := newRecipeFixture()
	productID := seedProduct(products)
	ing := seedIngredient(ingredients, "Salt", strPtr("50"))

	resp, err := svc.Create(context.Background(), dto.CreateRecipeRequest{
		ProductID: productID.String(),
		Name:      "Plain pasta",
		Groups: []dto.IngredientGroupRequest{
			{Title: "Base", Items: []dto.GroupItemRequest{
				{IngredientID: ing.String(), CustomQuantity: "5g"},
			}},
		},
	})
	require.NoError(t, err)
	assert.False(t, resp.Featured)

	_, err = dishes.FindActiveByProduct(context.Background(), productID)
	assert.Error(t, err)
}

func TestUpdateRecipe_PartialFields(t *testing.T) {
	svc, _, products, _, _ := newRecipeFixture()
	productID := seedProduct(products)

	created, err := svc.Create(context.Background(), dto.CreateRecipeRequest{
		ProductID: productID.String(), Name: "Old name", Steps: []string{"mix"},
	})
	require.NoError(t, err)

	newName := "New name"
	updated, err := svc.Update(context.Background(), uuid.MustParse(created.ID), dto.UpdateRecipeRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "New name", updated.Name)
	assert.Equal(t, []string{"mix"}, updated.Steps)
}

func TestRecipeLines_AddListDelete(t *testing.T) {
	svc, _, products, ingredients, _ := newRecipeFixture()
	productID := seedProduct(products)
	ing := seedIngredient(ingredients, "Flour", nil)

	created, err := svc.Create(context.Background(), dto.CreateRecipeRequest{
		ProductID: productID.String(), Name: "Bread",
	})
	require.NoError(t, err)
	recipeID := uuid.MustParse(created.ID)

	line, err := svc.AddLine(context.Background(), recipeID, dto.IngredientLineRequest{
		IngredientID: ing.String(), QuantityUsed: dec("250"),
	})
	require.NoError(t, err)
	assert.Equal(t, "g", line.Unit)

	lines, err := svc.ListLines(context.Background(), recipeID)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	require.NoError(t, svc.DeleteLine(context.Background(), uuid.MustParse(line.ID)))
	lines, err = svc.ListLines(context.Background(), recipeID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestVariants_Lifecycle(t *testing.T) {
	svc, _, products, _, _ := newRecipeFixture()
	productID := seedProduct(products)

	created, err := svc.Create(context.Background(), dto.CreateRecipeRequest{
		ProductID: productID.String(), Name: "Curry",
	})
	require.NoError(t, err)
	recipeID := uuid.MustParse(created.ID)

	v, err := svc.CreateVariant(context.Background(), recipeID, dto.CreateVariantRequest{Name: "Extra hot"})
	require.NoError(t, err)
	assert.True(t, v.Active)

	_, err = svc.CreateVariant(context.Background(), uuid.New(), dto.CreateVariantRequest{Name: "Orphan"})
	assert.True(t, errors.Is(err, ErrNotFound))

	list, err := svc.ListVariants(context.Background(), recipeID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.DeactivateVariant(context.Background(), uuid.MustParse(v.ID)))
	list, err = svc.ListVariants(context.Background(), recipeID)
	require.NoError(t, err)
	assert.False(t, list[0].Active)
}
