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

func seedRestaurant(repo *stubRestaurantRepo) uuid.UUID {
	rest := &model.Restaurant{ID: uuid.New(), Name: "Trattoria", Active: true}
	_ = repo.Create(context.Background(), rest)
	return rest.ID
}

func seedMenu(repo *stubMenuRepo, restaurantID uuid.UUID) uuid.UUID {
	m := &model.Menu{ID: uuid.New(), RestaurantID: restaurantID, Name: "Dinner", Active: true}
	_ = repo.Create(context.Background(), m)
	return m.ID
}

func seedCategory(repo *stubCategoryRepo, menuID uuid.UUID) uuid.UUID {
	c := &model.Category{ID: uuid.New(), MenuID: menuID, Name: "Mains", Active: true}
	_ = repo.Create(context.Background(), c)
	return c.ID
}

func TestCreateMenu_RequiresRestaurantAndUniqueName(t *testing.T) {
	restaurants := newStubRestaurantRepo()
	menus := newStubMenuRepo()
	svc := NewMenuService(menus, restaurants)

	_, err := svc.Create(context.Background(), dto.CreateMenuRequest{
		RestaurantID: uuid.NewString(), Name: "Dinner",
	})
	assert.True(t, errors.Is(err, ErrDependencyNotFound))

	restaurantID := seedRestaurant(restaurants)
	created, err := svc.Create(context.Background(), dto.CreateMenuRequest{
		RestaurantID: restaurantID.String(), Name: "Dinner",
	})
	require.NoError(t, err)
	assert.True(t, created.Active)

	_, err = svc.Create(context.Background(), dto.CreateMenuRequest{
		RestaurantID: restaurantID.String(), Name: "Dinner",
	})
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestCreateCategory_RejectsDuplicateWithinMenu(t *testing.T) {
	restaurants := newStubRestaurantRepo()
	menus := newStubMenuRepo()
	categories := newStubCategoryRepo()
	svc := NewCategoryService(categories, menus)

	menuID := seedMenu(menus, seedRestaurant(restaurants))

	_, err := svc.Create(context.Background(), dto.CreateCategoryRequest{
		MenuID: menuID.String(), Name: "Starters",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreateCategoryRequest{
		MenuID: menuID.String(), Name: "Starters",
	})
	assert.True(t, errors.Is(err, ErrConflict))

	// Same name under a different menu is fine
	otherMenu := seedMenu(menus, seedRestaurant(restaurants))
	_, err = svc.Create(context.Background(), dto.CreateCategoryRequest{
		MenuID: otherMenu.String(), Name: "Starters",
	})
	assert.NoError(t, err)
}

func TestDeactivateMenu_SoftDelete(t *testing.T) {
	restaurants := newStubRestaurantRepo()
	menus := newStubMenuRepo()
	svc := NewMenuService(menus, restaurants)

	menuID := seedMenu(menus, seedRestaurant(restaurants))
	require.NoError(t, svc.Deactivate(context.Background(), menuID))

	m, err := menus.FindByID(context.Background(), menuID)
	require.NoError(t, err)
	assert.False(t, m.Active)

	assert.True(t, errors.Is(svc.Deactivate(context.Background(), uuid.New()), ErrNotFound))
}
