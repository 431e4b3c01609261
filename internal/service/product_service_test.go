package service

import (
	"context"
	"errors"
	"testing"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductFixture() (ProductService, *stubProductRepo, uuid.UUID) {
	restaurants := newStubRestaurantRepo()
	menus := newStubMenuRepo()
	categories := newStubCategoryRepo()
	products := newStubProductRepo()
	categoryID := seedCategory(categories, seedMenu(menus, seedRestaurant(restaurants)))
	return NewProductService(products, categories), products, categoryID
}

func TestCreateProduct_RequiresExistingCategory(t *testing.T) {
	svc, _, categoryID := newProductFixture()

	_, err := svc.Create(context.Background(), dto.CreateProductRequest{
		CategoryID: uuid.NewString(), Name: "Lasagna", Price: dec("12.50"),
	})
	assert.True(t, errors.Is(err, ErrDependencyNotFound))

	created, err := svc.Create(context.Background(), dto.CreateProductRequest{
		CategoryID: categoryID.String(), Name: "Lasagna", Price: dec("12.50"),
	})
	require.NoError(t, err)
	assert.True(t, created.Available)
	assert.False(t, created.Archived)
	assert.Equal(t, "12.5", created.Price.String())
}

func TestUpdateProduct_PartialFields(t *testing.T) {
	svc, _, categoryID := newProductFixture()

	created, err := svc.Create(context.Background(), dto.CreateProductRequest{
		CategoryID: categoryID.String(), Name: "Lasagna", Price: dec("12.50"),
	})
	require.NoError(t, err)

	newPrice := dec("14.00")
	unavailable := false
	updated, err := svc.Update(context.Background(), uuid.MustParse(created.ID), dto.UpdateProductRequest{
		Price: &newPrice, Available: &unavailable,
	})
	require.NoError(t, err)
	assert.Equal(t, "Lasagna", updated.Name)
	assert.True(t, updated.Price.Equal(newPrice))
	assert.False(t, updated.Available)
}

func TestArchiveRestoreProduct(t *testing.T) {
	svc, products, categoryID := newProductFixture()

	created, err := svc.Create(context.Background(), dto.CreateProductRequest{
		CategoryID: categoryID.String(), Name: "Tiramisu", Price: dec("6.00"),
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	require.NoError(t, svc.Archive(context.Background(), id))
	p, err := products.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, p.Archived)

	require.NoError(t, svc.Restore(context.Background(), id))
	p, err = products.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, p.Archived)

	assert.True(t, errors.Is(svc.Archive(context.Background(), uuid.New()), ErrNotFound))
}
