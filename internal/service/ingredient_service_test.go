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

// recordingNotifier captures published stock events.
type recordingNotifier struct {
	updated []string
	low     []string
}

func (n *recordingNotifier) IngredientUpdated(_ context.Context, ing *model.Ingredient) {
	n.updated = append(n.updated, ing.Name)
}

func (n *recordingNotifier) LowStock(_ context.Context, ing *model.Ingredient) {
	n.low = append(n.low, ing.Name)
}

func TestCreateIngredient_RejectsDuplicateName(t *testing.T) {
	repo := newStubIngredientRepo()
	svc := NewIngredientService(repo)

	_, err := svc.Create(context.Background(), dto.CreateIngredientRequest{
		Name: "Flour", Price: dec("1.50"),
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreateIngredientRequest{
		Name: "Flour", Price: dec("2.00"),
	})
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestCreateIngredient_ValidatesThresholds(t *testing.T) {
	svc := NewIngredientService(newStubIngredientRepo())

	max := dec("5")
	_, err := svc.Create(context.Background(), dto.CreateIngredientRequest{
		Name: "Sugar", Price: dec("1.00"), MinQty: dec("10"), MaxQty: &max,
	})
	assert.True(t, errors.Is(err, ErrInvalidThresholds))

	_, err = svc.Create(context.Background(), dto.CreateIngredientRequest{
		Name: "Sugar", Price: dec("-1.00"),
	})
	assert.True(t, errors.Is(err, ErrInvalidThresholds))
}

func TestAdjustQuantity_PublishesEventsAndFlagsLowStock(t *testing.T) {
	repo := newStubIngredientRepo()
	notifier := &recordingNotifier{}
	svc := NewIngredientService(repo, notifier)

	created, err := svc.Create(context.Background(), dto.CreateIngredientRequest{
		Name: "Butter", Price: dec("3.00"), QuantityOnHand: dec("100"), MinQty: dec("20"),
	})
	require.NoError(t, err)

	id := uuid.MustParse(created.ID)
	resp, err := svc.AdjustQuantity(context.Background(), id, dto.AdjustQuantityRequest{Delta: dec("-90")})
	require.NoError(t, err)

	assert.Equal(t, "10", resp.QuantityOnHand.String())
	assert.True(t, resp.BelowMin)
	assert.Equal(t, []string{"Butter"}, notifier.updated)
	assert.Equal(t, []string{"Butter"}, notifier.low)
}

func TestAdjustQuantity_RollsBackNegativeStock(t *testing.T) {
	repo := newStubIngredientRepo()
	notifier := &recordingNotifier{}
	svc := NewIngredientService(repo, notifier)

	created, err := svc.Create(context.Background(), dto.CreateIngredientRequest{
		Name: "Yeast", Price: dec("0.50"), QuantityOnHand: dec("5"),
	})
	require.NoError(t, err)

	id := uuid.MustParse(created.ID)
	_, err = svc.AdjustQuantity(context.Background(), id, dto.AdjustQuantityRequest{Delta: dec("-10")})
	assert.True(t, errors.Is(err, ErrInvalidThresholds))

	// Stock unchanged, no event published for the rejected mutation
	current, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "5", current.QuantityOnHand.String())
	assert.Empty(t, notifier.updated)
}

func TestListBelowMin(t *testing.T) {
	repo := newStubIngredientRepo()
	svc := NewIngredientService(repo)

	_, err := svc.Create(context.Background(), dto.CreateIngredientRequest{
		Name: "Low", Price: dec("1.00"), QuantityOnHand: dec("1"), MinQty: dec("10"),
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), dto.CreateIngredientRequest{
		Name: "Fine", Price: dec("1.00"), QuantityOnHand: dec("50"), MinQty: dec("10"),
	})
	require.NoError(t, err)

	low, err := svc.ListBelowMin(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Low", low[0].Name)
	assert.True(t, low[0].BelowMin)
}
