package service

import (
	"context"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/model"
)

// StockNotifier is the event port for ingredient stock mutations. The
// ingredient use case publishes through injected notifiers instead of
// reaching a global publisher, so the logic stays testable without a live
// broker. Implementations must not block the request path beyond a publish.
type StockNotifier interface {
	// IngredientUpdated fires after any quantity or price mutation.
	IngredientUpdated(ctx context.Context, ing *model.Ingredient)
	// LowStock fires when a mutation leaves the quantity below the minimum.
	LowStock(ctx context.Context, ing *model.Ingredient)
}

// NopNotifier discards all events. Used in tests and as a safe default.
type NopNotifier struct{}

func (NopNotifier) IngredientUpdated(context.Context, *model.Ingredient) {}
func (NopNotifier) LowStock(context.Context, *model.Ingredient)          {}
