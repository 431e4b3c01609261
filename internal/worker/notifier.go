package worker

import (
	"context"
	"fmt"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/model"

	"github.com/rs/zerolog/log"
)

// AlertNotifier implements the stock notifier port by enqueuing alert emails
// for low-stock events. Regular update events are realtime-only and ignored
// here. Enqueue failures are logged, never surfaced to the mutation path.
type AlertNotifier struct {
	dispatcher *Dispatcher
	toEmail    string
}

func NewAlertNotifier(dispatcher *Dispatcher, toEmail string) *AlertNotifier {
	return &AlertNotifier{dispatcher: dispatcher, toEmail: toEmail}
}

func (n *AlertNotifier) IngredientUpdated(context.Context, *model.Ingredient) {}

func (n *AlertNotifier) LowStock(ctx context.Context, ing *model.Ingredient) {
	if n.toEmail == "" {
		return
	}
	payload := EmailJobPayload{
		ToEmail: n.toEmail,
		Subject: fmt.Sprintf("Low stock: %s", ing.Name),
		Body: fmt.Sprintf("%s is at %s %s, below the minimum of %s %s.",
			ing.Name, ing.QuantityOnHand.String(), ing.Unit, ing.MinQty.String(), ing.Unit),
	}
	if err := n.dispatcher.EnqueueEmail(ctx, payload); err != nil {
		log.Error().Err(err).Str("ingredient", ing.Name).Msg("failed to enqueue low stock alert")
	}
}
