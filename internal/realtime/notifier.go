package realtime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// StockEvent is the wire format published on the events channel.
type StockEvent struct {
	Type           string    `json:"type"` // "ingredient.updated" | "stock.low"
	IngredientID   string    `json:"ingredient_id"`
	IngredientName string    `json:"ingredient_name"`
	QuantityOnHand string    `json:"quantity_on_hand"`
	MinQty         string    `json:"min_qty"`
	At             time.Time `json:"at"`
}

// RedisNotifier publishes stock events to Redis pub/sub for the realtime hub.
// Publish failures are logged and swallowed; stock mutations never fail
// because the broker hiccuped.
type RedisNotifier struct {
	rdb *redis.Client
}

func NewRedisNotifier(rdb *redis.Client) *RedisNotifier {
	return &RedisNotifier{rdb: rdb}
}

func (n *RedisNotifier) IngredientUpdated(ctx context.Context, ing *model.Ingredient) {
	n.publish(ctx, "ingredient.updated", ing)
}

func (n *RedisNotifier) LowStock(ctx context.Context, ing *model.Ingredient) {
	n.publish(ctx, "stock.low", ing)
}

func (n *RedisNotifier) publish(ctx context.Context, eventType string, ing *model.Ingredient) {
	ev := StockEvent{
		Type:           eventType,
		IngredientID:   ing.ID.String(),
		IngredientName: ing.Name,
		QuantityOnHand: ing.QuantityOnHand.String(),
		MinQty:         ing.MinQty.String(),
		At:             time.Now().UTC(),
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Error().Err(err).Msg("stock event marshal failed")
		return
	}
	if err := n.rdb.Publish(ctx, Channel, payload).Err(); err != nil {
		log.Warn().Err(err).Str("type", eventType).Msg("stock event publish failed")
	}
}
