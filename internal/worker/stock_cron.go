package worker

// stock_cron.go
// Background goroutine that periodically sweeps the inventory for ingredients
// below their minimum and emails a single digest, catching anything the
// per-mutation alerts missed (manual DB edits, missed events).

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/repository"

	"github.com/rs/zerolog/log"
)

const stockSweepInterval = 6 * time.Hour

// StockCronConfig holds the dependencies for the sweep goroutine.
type StockCronConfig struct {
	Ingredients repository.IngredientRepository
	Dispatcher  *Dispatcher
	ToEmail     string
}

// StartStockCron launches a goroutine that ticks every sweep interval and
// enqueues a digest email when any ingredient sits below its minimum.
// It respects the context for graceful shutdown.
func StartStockCron(ctx context.Context, cfg StockCronConfig) {
	go func() {
		ticker := time.NewTicker(stockSweepInterval)
		defer ticker.Stop()

		log.Info().Msg("stock_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("stock_cron: shutting down")
				return
			case <-ticker.C:
				sweep(ctx, cfg)
			}
		}
	}()
}

func sweep(ctx context.Context, cfg StockCronConfig) {
	if cfg.ToEmail == "" {
		return
	}

	low, err := cfg.Ingredients.ListBelowMin(ctx)
	if err != nil {
		log.Error().Err(err).Msg("stock_cron: failed to query low stock")
		return
	}
	if len(low) == 0 {
		return
	}

	var b strings.Builder
	b.WriteString("Ingredients below minimum stock:\n\n")
	for _, ing := range low {
		fmt.Fprintf(&b, "  %s: %s %s (min %s)\n",
			ing.Name, ing.QuantityOnHand.String(), ing.Unit, ing.MinQty.String())
	}

	payload := EmailJobPayload{
		ToEmail: cfg.ToEmail,
		Subject: fmt.Sprintf("Stock digest: %d ingredients below minimum", len(low)),
		Body:    b.String(),
	}
	if err := cfg.Dispatcher.EnqueueEmail(ctx, payload); err != nil {
		log.Error().Err(err).Msg("stock_cron: failed to enqueue digest")
		return
	}
	log.Info().Int("count", len(low)).Msg("stock_cron: digest enqueued")
}
