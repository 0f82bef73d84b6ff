// internal/workers/expiry_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/pantryhq/pantry-be/internal/core/ports"
)

// TypeExpiryScan is the task type for the periodic expiry scan
const TypeExpiryScan = "food:expiry_scan"

// expiryWarnWindow is how far ahead the scan looks for items about to
// expire.
const expiryWarnWindow = 3 * 24 * time.Hour

// NewExpiryScanTask creates a new expiry scan task
func NewExpiryScanTask() *asynq.Task {
	return asynq.NewTask(TypeExpiryScan, nil)
}

// ExpiryProcessor scans stored food items and reports expired and
// soon-to-expire records.
type ExpiryProcessor struct {
	repo   ports.FoodRepository
	logger *slog.Logger
}

// NewExpiryProcessor creates a new expiry processor
func NewExpiryProcessor(repo ports.FoodRepository, logger *slog.Logger) *ExpiryProcessor {
	return &ExpiryProcessor{
		repo:   repo,
		logger: logger.With(slog.String("processor", "expiry")),
	}
}

// ProcessExpiryScan walks the full store and logs every expired item and
// every item expiring within the warning window. Expiry dates are free
// text; records without a parseable YYYY-MM-DD date are skipped.
func (p *ExpiryProcessor) ProcessExpiryScan(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "starting expiry scan")

	items, err := p.repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load food items for expiry scan: %w", err)
	}

	now := time.Now()
	var expired, expiring, skipped int

	for _, item := range items {
		if item.ExpiryDate == "" {
			continue
		}

		expiry, err := time.Parse("2006-01-02", item.ExpiryDate)
		if err != nil {
			skipped++
			p.logger.DebugContext(ctx, "skipping unparseable expiry date",
				slog.String("id", item.ID.String()),
				slog.String("expiry_date", item.ExpiryDate))
			continue
		}

		switch {
		case expiry.Before(now):
			expired++
			p.logger.WarnContext(ctx, "food item expired",
				slog.String("id", item.ID.String()),
				slog.String("name", item.Name),
				slog.String("brand", item.Brand),
				slog.String("expiry_date", item.ExpiryDate))
		case expiry.Sub(now) <= expiryWarnWindow:
			expiring++
			p.logger.InfoContext(ctx, "food item expiring soon",
				slog.String("id", item.ID.String()),
				slog.String("name", item.Name),
				slog.String("brand", item.Brand),
				slog.String("expiry_date", item.ExpiryDate))
		}
	}

	p.logger.InfoContext(ctx, "expiry scan completed",
		slog.Int("scanned", len(items)),
		slog.Int("expired", expired),
		slog.Int("expiring_soon", expiring),
		slog.Int("skipped", skipped))

	return nil
}
