package background

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/refpilot/affiliate-service/internal/domain"
	publisher "github.com/refpilot/affiliate-service/internal/infrastructure/kafka"
	"github.com/refpilot/affiliate-service/internal/usecase"
	conversiondto "github.com/refpilot/affiliate-service/internal/usecase/dto/conversion"
)

type BackgroundTasks struct {
	IntegrityUsecase  usecase.IntegrityUsecase
	ConversionUsecase usecase.ConversionUsecase
	Subscriber        domain.SubscriberPort
	SweepInterval     time.Duration
}

func NewBackgroundTasks(
	integrityUC usecase.IntegrityUsecase,
	conversionUC usecase.ConversionUsecase,
	subscriber domain.SubscriberPort,
	sweepInterval time.Duration,
) *BackgroundTasks {
	return &BackgroundTasks{
		IntegrityUsecase:  integrityUC,
		ConversionUsecase: conversionUC,
		Subscriber:        subscriber,
		SweepInterval:     sweepInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startIntegritySweep(ctx)
	if bt.Subscriber != nil {
		go bt.startSaleSyncConsumer(ctx)
	}
}

func (bt *BackgroundTasks) startIntegritySweep(ctx context.Context) {
	ticker := time.NewTicker(bt.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report, err := bt.IntegrityUsecase.Sweep()
			if err != nil {
				slog.Error("integrity sweep failed", "error", err.Error())
				continue
			}
			if !report.Clean() {
				slog.Warn("integrity sweep found anomalies",
					"cycles", len(report.CycleAffiliateIDs),
					"danglingParents", len(report.DanglingParentIDs),
					"danglingConversions", len(report.DanglingConversionIDs))
			}
		}
	}
}

// startSaleSyncConsumer drains the storefront sale feed into the
// conversion log. Bad messages are logged and skipped, never retried:
// the webhook bridge re-emits on its side when the storefront retries.
func (bt *BackgroundTasks) startSaleSyncConsumer(ctx context.Context) {
	messages, err := bt.Subscriber.Subscribe(ctx, publisher.TopicSaleSync, "affiliate-service")
	if err != nil {
		slog.Error("failed to subscribe to sale feed", "error", err.Error())
		return
	}

	for message := range messages {
		var sale publisher.SaleSyncMessage
		if err := json.Unmarshal(message.Value, &sale); err != nil {
			slog.Error("malformed sale message", "error", err.Error())
			continue
		}

		input := conversiondto.LogSaleInput{
			AffiliateID: sale.AffiliateID,
			Amount:      sale.Amount,
		}
		if sale.CreatedAt != "" {
			createdAt, err := time.Parse(time.RFC3339, sale.CreatedAt)
			if err != nil {
				slog.Error("malformed sale timestamp", "createdAt", sale.CreatedAt)
				continue
			}
			input.CreatedAt = createdAt
		}

		if _, err := bt.ConversionUsecase.LogSale(&input, "sale-sync"); err != nil {
			slog.Error("failed to log synced sale",
				"affiliateID", sale.AffiliateID,
				"error", err.Error())
		}
	}
}
