package contracts

import (
	"context"

	"family-health-service/internal/app/models"
)

type SyncEventPublisher interface {
	PublishSyncEvent(ctx context.Context, event models.SyncEvent) error
}
