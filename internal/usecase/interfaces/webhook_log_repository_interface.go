package interfaces

import (
	"context"
	"loja_xpto/internal/domain/entities"
)

// IWebhookLogRepository abstracts DynamoDB persistence for WebhookLogRecord.
// Records are written best-effort for observability/audit; processing never
// fails because a log write failed.
type IWebhookLogRepository interface {
	Create(ctx context.Context, rec entities.WebhookLogRecord) (entities.WebhookLogRecord, error)
	ListByPaymentID(ctx context.Context, paymentID string) ([]entities.WebhookLogRecord, error)
}
