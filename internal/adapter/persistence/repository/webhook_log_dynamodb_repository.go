package repository

import (
	"context"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWebhookLogsTableName = "webhook_logs"
	webhookLogsPaymentIDIndex   = "payment_id-index"
)

type webhookLogItem struct {
	ID                string  `dynamodbav:"id"`
	Topic             string  `dynamodbav:"topic"`
	Action            string  `dynamodbav:"action,omitempty"`
	PaymentID         string  `dynamodbav:"payment_id,omitempty"`
	RequestID         string  `dynamodbav:"request_id,omitempty"`
	SignatureChecked  bool    `dynamodbav:"signature_checked"`
	RawBody           string  `dynamodbav:"raw_body,omitempty"`
	ProviderStatus    string  `dynamodbav:"provider_status,omitempty"`
	MappedStatus      string  `dynamodbav:"mapped_status,omitempty"`
	Amount            float64 `dynamodbav:"amount,omitempty"`
	Currency          string  `dynamodbav:"currency,omitempty"`
	PaymentMethod     string  `dynamodbav:"payment_method,omitempty"`
	PayerEmail        string  `dynamodbav:"payer_email,omitempty"`
	ExternalReference string  `dynamodbav:"external_reference,omitempty"`
	ReceivedAt        string  `dynamodbav:"received_at"`
}

// WebhookLogDynamoRepository persists WebhookLogRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_id-index (PK: payment_id)
type WebhookLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWebhookLogRepository = (*WebhookLogDynamoRepository)(nil)

func NewWebhookLogDynamoRepository(ddb *dynamodb.Client, tableName string) *WebhookLogDynamoRepository {
	if tableName == "" {
		tableName = defaultWebhookLogsTableName
	}
	return &WebhookLogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WebhookLogDynamoRepository) Create(ctx context.Context, rec entities.WebhookLogRecord) (entities.WebhookLogRecord, error) {
	it := toWebhookLogItem(rec)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WebhookLogRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.WebhookLogRecord{}, err
	}
	return rec, nil
}

func (r *WebhookLogDynamoRepository) ListByPaymentID(ctx context.Context, paymentID string) ([]entities.WebhookLogRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(webhookLogsPaymentIDIndex),
		KeyConditionExpression: aws.String("payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: paymentID},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.WebhookLogRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it webhookLogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		records = append(records, fromWebhookLogItem(it))
	}
	return records, nil
}

func toWebhookLogItem(rec entities.WebhookLogRecord) webhookLogItem {
	return webhookLogItem{
		ID:                rec.ID,
		Topic:             rec.Topic,
		Action:            rec.Action,
		PaymentID:         rec.PaymentID,
		RequestID:         rec.RequestID,
		SignatureChecked:  rec.SignatureChecked,
		RawBody:           rec.RawBody,
		ProviderStatus:    rec.ProviderStatus,
		MappedStatus:      string(rec.MappedStatus),
		Amount:            rec.Amount,
		Currency:          rec.Currency,
		PaymentMethod:     rec.PaymentMethod,
		PayerEmail:        rec.PayerEmail,
		ExternalReference: rec.ExternalReference,
		ReceivedAt:        rec.ReceivedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromWebhookLogItem(it webhookLogItem) entities.WebhookLogRecord {
	receivedAt, _ := time.Parse(time.RFC3339Nano, it.ReceivedAt)
	return entities.WebhookLogRecord{
		ID:                it.ID,
		Topic:             it.Topic,
		Action:            it.Action,
		PaymentID:         it.PaymentID,
		RequestID:         it.RequestID,
		SignatureChecked:  it.SignatureChecked,
		RawBody:           it.RawBody,
		ProviderStatus:    it.ProviderStatus,
		MappedStatus:      entities.OrderStatus(it.MappedStatus),
		Amount:            it.Amount,
		Currency:          it.Currency,
		PaymentMethod:     it.PaymentMethod,
		PayerEmail:        it.PayerEmail,
		ExternalReference: it.ExternalReference,
		ReceivedAt:        receivedAt,
	}
}
