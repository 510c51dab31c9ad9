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
	defaultOrdersTableName  = "orders"
	ordersPreferenceIDIndex = "preference_id-index"
)

type orderLineItem struct {
	ID        string `dynamodbav:"id"`
	Title     string `dynamodbav:"title"`
	Quantity  int64  `dynamodbav:"quantity"`
	UnitPrice int64  `dynamodbav:"unit_price"`
	Total     int64  `dynamodbav:"total"`
}

type orderItem struct {
	ID            string          `dynamodbav:"id"`
	CustomerEmail string          `dynamodbav:"customer_email"`
	CustomerName  string          `dynamodbav:"customer_name"`
	Items         []orderLineItem `dynamodbav:"items"`
	TotalAmount   int64           `dynamodbav:"total_amount"`
	TotalItems    int64           `dynamodbav:"total_items"`
	PreferenceID  string          `dynamodbav:"preference_id"`
	PaymentURL    string          `dynamodbav:"payment_url,omitempty"`
	Status        string          `dynamodbav:"status"`
	CreatedAt     string          `dynamodbav:"created_at"`
	ExpiresAt     string          `dynamodbav:"expires_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB. Its Save method
// doubles as the builder's OrderSaveFunc.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: preference_id-index (PK: preference_id)
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *OrderDynamoRepository {
	if tableName == "" {
		tableName = defaultOrdersTableName
	}
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) Save(ctx context.Context, order entities.Order) error {
	it := toOrderItem(order)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	// Orders are write-once; a duplicate id means a programming error
	// upstream, not a legitimate overwrite.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByPreferenceID(ctx context.Context, preferenceID string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersPreferenceIDIndex),
		KeyConditionExpression: aws.String("preference_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: preferenceID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	items := make([]orderLineItem, 0, len(o.Items))
	for _, li := range o.Items {
		items = append(items, orderLineItem{
			ID:        li.ID,
			Title:     li.Title,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			Total:     li.Total,
		})
	}
	return orderItem{
		ID:            o.ID,
		CustomerEmail: o.Customer.Email,
		CustomerName:  o.Customer.Name,
		Items:         items,
		TotalAmount:   o.TotalAmount,
		TotalItems:    o.TotalItems,
		PreferenceID:  o.PreferenceID,
		PaymentURL:    o.PaymentURL,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt:     o.ExpiresAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	items := make([]entities.OrderItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.OrderItem{
			ID:        li.ID,
			Title:     li.Title,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			Total:     li.Total,
		})
	}
	return entities.Order{
		ID:           it.ID,
		Customer:     entities.CustomerInfo{Email: it.CustomerEmail, Name: it.CustomerName},
		Items:        items,
		TotalAmount:  it.TotalAmount,
		TotalItems:   it.TotalItems,
		PreferenceID: it.PreferenceID,
		PaymentURL:   it.PaymentURL,
		Status:       entities.OrderStatus(it.Status),
		CreatedAt:    createdAt,
		ExpiresAt:    expiresAt,
	}
}
