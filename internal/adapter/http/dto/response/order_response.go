package response

import (
	"time"

	"loja_xpto/internal/domain/entities"
)

type OrderResponse struct {
	ID           string              `json:"id"`
	Customer     CustomerResponse    `json:"customer"`
	Items        []OrderItemResponse `json:"items"`
	TotalAmount  int64               `json:"total_amount"`
	TotalItems   int64               `json:"total_items"`
	PreferenceID string              `json:"preference_id"`
	PaymentURL   string              `json:"payment_url,omitempty"`
	Status       string              `json:"status"`
	CreatedAt    string              `json:"created_at"`
	ExpiresAt    string              `json:"expires_at"`
}

type CustomerResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type OrderItemResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Total     int64  `json:"total"`
}

func FromOrder(order entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, OrderItemResponse{
			ID:        it.ID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
		})
	}
	return OrderResponse{
		ID:           order.ID,
		Customer:     CustomerResponse{Email: order.Customer.Email, Name: order.Customer.Name},
		Items:        items,
		TotalAmount:  order.TotalAmount,
		TotalItems:   order.TotalItems,
		PreferenceID: order.PreferenceID,
		PaymentURL:   order.PaymentURL,
		Status:       string(order.Status),
		CreatedAt:    order.CreatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt:    order.ExpiresAt.UTC().Format(time.RFC3339Nano),
	}
}
