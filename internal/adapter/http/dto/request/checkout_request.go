package request

// CheckoutRequest documents the checkout payload for API consumers. The
// handler deliberately binds the raw body into an untyped map instead of
// this struct, so validation can accumulate every shape defect rather than
// fail at the first bad field.
type CheckoutRequest struct {
	CustomerInfo CustomerInfoRequest   `json:"customer_info" binding:"required"`
	Items        []CheckoutItemRequest `json:"items" binding:"required"`
}

type CustomerInfoRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

type CheckoutItemRequest struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
	Quantity    int64  `json:"quantity" binding:"required"`
	UnitPrice   int64  `json:"unit_price" binding:"required"`
}
