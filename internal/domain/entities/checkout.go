package entities

// CustomerInfo identifies the buyer on a checkout request.
type CustomerInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CheckoutItem is one purchasable line of a checkout request.
//
// Monetary representation:
//   - UnitPrice is expressed in whole currency units. Fractional prices are
//     rejected at validation time, so totals stay integral end to end.
type CheckoutItem struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
}

// CheckoutRequest is a validated checkout payload. Handlers accept the raw
// untyped payload and only build this type after validation passes.
type CheckoutRequest struct {
	CustomerInfo CustomerInfo   `json:"customer_info"`
	Items        []CheckoutItem `json:"items"`
}
