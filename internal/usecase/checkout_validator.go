package usecase

import (
	"fmt"
	"loja_xpto/internal/domain/entities"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationResult accumulates every defect found in a checkout payload.
// Validation never returns an error and never panics: malformed shapes are
// reported as messages like everything else.
type ValidationResult struct {
	Valid  bool     `json:"is_valid"`
	Errors []string `json:"errors,omitempty"`
}

func (r *ValidationResult) add(msg string) {
	r.Valid = false
	r.Errors = append(r.Errors, msg)
}

// ValidateCheckoutPayload checks the shape and constraints of an untyped
// checkout payload. Errors are accumulated across all items, not
// short-circuited.
func ValidateCheckoutPayload(payload map[string]any) ValidationResult {
	res := ValidationResult{Valid: true}

	customer, ok := payload["customer_info"].(map[string]any)
	if !ok || len(customer) == 0 {
		res.add("customer_info is required")
	} else {
		email, _ := customer["email"].(string)
		if !emailPattern.MatchString(strings.TrimSpace(email)) {
			res.add("customer_info.email must be a valid email address")
		}
		name, _ := customer["name"].(string)
		if trimmedLen(name) < 2 {
			res.add("customer_info.name must have at least 2 characters")
		}
	}

	items, ok := payload["items"].([]any)
	if !ok || len(items) == 0 {
		res.add("items must be a non-empty array")
		return res
	}

	for i, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			res.add(fmt.Sprintf("items[%d] must be an object", i))
			continue
		}
		validateItem(&res, i, item)
	}

	return res
}

func validateItem(res *ValidationResult, i int, item map[string]any) {
	title, ok := item["title"].(string)
	if !ok || trimmedLen(title) < 3 {
		res.add(fmt.Sprintf("items[%d].title must be a string with at least 3 characters", i))
	}

	if qty, ok := asInteger(item["quantity"]); !ok || qty <= 0 {
		res.add(fmt.Sprintf("items[%d].quantity must be a positive integer", i))
	}

	// unit_price must be an integer number of currency units; fractional
	// values are rejected, matching the original contract.
	if price, ok := asInteger(item["unit_price"]); !ok || price <= 0 {
		res.add(fmt.Sprintf("items[%d].unit_price must be a positive integer", i))
	}

	if raw, present := item["description"]; present {
		desc, ok := raw.(string)
		if !ok || (strings.TrimSpace(desc) != "" && trimmedLen(desc) < 5) {
			res.add(fmt.Sprintf("items[%d].description must be empty or have at least 5 characters", i))
		}
	}

	if raw, present := item["id"]; present {
		id, ok := raw.(string)
		if !ok || strings.TrimSpace(id) == "" {
			res.add(fmt.Sprintf("items[%d].id must be a non-empty string", i))
		}
	}
}

// trimmedLen counts characters, not bytes; accented titles and names are the
// norm in pt-BR catalogs.
func trimmedLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// asInteger accepts the numeric representations a decoded JSON payload may
// carry and reports whether the value is integer-valued.
func asInteger(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if math.Trunc(n) != n || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, false
		}
		// Conversion of out-of-range floats to int64 is implementation
		// defined; reject them before converting.
		if n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

// DecodeCheckoutRequest converts an already-validated payload into the typed
// request consumed by the preference builder.
func DecodeCheckoutRequest(payload map[string]any) entities.CheckoutRequest {
	req := entities.CheckoutRequest{}

	if customer, ok := payload["customer_info"].(map[string]any); ok {
		email, _ := customer["email"].(string)
		name, _ := customer["name"].(string)
		req.CustomerInfo = entities.CustomerInfo{
			Email: strings.TrimSpace(email),
			Name:  strings.TrimSpace(name),
		}
	}

	items, _ := payload["items"].([]any)
	for _, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		title, _ := item["title"].(string)
		desc, _ := item["description"].(string)
		id, _ := item["id"].(string)
		qty, _ := asInteger(item["quantity"])
		price, _ := asInteger(item["unit_price"])
		req.Items = append(req.Items, entities.CheckoutItem{
			ID:          strings.TrimSpace(id),
			Title:       strings.TrimSpace(title),
			Description: strings.TrimSpace(desc),
			Quantity:    qty,
			UnitPrice:   price,
		})
	}

	return req
}
