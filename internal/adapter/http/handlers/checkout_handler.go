package handlers

import (
	"errors"
	"log"
	"net/http"

	response "loja_xpto/internal/adapter/http/dto/response"
	"loja_xpto/internal/usecase"
	"loja_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles HTTP requests for the checkout flow.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreateCheckout validates the raw payload, creates the payment preference
// and returns the persisted order with its redirect URL.
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[checkout][handler] invalid json err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Request body is not valid JSON", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[checkout][handler] create start")
	result, details, err := h.usecase.ProcessCheckout(c.Request.Context(), payload)
	if err != nil {
		log.Printf("[checkout][handler] create failed err=%v details=%d", err, len(details))
		appErr := mapCheckoutError(err, details)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] create success order_id=%s preference_id=%s", result.Order.ID, result.Order.PreferenceID)

	c.JSON(http.StatusCreated, response.FromCheckoutResult(result))
}

// GetOrderByID returns a stored order by its id.
func (h *CheckoutHandler) GetOrderByID(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[checkout][handler] get-order start order_id=%s", id)

	order, err := h.usecase.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[checkout][handler] get-order failed order_id=%s err=%v", id, err)
		appErr := mapCheckoutError(err, nil)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// GetOrderByPreferenceID returns the order linked to a payment preference.
func (h *CheckoutHandler) GetOrderByPreferenceID(c *gin.Context) {
	preferenceID := c.Param("preference_id")
	log.Printf("[checkout][handler] get-order-by-preference start preference_id=%s", preferenceID)

	order, err := h.usecase.GetOrderByPreferenceID(c.Request.Context(), preferenceID)
	if err != nil {
		log.Printf("[checkout][handler] get-order-by-preference failed preference_id=%s err=%v", preferenceID, err)
		appErr := mapCheckoutError(err, nil)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapCheckoutError(err error, details []string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCheckoutPayload):
		return pkg.NewValidationError("VALIDATION_FAILED", "Checkout payload failed validation", details)
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPreferenceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPreferenceIncomplete):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INCOMPLETE_PREFERENCE", "Payment provider returned an incomplete preference", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
