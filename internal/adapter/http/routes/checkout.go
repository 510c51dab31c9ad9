package routes

import (
	"loja_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathOrders   = "/orders"
	PathWebhooks = "/webhooks"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, webhookHandler *handlers.WebhookHandler) {
	rg.POST(PathCheckout, checkoutHandler.CreateCheckout)

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:id", checkoutHandler.GetOrderByID)
		orders.GET("/preference/:preference_id", checkoutHandler.GetOrderByPreferenceID)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/mercadopago", webhookHandler.HandleMercadoPagoWebhook)
		webhooks.GET("/logs/:payment_id", webhookHandler.ListWebhookLogs)
	}
}
