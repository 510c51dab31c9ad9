package routes

import (
	"log"

	_ "loja_xpto/docs" // This will be auto-generated
	"loja_xpto/internal/adapter/http/handlers"
	repository2 "loja_xpto/internal/adapter/persistence/repository"
	"loja_xpto/internal/infrastructure/config"
	"loja_xpto/internal/infrastructure/database"
	"loja_xpto/internal/infrastructure/payments"
	"loja_xpto/internal/usecase"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb, cfg.OrdersTable)
	webhookLogRepo := repository2.NewWebhookLogDynamoRepository(ddb, cfg.WebhookLogsTable)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.AccessToken, cfg.RequestTimeout, cfg.GatewayMock)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	settings := usecase.BuilderSettings{
		CurrencyID:       cfg.CurrencyID,
		NotificationURL:  cfg.NotificationURL,
		SuccessURL:       cfg.SuccessURL,
		PendingURL:       cfg.PendingURL,
		FailureURL:       cfg.FailureURL,
		ExpirationWindow: cfg.PreferenceExpirationWindow(),
	}

	// The order repository's Save doubles as the builder persistence callback.
	checkoutUseCase := usecase.NewCheckoutUseCase(settings, paymentGateway, orderRepo.Save, orderRepo)
	webhookUseCase := usecase.NewWebhookUseCase(cfg.WebhookSecret, cfg.ValidateWebhookSignature, paymentGateway, webhookLogRepo)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, checkoutHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
