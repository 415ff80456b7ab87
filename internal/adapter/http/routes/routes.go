package routes

import (
	"log"
	_ "pedido_venda/docs"
	"pedido_venda/internal/adapter/http/handlers"
	"pedido_venda/internal/adapter/persistence/repository"
	"pedido_venda/internal/config"
	"pedido_venda/internal/infrastructure/assets"
	"pedido_venda/internal/infrastructure/pdf"
	"pedido_venda/internal/infrastructure/spreadsheet"
	"pedido_venda/internal/infrastructure/submission"
	"pedido_venda/internal/layout"
	"pedido_venda/internal/usecase"
	"pedido_venda/internal/usecase/interfaces"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg := config.Load()
	router := NewRouter(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the gin engine with every dependency wired from cfg.
func NewRouter(cfg config.Config) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, cfg)
	return router
}

func getRoutes(router *gin.Engine, cfg config.Config) {
	orderRepo := repository.NewOrderMemoryRepository(cfg.SessionTTL)

	engine := layout.NewEngine(layout.Options{
		Variant: cfg.Variant,
		Company: cfg.Company,
		Logo:    assets.LoadLogo(cfg.LogoPath),
	})
	log.Printf("[routes] layout variant=%s", engine.Variant())

	var gateway interfaces.ISubmissionGateway
	httpGateway, err := submission.NewHTTPGateway(cfg.SubmissionURL, cfg.SubmissionTimeout, cfg.SubmissionMock)
	if err != nil {
		log.Printf("Submission gateway not configured: %v", err)
	} else {
		gateway = httpGateway
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	documentUseCase := usecase.NewDocumentUseCase(
		orderRepo,
		engine,
		pdf.NewWriter(),
		spreadsheet.NewWriter(),
		gateway,
		cfg.SubmissionRecipient,
	)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler, documentHandler)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
