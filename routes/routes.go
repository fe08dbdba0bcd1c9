package routes

import (
	"github.com/omapatel2503/UptradeX-Trading-Platform/client"
	"github.com/omapatel2503/UptradeX-Trading-Platform/config"
	"github.com/omapatel2503/UptradeX-Trading-Platform/controller"
	"github.com/omapatel2503/UptradeX-Trading-Platform/middleware"
	"github.com/omapatel2503/UptradeX-Trading-Platform/repository"
	"github.com/omapatel2503/UptradeX-Trading-Platform/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRouter(db *mongo.Database, cfg *config.SystemConfigs) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RecoveryMiddleware(cfg))
	r.Use(middleware.ZerologMiddleware())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.RateLimiter(cfg))

	// --- 1. Clients ---
	yahooClient := client.NewYahooClient(cfg.QuoteTimeout)

	// --- 2. Repositories ---
	holdingRepo := repository.NewHoldingRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// --- 3. Services (Dependency Injection) ---
	quoteSvc := service.NewQuoteService(yahooClient, service.DefaultFallbackPolicy(), cfg.QuotePace)
	portfolioSvc := service.NewPortfolioService(holdingRepo, positionRepo, orderRepo)

	// --- 4. Routes & Controllers ---
	root := r.Group("/")
	{
		controller.NewHealthController().RegisterRoutes(root)
		controller.NewPortfolioController(portfolioSvc).RegisterRoutes(root)
	}

	api := r.Group("/api")
	{
		controller.NewQuoteController(quoteSvc).RegisterRoutes(api)
	}

	return r
}
