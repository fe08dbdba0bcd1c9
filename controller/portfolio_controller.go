package controller

import (
	"net/http"

	"github.com/omapatel2503/UptradeX-Trading-Platform/model"
	"github.com/omapatel2503/UptradeX-Trading-Platform/service"

	"github.com/gin-gonic/gin"
)

type PortfolioController struct {
	portfolioService service.PortfolioService
}

func NewPortfolioController(ps service.PortfolioService) *PortfolioController {
	return &PortfolioController{
		portfolioService: ps,
	}
}

// RegisterRoutes keeps the legacy root-level paths the dashboard frontend
// already calls.
func (ctrl *PortfolioController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/allHoldings", ctrl.getAllHoldings)
	router.GET("/allPositions", ctrl.getAllPositions)
	router.GET("/allOrders", ctrl.getAllOrders)
	router.POST("/newOrder", ctrl.newOrder)
}

func (ctrl *PortfolioController) getAllHoldings(c *gin.Context) {
	holdings, err := ctrl.portfolioService.AllHoldings(c.Request.Context())
	if err != nil {
		ctrl.handleStoreError(c, "Failed to fetch holdings", err)
		return
	}
	c.JSON(http.StatusOK, holdings)
}

func (ctrl *PortfolioController) getAllPositions(c *gin.Context) {
	positions, err := ctrl.portfolioService.AllPositions(c.Request.Context())
	if err != nil {
		ctrl.handleStoreError(c, "Failed to fetch positions", err)
		return
	}
	c.JSON(http.StatusOK, positions)
}

func (ctrl *PortfolioController) getAllOrders(c *gin.Context) {
	orders, err := ctrl.portfolioService.AllOrders(c.Request.Context())
	if err != nil {
		ctrl.handleStoreError(c, "Failed to fetch orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (ctrl *PortfolioController) newOrder(c *gin.Context) {
	var req model.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid order payload",
			"error":   err.Error(),
		})
		return
	}

	order, err := ctrl.portfolioService.NewOrder(c.Request.Context(), req)
	if err != nil {
		ctrl.handleStoreError(c, "Failed to save order", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order saved",
		"order":   order,
	})
}

func (ctrl *PortfolioController) handleStoreError(c *gin.Context, message string, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"message": message,
		"error":   err.Error(),
	})
}
