package controller

import (
	"errors"
	"net/http"

	"github.com/omapatel2503/UptradeX-Trading-Platform/customerrors"
	"github.com/omapatel2503/UptradeX-Trading-Platform/model"
	"github.com/omapatel2503/UptradeX-Trading-Platform/service"

	"github.com/gin-gonic/gin"
)

type QuoteController struct {
	quoteService service.QuoteService
}

func NewQuoteController(qs service.QuoteService) *QuoteController {
	return &QuoteController{
		quoteService: qs,
	}
}

func (ctrl *QuoteController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/indices", ctrl.getIndices)
	router.POST("/watchlist", ctrl.getWatchlist)
	router.GET("/stock/:symbol", ctrl.getStock)
}

// getIndices never reports a provider failure: a degraded quote is always
// preferable to a failed dashboard render.
func (ctrl *QuoteController) getIndices(c *gin.Context) {
	indices := ctrl.quoteService.Indices(c.Request.Context())
	c.JSON(http.StatusOK, indices)
}

func (ctrl *QuoteController) getWatchlist(c *gin.Context) {
	var req model.WatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	quotes, err := ctrl.quoteService.Watchlist(c.Request.Context(), req.Symbols)
	if err != nil {
		var validationErr *customerrors.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid watchlist request",
				"error":   validationErr.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch watchlist",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, quotes)
}

func (ctrl *QuoteController) getStock(c *gin.Context) {
	symbol := c.Param("symbol")
	quote := ctrl.quoteService.Stock(c.Request.Context(), symbol)
	c.JSON(http.StatusOK, quote)
}
