package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pocketledger/pocketledger/internal/core/ports/services"
	"github.com/pocketledger/pocketledger/internal/dto"
)

type exchangeRateHandler struct {
	rateService portssvc.ExchangeRateSvcFacade
}

func registerExchangeRateRoutes(rg *gin.RouterGroup, rateService portssvc.ExchangeRateSvcFacade) {
	h := &exchangeRateHandler{rateService: rateService}

	rates := rg.Group("/exchange-rates")
	{
		rates.POST("", h.createRate)
		rates.GET("", h.listRates)
		rates.GET("/:from/:to", h.getRate)
	}
}

func (h *exchangeRateHandler) createRate(c *gin.Context) {
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	rate, err := h.rateService.CreateExchangeRate(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Failed to save exchange rate")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}

func (h *exchangeRateHandler) getRate(c *gin.Context) {
	rate, err := h.rateService.GetRate(c.Request.Context(), c.Param("from"), c.Param("to"))
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

func (h *exchangeRateHandler) listRates(c *gin.Context) {
	rates, err := h.rateService.ListExchangeRates(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to list exchange rates")
		return
	}
	c.JSON(http.StatusOK, gin.H{"exchangeRates": dto.ToExchangeRateResponses(rates)})
}
