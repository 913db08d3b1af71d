package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pocketledger/pocketledger/internal/core/ports/services"
	"github.com/pocketledger/pocketledger/internal/dto"
)

type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/cashflow", h.cashflow)
		reports.GET("/business-expenses", h.businessExpenses)
	}
}

func (h *reportingHandler) cashflow(c *gin.Context) {
	var params dto.ReportRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	report, err := h.reportingService.Cashflow(c.Request.Context(), params.From, params.To)
	if err != nil {
		handleServiceError(c, err, "Failed to build cashflow report")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) businessExpenses(c *gin.Context) {
	var params dto.ReportRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	report, err := h.reportingService.BusinessExpenses(c.Request.Context(), params.From, params.To)
	if err != nil {
		handleServiceError(c, err, "Failed to build business expense report")
		return
	}
	c.JSON(http.StatusOK, report)
}
