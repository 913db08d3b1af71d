package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pocketledger/pocketledger/internal/core/ports/services"
	"github.com/pocketledger/pocketledger/internal/dto"
	"github.com/pocketledger/pocketledger/internal/middleware"
)

type recurringHandler struct {
	recurringService portssvc.RecurringSvcFacade
}

func registerRecurringRoutes(rg *gin.RouterGroup, recurringService portssvc.RecurringSvcFacade) {
	h := &recurringHandler{recurringService: recurringService}

	recurring := rg.Group("/recurring")
	{
		recurring.POST("", h.createRecurring)
		recurring.GET("", h.listRecurring)
		recurring.GET("/projection", h.monthlyProjection)
		recurring.GET("/:id", h.getRecurring)
		recurring.PUT("/:id", h.updateRecurring)
		recurring.DELETE("/:id", h.deleteRecurring)
		recurring.POST("/:id/process", h.processRecurring)
		recurring.POST("/:id/skip", h.skipRecurring)
	}
}

func (h *recurringHandler) createRecurring(c *gin.Context) {
	var req dto.CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	template, err := h.recurringService.CreateRecurring(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Failed to create recurring template")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRecurringResponse(template, time.Now().UTC()))
}

func (h *recurringHandler) getRecurring(c *gin.Context) {
	template, err := h.recurringService.GetRecurringByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve recurring template")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecurringResponse(template, time.Now().UTC()))
}

func (h *recurringHandler) listRecurring(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	templates, err := h.recurringService.ListRecurring(c.Request.Context(), activeOnly)
	if err != nil {
		handleServiceError(c, err, "Failed to list recurring templates")
		return
	}
	c.JSON(http.StatusOK, gin.H{"recurring": dto.ToRecurringResponses(templates, time.Now().UTC())})
}

func (h *recurringHandler) updateRecurring(c *gin.Context) {
	var req dto.UpdateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	template, err := h.recurringService.UpdateRecurring(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleServiceError(c, err, "Failed to update recurring template")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecurringResponse(template, time.Now().UTC()))
}

func (h *recurringHandler) deleteRecurring(c *gin.Context) {
	if err := h.recurringService.DeleteRecurring(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, "Failed to delete recurring template")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *recurringHandler) processRecurring(c *gin.Context) {
	txn, err := h.recurringService.Process(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to process recurring template")
		return
	}

	middleware.GetLoggerFromContext(c).Info("Recurring template processed",
		slog.String("recurring_id", c.Param("id")),
		slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

func (h *recurringHandler) skipRecurring(c *gin.Context) {
	nextDue, err := h.recurringService.Skip(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to skip recurring occurrence")
		return
	}
	c.JSON(http.StatusOK, dto.SkipRecurringResponse{RecurringID: c.Param("id"), NextDueDate: nextDue})
}

func (h *recurringHandler) monthlyProjection(c *gin.Context) {
	projection, err := h.recurringService.MonthlyProjection(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to compute monthly projection")
		return
	}
	c.JSON(http.StatusOK, dto.RecurringProjectionResponse{
		MonthlyIncome:  projection.MonthlyIncome,
		MonthlyExpense: projection.MonthlyExpense,
		MonthlyNet:     projection.MonthlyNet,
	})
}
