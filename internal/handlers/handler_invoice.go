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

type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := &invoiceHandler{invoiceService: invoiceService}

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/stats", h.getStats)
		invoices.GET("/:id", h.getInvoice)
		invoices.PUT("/:id", h.updateInvoice)
		invoices.PUT("/:id/status", h.updateStatus)
		invoices.POST("/:id/pay", h.markAsPaid)
		invoices.DELETE("/:id", h.deleteInvoice)
	}
}

func (h *invoiceHandler) createInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Failed to create invoice")
		return
	}

	middleware.GetLoggerFromContext(c).Info("Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice, time.Now().UTC()))
}

func (h *invoiceHandler) getInvoice(c *gin.Context) {
	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, time.Now().UTC()))
}

func (h *invoiceHandler) listInvoices(c *gin.Context) {
	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), c.Query("clientID"))
	if err != nil {
		handleServiceError(c, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": dto.ToInvoiceResponses(invoices, time.Now().UTC())})
}

func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleServiceError(c, err, "Failed to update invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, time.Now().UTC()))
}

func (h *invoiceHandler) updateStatus(c *gin.Context) {
	var req dto.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	invoice, err := h.invoiceService.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleServiceError(c, err, "Failed to update invoice status")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, time.Now().UTC()))
}

func (h *invoiceHandler) markAsPaid(c *gin.Context) {
	var req dto.MarkInvoicePaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	txn, err := h.invoiceService.MarkAsPaid(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleServiceError(c, err, "Failed to record invoice payment")
		return
	}

	middleware.GetLoggerFromContext(c).Info("Invoice payment recorded",
		slog.String("invoice_id", c.Param("id")),
		slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, "Failed to delete invoice")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *invoiceHandler) getStats(c *gin.Context) {
	stats, err := h.invoiceService.GetStats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to compute invoice stats")
		return
	}
	c.JSON(http.StatusOK, dto.InvoiceStatsResponse{
		TotalCount:       stats.TotalCount,
		DraftCount:       stats.DraftCount,
		SentCount:        stats.SentCount,
		PaidCount:        stats.PaidCount,
		OverdueCount:     stats.OverdueCount,
		TotalOutstanding: stats.TotalOutstanding,
		TotalPaid:        stats.TotalPaid,
	})
}
