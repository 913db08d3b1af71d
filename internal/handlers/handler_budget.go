package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pocketledger/pocketledger/internal/core/ports/services"
	"github.com/pocketledger/pocketledger/internal/dto"
)

type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := &budgetHandler{budgetService: budgetService}

	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.createBudget)
		budgets.GET("", h.listBudgets)
		budgets.GET("/progress", h.listProgress)
		budgets.GET("/:id", h.getBudget)
		budgets.GET("/:id/progress", h.getProgress)
		budgets.PUT("/:id", h.updateBudget)
		budgets.DELETE("/:id", h.deleteBudget)
	}
}

func (h *budgetHandler) createBudget(c *gin.Context) {
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Failed to create budget")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBudgetResponse(budget))
}

func (h *budgetHandler) getBudget(c *gin.Context) {
	budget, err := h.budgetService.GetBudgetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

func (h *budgetHandler) listBudgets(c *gin.Context) {
	budgets, err := h.budgetService.ListBudgets(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to list budgets")
		return
	}

	responses := make([]dto.BudgetResponse, len(budgets))
	for i := range budgets {
		responses[i] = dto.ToBudgetResponse(&budgets[i])
	}
	c.JSON(http.StatusOK, gin.H{"budgets": responses})
}

func (h *budgetHandler) getProgress(c *gin.Context) {
	progress, err := h.budgetService.GetProgress(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to compute budget progress")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetProgressResponse(progress))
}

func (h *budgetHandler) listProgress(c *gin.Context) {
	progress, err := h.budgetService.ListProgress(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to compute budget progress")
		return
	}

	responses := make([]dto.BudgetProgressResponse, len(progress))
	for i := range progress {
		responses[i] = dto.ToBudgetProgressResponse(&progress[i])
	}
	c.JSON(http.StatusOK, gin.H{"progress": responses})
}

func (h *budgetHandler) updateBudget(c *gin.Context) {
	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	budget, err := h.budgetService.UpdateBudget(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleServiceError(c, err, "Failed to update budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

func (h *budgetHandler) deleteBudget(c *gin.Context) {
	if err := h.budgetService.DeleteBudget(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, "Failed to delete budget")
		return
	}
	c.Status(http.StatusNoContent)
}
