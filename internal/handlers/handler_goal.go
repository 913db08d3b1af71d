package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pocketledger/pocketledger/internal/core/ports/services"
	"github.com/pocketledger/pocketledger/internal/dto"
)

type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := &goalHandler{goalService: goalService}

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.GET("/:id", h.getGoal)
		goals.PUT("/:id", h.updateGoal)
		goals.DELETE("/:id", h.deleteGoal)
		goals.POST("/:id/contribute", h.contribute)
		goals.POST("/:id/complete", h.markComplete)
	}
}

func (h *goalHandler) createGoal(c *gin.Context) {
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Failed to create goal")
		return
	}
	c.JSON(http.StatusCreated, dto.ToGoalResponse(goal, time.Now().UTC()))
}

func (h *goalHandler) getGoal(c *gin.Context) {
	goal, err := h.goalService.GetGoalByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve goal")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(goal, time.Now().UTC()))
}

func (h *goalHandler) listGoals(c *gin.Context) {
	goals, err := h.goalService.ListGoals(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to list goals")
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": dto.ToGoalResponses(goals, time.Now().UTC())})
}

func (h *goalHandler) updateGoal(c *gin.Context) {
	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleServiceError(c, err, "Failed to update goal")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(goal, time.Now().UTC()))
}

func (h *goalHandler) deleteGoal(c *gin.Context) {
	if err := h.goalService.DeleteGoal(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, "Failed to delete goal")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *goalHandler) contribute(c *gin.Context) {
	var req dto.ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	goal, err := h.goalService.AddContribution(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleServiceError(c, err, "Failed to record contribution")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(goal, time.Now().UTC()))
}

func (h *goalHandler) markComplete(c *gin.Context) {
	goal, err := h.goalService.MarkComplete(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to mark goal complete")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(goal, time.Now().UTC()))
}
