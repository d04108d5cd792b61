package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
)

type WeekHandler struct {
	planner *services.PlannerService
	stats   *services.StatsService
	scoring *services.ScoringService
}

func NewWeekHandler(planner *services.PlannerService, stats *services.StatsService, scoring *services.ScoringService) *WeekHandler {
	return &WeekHandler{
		planner: planner,
		stats:   stats,
		scoring: scoring,
	}
}

func (h *WeekHandler) RegisterRoutes(router *gin.RouterGroup) {
	weeks := router.Group("/weeks")
	{
		weeks.GET("/current", h.Current)
		weeks.GET("/:week", h.Get)
		weeks.GET("/:week/navigate", h.Navigate)
		weeks.GET("/:week/summary", h.Summary)
		weeks.POST("/:week/recalculate", h.Recalculate)
		weeks.DELETE("/:week", h.Clear)
	}
	router.DELETE("/planner", h.ClearAll)
}

// Current godoc
// @Summary  Open the current ISO week
// @Tags     weeks
// @Produce  json
// @Success  200 {object} domain.WeekView
// @Router   /weeks/current [get]
func (h *WeekHandler) Current(c *gin.Context) {
	view, err := h.planner.OpenWeek(c.Request.Context(), h.planner.CurrentWeek())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Get godoc
// @Summary  Open a week, refreshing the derived ratings of its past days
// @Tags     weeks
// @Produce  json
// @Param    week path string true "ISO week, e.g. 2026-W42"
// @Success  200 {object} domain.WeekView
// @Failure  400 {object} errorResponse
// @Router   /weeks/{week} [get]
func (h *WeekHandler) Get(c *gin.Context) {
	week, ok := weekParam(c)
	if !ok {
		return
	}

	view, err := h.planner.OpenWeek(c.Request.Context(), week)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type navigateResponse struct {
	Week string `json:"week"`
}

func (h *WeekHandler) Navigate(c *gin.Context) {
	week, ok := weekParam(c)
	if !ok {
		return
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "offset must be an integer"})
			return
		}
		offset = n
	}

	target, err := h.planner.Navigate(week, offset)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, navigateResponse{Week: target.String()})
}

// Summary godoc
// @Summary  Weekly statistics for habits, slots and ratings
// @Tags     weeks
// @Produce  json
// @Param    week path string true "ISO week"
// @Success  200 {object} domain.WeeklySummary
// @Router   /weeks/{week}/summary [get]
func (h *WeekHandler) Summary(c *gin.Context) {
	week, ok := weekParam(c)
	if !ok {
		return
	}

	summary, err := h.stats.WeeklySummary(c.Request.Context(), week)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *WeekHandler) Recalculate(c *gin.Context) {
	week, ok := weekParam(c)
	if !ok {
		return
	}

	results, err := h.scoring.RecalculateAllPastDays(c.Request.Context(), week)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"week": week.String(), "days": results})
}

func (h *WeekHandler) Clear(c *gin.Context) {
	week, ok := weekParam(c)
	if !ok {
		return
	}

	if err := h.planner.ClearWeek(c.Request.Context(), week); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearAll godoc
// @Summary  Delete every slot, checkmark, rating and habit
// @Tags     planner
// @Success  204
// @Router   /planner [delete]
func (h *WeekHandler) ClearAll(c *gin.Context) {
	if err := h.planner.ClearAll(c.Request.Context()); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
