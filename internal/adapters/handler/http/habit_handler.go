package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
)

type HabitHandler struct {
	svc *services.HabitService
}

func NewHabitHandler(svc *services.HabitService) *HabitHandler {
	return &HabitHandler{
		svc: svc,
	}
}

type createHabitRequest struct {
	Name  string `json:"name" binding:"required"`
	Score *int   `json:"score"`
}

type updateHabitRequest struct {
	Name      *string `json:"name"`
	Score     *int    `json:"score"`
	SortOrder *int    `json:"sort_order"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.POST("", h.Create)
		habits.GET("", h.List)
		habits.GET("/:id", h.Get)
		habits.PUT("/:id", h.Update)
		habits.DELETE("/:id", h.Delete)
	}
	router.POST("/weeks/:week/habits/:id/checks/:day/toggle", h.ToggleCheck)
}

// Create godoc
// @Summary  Add a habit; past days of the current week are rescored
// @Tags     habits
// @Accept   json
// @Produce  json
// @Success  201 {object} domain.Habit
// @Failure  400 {object} errorResponse
// @Router   /habits [post]
func (h *HabitHandler) Create(c *gin.Context) {
	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	habit, err := h.svc.Create(c.Request.Context(), services.CreateHabitInput{
		Name:  req.Name,
		Score: req.Score,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, habit)
}

func (h *HabitHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *HabitHandler) Get(c *gin.Context) {
	habit, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, habit)
}

func (h *HabitHandler) Update(c *gin.Context) {
	var req updateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	habit, err := h.svc.Update(c.Request.Context(), services.UpdateHabitInput{
		ID:        c.Param("id"),
		Name:      req.Name,
		Score:     req.Score,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, habit)
}

func (h *HabitHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleCheck godoc
// @Summary  Flip a habit checkmark and rescore the day
// @Tags     habits
// @Produce  json
// @Param    week path string true "ISO week"
// @Param    id   path string true "habit id"
// @Param    day  path string true "Mon..Sun"
// @Success  200 {object} services.CheckResult
// @Failure  404 {object} errorResponse
// @Router   /weeks/{week}/habits/{id}/checks/{day}/toggle [post]
func (h *HabitHandler) ToggleCheck(c *gin.Context) {
	week, ok := weekParam(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}

	res, err := h.svc.ToggleCheckmark(c.Request.Context(), week, c.Param("id"), day)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
