package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
)

type SlotHandler struct {
	svc *services.SlotService
}

func NewSlotHandler(svc *services.SlotService) *SlotHandler {
	return &SlotHandler{svc: svc}
}

type setContentRequest struct {
	Content *string `json:"content" binding:"required"`
}

func (h *SlotHandler) RegisterRoutes(router *gin.RouterGroup) {
	slots := router.Group("/weeks/:week/slots/:day/:block")
	{
		slots.GET("", h.Get)
		slots.PUT("", h.SetContent)
		slots.POST("/toggle", h.Toggle)
	}
}

func (h *SlotHandler) Get(c *gin.Context) {
	week, ok := weekParam(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}

	view, err := h.svc.Get(c.Request.Context(), week, day, c.Param("block"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SetContent godoc
// @Summary  Store the text of one slot
// @Tags     slots
// @Accept   json
// @Produce  json
// @Param    week  path string true "ISO week"
// @Param    day   path string true "Mon..Sun"
// @Param    block path string true "block start, e.g. 09:00"
// @Success  200 {object} domain.SlotView
// @Failure  400 {object} errorResponse
// @Router   /weeks/{week}/slots/{day}/{block} [put]
func (h *SlotHandler) SetContent(c *gin.Context) {
	week, ok := weekParam(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}

	var req setContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.svc.SetContent(c.Request.Context(), services.SetContentInput{
		Week:    week,
		Day:     day,
		Block:   c.Param("block"),
		Content: *req.Content,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Toggle godoc
// @Summary  Flip the completion mark of a slot and rescore its day
// @Tags     slots
// @Produce  json
// @Param    week  path string true "ISO week"
// @Param    day   path string true "Mon..Sun"
// @Param    block path string true "block start"
// @Success  200 {object} services.ToggleResult
// @Router   /weeks/{week}/slots/{day}/{block}/toggle [post]
func (h *SlotHandler) Toggle(c *gin.Context) {
	week, ok := weekParam(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}

	res, err := h.svc.ToggleCompletion(c.Request.Context(), week, day, c.Param("block"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
