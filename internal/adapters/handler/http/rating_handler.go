package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
)

type RatingHandler struct {
	svc *services.RatingService
}

func NewRatingHandler(svc *services.RatingService) *RatingHandler {
	return &RatingHandler{svc: svc}
}

// The value is kept as the raw text the user typed; parsing happens in the domain.
type setRatingRequest struct {
	Value string `json:"value"`
}

type ratingResponse struct {
	Week  string `json:"week"`
	Day   string `json:"day"`
	Value *int   `json:"value"`
}

func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup) {
	ratings := router.Group("/weeks/:week/ratings/:day")
	{
		ratings.GET("", h.Get)
		ratings.PUT("", h.Set)
		ratings.DELETE("", h.Clear)
	}
}

func (h *RatingHandler) Get(c *gin.Context) {
	week, ok := weekParam(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}

	r, err := h.svc.Get(c.Request.Context(), week, day)
	if err != nil {
		handleError(c, err)
		return
	}

	resp := ratingResponse{Week: week.String(), Day: day.Key()}
	if r != nil {
		resp.Value = &r.Value
	}
	c.JSON(http.StatusOK, resp)
}

// Set godoc
// @Summary  Store a manual rating; an empty value clears it
// @Tags     ratings
// @Accept   json
// @Produce  json
// @Param    week path string true "ISO week"
// @Param    day  path string true "Mon..Sun"
// @Success  200 {object} ratingResponse
// @Failure  422 {object} errorResponse
// @Router   /weeks/{week}/ratings/{day} [put]
func (h *RatingHandler) Set(c *gin.Context) {
	week, ok := weekParam(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}

	var req setRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	r, err := h.svc.SetManual(c.Request.Context(), week, day, req.Value)
	if err != nil {
		handleError(c, err)
		return
	}

	resp := ratingResponse{Week: week.String(), Day: day.Key()}
	if r != nil {
		resp.Value = &r.Value
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RatingHandler) Clear(c *gin.Context) {
	week, ok := weekParam(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}

	if err := h.svc.Clear(c.Request.Context(), week, day); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
