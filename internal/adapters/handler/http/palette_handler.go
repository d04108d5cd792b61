package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

type paletteResponse struct {
	Text  string        `json:"text"`
	Color *domain.Color `json:"color"`
}

// PaletteHandler returns the colour a slot with the given text is drawn with.
func PaletteHandler(c *gin.Context) {
	text := c.Query("text")
	resp := paletteResponse{Text: text}
	if color, ok := domain.ColorForText(text); ok {
		resp.Color = &color
	}
	c.JSON(http.StatusOK, resp)
}
