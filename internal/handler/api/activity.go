package api

import (
	"context"
	"net/http"
	"strconv"

	"opsboard/internal/analytics"
	resdto "opsboard/internal/handler/dto/response"
	"opsboard/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ActivityReader serves the recent-activity feed. A disabled feed returns
// an empty slice, not an error.
type ActivityReader interface {
	Recent(ctx context.Context, n int64) ([]analytics.Event, error)
}

type ActivityHandler struct {
	feed ActivityReader
}

func NewActivityHandler(feed ActivityReader) *ActivityHandler {
	return &ActivityHandler{feed: feed}
}

// @Summary Recent pipeline activity
// @Description Newest-first feed of batch and webhook events
// @Tags activity
// @Produce json
// @Param limit query int false "Max entries" default(50)
// @Success 200 {array} resdto.ActivityEventResponse
// @Router /activity [get]
func (h *ActivityHandler) List(c *gin.Context) {
	limit := int64(50)
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 && v <= 200 {
			limit = v
		}
	}

	events, err := h.feed.Recent(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	out := make([]*resdto.ActivityEventResponse, len(events))
	for i, ev := range events {
		out[i] = resdto.FromActivityEvent(ev)
	}
	c.JSON(http.StatusOK, out)
}
