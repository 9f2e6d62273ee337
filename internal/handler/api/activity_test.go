//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"opsboard/internal/analytics"
	"opsboard/internal/handler/api"
	resdto "opsboard/internal/handler/dto/response"
	"opsboard/internal/pkg/errs"
	"opsboard/tests/common/httptest"
)

type stubActivityReader struct {
	events []analytics.Event
	err    error
	gotN   int64
}

func (s *stubActivityReader) Recent(_ context.Context, n int64) ([]analytics.Event, error) {
	s.gotN = n
	if s.err != nil {
		return nil, s.err
	}
	return s.events, nil
}

func activityRouter(reader *stubActivityReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/activity", api.NewActivityHandler(reader).List)
	return router
}

func TestActivityList(t *testing.T) {
	t.Run("returns feed entries newest first", func(t *testing.T) {
		reader := &stubActivityReader{events: []analytics.Event{
			{Kind: "batch_completed", Pipeline: "scheduled_tickets", Timestamp: time.Now()},
			{Kind: "webhook_received", Trigger: "problem_created", Timestamp: time.Now()},
		}}
		rec := httptest.PerformRequest(t, activityRouter(reader), http.MethodGet, "/activity", nil, "")

		var response []*resdto.ActivityEventResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
		assert.Len(t, response, 2)
		assert.Equal(t, "batch_completed", response[0].Kind)
		assert.Equal(t, int64(50), reader.gotN)
	})

	t.Run("limit query parameter is forwarded", func(t *testing.T) {
		reader := &stubActivityReader{}
		rec := httptest.PerformRequest(t, activityRouter(reader), http.MethodGet, "/activity?limit=5", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(5), reader.gotN)
	})

	t.Run("out of range limit falls back to the default", func(t *testing.T) {
		reader := &stubActivityReader{}
		rec := httptest.PerformRequest(t, activityRouter(reader), http.MethodGet, "/activity?limit=9999", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(50), reader.gotN)
	})

	t.Run("feed failure returns 500", func(t *testing.T) {
		reader := &stubActivityReader{err: errs.New("redis unavailable")}
		rec := httptest.PerformRequest(t, activityRouter(reader), http.MethodGet, "/activity", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
