//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"opsboard/internal/handler/api"
	resdto "opsboard/internal/handler/dto/response"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/usecase/queries"
	"opsboard/tests/common/httptest"
	commandsmock "opsboard/tests/mock/commands"
	queriesmock "opsboard/tests/mock/queries"
)

type TicketsHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTicketCommands
	mockQueries  *queriesmock.MockTicketQueries
}

func (s *TicketsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTicketCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTicketQueries(s.mockCtrl)
	handler := api.NewTicketsHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/scheduled-tickets", handler.Create)
	s.router.GET("/scheduled-tickets", handler.List)
	s.router.GET("/scheduled-tickets/:id", handler.Get)
	s.router.PATCH("/scheduled-tickets/:id", handler.Update)
	s.router.DELETE("/scheduled-tickets/:id", handler.Delete)
}

func (s *TicketsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTicketsHandlerSuite(t *testing.T) {
	suite.Run(t, new(TicketsHandlerTestSuite))
}

func (s *TicketsHandlerTestSuite) ticketView() *queries.ScheduledTicketView {
	next := time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)
	return &queries.ScheduledTicketView{
		ID:             uuid.New(),
		OwnerID:        uuid.New(),
		Name:           "daily-checklist",
		IsActive:       true,
		CronExpression: "0 8 * * *",
		NextExecution:  &next,
		Title:          "Daily checklist",
		Content:        "Run the morning checklist",
		Urgency:        3,
		Impact:         3,
		Priority:       3,
		EntityID:       1,
	}
}

func (s *TicketsHandlerTestSuite) createBody() map[string]any {
	return map[string]any{
		"owner_id":        uuid.New().String(),
		"name":            "daily-checklist",
		"cron_expression": "0 8 * * *",
		"title":           "Daily checklist",
		"content":         "Run the morning checklist",
		"urgency":         3,
		"impact":          3,
		"priority":        3,
		"entity_id":       1,
	}
}

func (s *TicketsHandlerTestSuite) TestCreate() {
	url := "/scheduled-tickets"

	s.Run("success: returns 201 Created with the stored view", func() {
		view := s.ticketView()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createBody(), "")

		var response resdto.ScheduledTicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("daily-checklist", response.Name)
		s.NotNil(response.NextExecution)
	})

	s.Run("error: 400 Bad Request on missing required fields", func() {
		body := s.createBody()
		delete(body, "cron_expression")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 Bad Request on urgency out of range", func() {
		body := s.createBody()
		body["urgency"] = 9
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 Bad Request on invalid cron expression", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("bad expression"), errs.ErrInvalidCronExpr)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cron expression")
	})

	s.Run("error: 422 Unprocessable Entity on domain validation failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("name must not be blank"), errs.ErrDomainValidation)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createBody(), "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}

func (s *TicketsHandlerTestSuite) TestList() {
	s.Run("success: returns 200 OK with all views", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), int32(50), int32(0)).
			Return([]*queries.ScheduledTicketView{s.ticketView(), s.ticketView()}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/scheduled-tickets", nil, "")

		var response []*resdto.ScheduledTicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: pagination query parameters are forwarded", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), int32(10), int32(20)).
			Return(nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/scheduled-tickets?limit=10&offset=20", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *TicketsHandlerTestSuite) TestGet() {
	s.Run("success: returns 200 OK", func() {
		view := s.ticketView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/scheduled-tickets/"+view.ID.String(), nil, "")

		var response resdto.ScheduledTicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/scheduled-tickets/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})

	s.Run("error: 404 Not Found for unknown id", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errs.ErrScheduledJobNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/scheduled-tickets/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Scheduled job not found")
	})
}

func (s *TicketsHandlerTestSuite) TestUpdate() {
	s.Run("success: returns 200 OK with the updated view", func() {
		view := s.ticketView()
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any()).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/scheduled-tickets/"+view.ID.String(), map[string]any{"name": "renamed"}, "")

		var response resdto.ScheduledTicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	})

	s.Run("error: 404 Not Found for unknown id", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(nil, errs.ErrScheduledJobNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/scheduled-tickets/"+id.String(), map[string]any{"name": "renamed"}, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *TicketsHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204 No Content", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			"/scheduled-tickets/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown id", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(errs.ErrScheduledJobNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			"/scheduled-tickets/"+id.String(), nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
