//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"opsboard/internal/domain/webhook"
	"opsboard/internal/handler/api"
	resdto "opsboard/internal/handler/dto/response"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/usecase"
	"opsboard/tests/common/httptest"
	usecasemock "opsboard/tests/mock/usecase"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockFanout *usecasemock.MockWebhookFanout
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockFanout = usecasemock.NewMockWebhookFanout(s.mockCtrl)
	handler := api.NewWebhookHandler(s.mockFanout)

	s.router.POST("/webhooks/zabbix", handler.ReceiveZabbix)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestReceiveZabbix() {
	url := "/webhooks/zabbix"

	s.Run("success: returns 200 OK with fanout summary", func() {
		body := []byte(`{"subject":"Disk full","host":"srv-01","status":"1"}`)
		s.mockFanout.EXPECT().Handle(gomock.Any(), body).
			Return(&usecase.FanoutResult{
				Success:           true,
				Message:           "Processados 1 webhooks",
				TriggerType:       webhook.TriggerProblemCreated,
				ProcessedWebhooks: 1,
				Results: []webhook.SubscriptionResult{
					{SubscriptionID: uuid.New(), Name: "noc-alerts", Actions: []webhook.ActionResult{
						{Action: "create_ticket", Success: true, Detail: "ticket 321"},
					}},
				},
			}, nil).Times(1)
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body)

		var response resdto.WebhookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal(1, response.ProcessedWebhooks)
		s.Equal("Processados 1 webhooks", response.Message)
		s.Len(response.Results, 1)
	})

	s.Run("success: empty body is accepted", func() {
		s.mockFanout.EXPECT().Handle(gomock.Any(), gomock.Any()).
			Return(&usecase.FanoutResult{
				Success: true,
				Message: "Processados 0 webhooks",
			}, nil).Times(1)
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request on malformed payload", func() {
		body := []byte("not json")
		s.mockFanout.EXPECT().Handle(gomock.Any(), body).
			Return(nil, errs.Mark(errs.New("invalid character"), usecase.ErrMalformedPayload)).Times(1)
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid webhook payload")
	})

	s.Run("error: 500 on subscription lookup failure", func() {
		s.mockFanout.EXPECT().Handle(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("connection refused")).Times(1)
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, []byte(`{}`))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
