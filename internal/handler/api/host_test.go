//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"slotbooker/internal/handler/api"
	reqdto "slotbooker/internal/handler/dto/request"
	resdto "slotbooker/internal/handler/dto/response"
	"slotbooker/internal/usecase/commands"
	"slotbooker/internal/usecase/queries"
	"slotbooker/tests/common/httptest"
	"slotbooker/tests/common/testutil"
	commandsmock "slotbooker/tests/mock/commands"
	queriesmock "slotbooker/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HostHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockHostQueries
	mockCommands *commandsmock.MockScheduleCommands
	handler      *api.HostHandler
}

func (s *HostHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockHostQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockScheduleCommands(s.mockCtrl)
	s.handler = api.NewHostHandler(s.mockQueries, s.mockCommands)

	s.router.GET("/hosts", s.handler.List)
	s.router.GET("/hosts/:id", s.handler.Get)
	s.router.GET("/hosts/:id/working-hours", s.handler.GetWorkingHours)
	s.router.PUT("/hosts/:id/working-hours", s.handler.ReplaceWorkingHours)
}

func (s *HostHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHostHandlerSuite(t *testing.T) {
	suite.Run(t, new(HostHandlerTestSuite))
}

func hostView() *queries.HostView {
	return &queries.HostView{
		ID:       uuid.New(),
		Name:     "Alex Rivera",
		Slug:     "alex-rivera",
		Email:    "alex@example.com",
		Timezone: "America/New_York",
	}
}

func (s *HostHandlerTestSuite) TestList() {
	s.Run("success: returns all hosts", func() {
		hosts := []*queries.HostView{hostView(), hostView()}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(hosts, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hosts", nil, nil)

		var body []resdto.HostResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(hosts[0].ID, body[0].ID)
	})

	s.Run("error: 500 on read failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, queries.ErrReadFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hosts", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *HostHandlerTestSuite) TestGet() {
	s.Run("success: returns host by ID", func() {
		host := hostView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), host.ID).Return(host, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hosts/"+host.ID.String(), nil, nil)

		var body resdto.HostResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(host.Slug, body.Slug)
		s.Equal(host.Timezone, body.Timezone)
	})

	s.Run("error: 404 Not Found for unknown host", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrHostNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hosts/"+id.String(), nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Host not found")
	})

	s.Run("error: 400 Bad Request for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hosts/garbage", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid host ID")
	})
}

func (s *HostHandlerTestSuite) TestGetWorkingHours() {
	s.Run("success: returns weekly rules", func() {
		id := uuid.New()
		rules := []queries.WorkingHoursView{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", Timezone: "America/New_York"},
			{DayOfWeek: 2, StartTime: "10:00", EndTime: "16:00", Timezone: "America/New_York"},
		}
		s.mockQueries.EXPECT().WorkingHours(gomock.Any(), id).Return(rules, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hosts/"+id.String()+"/working-hours", nil, nil)

		var body []resdto.WorkingHoursResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(1, body[0].DayOfWeek)
		s.Equal("09:00", body[0].StartTime)
	})

	s.Run("error: 404 Not Found for unknown host", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().WorkingHours(gomock.Any(), id).Return(nil, queries.ErrHostNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hosts/"+id.String()+"/working-hours", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Host not found")
	})
}

func (s *HostHandlerTestSuite) TestReplaceWorkingHours() {
	id := uuid.New()
	url := "/hosts/" + id.String() + "/working-hours"

	reqBody := reqdto.ReplaceWorkingHoursRequest{
		Rules: []reqdto.WorkingHoursRule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", Timezone: "America/New_York"},
		},
	}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().
			ReplaceWorkingHours(gomock.Any(), id, gomock.Len(1)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request when rules are missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("rules", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found for unknown host", func() {
		s.mockCommands.EXPECT().
			ReplaceWorkingHours(gomock.Any(), id, gomock.Any()).
			Return(commands.ErrHostNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Host not found")
	})

	s.Run("error: 422 Unprocessable Entity for invalid rules", func() {
		s.mockCommands.EXPECT().
			ReplaceWorkingHours(gomock.Any(), id, gomock.Any()).
			Return(commands.ErrInvalidWorkingHours).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "validation failed")
	})
}
