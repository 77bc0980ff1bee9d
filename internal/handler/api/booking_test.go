//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"slotbooker/internal/handler/api"
	resdto "slotbooker/internal/handler/dto/response"
	"slotbooker/internal/infra"
	"slotbooker/internal/pkg/errs"
	"slotbooker/internal/usecase/commands"
	"slotbooker/internal/usecase/queries"
	"slotbooker/tests/common/builder"
	"slotbooker/tests/common/httptest"
	"slotbooker/tests/common/testutil"
	commandsmock "slotbooker/tests/mock/commands"
	queriesmock "slotbooker/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.POST("/bookings/:id/cancel", s.handler.Cancel)
	s.router.GET("/hosts/:id/bookings", s.handler.ListByHost)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func bookingView(hostID uuid.UUID) *queries.BookingView {
	start := time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)
	return &queries.BookingView{
		ID:              uuid.New(),
		HostID:          hostID,
		HostName:        "Alex Rivera",
		HostEmail:       "alex@example.com",
		AttendeeName:    "Jordan Lee",
		AttendeeEmail:   "jordan@example.com",
		MeetingType:     "video",
		StartTime:       start,
		EndTime:         start.Add(30 * time.Minute),
		DisplayTimezone: "America/New_York",
		Status:          "confirmed",
		CreatedAt:       start.Add(-time.Hour),
		UpdatedAt:       start.Add(-time.Hour),
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	hostID := uuid.New()
	reqBody := builder.NewBookingRequest(hostID).Build()
	returnView := bookingView(hostID)

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(&commands.CreateBookingResult{Booking: returnView}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal("confirmed", body.Status)
	})

	s.Run("success: returns 200 OK when idempotency key replays prior result", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ commands.CreateBookingParams, k *uuid.UUID) (*commands.CreateBookingResult, error) {
				s.Require().NotNil(k)
				s.Equal(key, *k)
				return &commands.CreateBookingResult{Booking: returnView, Replayed: true}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": key.String()})

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
	})

	s.Run("error: 400 Bad Request for malformed idempotency key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": "not-a-uuid"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: host_id", mutate: testutil.Field("host_id", nil)},
			{name: "missing field: start_time", mutate: testutil.Field("start_time", nil)},
			{name: "missing field: attendee_name", mutate: testutil.Field("attendee_name", nil)},
			{name: "missing field: attendee_email", mutate: testutil.Field("attendee_email", nil)},
			{name: "missing field: timezone", mutate: testutil.Field("timezone", nil)},
			{name: "malformed host_id", mutate: testutil.Field("host_id", "nope")},
			{name: "malformed start_time", mutate: testutil.Field("start_time", "June 2nd")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, nil)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "host not found",
				commandsError:  commands.ErrHostNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Host not found",
			},
			{
				name:           "slot taken",
				commandsError:  commands.ErrSlotTaken,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "no longer available",
			},
			{
				// A commit-time serialization abort arrives with the
				// sentinel marked onto the store error, not bare.
				name: "slot taken via marked serialization abort",
				commandsError: errs.Mark(
					infra.NewRepositoryError(infra.KindSerialization, "booking", nil),
					commands.ErrSlotTaken,
				),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "no longer available",
			},
			{
				name:           "idempotency key reused with different payload",
				commandsError:  commands.ErrDuplicateRequest,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "different request",
			},
			{
				name:           "request still in progress",
				commandsError:  commands.ErrRequestInProgress,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "being processed",
			},
			{
				name:           "domain validation failed",
				commandsError:  commands.ErrInvalidBooking,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "validation failed",
			},
			{
				name:           "store timeout",
				commandsError:  commands.ErrStoreTimeout,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "retry",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 409 includes machine-readable SLOT_TAKEN code", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrSlotTaken).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		s.Equal(http.StatusConflict, rec.Code)
		var body map[string]string
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("SLOT_TAKEN", body["code"])
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	returnView := bookingView(uuid.New())

	s.Run("success: returns 200 OK with booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+returnView.ID.String(), nil, nil)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.AttendeeEmail, body.AttendeeEmail)
	})

	s.Run("error: 400 Bad Request for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/garbage", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	s.Run("success: returns 204 No Content", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", nil, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 409 Conflict when already cancelled", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id).
			Return(commands.ErrAlreadyCancelled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already cancelled")
	})
}

// ================================================================================
// TestListByHost
// ================================================================================

func (s *BookingHandlerTestSuite) TestListByHost() {
	s.Run("success: returns bookings ordered by start time", func() {
		hostID := uuid.New()
		start := time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)
		items := []*queries.BookingListItem{
			{ID: uuid.New(), AttendeeName: "Jordan Lee", AttendeeEmail: "jordan@example.com", StartTime: start, EndTime: start.Add(30 * time.Minute), Status: "confirmed"},
			{ID: uuid.New(), AttendeeName: "Sam Park", AttendeeEmail: "sam@example.com", StartTime: start.Add(time.Hour), EndTime: start.Add(90 * time.Minute), Status: "confirmed"},
		}
		s.mockQueries.EXPECT().ListByHost(gomock.Any(), hostID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hosts/"+hostID.String()+"/bookings", nil, nil)

		var body []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(items[0].ID, body[0].ID)
		s.Equal(items[1].ID, body[1].ID)
	})

	s.Run("error: 400 Bad Request for malformed host ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hosts/garbage/bookings", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid host ID")
	})
}
