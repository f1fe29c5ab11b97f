//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"spot-booking/internal/domain/booking"
	"spot-booking/internal/handler/api"
	resdto "spot-booking/internal/handler/dto/response"
	"spot-booking/internal/handler/validation"
	"spot-booking/internal/pkg/metrics"
	"spot-booking/internal/usecase/commands"
	"spot-booking/internal/usecase/queries"
	"spot-booking/tests/common/builder"
	"spot-booking/tests/common/httptest"
	"spot-booking/tests/common/testutil"
	commandsmock "spot-booking/tests/mock/commands"
	queriesmock "spot-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	registry     *prometheus.Registry
	actor        uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.registry = prometheus.NewRegistry()
	s.actor = uuid.New()
	h := api.NewBookingHandler(s.mockCommands, s.mockQueries, metrics.New(s.registry))

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Authentication required"}})
			return
		}
		c.Set("user_id", s.actor)
		c.Next()
	}

	s.router.POST("/spots/:spotId/bookings", authMiddleware, h.Create)
	s.router.GET("/spots/:spotId/bookings", authMiddleware, h.ListForSpot)
	s.router.GET("/bookings/current", authMiddleware, h.ListForUser)
	s.router.PUT("/bookings/:id", authMiddleware, h.Edit)
	s.router.DELETE("/bookings/:id", authMiddleware, h.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	spotID := uuid.New()
	url := "/spots/" + spotID.String() + "/bookings"
	b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.SpotID = spotID
		b.UserID = s.actor
	})
	reqBody := b.BuildCreateRequestDTO()
	created := b.BuildDomain(s.T())

	s.Run("success: returns 201 with the flat booking record", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, spotID, commands.CreateBookingRequest{
			StartDate: b.Start,
			EndDate:   b.End,
		}).Return(created, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID(), body.ID)
		s.Equal(spotID, body.SpotID)
		s.Equal(s.actor, body.UserID)
		s.Equal(resdto.Date("2030-11-19"), body.StartDate)
		s.Equal(resdto.Date("2030-11-20"), body.EndDate)
		s.Equal(1.0, s.counter("create", "ok"))
	})

	invalid := []testCaseBooking{
		{name: "missing field: startDate", mutate: testutil.Field("startDate", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: endDate", mutate: testutil.Field("endDate", nil), expectCode: http.StatusBadRequest},
		{name: "malformed date", mutate: testutil.Field("startDate", "19/11/2030"), expectCode: http.StatusBadRequest},
		{name: "impossible calendar day", mutate: testutil.Field("endDate", "2030-02-30"), expectCode: http.StatusBadRequest},
		{name: "wrong type", mutate: testutil.Field("endDate", 20301120), expectCode: http.StatusBadRequest},
	}

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range invalid {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "BAD_REQUEST", "Bad Request")
			})
		}
	})

	s.Run("error: field errors use json names", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("startDate", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")

		body := httptest.DecodeError(s.T(), rec)
		s.Equal("startDate is required", body.Fields["startDate"])
	})

	s.Run("error: malformed spot id is not found", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/spots/not-a-uuid/bookings", reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "NOT_FOUND", "Spot couldn't be found")
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	kinds := []struct {
		name       string
		err        error
		expectCode int
		expectKind string
		expectMsg  string
	}{
		{"spot not found", booking.NewNotFoundError("Spot couldn't be found"), http.StatusNotFound, "NOT_FOUND", "Spot couldn't be found"},
		{"owner booking", booking.NewForbiddenError("Owners cannot book their own spot"), http.StatusForbidden, "FORBIDDEN", "Owners cannot book their own spot"},
		{"conflict", booking.NewConflictError(), http.StatusForbidden, "CONFLICT", "Sorry, this spot is already booked for the specified dates"},
		{"storage failure hides details", booking.NewStorageError(errors.New("pq: connection refused"), "booking ledger failure"), http.StatusInternalServerError, "STORAGE_ERROR", "Internal server error"},
		{"unclassified error", errors.New("boom"), http.StatusInternalServerError, "STORAGE_ERROR", "Internal server error"},
	}
	for _, tc := range kinds {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, spotID, gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectKind, tc.expectMsg)
		})
	}

	s.Run("error: past dates name the offending fields", func() {
		dates, rangeErr := builder.ParseDateRange("2020-01-01", "2020-01-02")
		s.Require().NoError(rangeErr)
		err := booking.EnsureNotPast(dates, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, spotID, gomock.Any()).Return(nil, err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		body := httptest.DecodeError(s.T(), rec)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("PAST_DATE", body.Kind)
		s.Equal("startDate cannot be in the past", body.Fields["startDate"])
		s.Equal("endDate cannot be in the past", body.Fields["endDate"])
	})

	s.Run("error: conflict body names both fields", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, spotID, gomock.Any()).Return(nil, booking.NewConflictError())

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		body := httptest.DecodeError(s.T(), rec)
		s.Contains(body.Fields, "startDate")
		s.Contains(body.Fields, "endDate")
		s.Equal(2.0, s.counter("create", "CONFLICT"))
	})
}

// ================================================================================
// TestListForSpot
// ================================================================================

func (s *BookingHandlerTestSuite) TestListForSpot() {
	spotID := uuid.New()
	url := "/spots/" + spotID.String() + "/bookings"
	view := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.SpotID = spotID }).BuildView()

	s.Run("success: owner view carries renter and timestamps", func() {
		s.mockQueries.EXPECT().ListForSpot(gomock.Any(), s.actor, spotID).
			Return([]queries.SpotBookingView{queries.OwnerBookingView{BookingView: *view}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body struct {
			Bookings []map[string]any `json:"Bookings"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Bookings, 1)
		s.Equal(view.ID.String(), body.Bookings[0]["id"])
		s.Equal(view.UserID.String(), body.Bookings[0]["userId"])
		s.Contains(body.Bookings[0], "createdAt")
		s.Contains(body.Bookings[0], "updatedAt")
	})

	s.Run("success: public view hides identity", func() {
		s.mockQueries.EXPECT().ListForSpot(gomock.Any(), s.actor, spotID).
			Return([]queries.SpotBookingView{queries.PublicBookingView{SpotID: spotID, StartDate: view.StartDate, EndDate: view.EndDate}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body struct {
			Bookings []map[string]any `json:"Bookings"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Bookings, 1)
		entry := body.Bookings[0]
		s.Equal(map[string]any{
			"spotId":    spotID.String(),
			"startDate": "2030-11-19",
			"endDate":   "2030-11-20",
		}, entry)
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().ListForSpot(gomock.Any(), s.actor, spotID).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"Bookings":[]}`, rec.Body.String())
	})

	s.Run("error: unknown spot", func() {
		s.mockQueries.EXPECT().ListForSpot(gomock.Any(), s.actor, spotID).
			Return(nil, booking.NewNotFoundError("Spot couldn't be found"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "NOT_FOUND", "Spot couldn't be found")
	})
}

// ================================================================================
// TestListForUser
// ================================================================================

func (s *BookingHandlerTestSuite) TestListForUser() {
	view := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.UserID = s.actor }).BuildView()
	preview := "https://img.example.com/1.png"

	s.Run("success: bookings embed their spot", func() {
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), s.actor).Return([]*queries.UserBookingView{{
			BookingView: *view,
			Spot: queries.SpotSummary{
				ID:           view.SpotID,
				Name:         "App Academy",
				City:         "San Francisco",
				Price:        123,
				PreviewImage: &preview,
			},
		}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/current", nil, "bearer-token")

		var body resdto.BookingListResponse[resdto.UserBookingResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Bookings, 1)
		got := body.Bookings[0]
		s.Equal(view.ID, got.ID)
		s.Equal("App Academy", got.Spot.Name)
		s.Equal(123.0, got.Spot.Price)
		s.Require().NotNil(got.Spot.PreviewImage)
		s.Equal(preview, *got.Spot.PreviewImage)
	})

	s.Run("error: storage failure", func() {
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), s.actor).
			Return(nil, booking.NewStorageError(errors.New("timeout"), "booking ledger failure"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/current", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "STORAGE_ERROR", "Internal server error")
	})
}

// ================================================================================
// TestEdit
// ================================================================================

func (s *BookingHandlerTestSuite) TestEdit() {
	b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.UserID = s.actor })
	existing := b.BuildDomain(s.T())
	url := "/bookings/" + existing.ID().String()

	s.Run("success: partial body leaves the other date unset", func() {
		s.mockCommands.EXPECT().Edit(gomock.Any(), s.actor, existing.ID(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, req commands.EditBookingRequest) (*booking.Booking, error) {
				s.Require().NotNil(req.EndDate)
				s.Nil(req.StartDate)
				s.Equal("2030-11-23", req.EndDate.Format(booking.DateLayout))
				return existing, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"endDate": "2030-11-23"}, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(existing.ID(), body.ID)
	})

	s.Run("error: malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"startDate": "tomorrow"}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "BAD_REQUEST", "Bad Request")
	})

	kinds := []struct {
		name       string
		err        error
		expectCode int
		expectKind string
	}{
		{"not found", booking.NewNotFoundError("Booking couldn't be found"), http.StatusNotFound, "NOT_FOUND"},
		{"not the renter", booking.NewForbiddenError("Forbidden"), http.StatusForbidden, "FORBIDDEN"},
		{"past booking", booking.NewAlreadyStartedError("Past bookings can't be modified"), http.StatusForbidden, "ALREADY_STARTED"},
		{"conflict", booking.NewConflictError(), http.StatusForbidden, "CONFLICT"},
	}
	for _, tc := range kinds {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Edit(gomock.Any(), s.actor, existing.ID(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, b.BuildUpdateRequestDTO(), "bearer-token")

			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectKind, "")
		})
	}

	s.Run("error: invalid range names endDate", func() {
		_, rangeErr := builder.ParseDateRange("2030-11-23", "2030-11-22")
		s.mockCommands.EXPECT().Edit(gomock.Any(), s.actor, existing.ID(), gomock.Any()).Return(nil, rangeErr)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, b.BuildUpdateRequestDTO(), "bearer-token")

		body := httptest.DecodeError(s.T(), rec)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("INVALID_RANGE", body.Kind)
		s.Contains(body.Fields, "endDate")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: confirmation message", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, bookingID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var body resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Successfully deleted", body.Message)
	})

	s.Run("error: started booking", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, bookingID).
			Return(booking.NewAlreadyStartedError("Bookings that have been started can't be deleted"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "ALREADY_STARTED", "Bookings that have been started can't be deleted")
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/42", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "NOT_FOUND", "Booking couldn't be found")
	})
}

func (s *BookingHandlerTestSuite) counter(op, outcome string) float64 {
	families, err := s.registry.Gather()
	s.Require().NoError(err)
	for _, f := range families {
		if f.GetName() != "spot_booking_booking_operations_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			if labelsMatch(m, map[string]string{"op": op, "outcome": outcome}) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func labelsMatch(m *dto.Metric, want map[string]string) bool {
	for _, l := range m.GetLabel() {
		if v, ok := want[l.GetName()]; ok && v != l.GetValue() {
			return false
		}
	}
	return true
}

func TestStatusFor(t *testing.T) {
	cases := map[booking.Kind]int{
		booking.KindNotFound:       http.StatusNotFound,
		booking.KindForbidden:      http.StatusForbidden,
		booking.KindConflict:       http.StatusForbidden,
		booking.KindAlreadyStarted: http.StatusForbidden,
		booking.KindInvalidRange:   http.StatusBadRequest,
		booking.KindPastDate:       http.StatusBadRequest,
		booking.KindStorage:        http.StatusInternalServerError,
	}
	for kind, want := range cases {
		if got := api.StatusFor(kind); got != want {
			t.Errorf("StatusFor(%s) = %d, want %d", kind, got, want)
		}
	}
}
