package api

import (
	"log/slog"
	"net/http"

	"spot-booking/internal/domain/booking"
	reqdto "spot-booking/internal/handler/dto/request"
	resdto "spot-booking/internal/handler/dto/response"
	"spot-booking/internal/handler/httperr"
	"spot-booking/internal/handler/middleware"
	"spot-booking/internal/handler/validation"
	"spot-booking/internal/pkg/errs"
	"spot-booking/internal/pkg/metrics"
	"spot-booking/internal/usecase/commands"
	"spot-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	opCreate      = "create"
	opEdit        = "edit"
	opCancel      = "cancel"
	opListForSpot = "list_for_spot"
	opListForUser = "list_for_user"

	kindBadRequest = "BAD_REQUEST"
)

type BookingHandler struct {
	cmds    commands.BookingCommands
	q       queries.BookingQueries
	metrics *metrics.Metrics
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, m *metrics.Metrics) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, metrics: m}
}

// @Summary Create booking
// @Description Book a spot for a date range; owners cannot book their own spot
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param spotId path string true "Spot ID"
// @Param request body reqdto.CreateBookingRequest true "Booking dates"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /spots/{spotId}/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithStatus(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	spotID, err := uuid.Parse(c.Param("spotId"))
	if err != nil {
		h.fail(c, opCreate, booking.NewNotFoundError("Spot couldn't be found"))
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, opCreate, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		h.badRequest(c, opCreate, err)
		return
	}

	created, err := h.cmds.Create(c.Request.Context(), actor, spotID, cmd)
	if err != nil {
		h.fail(c, opCreate, err)
		return
	}
	h.metrics.ObserveBooking(opCreate, "")
	c.JSON(http.StatusCreated, resdto.FromBooking(created))
}

// @Summary List spot bookings
// @Description Owners see full records; everyone else sees only the booked dates
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param spotId path string true "Spot ID"
// @Success 200 {object} resdto.BookingListResponse[any]
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /spots/{spotId}/bookings [get]
func (h *BookingHandler) ListForSpot(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithStatus(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	spotID, err := uuid.Parse(c.Param("spotId"))
	if err != nil {
		h.fail(c, opListForSpot, booking.NewNotFoundError("Spot couldn't be found"))
		return
	}

	views, err := h.q.ListForSpot(c.Request.Context(), actor, spotID)
	if err != nil {
		h.fail(c, opListForSpot, err)
		return
	}
	h.metrics.ObserveBooking(opListForSpot, "")
	c.JSON(http.StatusOK, resdto.FromSpotBookings(views))
}

// @Summary List current user's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BookingListResponse[resdto.UserBookingResponse]
// @Failure 401 {object} httperr.Response
// @Router /bookings/current [get]
func (h *BookingHandler) ListForUser(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithStatus(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	views, err := h.q.ListForUser(c.Request.Context(), actor)
	if err != nil {
		h.fail(c, opListForUser, err)
		return
	}
	body, err := resdto.FromUserBookings(views)
	if err != nil {
		h.fail(c, opListForUser, booking.NewStorageError(err, "failed to shape bookings"))
		return
	}
	h.metrics.ObserveBooking(opListForUser, "")
	c.JSON(http.StatusOK, body)
}

// @Summary Edit booking
// @Description Change the dates of an own booking that has not ended yet
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "New dates"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [put]
func (h *BookingHandler) Edit(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithStatus(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.fail(c, opEdit, booking.NewNotFoundError("Booking couldn't be found"))
		return
	}

	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, opEdit, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		h.badRequest(c, opEdit, err)
		return
	}

	updated, err := h.cmds.Edit(c.Request.Context(), actor, bookingID, cmd)
	if err != nil {
		h.fail(c, opEdit, err)
		return
	}
	h.metrics.ObserveBooking(opEdit, "")
	c.JSON(http.StatusOK, resdto.FromBooking(updated))
}

// @Summary Cancel booking
// @Description Delete an own booking that has not started yet
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithStatus(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.fail(c, opCancel, booking.NewNotFoundError("Booking couldn't be found"))
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), actor, bookingID); err != nil {
		h.fail(c, opCancel, err)
		return
	}
	h.metrics.ObserveBooking(opCancel, "")
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Successfully deleted"})
}

func (h *BookingHandler) fail(c *gin.Context, op string, err error) {
	kind := booking.KindOf(err)
	h.metrics.ObserveBooking(op, kind.String())

	msg := err.Error()
	if kind == booking.KindStorage {
		slog.Error("booking operation failed",
			"op", op,
			"request_id", middleware.GetRequestID(c),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
		msg = "Internal server error"
	}
	httperr.AbortWithError(c, StatusFor(kind), err, kind.String(), msg, errs.FieldsOf(err))
}

func (h *BookingHandler) badRequest(c *gin.Context, op string, err error) {
	h.metrics.ObserveBooking(op, kindBadRequest)
	fields, _ := validation.FieldErrors(err)
	httperr.AbortWithError(c, http.StatusBadRequest, err, kindBadRequest, "Bad Request", fields)
}

// StatusFor maps a lifecycle failure kind to its HTTP status.
func StatusFor(kind booking.Kind) int {
	switch kind {
	case booking.KindNotFound:
		return http.StatusNotFound
	case booking.KindForbidden, booking.KindConflict, booking.KindAlreadyStarted:
		return http.StatusForbidden
	case booking.KindInvalidRange, booking.KindPastDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
