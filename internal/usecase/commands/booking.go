package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"spot-booking/internal/domain/booking"
	"spot-booking/internal/infra"
	"spot-booking/internal/pkg/clock"
	"spot-booking/internal/pkg/config"
	"spot-booking/internal/pkg/errs"
	"spot-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	msgSpotNotFound    = "Spot couldn't be found"
	msgBookingNotFound = "Booking couldn't be found"
)

type CreateBookingRequest struct {
	StartDate time.Time
	EndDate   time.Time
}

// EditBookingRequest leaves a boundary unchanged when it is nil.
type EditBookingRequest struct {
	StartDate *time.Time
	EndDate   *time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, actor, spotID uuid.UUID, req CreateBookingRequest) (*booking.Booking, error)
	Edit(ctx context.Context, actor, bookingID uuid.UUID, req EditBookingRequest) (*booking.Booking, error)
	Cancel(ctx context.Context, actor, bookingID uuid.UUID) error
}

type bookingCommands struct {
	uow             shared.UnitOfWork
	spots           shared.SpotDirectory
	clock           clock.Clock
	conflictRetries int
}

func NewBookingCommands(uow shared.UnitOfWork, spots shared.SpotDirectory, clk clock.Clock, cfg config.Config) BookingCommands {
	return &bookingCommands{
		uow:             uow,
		spots:           spots,
		clock:           clk,
		conflictRetries: max(cfg.Booking.ConflictRetries, 0),
	}
}

func (c *bookingCommands) Create(ctx context.Context, actor, spotID uuid.UUID, req CreateBookingRequest) (*booking.Booking, error) {
	ownerID, err := c.spots.OwnerOf(ctx, spotID)
	if err != nil {
		return nil, shared.LedgerError(err, msgSpotNotFound)
	}
	if err := booking.EnsureNotOwner(ownerID, actor); err != nil {
		return nil, err
	}

	dates, err := booking.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	now := c.clock.Now()
	if err := booking.EnsureNotPast(dates, now); err != nil {
		return nil, err
	}

	var created *booking.Booking
	err = c.withConflictRetry(ctx, "create", func(ctx context.Context, tx shared.Tx) error {
		locked, err := tx.Spots().LockForBooking(ctx, spotID)
		if err != nil {
			return shared.LedgerError(err, msgSpotNotFound)
		}
		// the directory may be cached; the locked row is authoritative
		if err := booking.EnsureNotOwner(locked.OwnerID(), actor); err != nil {
			return err
		}

		existing, err := tx.Bookings().FindActiveForSpot(ctx, spotID)
		if err != nil {
			return err
		}
		if err := booking.EnsureAvailable(existing, dates, uuid.Nil); err != nil {
			return err
		}

		created, err = tx.Bookings().Insert(ctx, booking.NewBooking(spotID, actor, dates, now))
		if err != nil {
			return err
		}
		return enqueueEvent(ctx, tx, shared.JobBookingCreated, created, now)
	})
	if err != nil {
		return nil, shared.LedgerError(err, msgSpotNotFound)
	}

	slog.Info("booking created",
		"booking_id", created.ID().String(),
		"spot_id", spotID.String(),
		"actor", actor.String(),
		"dates", dates.String(),
		"nights", dates.Nights())
	return created, nil
}

func (c *bookingCommands) Edit(ctx context.Context, actor, bookingID uuid.UUID, req EditBookingRequest) (*booking.Booking, error) {
	var updated *booking.Booking
	err := c.withConflictRetry(ctx, "edit", func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return shared.LedgerError(err, msgBookingNotFound)
		}
		if err := booking.EnsureRenter(current, actor); err != nil {
			return err
		}
		now := c.clock.Now()
		if err := booking.EnsureEditable(current, now); err != nil {
			return err
		}

		dates, err := current.Dates().Amend(req.StartDate, req.EndDate)
		if err != nil {
			return err
		}
		if err := booking.EnsureNotPast(dates, now); err != nil {
			return err
		}

		if _, err := tx.Spots().LockForBooking(ctx, current.SpotID()); err != nil {
			return shared.LedgerError(err, msgSpotNotFound)
		}
		existing, err := tx.Bookings().FindActiveForSpot(ctx, current.SpotID())
		if err != nil {
			return err
		}
		if err := booking.EnsureAvailable(existing, dates, current.ID()); err != nil {
			return err
		}

		current.Reschedule(dates, now)
		updated, err = tx.Bookings().Update(ctx, current.ID(), current.Dates(), current.UpdatedAt())
		if err != nil {
			return err
		}
		return enqueueEvent(ctx, tx, shared.JobBookingUpdated, updated, now)
	})
	if err != nil {
		return nil, shared.LedgerError(err, msgBookingNotFound)
	}

	slog.Info("booking updated",
		"booking_id", bookingID.String(),
		"spot_id", updated.SpotID().String(),
		"actor", actor.String(),
		"dates", updated.Dates().String())
	return updated, nil
}

func (c *bookingCommands) Cancel(ctx context.Context, actor, bookingID uuid.UUID) error {
	var cancelled *booking.Booking
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return shared.LedgerError(err, msgBookingNotFound)
		}
		if err := booking.EnsureRenter(current, actor); err != nil {
			return err
		}
		now := c.clock.Now()
		if err := booking.EnsureCancellable(current, now); err != nil {
			return err
		}

		if err := tx.Bookings().Delete(ctx, current.ID()); err != nil {
			return shared.LedgerError(err, msgBookingNotFound)
		}
		cancelled = current
		return enqueueEvent(ctx, tx, shared.JobBookingCancelled, current, now)
	})
	if err != nil {
		return shared.LedgerError(err, msgBookingNotFound)
	}

	slog.Info("booking cancelled",
		"booking_id", bookingID.String(),
		"spot_id", cancelled.SpotID().String(),
		"actor", actor.String())
	return nil
}

// withConflictRetry reruns fn as a fresh conflict check when its write lost a
// race to a concurrent booking of the same dates.
func (c *bookingCommands) withConflictRetry(ctx context.Context, op string, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
		err := c.uow.Within(ctx, fn)
		if !infra.IsKind(err, infra.KindExclusionViolated) {
			return err
		}
		if attempt >= c.conflictRetries {
			return booking.NewConflictError()
		}
		slog.Warn("booking write lost an overlap race, rechecking",
			"op", op,
			"attempt", attempt+1)
	}
}

func enqueueEvent(ctx context.Context, tx shared.Tx, kind string, b *booking.Booking, now time.Time) error {
	payload, err := json.Marshal(shared.BookingEvent{
		BookingID: b.ID(),
		SpotID:    b.SpotID(),
		UserID:    b.UserID(),
		StartDate: b.Dates().Start().Format(booking.DateLayout),
		EndDate:   b.Dates().End().Format(booking.DateLayout),
		At:        now,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode booking event")
	}
	return tx.Notifications().CreateJob(ctx, kind, shared.BookingEventsTopic, payload, now)
}
