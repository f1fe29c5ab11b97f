//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"spot-booking/internal/domain/booking"
	"spot-booking/internal/domain/spot"
	"spot-booking/internal/infra"
	"spot-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type queuedJob struct {
	kind    string
	topic   string
	payload []byte
}

// memLedger is an in-memory UnitOfWork. Transactions run one at a time and
// only a successful fn publishes its writes.
type memLedger struct {
	mu sync.Mutex

	spots    map[uuid.UUID]uuid.UUID
	bookings map[uuid.UUID]*booking.Booking
	jobs     []queuedJob

	// lostRaces makes that many inserts or updates fail the way a concurrent
	// overlapping commit does; racer, when set, is committed at that moment.
	lostRaces int
	racer     *booking.Booking
	listErr   error

	attempts int
}

func newMemLedger() *memLedger {
	return &memLedger{
		spots:    map[uuid.UUID]uuid.UUID{},
		bookings: map[uuid.UUID]*booking.Booking{},
	}
}

func (l *memLedger) addSpot(owner uuid.UUID) uuid.UUID {
	id := uuid.New()
	l.spots[id] = owner
	return id
}

func (l *memLedger) addBooking(b *booking.Booking) *booking.Booking {
	l.bookings[b.ID()] = b
	return clone(b)
}

func (l *memLedger) get(id uuid.UUID) *booking.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()
	if b, ok := l.bookings[id]; ok {
		return clone(b)
	}
	return nil
}

func (l *memLedger) jobKinds() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	kinds := make([]string, len(l.jobs))
	for i, j := range l.jobs {
		kinds[i] = j.kind
	}
	return kinds
}

func (l *memLedger) OwnerOf(_ context.Context, spotID uuid.UUID) (uuid.UUID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	owner, ok := l.spots[spotID]
	if !ok {
		return uuid.Nil, infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return owner, nil
}

func (l *memLedger) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.attempts++

	tx := &memTx{l: l, bookings: make(map[uuid.UUID]*booking.Booking, len(l.bookings))}
	for id, b := range l.bookings {
		tx.bookings[id] = clone(b)
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	l.bookings = tx.bookings
	l.jobs = append(l.jobs, tx.jobs...)
	return nil
}

type memTx struct {
	l        *memLedger
	bookings map[uuid.UUID]*booking.Booking
	jobs     []queuedJob
}

func (t *memTx) Spots() shared.SpotLocker                     { return t }
func (t *memTx) Bookings() shared.BookingLedger               { return t }
func (t *memTx) Notifications() shared.NotificationRepository { return t }

func (t *memTx) LockForBooking(_ context.Context, spotID uuid.UUID) (*spot.Spot, error) {
	owner, ok := t.l.spots[spotID]
	if !ok {
		return nil, infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return spot.NewSpot(spotID, owner), nil
}

func (t *memTx) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := t.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return clone(b), nil
}

func (t *memTx) FindActiveForSpot(_ context.Context, spotID uuid.UUID) ([]*booking.Booking, error) {
	if t.l.listErr != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for spot", t.l.listErr)
	}
	var out []*booking.Booking
	for _, b := range t.bookings {
		if b.SpotID() == spotID {
			out = append(out, clone(b))
		}
	}
	return out, nil
}

func (t *memTx) Insert(_ context.Context, b *booking.Booking) (*booking.Booking, error) {
	if err := t.loseRace(); err != nil {
		return nil, err
	}
	created := booking.ReconstructBooking(uuid.New(), b.SpotID(), b.UserID(), b.Dates(), b.CreatedAt(), b.UpdatedAt())
	t.bookings[created.ID()] = created
	return clone(created), nil
}

func (t *memTx) Update(_ context.Context, id uuid.UUID, dates booking.DateRange, updatedAt time.Time) (*booking.Booking, error) {
	if err := t.loseRace(); err != nil {
		return nil, err
	}
	b, ok := t.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	updated := booking.ReconstructBooking(b.ID(), b.SpotID(), b.UserID(), dates, b.CreatedAt(), updatedAt)
	t.bookings[id] = updated
	return clone(updated), nil
}

func (t *memTx) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := t.bookings[id]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	delete(t.bookings, id)
	return nil
}

func (t *memTx) CreateJob(_ context.Context, kind, topic string, payload []byte, _ time.Time) error {
	t.jobs = append(t.jobs, queuedJob{kind: kind, topic: topic, payload: payload})
	return nil
}

func (t *memTx) loseRace() error {
	if t.l.lostRaces == 0 {
		return nil
	}
	t.l.lostRaces--
	if t.l.racer != nil {
		t.l.bookings[t.l.racer.ID()] = t.l.racer
		t.l.racer = nil
	}
	return infra.WrapRepoErr("failed to write booking", &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"})
}

func clone(b *booking.Booking) *booking.Booking {
	return booking.ReconstructBooking(b.ID(), b.SpotID(), b.UserID(), b.Dates(), b.CreatedAt(), b.UpdatedAt())
}
