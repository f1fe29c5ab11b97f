package spot

import (
	"github.com/google/uuid"
)

// Spot is the slice of a listing the booking lifecycle needs: who owns it.
type Spot struct {
	id      uuid.UUID
	ownerID uuid.UUID
}

func NewSpot(id, ownerID uuid.UUID) *Spot {
	return &Spot{id: id, ownerID: ownerID}
}

func (s *Spot) ID() uuid.UUID      { return s.id }
func (s *Spot) OwnerID() uuid.UUID { return s.ownerID }
