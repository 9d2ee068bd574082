package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a person attached to a trip.
// The trip owner is created pre-confirmed at trip creation; everyone else is
// created unconfirmed (either at trip creation from the invite list or via a
// later invite) and flips IsConfirmed by following the emailed link.
type Participant struct {
	ID          uuid.UUID `json:"id"`
	TripID      uuid.UUID `json:"trip_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	IsOwner     bool      `json:"is_owner"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}
