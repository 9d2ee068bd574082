package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a single scheduled item on a trip's itinerary.
// OccursAt must not fall before the trip's start date; no upper bound is
// enforced against the trip's end date.
type Activity struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Title     string    `json:"title"`
	OccursAt  time.Time `json:"occurs_at"`
	CreatedAt time.Time `json:"created_at"`
}
