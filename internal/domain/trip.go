// Package domain contains the core data types for the planner application.
// This package has no dependencies beyond uuid and is imported by every other
// internal package (repo, service, handler, mail).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the top-level aggregate: participants, activities, and links all
// belong to a trip. A trip is created unconfirmed and confirmed once by its
// owner following the emailed confirmation link.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}
