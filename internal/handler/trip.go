package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/plannerhq/planner/backend/internal/domain"
	"github.com/plannerhq/planner/backend/internal/service"
)

// createTripRequest is the body of POST /trips. Dates arrive as strings and
// are coerced by parseDate; everything else is covered by validator tags.
type createTripRequest struct {
	Destination    string   `json:"destination" validate:"required,min=4"`
	StartsAt       string   `json:"starts_at" validate:"required"`
	EndsAt         string   `json:"ends_at" validate:"required"`
	OwnerName      string   `json:"owner_name" validate:"required"`
	OwnerEmail     string   `json:"owner_email" validate:"required,email"`
	EmailsToInvite []string `json:"emails_to_invite" validate:"dive,email"`
}

// updateTripRequest is the body of PUT /trips/{tripID}.
type updateTripRequest struct {
	Destination string `json:"destination" validate:"required,min=4"`
	StartsAt    string `json:"starts_at" validate:"required"`
	EndsAt      string `json:"ends_at" validate:"required"`
}

// tripDetails is the trip payload returned by GET /trips/{tripID}.
type tripDetails struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body createTripRequest
	if err := decodeJSON(r, &body); err != nil {
		respondValidation(w, err.Error())
		return
	}
	if body.EmailsToInvite == nil {
		respondValidation(w, "emails_to_invite is required")
		return
	}
	if err := s.validate.Struct(body); err != nil {
		respondValidation(w, validationMessage(err))
		return
	}

	startsAt, err := parseDate(body.StartsAt)
	if err != nil {
		respondValidation(w, "starts_at "+err.Error())
		return
	}
	endsAt, err := parseDate(body.EndsAt)
	if err != nil {
		respondValidation(w, "ends_at "+err.Error())
		return
	}

	trip, err := s.trips.Create(r.Context(), service.CreateTripInput{
		Destination:    body.Destination,
		StartsAt:       startsAt,
		EndsAt:         endsAt,
		OwnerName:      body.OwnerName,
		OwnerEmail:     body.OwnerEmail,
		EmailsToInvite: body.EmailsToInvite,
	})
	if err != nil {
		respondServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"tripId": trip.ID})
}

// ConfirmTrip handles GET /trips/{tripID}/confirm.
// On success (including the already-confirmed no-op) it redirects to the
// trip detail view.
func (s *Server) ConfirmTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}

	redirect, err := s.trips.Confirm(r.Context(), tripID)
	if err != nil {
		respondServiceError(w, r, err, "trip not found")
		return
	}

	http.Redirect(w, r, redirect, http.StatusFound)
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}

	trip, err := s.trips.GetByID(r.Context(), tripID)
	if err != nil {
		respondServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"trip": toTripDetails(trip)})
}

// UpdateTrip handles PUT /trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}

	var body updateTripRequest
	if err := decodeJSON(r, &body); err != nil {
		respondValidation(w, err.Error())
		return
	}
	if err := s.validate.Struct(body); err != nil {
		respondValidation(w, validationMessage(err))
		return
	}

	startsAt, err := parseDate(body.StartsAt)
	if err != nil {
		respondValidation(w, "starts_at "+err.Error())
		return
	}
	endsAt, err := parseDate(body.EndsAt)
	if err != nil {
		respondValidation(w, "ends_at "+err.Error())
		return
	}

	trip, err := s.trips.Update(r.Context(), tripID, service.UpdateTripInput{
		Destination: body.Destination,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
	})
	if err != nil {
		respondServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"tripId": trip.ID})
}

func toTripDetails(t domain.Trip) tripDetails {
	return tripDetails{
		ID:          t.ID,
		Destination: t.Destination,
		StartsAt:    t.StartsAt,
		EndsAt:      t.EndsAt,
		IsConfirmed: t.IsConfirmed,
	}
}
