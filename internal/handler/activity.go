package handler

import (
	"net/http"
)

// createActivityRequest is the body of POST /trips/{tripID}/activities.
type createActivityRequest struct {
	Title    string `json:"title" validate:"required,min=4"`
	OccursAt string `json:"occurs_at" validate:"required"`
}

// CreateActivity handles POST /trips/{tripID}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}

	var body createActivityRequest
	if err := decodeJSON(r, &body); err != nil {
		respondValidation(w, err.Error())
		return
	}
	if err := s.validate.Struct(body); err != nil {
		respondValidation(w, validationMessage(err))
		return
	}

	occursAt, err := parseDate(body.OccursAt)
	if err != nil {
		respondValidation(w, "occurs_at "+err.Error())
		return
	}

	activity, err := s.activities.Create(r.Context(), tripID, body.Title, occursAt)
	if err != nil {
		respondServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"activityId": activity.ID})
}

// GetActivities handles GET /trips/{tripID}/activities.
// It returns the trip's activities calendar: one bucket per day across the
// trip's date range, each holding that day's activities.
func (s *Server) GetActivities(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}

	calendar, err := s.activities.Calendar(r.Context(), tripID)
	if err != nil {
		respondServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"activities": calendar})
}
