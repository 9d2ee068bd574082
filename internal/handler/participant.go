package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/plannerhq/planner/backend/internal/domain"
)

// createInviteRequest is the body of POST /trips/{tripID}/invites.
type createInviteRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=4"`
}

// participantSummary is the participant payload returned by the list and
// detail endpoints. Ownership is internal bookkeeping and stays off the wire.
type participantSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	IsConfirmed bool      `json:"is_confirmed"`
}

// CreateInvite handles POST /trips/{tripID}/invites.
func (s *Server) CreateInvite(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}

	var body createInviteRequest
	if err := decodeJSON(r, &body); err != nil {
		respondValidation(w, err.Error())
		return
	}
	if err := s.validate.Struct(body); err != nil {
		respondValidation(w, validationMessage(err))
		return
	}

	participant, err := s.participants.Invite(r.Context(), tripID, body.Name, body.Email)
	if err != nil {
		respondServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"participant": participant.ID})
}

// ConfirmParticipant handles GET /participants/{participantID}/confirm.
// Confirmation is idempotent; on success it redirects to the trip detail view.
func (s *Server) ConfirmParticipant(w http.ResponseWriter, r *http.Request) {
	participantID, err := pathUUID(r, "participantID")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}

	redirect, err := s.participants.Confirm(r.Context(), participantID)
	if err != nil {
		respondServiceError(w, r, err, "participant not found")
		return
	}

	http.Redirect(w, r, redirect, http.StatusFound)
}

// GetParticipant handles GET /participants/{participantID}.
func (s *Server) GetParticipant(w http.ResponseWriter, r *http.Request) {
	participantID, err := pathUUID(r, "participantID")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}

	participant, err := s.participants.GetByID(r.Context(), participantID)
	if err != nil {
		respondServiceError(w, r, err, "participant not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"participant": toParticipantSummary(participant)})
}

// ListParticipants handles GET /trips/{tripID}/participants.
func (s *Server) ListParticipants(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}

	participants, err := s.participants.ListByTrip(r.Context(), tripID)
	if err != nil {
		respondServiceError(w, r, err, "trip not found")
		return
	}

	summaries := make([]participantSummary, len(participants))
	for i, p := range participants {
		summaries[i] = toParticipantSummary(p)
	}
	writeJSON(w, http.StatusOK, map[string]any{"participants": summaries})
}

func toParticipantSummary(p domain.Participant) participantSummary {
	return participantSummary{
		ID:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		IsConfirmed: p.IsConfirmed,
	}
}
