package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/plannerhq/planner/backend/internal/domain"
	"github.com/plannerhq/planner/backend/internal/mail"
	"github.com/plannerhq/planner/backend/internal/repo"
)

// ParticipantService implements business logic for participant invites,
// confirmation, and lookup.
type ParticipantService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	mailer       mail.Mailer
	baseURL      string
}

// NewParticipantService constructs a ParticipantService.
func NewParticipantService(trips repo.TripRepo, participants repo.ParticipantRepo, mailer mail.Mailer, baseURL string) *ParticipantService {
	return &ParticipantService{
		trips:        trips,
		participants: participants,
		mailer:       mailer,
		baseURL:      baseURL,
	}
}

// Invite adds an unconfirmed non-owner participant to an existing trip and
// emails them a confirmation link.
func (s *ParticipantService) Invite(ctx context.Context, tripID uuid.UUID, name, email string) (domain.Participant, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}

	participant, err := s.participants.Create(ctx, domain.Participant{
		TripID: tripID,
		Name:   name,
		Email:  email,
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}

	msg, err := mail.NewParticipantInvite(mail.ParticipantInvite{
		Name:            participant.Name,
		Email:           participant.Email,
		Destination:     trip.Destination,
		StartsAt:        trip.StartsAt,
		EndsAt:          trip.EndsAt,
		ConfirmationURL: fmt.Sprintf("%s/participants/%s/confirm", s.baseURL, participant.ID),
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: send invite: %w", err)
	}

	return participant, nil
}

// Confirm marks the participant confirmed and returns the redirect target for
// their trip's detail view. Confirming twice is idempotent.
func (s *ParticipantService) Confirm(ctx context.Context, id uuid.UUID) (string, error) {
	participant, err := s.participants.Confirm(ctx, id)
	if err != nil {
		return "", fmt.Errorf("service.ParticipantService.Confirm: %w", err)
	}
	return fmt.Sprintf("%s/trips/%s", s.baseURL, participant.TripID), nil
}

// GetByID returns a single participant by ID.
func (s *ParticipantService) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	participant, err := s.participants.GetByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.GetByID: %w", err)
	}
	return participant, nil
}

// ListByTrip returns every participant of the trip, owner included.
func (s *ParticipantService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTrip: %w", err)
	}

	participants, err := s.participants.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTrip: %w", err)
	}
	return participants, nil
}
