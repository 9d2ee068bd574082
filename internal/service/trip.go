// Package service contains the business logic for the planner API.
// Services validate inputs, enforce business rules, and orchestrate repo and
// mail gateway calls. No SQL lives here — services depend on repo interfaces,
// not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/plannerhq/planner/backend/internal/domain"
	"github.com/plannerhq/planner/backend/internal/mail"
	"github.com/plannerhq/planner/backend/internal/repo"
)

// CreateTripInput carries the validated request fields for trip creation.
type CreateTripInput struct {
	Destination    string
	StartsAt       time.Time
	EndsAt         time.Time
	OwnerName      string
	OwnerEmail     string
	EmailsToInvite []string
}

// UpdateTripInput carries the validated request fields for a trip update.
type UpdateTripInput struct {
	Destination string
	StartsAt    time.Time
	EndsAt      time.Time
}

// TripService implements business logic for the trip lifecycle:
// creation, confirmation, update, and detail lookup.
type TripService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	mailer       mail.Mailer
	baseURL      string
	log          *slog.Logger
}

// NewTripService constructs a TripService. baseURL is the public API base
// used to build confirmation links and redirect targets.
func NewTripService(trips repo.TripRepo, participants repo.ParticipantRepo, mailer mail.Mailer, baseURL string) *TripService {
	return &TripService{
		trips:        trips,
		participants: participants,
		mailer:       mailer,
		baseURL:      baseURL,
		log:          slog.Default().With("component", "trip-service"),
	}
}

// Create validates the date range, persists the trip with its owner and
// invited participants in one transaction, and emails the owner a
// confirmation link. The owner participant is created pre-confirmed; every
// invitee starts unconfirmed.
func (s *TripService) Create(ctx context.Context, in CreateTripInput) (domain.Trip, error) {
	if in.StartsAt.Before(time.Now()) {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w: invalid trip start date", domain.ErrValidation)
	}
	if in.EndsAt.Before(in.StartsAt) {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w: invalid trip end date", domain.ErrValidation)
	}

	participants := make([]domain.Participant, 0, len(in.EmailsToInvite)+1)
	participants = append(participants, domain.Participant{
		Name:        in.OwnerName,
		Email:       in.OwnerEmail,
		IsOwner:     true,
		IsConfirmed: true,
	})
	for _, email := range in.EmailsToInvite {
		participants = append(participants, domain.Participant{Email: email})
	}

	trip, err := s.trips.Create(ctx, domain.Trip{
		Destination: in.Destination,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
	}, participants)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	msg, err := mail.NewTripConfirmation(mail.TripConfirmation{
		OwnerName:       in.OwnerName,
		OwnerEmail:      in.OwnerEmail,
		Destination:     trip.Destination,
		StartsAt:        trip.StartsAt,
		EndsAt:          trip.EndsAt,
		ConfirmationURL: fmt.Sprintf("%s/trips/%s/confirm", s.baseURL, trip.ID),
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: send confirmation: %w", err)
	}

	return trip, nil
}

// Confirm marks the trip confirmed and dispatches one invite email per
// non-owner participant. It returns the redirect target for the trip detail
// view.
//
// Confirming an already-confirmed trip is idempotent: the same redirect is
// returned and no mail is resent.
//
// The invite emails are sent concurrently; each recipient's failure is
// captured independently and logged, never failing the confirmation itself.
// One bad address must not abort an otherwise-successful flow.
func (s *TripService) Confirm(ctx context.Context, id uuid.UUID) (string, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("service.TripService.Confirm: %w", err)
	}

	redirect := fmt.Sprintf("%s/trips/%s", s.baseURL, trip.ID)
	if trip.IsConfirmed {
		return redirect, nil
	}

	if _, err := s.trips.Confirm(ctx, id); err != nil {
		return "", fmt.Errorf("service.TripService.Confirm: %w", err)
	}

	invitees, err := s.participants.ListInviteesByTripID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("service.TripService.Confirm: %w", err)
	}

	p := pool.New().WithErrors()
	for _, invitee := range invitees {
		p.Go(func() error {
			msg, err := mail.NewParticipantInvite(mail.ParticipantInvite{
				Name:            invitee.Name,
				Email:           invitee.Email,
				Destination:     trip.Destination,
				StartsAt:        trip.StartsAt,
				EndsAt:          trip.EndsAt,
				ConfirmationURL: fmt.Sprintf("%s/participants/%s/confirm", s.baseURL, invitee.ID),
			})
			if err != nil {
				return fmt.Errorf("participant %s: %w", invitee.ID, err)
			}
			if err := s.mailer.Send(ctx, msg); err != nil {
				return fmt.Errorf("participant %s: %w", invitee.ID, err)
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		s.log.Warn("some invite emails failed to send", "trip_id", trip.ID, "error", err)
	}

	return redirect, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// Update applies the same date rules as creation and overwrites the trip's
// destination and date range.
func (s *TripService) Update(ctx context.Context, id uuid.UUID, in UpdateTripInput) (domain.Trip, error) {
	if in.StartsAt.Before(time.Now()) {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w: invalid trip start date", domain.ErrValidation)
	}
	if in.EndsAt.Before(in.StartsAt) {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w: invalid trip end date", domain.ErrValidation)
	}

	trip, err := s.trips.Update(ctx, domain.Trip{
		ID:          id,
		Destination: in.Destination,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return trip, nil
}
