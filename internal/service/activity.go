package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plannerhq/planner/backend/internal/domain"
	"github.com/plannerhq/planner/backend/internal/repo"
)

// ActivityService implements business logic for trip activities and the
// derived activities calendar.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// Create adds an activity to an existing trip. The activity must not occur
// before the trip starts; there is deliberately no check against the trip's
// end date — the calendar gives late activities a bucket instead.
func (s *ActivityService) Create(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}

	if occursAt.Before(trip.StartsAt) {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w: invalid activity date", domain.ErrValidation)
	}

	activity, err := s.activities.Create(ctx, domain.Activity{
		TripID:   tripID,
		Title:    title,
		OccursAt: occursAt,
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return activity, nil
}

// Calendar returns the trip's activities bucketed by day across the trip's
// date range (see domain.Calendar for the bucketing rules).
func (s *ActivityService) Calendar(ctx context.Context, tripID uuid.UUID) ([]domain.CalendarDay, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.Calendar: %w", err)
	}

	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.Calendar: %w", err)
	}

	return domain.Calendar(trip, activities), nil
}
