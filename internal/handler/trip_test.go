package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannerhq/planner/backend/internal/domain"
	"github.com/plannerhq/planner/backend/internal/service"
)

func createTripBody(overrides map[string]any) string {
	body := map[string]any{
		"destination":      "Florence",
		"starts_at":        "2030-06-01",
		"ends_at":          "2030-06-07",
		"owner_name":       "Alice Example",
		"owner_email":      "alice@example.com",
		"emails_to_invite": []string{"bob@example.com"},
	}
	for k, v := range overrides {
		if v == nil {
			delete(body, k)
			continue
		}
		body[k] = v
	}
	b, _ := json.Marshal(body)
	return string(b)
}

func TestCreateTrip(t *testing.T) {
	tripID := uuid.New()
	var got service.CreateTripInput
	trips := &mockTripServicer{
		create: func(_ context.Context, in service.CreateTripInput) (domain.Trip, error) {
			got = in
			return domain.Trip{ID: tripID, Destination: in.Destination, StartsAt: in.StartsAt, EndsAt: in.EndsAt}, nil
		},
	}
	srv := newTestServer(serverDeps{trips: trips})

	rec := doRequest(t, srv, http.MethodPost, "/trips", createTripBody(nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	var body struct {
		TripID uuid.UUID `json:"tripId"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, tripID, body.TripID)

	assert.Equal(t, "Florence", got.Destination)
	assert.Equal(t, "alice@example.com", got.OwnerEmail)
	assert.Equal(t, []string{"bob@example.com"}, got.EmailsToInvite)
	assert.Equal(t, time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC), got.StartsAt)
}

func TestCreateTrip_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "invalid JSON",
			body:    "{not json",
			message: "invalid JSON body",
		},
		{
			name:    "destination too short",
			body:    createTripBody(map[string]any{"destination": "Fey"}),
			message: "destination must be at least 4 characters",
		},
		{
			name:    "missing owner email",
			body:    createTripBody(map[string]any{"owner_email": nil}),
			message: "owner_email is required",
		},
		{
			name:    "malformed owner email",
			body:    createTripBody(map[string]any{"owner_email": "not-an-email"}),
			message: "owner_email must be a valid email",
		},
		{
			name:    "missing invite list",
			body:    createTripBody(map[string]any{"emails_to_invite": nil}),
			message: "emails_to_invite is required",
		},
		{
			name:    "malformed invite email",
			body:    createTripBody(map[string]any{"emails_to_invite": []string{"nope"}}),
			message: "emails_to_invite[0] must be a valid email",
		},
		{
			name:    "unparseable start date",
			body:    createTripBody(map[string]any{"starts_at": "junk"}),
			message: "starts_at must be a valid date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The servicer must never be reached.
			srv := newTestServer(serverDeps{})

			rec := doRequest(t, srv, http.MethodPost, "/trips", tt.body)

			body := requireError(t, rec, http.StatusUnprocessableEntity, "validation_error")
			assert.Equal(t, tt.message, body.Error.Message)
		})
	}
}

func TestCreateTrip_EmptyInviteListAllowed(t *testing.T) {
	trips := &mockTripServicer{
		create: func(_ context.Context, in service.CreateTripInput) (domain.Trip, error) {
			return domain.Trip{ID: uuid.New()}, nil
		},
	}
	srv := newTestServer(serverDeps{trips: trips})

	rec := doRequest(t, srv, http.MethodPost, "/trips", createTripBody(map[string]any{"emails_to_invite": []string{}}))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateTrip_ServiceValidation(t *testing.T) {
	trips := &mockTripServicer{
		create: func(_ context.Context, _ service.CreateTripInput) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w: invalid trip start date", domain.ErrValidation)
		},
	}
	srv := newTestServer(serverDeps{trips: trips})

	rec := doRequest(t, srv, http.MethodPost, "/trips", createTripBody(nil))

	body := requireError(t, rec, http.StatusUnprocessableEntity, "validation_error")
	assert.Equal(t, "invalid trip start date", body.Error.Message)
}

func TestConfirmTrip_Redirects(t *testing.T) {
	tripID := uuid.New()
	trips := &mockTripServicer{
		confirm: func(_ context.Context, id uuid.UUID) (string, error) {
			assert.Equal(t, tripID, id)
			return "http://localhost:8080/trips/" + tripID.String(), nil
		},
	}
	srv := newTestServer(serverDeps{trips: trips})

	rec := doRequest(t, srv, http.MethodGet, "/trips/"+tripID.String()+"/confirm", "")

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "http://localhost:8080/trips/"+tripID.String(), rec.Header().Get("Location"))
}

func TestConfirmTrip_NotFound(t *testing.T) {
	trips := &mockTripServicer{
		confirm: func(_ context.Context, _ uuid.UUID) (string, error) {
			return "", fmt.Errorf("service.TripService.Confirm: %w", domain.ErrNotFound)
		},
	}
	srv := newTestServer(serverDeps{trips: trips})

	rec := doRequest(t, srv, http.MethodGet, "/trips/"+uuid.NewString()+"/confirm", "")

	body := requireError(t, rec, http.StatusNotFound, "not_found")
	assert.Equal(t, "trip not found", body.Error.Message)
}

func TestConfirmTrip_BadUUID(t *testing.T) {
	srv := newTestServer(serverDeps{})

	rec := doRequest(t, srv, http.MethodGet, "/trips/not-a-uuid/confirm", "")

	requireError(t, rec, http.StatusUnprocessableEntity, "validation_error")
}

func TestGetTrip(t *testing.T) {
	trip := domain.Trip{
		ID:          uuid.New(),
		Destination: "Florence",
		StartsAt:    time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2030, 6, 7, 0, 0, 0, 0, time.UTC),
		IsConfirmed: true,
	}
	trips := &mockTripServicer{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			assert.Equal(t, trip.ID, id)
			return trip, nil
		},
	}
	srv := newTestServer(serverDeps{trips: trips})

	rec := doRequest(t, srv, http.MethodGet, "/trips/"+trip.ID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Trip struct {
			ID          uuid.UUID `json:"id"`
			Destination string    `json:"destination"`
			IsConfirmed bool      `json:"is_confirmed"`
		} `json:"trip"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, trip.ID, body.Trip.ID)
	assert.Equal(t, "Florence", body.Trip.Destination)
	assert.True(t, body.Trip.IsConfirmed)
}

func TestGetTrip_NotFound(t *testing.T) {
	trips := &mockTripServicer{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", domain.ErrNotFound)
		},
	}
	srv := newTestServer(serverDeps{trips: trips})

	rec := doRequest(t, srv, http.MethodGet, "/trips/"+uuid.NewString(), "")

	requireError(t, rec, http.StatusNotFound, "not_found")
}

func TestUpdateTrip(t *testing.T) {
	tripID := uuid.New()
	trips := &mockTripServicer{
		update: func(_ context.Context, id uuid.UUID, in service.UpdateTripInput) (domain.Trip, error) {
			assert.Equal(t, tripID, id)
			assert.Equal(t, "Siena instead", in.Destination)
			return domain.Trip{ID: id, Destination: in.Destination}, nil
		},
	}
	srv := newTestServer(serverDeps{trips: trips})

	body := `{"destination":"Siena instead","starts_at":"2030-06-02","ends_at":"2030-06-08"}`
	rec := doRequest(t, srv, http.MethodPut, "/trips/"+tripID.String(), body)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		TripID uuid.UUID `json:"tripId"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, tripID, resp.TripID)
}

func TestUpdateTrip_MissingFields(t *testing.T) {
	srv := newTestServer(serverDeps{})

	rec := doRequest(t, srv, http.MethodPut, "/trips/"+uuid.NewString(), `{"destination":"Siena instead"}`)

	body := requireError(t, rec, http.StatusUnprocessableEntity, "validation_error")
	assert.Equal(t, "starts_at is required", body.Error.Message)
}

func TestCreateTrip_InternalError(t *testing.T) {
	trips := &mockTripServicer{
		create: func(_ context.Context, _ service.CreateTripInput) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("service.TripService.Create: connection refused")
		},
	}
	srv := newTestServer(serverDeps{trips: trips})

	rec := doRequest(t, srv, http.MethodPost, "/trips", createTripBody(nil))

	body := requireError(t, rec, http.StatusInternalServerError, "internal_error")
	assert.Equal(t, "internal server error", body.Error.Message)
}
