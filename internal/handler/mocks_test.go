package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/plannerhq/planner/backend/internal/domain"
	"github.com/plannerhq/planner/backend/internal/handler"
	"github.com/plannerhq/planner/backend/internal/service"
)

// Mock servicers with function fields so each test wires only the calls it
// expects. An unset field means the test never expected that call.

type mockTripServicer struct {
	create  func(ctx context.Context, in service.CreateTripInput) (domain.Trip, error)
	confirm func(ctx context.Context, id uuid.UUID) (string, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	update  func(ctx context.Context, id uuid.UUID, in service.UpdateTripInput) (domain.Trip, error)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

func (m *mockTripServicer) Create(ctx context.Context, in service.CreateTripInput) (domain.Trip, error) {
	return m.create(ctx, in)
}

func (m *mockTripServicer) Confirm(ctx context.Context, id uuid.UUID) (string, error) {
	return m.confirm(ctx, id)
}

func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}

func (m *mockTripServicer) Update(ctx context.Context, id uuid.UUID, in service.UpdateTripInput) (domain.Trip, error) {
	return m.update(ctx, id, in)
}

type mockParticipantServicer struct {
	invite     func(ctx context.Context, tripID uuid.UUID, name, email string) (domain.Participant, error)
	confirm    func(ctx context.Context, id uuid.UUID) (string, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
}

var _ handler.ParticipantServicer = (*mockParticipantServicer)(nil)

func (m *mockParticipantServicer) Invite(ctx context.Context, tripID uuid.UUID, name, email string) (domain.Participant, error) {
	return m.invite(ctx, tripID, name, email)
}

func (m *mockParticipantServicer) Confirm(ctx context.Context, id uuid.UUID) (string, error) {
	return m.confirm(ctx, id)
}

func (m *mockParticipantServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.getByID(ctx, id)
}

func (m *mockParticipantServicer) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listByTrip(ctx, tripID)
}

type mockActivityServicer struct {
	create   func(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (domain.Activity, error)
	calendar func(ctx context.Context, tripID uuid.UUID) ([]domain.CalendarDay, error)
}

var _ handler.ActivityServicer = (*mockActivityServicer)(nil)

func (m *mockActivityServicer) Create(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (domain.Activity, error) {
	return m.create(ctx, tripID, title, occursAt)
}

func (m *mockActivityServicer) Calendar(ctx context.Context, tripID uuid.UUID) ([]domain.CalendarDay, error) {
	return m.calendar(ctx, tripID)
}

type mockLinkServicer struct {
	create     func(ctx context.Context, tripID uuid.UUID, title, url string) (domain.Link, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

var _ handler.LinkServicer = (*mockLinkServicer)(nil)

func (m *mockLinkServicer) Create(ctx context.Context, tripID uuid.UUID, title, url string) (domain.Link, error) {
	return m.create(ctx, tripID, title, url)
}

func (m *mockLinkServicer) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	return m.listByTrip(ctx, tripID)
}

// serverDeps bundles the four mocks; zero values are fine for endpoints a
// test does not touch.
type serverDeps struct {
	trips        *mockTripServicer
	participants *mockParticipantServicer
	activities   *mockActivityServicer
	links        *mockLinkServicer
}

func newTestServer(deps serverDeps) http.Handler {
	if deps.trips == nil {
		deps.trips = &mockTripServicer{}
	}
	if deps.participants == nil {
		deps.participants = &mockParticipantServicer{}
	}
	if deps.activities == nil {
		deps.activities = &mockActivityServicer{}
	}
	if deps.links == nil {
		deps.links = &mockLinkServicer{}
	}
	return handler.NewServer(deps.trips, deps.participants, deps.activities, deps.links).Routes()
}

// doRequest runs an in-memory request against the router and returns the
// recorded response.
func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the recorded JSON response body.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

// errorBody mirrors the API error envelope for assertions.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) errorBody {
	t.Helper()
	require.Equal(t, status, rec.Code)
	var body errorBody
	decodeBody(t, rec, &body)
	require.Equal(t, code, body.Error.Code)
	return body
}
