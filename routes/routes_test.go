package routes

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/swiss-tournament/handlers"
	"github.com/Dosada05/swiss-tournament/live"
	"github.com/Dosada05/swiss-tournament/middleware"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/services"
)

var secret = []byte("routes-secret")

type stubTournament struct {
	services.TournamentService
}

func (stubTournament) PlayerStandings(ctx context.Context) ([]models.Standing, error) {
	return []models.Standing{}, nil
}

func (stubTournament) RegisterPlayer(ctx context.Context, name string) (*models.Player, error) {
	return &models.Player{ID: 1, Name: name}, nil
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := stubTournament{}
	hub := live.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	router := chi.NewRouter()
	SetupRoutes(router, secret,
		handlers.NewTournamentHandler(svc, services.NewSnapshotService(svc, nil, nil)),
		handlers.NewAuthHandler("", secret),
		handlers.NewWebSocketHandler(hub, svc),
	)
	return router
}

func serve(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPublicReadRoutes(t *testing.T) {
	router := newRouter(t)
	if rec := serve(router, http.MethodGet, "/api/standings", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("GET /api/standings = %d, want 200", rec.Code)
	}
}

func TestMutationsRequireOrganizerToken(t *testing.T) {
	router := newRouter(t)
	body := `{"name": "Fluttershy"}`

	if rec := serve(router, http.MethodPost, "/api/players", body, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status = %d, want 401", rec.Code)
	}

	token, err := middleware.IssueToken(secret, "organizer", middleware.RoleOrganizer, time.Hour, time.Now())
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if rec := serve(router, http.MethodPost, "/api/players", body, token); rec.Code != http.StatusCreated {
		t.Fatalf("with token: status = %d, want 201", rec.Code)
	}
}

func TestSnapshotDisabledWithoutStore(t *testing.T) {
	router := newRouter(t)
	token, _ := middleware.IssueToken(secret, "organizer", middleware.RoleOrganizer, time.Hour, time.Now())
	if rec := serve(router, http.MethodPost, "/api/standings/snapshot", "", token); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestSwaggerDocument(t *testing.T) {
	router := newRouter(t)
	rec := serve(router, http.MethodGet, "/swagger/doc.json", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Swiss Tournament API") {
		t.Fatalf("doc.json does not describe the API: %s", rec.Body)
	}
}
