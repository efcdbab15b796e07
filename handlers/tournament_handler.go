package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/swiss-tournament/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
	snapshotService   services.SnapshotService
}

func NewTournamentHandler(ts services.TournamentService, ss services.SnapshotService) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: ts,
		snapshotService:   ss,
	}
}

type registerPlayerInput struct {
	Name *string `json:"name"`
}

type reportMatchInput struct {
	WinnerID *int `json:"winner_id"`
	LoserID  *int `json:"loser_id"`
}

func (h *TournamentHandler) CountPlayers(w http.ResponseWriter, r *http.Request) {
	count, err := h.tournamentService.CountPlayers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"count": count}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	var input registerPlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Name == nil {
		badRequestResponse(w, r, errors.New("name is required"))
		return
	}

	player, err := h.tournamentService.RegisterPlayer(r.Context(), *input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) DeletePlayers(w http.ResponseWriter, r *http.Request) {
	if err := h.tournamentService.DeletePlayers(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TournamentHandler) ReportMatch(w http.ResponseWriter, r *http.Request) {
	var input reportMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.WinnerID == nil || input.LoserID == nil {
		badRequestResponse(w, r, errors.New("winner_id and loser_id are required"))
		return
	}

	if err := h.tournamentService.ReportMatch(r.Context(), *input.WinnerID, *input.LoserID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *TournamentHandler) DeleteMatches(w http.ResponseWriter, r *http.Request) {
	if err := h.tournamentService.DeleteMatches(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TournamentHandler) Standings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.tournamentService.PlayerStandings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) Pairings(w http.ResponseWriter, r *http.Request) {
	pairings, err := h.tournamentService.SwissPairings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"pairings": pairings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.tournamentService.Summary(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, summary, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) PublishSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.snapshotService.PublishStandings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	headers := http.Header{"Location": []string{snapshot.URL}}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"snapshot": snapshot}, headers); err != nil {
		serverErrorResponse(w, r, err)
	}
}
