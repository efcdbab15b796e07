package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/Dosada05/swiss-tournament/live"
	"github.com/Dosada05/swiss-tournament/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Standings are public; any origin may watch them.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WebSocketHandler struct {
	hub               *live.Hub
	tournamentService services.TournamentService
}

func NewWebSocketHandler(hub *live.Hub, ts services.TournamentService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:               hub,
		tournamentService: ts,
	}
}

// ServeWs streams standings updates. The current standings are sent first.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	var initial *live.Message
	standings, err := h.tournamentService.PlayerStandings(r.Context())
	if err != nil {
		slog.WarnContext(r.Context(), "failed to load initial standings for websocket client", slog.Any("error", err))
	} else {
		initial = &live.Message{Type: live.MessageStandingsUpdated, Reason: "connected", Standings: standings}
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		slog.WarnContext(r.Context(), "websocket upgrade failed", slog.Any("error", err))
		return
	}
	h.hub.Attach(conn, initial)
}
