package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/playsphere/playsphere/scoring"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The frontend is served from a different origin during development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// LiveHandler upgrades HTTP connections and subscribes them to a match room.
type LiveHandler struct {
	hub    *scoring.Hub
	logger *slog.Logger
}

func NewLiveHandler(hub *scoring.Hub, logger *slog.Logger) *LiveHandler {
	return &LiveHandler{hub: hub, logger: logger}
}

// Subscribe joins a websocket client to the room for one match, identified
// by sport and match id in the URL. Room names are lowercase, matching what
// the match services broadcast to.
func (h *LiveHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	sport := strings.ToLower(chi.URLParam(r, "sport"))
	switch sport {
	case "cricket", "football", "badminton":
	default:
		badRequestResponse(w, r, errInvalidSportFilter)
		return
	}
	matchID, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	client := &scoring.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: scoring.RoomID(sport, matchID),
	}
	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
