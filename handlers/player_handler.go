package handlers

import (
	"net/http"
	"strconv"

	"github.com/playsphere/playsphere/models"
	"github.com/playsphere/playsphere/repositories"
	"github.com/playsphere/playsphere/services"
)

type PlayerHandler struct {
	service services.PlayerService
}

func NewPlayerHandler(service services.PlayerService) *PlayerHandler {
	return &PlayerHandler{service: service}
}

// Create accepts a multipart form with a JSON data field and an optional
// photo part.
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.PlayerInput
	if err := readMultipartJSON(r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	photo, closer, err := photoFromForm(r, "photo")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if closer != nil {
		defer closer.Close()
	}

	player, err := h.service.Create(r.Context(), input, photo)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.service.Get(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// List supports optional sport and team_id query filters.
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter repositories.PlayerFilter

	if sport := r.URL.Query().Get("sport"); sport != "" {
		s := models.Sport(sport)
		if !s.Valid() {
			badRequestResponse(w, r, errInvalidSportFilter)
			return
		}
		filter.Sport = &s
	}
	if teamIDStr := r.URL.Query().Get("team_id"); teamIDStr != "" {
		teamID, err := strconv.Atoi(teamIDStr)
		if err != nil || teamID <= 0 {
			badRequestResponse(w, r, errInvalidTeamFilter)
			return
		}
		filter.TeamID = &teamID
	}

	players, err := h.service.List(r.Context(), filter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"players": players}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.PlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AssignTeam moves a player onto a team, or off every team when team_id
// is null.
func (h *PlayerHandler) AssignTeam(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		TeamID *int `json:"team_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.service.AssignTeam(r.Context(), id, input.TeamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PlayerHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	photo, closer, err := photoFromForm(r, "photo")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if photo == nil {
		badRequestResponse(w, r, errMissingPhoto)
		return
	}
	defer closer.Close()

	player, err := h.service.UpdatePhoto(r.Context(), id, photo)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"message": "player deleted"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
