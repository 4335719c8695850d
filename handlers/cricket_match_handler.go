package handlers

import (
	"net/http"

	"github.com/playsphere/playsphere/models"
	"github.com/playsphere/playsphere/scoring"
	"github.com/playsphere/playsphere/services"
)

type CricketMatchHandler struct {
	service services.CricketMatchService
}

func NewCricketMatchHandler(service services.CricketMatchService) *CricketMatchHandler {
	return &CricketMatchHandler{service: service}
}

func (h *CricketMatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateCricketMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.service.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CricketMatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.service.Get(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CricketMatchHandler) List(w http.ResponseWriter, r *http.Request) {
	status, err := statusFilterFromQuery(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.service.List(r.Context(), status)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetStatus advances the match lifecycle. A toss record may accompany the
// transition to live.
func (h *CricketMatchHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Status models.MatchStatus  `json:"status"`
		Toss   *services.TossInput `json:"toss,omitempty"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.service.SetStatus(r.Context(), id, input.Status, input.Toss)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ApplyBall records a single delivery against a live match.
func (h *CricketMatchHandler) ApplyBall(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Event     scoring.BallKind     `json:"event"`
		Runs      int                  `json:"runs"`
		Dismissal models.DismissalType `json:"dismissal,omitempty"`
		BatsmanID int                  `json:"batsman_id"`
		BowlerID  int                  `json:"bowler_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	ev := scoring.BallEvent{
		Kind:      input.Event,
		Runs:      input.Runs,
		Dismissal: input.Dismissal,
		BatsmanID: input.BatsmanID,
		BowlerID:  input.BowlerID,
	}
	match, err := h.service.ApplyBall(r.Context(), id, ev)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CricketMatchHandler) AddHighlight(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Highlight string `json:"highlight"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.service.AddHighlight(r.Context(), id, input.Highlight)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CricketMatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"message": "match deleted"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
