package handlers

import (
	"net/http"

	"github.com/playsphere/playsphere/services"
)

// ProfileHandler serves the aggregated read-side views: player and team
// profiles, head-to-head comparison, the home feed and the admin dashboard.
type ProfileHandler struct {
	service services.ProfileService
}

func NewProfileHandler(service services.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) PlayerProfile(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	profile, err := h.service.PlayerProfile(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"profile": profile}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ProfileHandler) TeamProfile(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	profile, err := h.service.TeamProfile(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"profile": profile}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Compare builds side-by-side radar profiles for two players of the same
// sport.
func (h *ProfileHandler) Compare(w http.ResponseWriter, r *http.Request) {
	player1ID, err := getIDFromURL(r, "player1ID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	player2ID, err := getIDFromURL(r, "player2ID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	comparison, err := h.service.Compare(r.Context(), player1ID, player2ID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"comparison": comparison}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ProfileHandler) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.service.Home(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"home": home}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Matches returns every match of every sport, grouped by display status.
func (h *ProfileHandler) Matches(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.Matches(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": overview}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// LiveAndUpcoming returns live matches plus the upcoming ones whose date
// is still ahead, every sport together.
func (h *ProfileHandler) LiveAndUpcoming(w http.ResponseWriter, r *http.Request) {
	matches, err := h.service.LiveAndUpcoming(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ProfileHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"dashboard": dashboard}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
