package handlers

import (
	"net/http"

	"github.com/playsphere/playsphere/services"
)

// RegistrationHandler serves coach onboarding and player application forms.
type RegistrationHandler struct {
	service services.RegistrationService
}

func NewRegistrationHandler(service services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

func (h *RegistrationHandler) RegisterCoach(w http.ResponseWriter, r *http.Request) {
	var input services.CoachInput
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

	coach, err := h.service.RegisterCoach(r.Context(), input, photo)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"coach": coach}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RegistrationHandler) GetCoach(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	coach, err := h.service.GetCoach(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"coach": coach}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RegistrationHandler) ListCoaches(w http.ResponseWriter, r *http.Request) {
	coaches, err := h.service.ListCoaches(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"coaches": coaches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RegistrationHandler) DeleteCoach(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.service.DeleteCoach(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"message": "coach deleted"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RegistrationHandler) SubmitPlayerForm(w http.ResponseWriter, r *http.Request) {
	var input services.PlayerRegistrationInput
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

	reg, err := h.service.SubmitPlayerForm(r.Context(), input, photo)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"registration": reg}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RegistrationHandler) GetPlayerForm(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	reg, err := h.service.GetPlayerForm(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"registration": reg}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RegistrationHandler) ListPlayerForms(w http.ResponseWriter, r *http.Request) {
	regs, err := h.service.ListPlayerForms(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"registrations": regs}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RegistrationHandler) DeletePlayerForm(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.service.DeletePlayerForm(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"message": "registration deleted"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
