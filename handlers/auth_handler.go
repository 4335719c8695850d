package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/playsphere/playsphere/models"
	"github.com/playsphere/playsphere/services"
)

type AuthHandler struct {
	service   services.AuthService
	jwtSecret []byte
}

func NewAuthHandler(service services.AuthService, jwtSecret []byte) *AuthHandler {
	return &AuthHandler{service: service, jwtSecret: jwtSecret}
}

func (h *AuthHandler) signToken(subjectID int, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": subjectID,
		"role":    role,
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.jwtSecret)
}

// RegisterAdmin creates an admin account.
func (h *AuthHandler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterAdminInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	admin, err := h.service.RegisterAdmin(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"admin": admin}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// LoginAdmin verifies admin credentials and returns a signed token.
func (h *AuthHandler) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := readJSON(w, r, &creds); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	admin, err := h.service.LoginAdmin(r.Context(), creds)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	tokenString, err := h.signToken(admin.ID, "admin")
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	resp := jsonResponse{"token": tokenString, "admin": admin}
	if err := writeJSON(w, http.StatusOK, resp, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// LoginUser signs a visitor in by email alone.
func (h *AuthHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string `json:"email"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	user, err := h.service.LoginUser(r.Context(), input.Email)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	tokenString, err := h.signToken(user.ID, "user")
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	resp := jsonResponse{"token": tokenString, "user": user}
	if err := writeJSON(w, http.StatusOK, resp, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
