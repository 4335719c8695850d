package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/playsphere/playsphere/models"
	"github.com/playsphere/playsphere/repositories"
	"github.com/playsphere/playsphere/scoring"
	"github.com/playsphere/playsphere/services"
)

type jsonResponse map[string]interface{}

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case err.Error() == "http: request body too large":
			return fmt.Errorf("body must not be larger than %d bytes", maxBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := jsonResponse{"error": message}
	if err := writeJSON(w, status, env, nil); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	message := "the server encountered a problem and could not process your request"
	errorResponse(w, r, http.StatusInternalServerError, message)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	errorResponse(w, r, http.StatusNotFound, message)
}

func conflictResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusConflict, message)
}

func unauthorizedResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusUnauthorized, message)
}

func forbiddenResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusForbidden, message)
}

const maxUploadSize = 10 << 20 // 10MB

var (
	errInvalidSportFilter = errors.New("invalid sport filter")
	errInvalidTeamFilter  = errors.New("invalid team_id filter")
	errMissingPhoto       = errors.New("form must contain a photo part")
)

// photoFromForm extracts an optional image part from a multipart request.
// The returned closer must be called once the upload has been consumed.
func photoFromForm(r *http.Request, field string) (*services.PhotoUpload, io.Closer, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	return &services.PhotoUpload{
		ContentType: header.Header.Get("Content-Type"),
		Reader:      file,
	}, file, nil
}

// readMultipartJSON decodes the "data" form field of a multipart request.
func readMultipartJSON(r *http.Request, dst interface{}) error {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return fmt.Errorf("failed to parse multipart form: %w", err)
	}
	payload := r.FormValue("data")
	if payload == "" {
		return errors.New("form must contain a data field")
	}
	return json.Unmarshal([]byte(payload), dst)
}

func getIDFromURL(r *http.Request, param string) (int, error) {
	idStr := chi.URLParam(r, param)
	if idStr == "" {
		return 0, fmt.Errorf("missing %s in URL path", param)
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s value", param)
	}
	return id, nil
}

// statusFilterFromQuery parses the optional status query parameter. Only
// stored statuses are accepted; "due" is a display artefact, not a filter.
func statusFilterFromQuery(r *http.Request) (*models.MatchStatus, error) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return nil, nil
	}
	status := models.MatchStatus(raw)
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status filter %q", raw)
	}
	return &status, nil
}

// mapServiceErrorToHTTP converts service and engine errors to HTTP responses.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	// Not found
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrPlayerNotFound),
		errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrCoachNotFound),
		errors.Is(err, services.ErrMatchNotFound),
		errors.Is(err, services.ErrRegistrationNotFound):
		notFoundResponse(w, r)

	// Conflicts
	case errors.Is(err, services.ErrEmailConflict),
		errors.Is(err, services.ErrTeamConflict):
		conflictResponse(w, r, err.Error())
	case errors.Is(err, services.ErrScoreConflict),
		errors.Is(err, repositories.ErrVersionConflict):
		conflictResponse(w, r, err.Error())

	// Validation and business rules
	case errors.Is(err, services.ErrValidationFailed),
		errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrVenueRequired),
		errors.Is(err, services.ErrSameTeam),
		errors.Is(err, services.ErrSportMismatch),
		errors.Is(err, services.ErrRosterMismatch),
		errors.Is(err, services.ErrNoPlayersEnrolled),
		errors.Is(err, services.ErrTossWinnerNotInMatch),
		errors.Is(err, services.ErrUnsupportedImageType):
		badRequestResponse(w, r, err)

	// Scoring engine rejections
	case errors.Is(err, scoring.ErrPlayerNotEnrolled),
		errors.Is(err, scoring.ErrDismissalRequired),
		errors.Is(err, scoring.ErrUnknownEventKind),
		errors.Is(err, scoring.ErrNegativeRuns),
		errors.Is(err, scoring.ErrInvalidDismissal),
		errors.Is(err, scoring.ErrInvalidStatus):
		badRequestResponse(w, r, err)
	case errors.Is(err, scoring.ErrMatchNotLive),
		errors.Is(err, scoring.ErrStatusRegression):
		conflictResponse(w, r, err.Error())

	// Authentication
	case errors.Is(err, services.ErrInvalidCredentials):
		unauthorizedResponse(w, r, err.Error())

	default:
		serverErrorResponse(w, r, err)
	}
}
