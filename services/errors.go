package services

import "errors"

// Errors shared across services and the HTTP error mapping.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business rules
	ErrValidationFailed     = errors.New("validation failed")
	ErrPasswordTooShort     = errors.New("password is too short")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrNameRequired         = errors.New("name is required")
	ErrVenueRequired        = errors.New("venue is required")
	ErrSameTeam             = errors.New("a match needs two different sides")
	ErrSportMismatch        = errors.New("participant sport does not match the match sport")
	ErrRosterMismatch       = errors.New("player does not belong to either side of the match")
	ErrNoPlayersEnrolled    = errors.New("a match needs at least one enrolled player per side")
	ErrTossWinnerNotInMatch = errors.New("toss winner must be one of the match teams")

	// Conflicts
	ErrEmailConflict = errors.New("email address is already in use")
	ErrTeamConflict  = errors.New("team name is already in use")
	ErrScoreConflict = errors.New("match is being scored concurrently, retry")

	// Entity-specific not-found errors
	ErrPlayerNotFound       = errors.New("player not found")
	ErrTeamNotFound         = errors.New("team not found")
	ErrCoachNotFound        = errors.New("coach not found")
	ErrMatchNotFound        = errors.New("match not found")
	ErrRegistrationNotFound = errors.New("player registration not found")

	// Uploads
	ErrUnsupportedImageType = errors.New("unsupported image content type")
)
