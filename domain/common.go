package domain

import (
	"errors"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

var (
	MesaageUserNotAllowed     = "user not allowed"
	MessageFailedBodyRequest  = "failed to parse request body"
	MessageFailedGetToken     = "failed to get token"
	MessageFailedTokenInvalid = "failed to token invalid"

	// Error kinds. Every domain error wraps exactly one of them.
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
	ErrNotFound        = errors.New("not found")

	ErrDatabase       = errors.New("database access failed")
	ErrParseUUID      = InvalidArgument("failed to parse UUID")
	ErrInvalidPaging  = InvalidArgument("page must be >= 0 and size must be > 0")
	ErrInvalidSort    = InvalidArgument("unsupported sort field")
	ErrInvalidFilter  = InvalidArgument("unsupported filter field")
	ErrNameRequired   = InvalidArgument("name is required")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Unwrap() error {
	return e.kind
}

func InvalidArgument(msg string) error {
	return &kindError{kind: ErrInvalidArgument, msg: msg}
}

func Conflict(msg string) error {
	return &kindError{kind: ErrConflict, msg: msg}
}

func NotFound(msg string) error {
	return &kindError{kind: ErrNotFound, msg: msg}
}

// ParseID parses a path or body identifier, reporting malformed values as
// ErrParseUUID.
func ParseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrParseUUID
	}
	return parsed, nil
}
