package adapter

import "errors"

// Sentinel errors returned by the record adapter. HTTP statuses are mapped to
// them by mapHTTPError so callers can use [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("record not found")
	ErrConflict            = errors.New("conflict")
	ErrRateLimited         = errors.New("record api rate limit exceeded")
	ErrUnavailable         = errors.New("record api unavailable")
	ErrInternalServerError = errors.New("record api internal error")
	ErrBadGateway          = errors.New("record api bad gateway")
	ErrRequestFailed       = errors.New("record api request failed")
	ErrInvalidResponse     = errors.New("invalid record api response")
	ErrInvalidBaseURL      = errors.New("invalid record api base url")
)

// IsAuthError reports whether err is an authentication or authorization
// failure reported by the record API.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden)
}
