package errors

import (
	"errors"
	"fmt"
)

const (
	STAGE_BEFORE_REQUEST = "before-request"
	STAGE_REQUEST        = "request"
	STAGE_AFTER_REQUEST  = "after-request"

	TYPE_UNKNOWN      = "unknown"
	TYPE_JSON_PARSE   = "json"
	TYPE_REQUEST_PREP = "request-prep"
	TYPE_IO           = "io"
	TYPE_HTTP_STATUS  = "not-ok-http-status"
	TYPE_RATE_LIMITED = "rate-limited"
	TYPE_STEAM_FAILED = "steam-success-false"
)

// ApiError describes a failed call to the Steam Community Market.
//
// Stage tells where in the request lifecycle the failure happened, Type
// classifies it. Steam reports some failures inside a 200 response with
// "success": false; those surface as TYPE_STEAM_FAILED. HTTP 429 surfaces
// as TYPE_RATE_LIMITED so callers can tell throttling apart from other
// status errors.
type ApiError struct {
	Stage          string
	Type           string
	SourceErr      error
	Body           []byte
	HttpStatusCode int
}

var _ error = &ApiError{}

func (e *ApiError) Error() string {
	var err string
	if e.SourceErr != nil {
		err = e.SourceErr.Error()
	} else {
		err = string(e.Body)
	}
	return fmt.Sprintf(
		"http request to Steam failed during '%s' stage with error type '%s', httpStatus: '%d'; original err: %v",
		e.Stage, e.Type, e.HttpStatusCode, err,
	)
}

// Transient reports whether a retry has a chance of succeeding: transport
// failures, throttling and 5xx statuses are transient, everything else is
// not.
func (e *ApiError) Transient() bool {
	switch e.Type {
	case TYPE_IO, TYPE_RATE_LIMITED:
		return true
	case TYPE_HTTP_STATUS:
		return e.HttpStatusCode >= 500
	}
	return false
}

// Is method is required by errors.Is() to properly distinguish between
// different types -vs- same pointer to the same type.
// Without it, errors.Is(err, &ApiError{}) returns false:
// ok := errors.Is(errors.Join(&steam_errors.ApiError{}), &steam_errors.ApiError{})
// ^ would be false
func (e *ApiError) Is(other error) bool {
	var err *ApiError
	return errors.As(other, &err) && err != nil
}
