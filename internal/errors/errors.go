package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrPropertyNotFound is returned when a property is not found.
	ErrPropertyNotFound = errors.New("property not found")
	// ErrApplicationNotFound is returned when an application is not found.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrWishlistItemNotFound is returned when a wishlist item is not found.
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
	// ErrForbidden is returned when the resource exists but the actor lacks rights to it.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidRole is returned when a role is not one of agent or buyer.
	ErrInvalidRole = errors.New("invalid role")
	// ErrInvalidStatus is returned when a status transition names an unknown status.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrApplicationDecided is returned when an application was already approved or rejected.
	ErrApplicationDecided = errors.New("application already decided")
	// ErrAlreadyInWishlist is returned when the (user, property) pair already exists.
	ErrAlreadyInWishlist = errors.New("property already in wishlist")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrPropertyNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROPERTY_NOT_FOUND")
	case ErrApplicationNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "APPLICATION_NOT_FOUND")
	case ErrWishlistItemNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "WISHLIST_ITEM_NOT_FOUND")
	case ErrForbidden:
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case ErrInvalidRole:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case ErrInvalidStatus:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STATUS")
	case ErrApplicationDecided:
		return NewHTTPError(http.StatusConflict, err.Error(), "APPLICATION_DECIDED")
	case ErrAlreadyInWishlist:
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_IN_WISHLIST")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
