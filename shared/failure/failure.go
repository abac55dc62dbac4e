package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
//
// The code doubles as the error kind of the domain: 404 for unknown entities, 400 for caller
// misuse (malformed or inconsistent input), 409 for declined business outcomes such as an
// unavailable room or an already paid bill, and 500 for persistence faults.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure for an entity that does not exist, e.g. "booking 1a2b3c4d not found".
func NotFound(entityName, id string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("%s %s not found", entityName, id),
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	return err != nil && GetCode(err) == http.StatusNotFound
}

func IsBadRequest(err error) bool {
	return err != nil && GetCode(err) == http.StatusBadRequest
}

func IsConflict(err error) bool {
	return err != nil && GetCode(err) == http.StatusConflict
}
