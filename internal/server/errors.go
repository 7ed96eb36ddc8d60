package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/applyday/internal/applications"
	"github.com/jonathan/applyday/internal/backend"
	"github.com/jonathan/applyday/internal/types"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a resource the backend does not have
type ErrNotFound struct {
	Resource string
	ID       int64
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %d", e.Resource, e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrNotFound:
		return http.StatusNotFound
	}

	var be *backend.Error
	if errors.As(err, &be) {
		if be.StatusCode == http.StatusNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// validationError converts request and filter validation failures to
// *ErrValidation. Other errors pass through unchanged.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		return &ErrValidation{Field: fe.Field(), Message: msg}
	}

	var fe *applications.InvalidFilterError
	if errors.As(err, &fe) {
		return &ErrValidation{Field: fe.Field, Message: fmt.Sprintf("unknown value %q", fe.Value)}
	}

	switch {
	case errors.Is(err, types.ErrNoReportScope):
		return &ErrValidation{Field: "job_ids", Message: err.Error()}
	case errors.Is(err, types.ErrIncompleteRange):
		return &ErrValidation{Field: "start_at", Message: err.Error()}
	}
	return err
}

// notFound turns a backend 404 into *ErrNotFound for resource.
func notFound(err error, resource string, id int64) error {
	if backend.IsNotFound(err) {
		return &ErrNotFound{Resource: resource, ID: id}
	}
	return err
}

// pathID parses the {id} path value as a positive integer.
func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &ErrValidation{Field: "id", Message: fmt.Sprintf("invalid id %q", raw)}
	}
	return id, nil
}
