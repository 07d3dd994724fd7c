package usecase

import (
	"errors"
	"fmt"
	"net/http"

	"checkout/internal/domain/model"
	repo "checkout/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// repo/domainのエラーをHTTPErrorに寄せる
func toHTTPError(err error) error {
	if _, ok := AsHTTPError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, model.ErrItemNotFound):
		return NewHTTPError(http.StatusBadRequest, "unknown item")
	case errors.Is(err, model.ErrInvalidOrder):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case repo.IsDuplicateKey(err):
		return NewHTTPError(http.StatusConflict, "already exists")
	case errors.Is(err, repo.ErrTxUnavailable):
		return NewHTTPError(http.StatusInternalServerError, "transaction unavailable")
	default:
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
}
