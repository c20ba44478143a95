package usecase

import (
	stderrors "errors"
	"regexp"

	"github.com/google/uuid"

	"nanocart/pkg/errors"
)

var (
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

func generateUUID() string {
	return uuid.New().String()
}

func isNotFound(err error) bool {
	return errors.Is(err, "NOT_FOUND")
}

// wrap passes AppErrors through untouched and turns anything else into a 500.
func wrap(err error, message string) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return err
	}
	return errors.Internal(message, err)
}

// notFoundAs replaces a NOT_FOUND from a repository with a caller-specific error.
func notFoundAs(err error, replacement *errors.AppError, message string) error {
	if isNotFound(err) {
		return replacement
	}
	return wrap(err, message)
}
