package database

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	apperrors "github.com/skillsenselab/recruitd/internal/errors"
)

// IsNotFoundError checks if the error is a GORM record-not-found error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicateError checks if the error is a GORM duplicate-key violation.
func IsDuplicateError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// FromDatabase converts a database error to an AppError. The raw driver
// error stays in Cause and never reaches the client body.
func FromDatabase(err error, resource string) *apperrors.AppError {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(resource, "")
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return (&apperrors.AppError{
			Code:       apperrors.ErrCodeAlreadyExists,
			Message:    fmt.Sprintf("A %s with these details already exists.", resource),
			HTTPStatus: http.StatusConflict,
			Retryable:  false,
		}).WithCause(err)
	}

	return apperrors.DatabaseError(err)
}
