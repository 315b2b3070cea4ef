package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/marketplace/internal/domain"
)

// storeErr turns repository errors into the domain taxonomy. Errors that are
// already domain errors pass through untouched.
func storeErr(err error, what string) error {
	if err == nil {
		return nil
	}
	var de *domain.Error
	switch {
	case errors.As(err, &de):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NotFound(what)
	case isDuplicate(err):
		return domain.Conflict(what + " already exists")
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

// isDuplicate also matches raw driver messages for dialects gorm cannot
// translate.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key")
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
