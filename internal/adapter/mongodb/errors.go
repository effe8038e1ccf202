package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lenasun/kebab-api/internal/domain"
)

// MapError converts driver errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", entity, err)
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s: %w", entity, domain.ErrNotFound)
	}

	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", entity, domain.ErrAlreadyExists)
	}

	// Document failed server-side schema validation.
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 121 {
				return fmt.Errorf("%s: %w", entity, domain.ErrValidation)
			}
		}
	}

	return fmt.Errorf("%s: %w", entity, err)
}
