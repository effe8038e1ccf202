// Package kebab manages the kebab menu.
package kebab

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lenasun/kebab-api/internal/domain"
)

type kebabRepo interface {
	List(ctx context.Context) ([]domain.Kebab, error)
	Create(ctx context.Context, k domain.Kebab) (*domain.Kebab, error)
}

// Service provides kebab menu operations.
type Service struct {
	kebabs kebabRepo
	log    *slog.Logger
}

// NewService creates a new kebab service.
func NewService(log *slog.Logger, kebabs kebabRepo) *Service {
	return &Service{
		kebabs: kebabs,
		log:    log.With("service", "kebab"),
	}
}

// List returns the whole menu.
func (s *Service) List(ctx context.Context) ([]domain.Kebab, error) {
	kebabs, err := s.kebabs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list kebabs: %w", err)
	}
	return kebabs, nil
}

// Create validates input and adds a kebab to the menu.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Kebab, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	k, err := s.kebabs.Create(ctx, input.toDomain())
	if err != nil {
		return nil, fmt.Errorf("create kebab: %w", err)
	}

	s.log.InfoContext(ctx, "kebab created",
		slog.String("kebab_id", k.ID),
		slog.String("name", k.Name),
	)

	return k, nil
}
