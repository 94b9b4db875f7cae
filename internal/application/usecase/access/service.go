// Package access centralizes the per-property authorization checks shared
// by the other use cases.
package access

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/domain/entity"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// Service resolves the acting user and enforces property-level access.
type Service struct {
	userRepo adapter.UserRepository
}

// NewService creates a new access Service instance.
func NewService(userRepo adapter.UserRepository) *Service {
	return &Service{userRepo: userRepo}
}

// User loads the acting user, including property assignments.
func (s *Service) User(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

// RequireProperty loads the acting user and verifies they may read and
// write records of the given property. Admins pass for every property;
// everyone else only for properties assigned to them.
func (s *Service) RequireProperty(ctx context.Context, userID, propertyID uuid.UUID) (*entity.User, error) {
	user, err := s.User(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.CanAccessProperty(propertyID) {
		return nil, domainerror.ErrPropertyAccessDenied
	}
	return user, nil
}
