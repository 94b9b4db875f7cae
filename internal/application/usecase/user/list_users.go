package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/domain/entity"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// ListUsersInput represents the input for listing users.
type ListUsersInput struct {
	UserID uuid.UUID
}

// ListUsersOutput represents the output of listing users.
type ListUsersOutput struct {
	Users []*UserOutput
}

// ListUsersUseCase lists the accounts visible to the actor.
type ListUsersUseCase struct {
	userRepo adapter.UserRepository
	access   *access.Service
}

// NewListUsersUseCase creates a new ListUsersUseCase instance.
func NewListUsersUseCase(userRepo adapter.UserRepository, accessService *access.Service) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, access: accessService}
}

// Execute performs the listing.
func (uc *ListUsersUseCase) Execute(ctx context.Context, input ListUsersInput) (*ListUsersOutput, error) {
	actor, err := uc.access.User(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if actor.Role == entity.RoleUser {
		return nil, domainerror.ErrInsufficientRole
	}

	users, err := uc.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	output := &ListUsersOutput{Users: make([]*UserOutput, 0, len(users))}
	for _, u := range users {
		if !actor.IsAdmin() && !managedBy(actor, u) {
			continue
		}
		output.Users = append(output.Users, newUserOutput(u))
	}
	return output, nil
}
