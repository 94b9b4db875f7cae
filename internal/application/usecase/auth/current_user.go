package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// CurrentUserInput represents the input for resolving the logged-in user.
type CurrentUserInput struct {
	UserID uuid.UUID
}

// CurrentUserOutput represents the output of resolving the logged-in user.
type CurrentUserOutput struct {
	User *UserOutput
}

// CurrentUserUseCase resolves the account behind a validated token.
type CurrentUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewCurrentUserUseCase creates a new CurrentUserUseCase instance.
func NewCurrentUserUseCase(userRepo adapter.UserRepository) *CurrentUserUseCase {
	return &CurrentUserUseCase{userRepo: userRepo}
}

// Execute performs the lookup.
func (uc *CurrentUserUseCase) Execute(ctx context.Context, input CurrentUserInput) (*CurrentUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, domainerror.ErrUserNotFound
	}
	return &CurrentUserOutput{User: newUserOutput(user)}, nil
}
