package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/application/usecase/activity"
	"github.com/property-manager/backend/internal/domain/entity"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// UpdateUserInput represents the input for account updates. Password is
// changed only when non-empty; Role only when non-empty and the actor is an
// admin.
type UpdateUserInput struct {
	UserID       uuid.UUID
	TargetUserID uuid.UUID
	Password     string
	Role         string
	PropertyIDs  []uuid.UUID
	IPAddress    string
}

// UpdateUserOutput represents the output of account updates.
type UpdateUserOutput struct {
	User *UserOutput
}

// UpdateUserUseCase handles account updates under the role matrix.
type UpdateUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	access          *access.Service
	recorder        *activity.Recorder
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase instance.
func NewUpdateUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	accessService *access.Service,
	recorder *activity.Recorder,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		access:          accessService,
		recorder:        recorder,
	}
}

// Execute performs the update.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, input UpdateUserInput) (*UpdateUserOutput, error) {
	actor, err := uc.access.User(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	target, err := uc.userRepo.FindByID(ctx, input.TargetUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if target == nil {
		return nil, domainerror.ErrUserNotFound
	}
	if !managedBy(actor, target) {
		return nil, domainerror.ErrInsufficientRole
	}

	if input.Role != "" {
		role := entity.Role(input.Role)
		if !entity.ValidRole(role) {
			return nil, domainerror.ErrInvalidRole
		}
		if !actor.IsAdmin() && role != target.Role {
			return nil, domainerror.ErrInsufficientRole
		}
		target.Role = role
	}

	if input.Password != "" {
		hash, err := uc.passwordService.HashPassword(input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		target.PasswordHash = hash
	}

	if input.PropertyIDs != nil {
		if !actor.IsAdmin() {
			for _, id := range input.PropertyIDs {
				if !actor.CanAccessProperty(id) {
					return nil, domainerror.ErrPropertyAccessDenied
				}
			}
		}
		target.PropertyIDs = input.PropertyIDs
	}

	if err := uc.userRepo.Update(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.recorder.Record(ctx, actor, entity.ActivityActionUpdate, "user", &target.ID, target.Username, input.IPAddress)

	return &UpdateUserOutput{User: newUserOutput(target)}, nil
}
