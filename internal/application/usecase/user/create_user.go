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

// CreateUserInput represents the input for account creation.
type CreateUserInput struct {
	UserID      uuid.UUID
	Username    string
	Password    string
	Role        string
	PropertyIDs []uuid.UUID
	IPAddress   string
}

// CreateUserOutput represents the output of account creation.
type CreateUserOutput struct {
	User *UserOutput
}

// CreateUserUseCase handles account creation. Admins create any role;
// managers create only plain users, limited to properties the manager can
// access.
type CreateUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	access          *access.Service
	recorder        *activity.Recorder
}

// NewCreateUserUseCase creates a new CreateUserUseCase instance.
func NewCreateUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	accessService *access.Service,
	recorder *activity.Recorder,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		access:          accessService,
		recorder:        recorder,
	}
}

// Execute performs the creation.
func (uc *CreateUserUseCase) Execute(ctx context.Context, input CreateUserInput) (*CreateUserOutput, error) {
	actor, err := uc.access.User(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	role := entity.Role(input.Role)
	if !entity.ValidRole(role) {
		return nil, domainerror.ErrInvalidRole
	}
	switch actor.Role {
	case entity.RoleAdmin:
	case entity.RoleManager:
		if role != entity.RoleUser {
			return nil, domainerror.ErrInsufficientRole
		}
		for _, id := range input.PropertyIDs {
			if !actor.CanAccessProperty(id) {
				return nil, domainerror.ErrPropertyAccessDenied
			}
		}
	default:
		return nil, domainerror.ErrInsufficientRole
	}

	taken, err := uc.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, domainerror.ErrUsernameTaken
	}

	hash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := entity.NewUser(input.Username, hash, role, &actor.ID)
	account.PropertyIDs = input.PropertyIDs
	if err := uc.userRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.recorder.Record(ctx, actor, entity.ActivityActionCreate, "user", &account.ID, account.Username, input.IPAddress)

	return &CreateUserOutput{User: newUserOutput(account)}, nil
}
