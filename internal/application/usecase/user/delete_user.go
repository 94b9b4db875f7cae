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

// DeleteUserInput represents the input for account deletion.
type DeleteUserInput struct {
	UserID       uuid.UUID
	TargetUserID uuid.UUID
	IPAddress    string
}

// DeleteUserUseCase handles account deletion under the role matrix. An
// account cannot delete itself.
type DeleteUserUseCase struct {
	userRepo adapter.UserRepository
	access   *access.Service
	recorder *activity.Recorder
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase instance.
func NewDeleteUserUseCase(userRepo adapter.UserRepository, accessService *access.Service, recorder *activity.Recorder) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo, access: accessService, recorder: recorder}
}

// Execute performs the deletion.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, input DeleteUserInput) error {
	actor, err := uc.access.User(ctx, input.UserID)
	if err != nil {
		return err
	}
	if input.UserID == input.TargetUserID {
		return domainerror.ErrInsufficientRole
	}

	target, err := uc.userRepo.FindByID(ctx, input.TargetUserID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if target == nil {
		return domainerror.ErrUserNotFound
	}
	if !managedBy(actor, target) {
		return domainerror.ErrInsufficientRole
	}

	if err := uc.userRepo.Delete(ctx, input.TargetUserID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	uc.recorder.Record(ctx, actor, entity.ActivityActionDelete, "user", &input.TargetUserID, target.Username, input.IPAddress)
	return nil
}
