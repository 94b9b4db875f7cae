package backup

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/domain/entity"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// requireElevated loads the actor and rejects plain users. Backups expose
// records across users, so only admins and managers may touch them.
func requireElevated(ctx context.Context, accessService *access.Service, userID uuid.UUID) (*entity.User, error) {
	actor, err := accessService.User(ctx, userID)
	if err != nil {
		return nil, err
	}
	if actor.Role == entity.RoleUser {
		return nil, domainerror.ErrInsufficientRole
	}
	return actor, nil
}

// scopedProperties returns the properties the actor may back up or count:
// everything for admins, the assigned set for managers.
func scopedProperties(ctx context.Context, propertyRepo adapter.PropertyRepository, actor *entity.User) ([]*entity.Property, error) {
	if actor.IsAdmin() {
		properties, err := propertyRepo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list properties: %w", err)
		}
		return properties, nil
	}
	if len(actor.PropertyIDs) == 0 {
		return nil, nil
	}
	properties, err := propertyRepo.FindByIDs(ctx, actor.PropertyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}

// scopedUsers returns the accounts the actor may export: everyone for
// admins, the manager themself plus the accounts they created otherwise.
func scopedUsers(ctx context.Context, userRepo adapter.UserRepository, actor *entity.User) ([]*entity.User, error) {
	users, err := userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if actor.IsAdmin() {
		return users, nil
	}
	scoped := make([]*entity.User, 0, len(users))
	for _, u := range users {
		if u.ID == actor.ID || (u.CreatedBy != nil && *u.CreatedBy == actor.ID) {
			scoped = append(scoped, u)
		}
	}
	return scoped, nil
}
