package backup

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/domain/entity"
)

// InfoInput represents the input for the backup info request.
type InfoInput struct {
	UserID uuid.UUID
}

// InfoOutput reports how many records a backup taken now would contain.
type InfoOutput struct {
	Properties     int
	MeterReadings  int
	Tariffs        int
	Expenses       int
	RecurringCosts int
	Attachments    int
	Users          int
}

// InfoUseCase counts the records inside the actor's backup scope, so the
// UI can show what an export would contain before downloading it.
type InfoUseCase struct {
	propertyRepo   adapter.PropertyRepository
	userRepo       adapter.UserRepository
	readingRepo    adapter.MeterReadingRepository
	tariffRepo     adapter.TariffRepository
	expenseRepo    adapter.ExpenseRepository
	recurringRepo  adapter.RecurringCostRepository
	attachmentRepo adapter.AttachmentRepository
	access         *access.Service
}

// NewInfoUseCase creates a new InfoUseCase instance.
func NewInfoUseCase(
	propertyRepo adapter.PropertyRepository,
	userRepo adapter.UserRepository,
	readingRepo adapter.MeterReadingRepository,
	tariffRepo adapter.TariffRepository,
	expenseRepo adapter.ExpenseRepository,
	recurringRepo adapter.RecurringCostRepository,
	attachmentRepo adapter.AttachmentRepository,
	accessService *access.Service,
) *InfoUseCase {
	return &InfoUseCase{
		propertyRepo:   propertyRepo,
		userRepo:       userRepo,
		readingRepo:    readingRepo,
		tariffRepo:     tariffRepo,
		expenseRepo:    expenseRepo,
		recurringRepo:  recurringRepo,
		attachmentRepo: attachmentRepo,
		access:         accessService,
	}
}

// Execute performs the counting.
func (uc *InfoUseCase) Execute(ctx context.Context, input InfoInput) (*InfoOutput, error) {
	actor, err := requireElevated(ctx, uc.access, input.UserID)
	if err != nil {
		return nil, err
	}

	properties, err := scopedProperties(ctx, uc.propertyRepo, actor)
	if err != nil {
		return nil, err
	}
	users, err := scopedUsers(ctx, uc.userRepo, actor)
	if err != nil {
		return nil, err
	}

	output := &InfoOutput{
		Properties: len(properties),
		Users:      len(users),
	}
	for _, p := range properties {
		readings, err := uc.readingRepo.FindByFilter(ctx, adapter.MeterReadingFilter{PropertyID: p.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to count meter readings: %w", err)
		}
		output.MeterReadings += len(readings)

		tariffs, err := uc.tariffRepo.FindByProperty(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count tariffs: %w", err)
		}
		output.Tariffs += len(tariffs)

		expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{PropertyID: p.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to count expenses: %w", err)
		}
		output.Expenses += len(expenses)

		costs, err := uc.recurringRepo.FindByProperty(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count recurring costs: %w", err)
		}
		output.RecurringCosts += len(costs)

		attached, err := uc.countAttachments(ctx, expenses, costs)
		if err != nil {
			return nil, err
		}
		output.Attachments += attached
	}
	return output, nil
}

func (uc *InfoUseCase) countAttachments(ctx context.Context, expenses []*entity.Expense, costs []*entity.RecurringCost) (int, error) {
	total := 0

	if len(expenses) > 0 {
		ids := make([]uuid.UUID, len(expenses))
		for i, e := range expenses {
			ids[i] = e.ID
		}
		counts, err := uc.attachmentRepo.CountByOwners(ctx, entity.AttachmentOwnerExpense, ids)
		if err != nil {
			return 0, fmt.Errorf("failed to count attachments: %w", err)
		}
		for _, n := range counts {
			total += int(n)
		}
	}

	if len(costs) > 0 {
		ids := make([]uuid.UUID, len(costs))
		for i, c := range costs {
			ids[i] = c.ID
		}
		counts, err := uc.attachmentRepo.CountByOwners(ctx, entity.AttachmentOwnerRecurringCost, ids)
		if err != nil {
			return 0, fmt.Errorf("failed to count attachments: %w", err)
		}
		for _, n := range counts {
			total += int(n)
		}
	}

	return total, nil
}
