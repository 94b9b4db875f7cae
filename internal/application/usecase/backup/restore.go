package backup

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/application/usecase/activity"
	"github.com/property-manager/backend/internal/domain/entity"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// restoredPassword is the initial password of accounts created by a
// restore. Password hashes never leave the database in a backup.
const restoredPassword = "changeme"

// RestoreBackupInput represents the input for restoring a backup.
type RestoreBackupInput struct {
	UserID    uuid.UUID
	Data      []byte
	IPAddress string
}

// RestoreBackupOutput reports how many records the restore created.
// Records that already existed or could not be mapped are not counted.
type RestoreBackupOutput struct {
	Properties     int
	Users          int
	MeterReadings  int
	Expenses       int
	RecurringCosts int
}

// RestoreBackupUseCase reads a backup document back into the database.
// Every ID in the document is remapped to a fresh one; properties are
// deduplicated by name and users by username, so restoring into a
// non-empty installation merges instead of duplicating. Records whose
// property did not make it through the mapping are skipped.
type RestoreBackupUseCase struct {
	propertyRepo    adapter.PropertyRepository
	userRepo        adapter.UserRepository
	readingRepo     adapter.MeterReadingRepository
	tariffRepo      adapter.TariffRepository
	expenseRepo     adapter.ExpenseRepository
	recurringRepo   adapter.RecurringCostRepository
	attachmentRepo  adapter.AttachmentRepository
	storage         adapter.FileStorage
	passwordService adapter.PasswordService
	access          *access.Service
	recorder        *activity.Recorder
}

// NewRestoreBackupUseCase creates a new RestoreBackupUseCase instance.
func NewRestoreBackupUseCase(
	propertyRepo adapter.PropertyRepository,
	userRepo adapter.UserRepository,
	readingRepo adapter.MeterReadingRepository,
	tariffRepo adapter.TariffRepository,
	expenseRepo adapter.ExpenseRepository,
	recurringRepo adapter.RecurringCostRepository,
	attachmentRepo adapter.AttachmentRepository,
	storage adapter.FileStorage,
	passwordService adapter.PasswordService,
	accessService *access.Service,
	recorder *activity.Recorder,
) *RestoreBackupUseCase {
	return &RestoreBackupUseCase{
		propertyRepo:    propertyRepo,
		userRepo:        userRepo,
		readingRepo:     readingRepo,
		tariffRepo:      tariffRepo,
		expenseRepo:     expenseRepo,
		recurringRepo:   recurringRepo,
		attachmentRepo:  attachmentRepo,
		storage:         storage,
		passwordService: passwordService,
		access:          accessService,
		recorder:        recorder,
	}
}

// Execute performs the restore.
func (uc *RestoreBackupUseCase) Execute(ctx context.Context, input RestoreBackupInput) (*RestoreBackupOutput, error) {
	actor, err := requireElevated(ctx, uc.access, input.UserID)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(input.Data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrInvalidBackup, err)
	}
	if doc.Version == "" {
		return nil, fmt.Errorf("%w: missing version", domainerror.ErrInvalidBackup)
	}

	output := &RestoreBackupOutput{}

	propMap, err := uc.restoreProperties(ctx, &doc, actor, output)
	if err != nil {
		return nil, err
	}
	userMap, err := uc.restoreUsers(ctx, &doc, actor, output)
	if err != nil {
		return nil, err
	}
	if err := uc.restoreAssignments(ctx, &doc, userMap, propMap); err != nil {
		return nil, err
	}
	readings, err := uc.restoreReadings(ctx, &doc, propMap, output)
	if err != nil {
		return nil, err
	}
	if err := uc.restoreTariffs(ctx, &doc, propMap); err != nil {
		return nil, err
	}
	expenseMap, err := uc.restoreExpenses(ctx, &doc, propMap, output)
	if err != nil {
		return nil, err
	}
	costMap, err := uc.restoreRecurringCosts(ctx, &doc, propMap, output)
	if err != nil {
		return nil, err
	}
	if err := uc.restoreAttachments(ctx, &doc, expenseMap, costMap); err != nil {
		return nil, err
	}
	if err := uc.restoreMeterPhotos(ctx, &doc, readings); err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, actor, entity.ActivityActionImport, "backup", nil,
		fmt.Sprintf("Restored backup: %d properties, %d users, %d readings, %d expenses, %d recurring costs",
			output.Properties, output.Users, output.MeterReadings, output.Expenses, output.RecurringCosts),
		input.IPAddress)

	return output, nil
}

// restoreProperties maps backup property IDs to live ones, creating the
// properties that do not exist yet. A property with a known name is reused
// rather than duplicated. Managers get every mapped property assigned so
// the restored data stays visible to them.
func (uc *RestoreBackupUseCase) restoreProperties(ctx context.Context, doc *Document, actor *entity.User, output *RestoreBackupOutput) (map[uuid.UUID]uuid.UUID, error) {
	existing, err := uc.propertyRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	byName := make(map[string]uuid.UUID, len(existing))
	for _, p := range existing {
		byName[p.Name] = p.ID
	}

	propMap := make(map[uuid.UUID]uuid.UUID, len(doc.Properties))
	for _, rec := range doc.Properties {
		if id, ok := byName[rec.Name]; ok {
			propMap[rec.ID] = id
			continue
		}
		property := entity.NewProperty(rec.Name, rec.Address, rec.Description)
		if err := uc.propertyRepo.Create(ctx, property); err != nil {
			return nil, fmt.Errorf("failed to restore property: %w", err)
		}
		byName[rec.Name] = property.ID
		propMap[rec.ID] = property.ID
		output.Properties++
	}

	if !actor.IsAdmin() {
		changed := false
		for _, id := range propMap {
			if !actor.CanAccessProperty(id) {
				actor.PropertyIDs = append(actor.PropertyIDs, id)
				changed = true
			}
		}
		if changed {
			if err := uc.userRepo.Update(ctx, actor); err != nil {
				return nil, fmt.Errorf("failed to assign restored properties: %w", err)
			}
		}
	}

	return propMap, nil
}

// restoreUsers maps backup user IDs to live ones. Unknown usernames become
// new accounts with the initial password; managers may only create plain
// user accounts, so records with higher roles are skipped for them.
func (uc *RestoreBackupUseCase) restoreUsers(ctx context.Context, doc *Document, actor *entity.User, output *RestoreBackupOutput) (map[uuid.UUID]uuid.UUID, error) {
	userMap := make(map[uuid.UUID]uuid.UUID, len(doc.Users))
	for _, rec := range doc.Users {
		existing, err := uc.userRepo.FindByUsername(ctx, rec.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		if existing != nil {
			userMap[rec.ID] = existing.ID
			continue
		}

		role := entity.Role(rec.Role)
		if !entity.ValidRole(role) {
			role = entity.RoleUser
		}
		if !actor.IsAdmin() && role != entity.RoleUser {
			slog.Warn("restore skips user above actor's role", "username", rec.Username, "role", role)
			continue
		}

		hash, err := uc.passwordService.HashPassword(restoredPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user := entity.NewUser(rec.Username, hash, role, &actor.ID)
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to restore user: %w", err)
		}
		userMap[rec.ID] = user.ID
		output.Users++
	}
	return userMap, nil
}

func (uc *RestoreBackupUseCase) restoreAssignments(ctx context.Context, doc *Document, userMap, propMap map[uuid.UUID]uuid.UUID) error {
	for _, rec := range doc.Assignments {
		userID, okUser := userMap[rec.UserID]
		propertyID, okProp := propMap[rec.PropertyID]
		if !okUser || !okProp {
			continue
		}
		user, err := uc.userRepo.FindByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load user: %w", err)
		}
		if user == nil || user.CanAccessProperty(propertyID) {
			continue
		}
		user.PropertyIDs = append(user.PropertyIDs, propertyID)
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return fmt.Errorf("failed to restore assignment: %w", err)
		}
	}
	return nil
}

// restoreReadings returns the created readings keyed by their backup ID so
// the photo pass can attach files to them.
func (uc *RestoreBackupUseCase) restoreReadings(ctx context.Context, doc *Document, propMap map[uuid.UUID]uuid.UUID, output *RestoreBackupOutput) (map[uuid.UUID]*entity.MeterReading, error) {
	readings := make(map[uuid.UUID]*entity.MeterReading, len(doc.MeterReadings))
	for _, rec := range doc.MeterReadings {
		propertyID, ok := propMap[rec.PropertyID]
		if !ok {
			continue
		}
		date, err := parseDate(rec.ReadingDate)
		if err != nil {
			return nil, fmt.Errorf("%w: bad reading date %q", domainerror.ErrInvalidBackup, rec.ReadingDate)
		}
		reading := entity.NewMeterReading(propertyID, entity.MeterType(rec.MeterType), rec.ReadingValue, date, rec.Notes)
		if err := uc.readingRepo.Create(ctx, reading); err != nil {
			return nil, fmt.Errorf("failed to restore meter reading: %w", err)
		}
		readings[rec.ID] = reading
		output.MeterReadings++
	}
	return readings, nil
}

func (uc *RestoreBackupUseCase) restoreTariffs(ctx context.Context, doc *Document, propMap map[uuid.UUID]uuid.UUID) error {
	for _, rec := range doc.Tariffs {
		propertyID, ok := propMap[rec.PropertyID]
		if !ok {
			continue
		}
		validFrom, err := parseDate(rec.ValidFrom)
		if err != nil {
			return fmt.Errorf("%w: bad tariff date %q", domainerror.ErrInvalidBackup, rec.ValidFrom)
		}
		validTo, err := parseDatePtr(rec.ValidTo)
		if err != nil {
			return fmt.Errorf("%w: bad tariff date", domainerror.ErrInvalidBackup)
		}
		tariff := entity.NewTariff(propertyID, entity.TariffType(rec.TariffType), rec.PricePerUnit, rec.BaseCostMonthly, validFrom, validTo)
		if err := uc.tariffRepo.Create(ctx, tariff); err != nil {
			return fmt.Errorf("failed to restore tariff: %w", err)
		}
	}
	return nil
}

func (uc *RestoreBackupUseCase) restoreExpenses(ctx context.Context, doc *Document, propMap map[uuid.UUID]uuid.UUID, output *RestoreBackupOutput) (map[uuid.UUID]uuid.UUID, error) {
	expenseMap := make(map[uuid.UUID]uuid.UUID, len(doc.Expenses))
	for _, rec := range doc.Expenses {
		propertyID, ok := propMap[rec.PropertyID]
		if !ok {
			continue
		}
		invoiceDate, err := parseDate(rec.InvoiceDate)
		if err != nil {
			return nil, fmt.Errorf("%w: bad invoice date %q", domainerror.ErrInvalidBackup, rec.InvoiceDate)
		}
		expense := entity.NewExpense(propertyID, nil, rec.Vendor, invoiceDate, rec.InvoiceNumber,
			rec.NetAmount, rec.VATRate, rec.Description, rec.Category)
		if err := uc.expenseRepo.Create(ctx, expense); err != nil {
			return nil, fmt.Errorf("failed to restore expense: %w", err)
		}
		expenseMap[rec.ID] = expense.ID
		output.Expenses++
	}
	return expenseMap, nil
}

func (uc *RestoreBackupUseCase) restoreRecurringCosts(ctx context.Context, doc *Document, propMap map[uuid.UUID]uuid.UUID, output *RestoreBackupOutput) (map[uuid.UUID]uuid.UUID, error) {
	costMap := make(map[uuid.UUID]uuid.UUID, len(doc.RecurringCosts))
	for _, rec := range doc.RecurringCosts {
		propertyID, ok := propMap[rec.PropertyID]
		if !ok {
			continue
		}
		startDate, err := parseDate(rec.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: bad start date %q", domainerror.ErrInvalidBackup, rec.StartDate)
		}
		endDate, err := parseDatePtr(rec.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: bad end date", domainerror.ErrInvalidBackup)
		}
		cost := entity.NewRecurringCost(propertyID, nil, rec.Description, rec.Vendor,
			rec.MonthlyAmount, rec.VATRate, startDate, endDate, rec.Category)
		if err := uc.recurringRepo.Create(ctx, cost); err != nil {
			return nil, fmt.Errorf("failed to restore recurring cost: %w", err)
		}
		costMap[rec.ID] = cost.ID
		output.RecurringCosts++
	}
	return costMap, nil
}

func (uc *RestoreBackupUseCase) restoreAttachments(ctx context.Context, doc *Document, expenseMap, costMap map[uuid.UUID]uuid.UUID) error {
	for _, rec := range doc.Attachments {
		ownerType := entity.AttachmentOwner(rec.OwnerType)
		var ownerID uuid.UUID
		var ok bool
		switch ownerType {
		case entity.AttachmentOwnerExpense:
			ownerID, ok = expenseMap[rec.OwnerID]
		case entity.AttachmentOwnerRecurringCost:
			ownerID, ok = costMap[rec.OwnerID]
		}
		if !ok {
			continue
		}

		att := entity.NewFileAttachment(ownerType, ownerID, rec.OriginalFilename, rec.StoredFilename, entity.AttachmentFileType(rec.FileType))
		if rec.FileData != "" {
			data, err := base64.StdEncoding.DecodeString(rec.FileData)
			if err != nil {
				slog.Warn("restore skips unreadable attachment data", "attachmentID", rec.ID, "error", err)
				continue
			}
			stored, err := uc.storage.Save(ctx, att.StorageCategory(), rec.StoredFilename, data)
			if err != nil {
				return fmt.Errorf("failed to restore attachment file: %w", err)
			}
			att.StoredFilename = stored
		}
		if err := uc.attachmentRepo.Create(ctx, att); err != nil {
			return fmt.Errorf("failed to restore attachment: %w", err)
		}
	}
	return nil
}

func (uc *RestoreBackupUseCase) restoreMeterPhotos(ctx context.Context, doc *Document, readings map[uuid.UUID]*entity.MeterReading) error {
	for _, rec := range doc.MeterPhotos {
		reading, ok := readings[rec.ReadingID]
		if !ok {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(rec.Data)
		if err != nil {
			slog.Warn("restore skips unreadable meter photo", "readingID", rec.ReadingID, "error", err)
			continue
		}
		stored, err := uc.storage.Save(ctx, "meters", rec.Filename, data)
		if err != nil {
			return fmt.Errorf("failed to restore meter photo: %w", err)
		}
		reading.PhotoFilename = stored
		if err := uc.readingRepo.Update(ctx, reading); err != nil {
			return fmt.Errorf("failed to restore meter photo: %w", err)
		}
	}
	return nil
}
