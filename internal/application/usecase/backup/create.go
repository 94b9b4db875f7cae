package backup

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/application/usecase/activity"
	"github.com/property-manager/backend/internal/domain/entity"
)

// CreateBackupInput represents the input for creating a backup.
type CreateBackupInput struct {
	UserID    uuid.UUID
	IPAddress string
}

// CreateBackupOutput represents the rendered backup file.
type CreateBackupOutput struct {
	Filename string
	Content  []byte
}

// CreateBackupUseCase renders the actor's backup scope into a single JSON
// document with every upload file base64-embedded. A file that is missing
// on disk leaves its record in the backup with empty file data.
type CreateBackupUseCase struct {
	propertyRepo   adapter.PropertyRepository
	userRepo       adapter.UserRepository
	readingRepo    adapter.MeterReadingRepository
	tariffRepo     adapter.TariffRepository
	expenseRepo    adapter.ExpenseRepository
	recurringRepo  adapter.RecurringCostRepository
	attachmentRepo adapter.AttachmentRepository
	storage        adapter.FileStorage
	access         *access.Service
	recorder       *activity.Recorder
	now            func() time.Time
}

// NewCreateBackupUseCase creates a new CreateBackupUseCase instance.
func NewCreateBackupUseCase(
	propertyRepo adapter.PropertyRepository,
	userRepo adapter.UserRepository,
	readingRepo adapter.MeterReadingRepository,
	tariffRepo adapter.TariffRepository,
	expenseRepo adapter.ExpenseRepository,
	recurringRepo adapter.RecurringCostRepository,
	attachmentRepo adapter.AttachmentRepository,
	storage adapter.FileStorage,
	accessService *access.Service,
	recorder *activity.Recorder,
) *CreateBackupUseCase {
	return &CreateBackupUseCase{
		propertyRepo:   propertyRepo,
		userRepo:       userRepo,
		readingRepo:    readingRepo,
		tariffRepo:     tariffRepo,
		expenseRepo:    expenseRepo,
		recurringRepo:  recurringRepo,
		attachmentRepo: attachmentRepo,
		storage:        storage,
		access:         accessService,
		recorder:       recorder,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Execute performs the export.
func (uc *CreateBackupUseCase) Execute(ctx context.Context, input CreateBackupInput) (*CreateBackupOutput, error) {
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

	now := uc.now()
	doc := &Document{
		Version:        documentVersion,
		CreatedAt:      now.Format(time.RFC3339),
		CreatedBy:      actor.Username,
		Properties:     make([]*PropertyRecord, 0, len(properties)),
		MeterReadings:  []*ReadingRecord{},
		Tariffs:        []*TariffRecord{},
		Expenses:       []*ExpenseRecord{},
		RecurringCosts: []*RecurringCostRecord{},
		Users:          make([]*UserRecord, 0, len(users)),
		Assignments:    []*AssignmentRecord{},
		Attachments:    []*AttachmentRecord{},
		MeterPhotos:    []*MeterPhotoRecord{},
	}

	included := make(map[uuid.UUID]bool, len(properties))
	for _, p := range properties {
		included[p.ID] = true
		doc.Properties = append(doc.Properties, &PropertyRecord{
			ID:          p.ID,
			Name:        p.Name,
			Address:     p.Address,
			Description: p.Description,
		})
		if err := uc.collectProperty(ctx, doc, p.ID); err != nil {
			return nil, err
		}
	}

	for _, u := range users {
		doc.Users = append(doc.Users, &UserRecord{
			ID:       u.ID,
			Username: u.Username,
			Role:     string(u.Role),
		})
		for _, propertyID := range u.PropertyIDs {
			if included[propertyID] {
				doc.Assignments = append(doc.Assignments, &AssignmentRecord{
					UserID:     u.ID,
					PropertyID: propertyID,
				})
			}
		}
	}

	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render backup: %w", err)
	}

	uc.recorder.Record(ctx, actor, entity.ActivityActionExport, "backup", nil,
		fmt.Sprintf("Full backup, %d properties", len(doc.Properties)), input.IPAddress)

	return &CreateBackupOutput{
		Filename: fmt.Sprintf("backup_%s.json", now.Format("20060102_150405")),
		Content:  content,
	}, nil
}

// collectProperty appends all records of one property to the document.
func (uc *CreateBackupUseCase) collectProperty(ctx context.Context, doc *Document, propertyID uuid.UUID) error {
	readings, err := uc.readingRepo.FindByFilter(ctx, adapter.MeterReadingFilter{PropertyID: propertyID})
	if err != nil {
		return fmt.Errorf("failed to load meter readings: %w", err)
	}
	for _, r := range readings {
		doc.MeterReadings = append(doc.MeterReadings, &ReadingRecord{
			ID:           r.ID,
			PropertyID:   r.PropertyID,
			MeterType:    string(r.MeterType),
			ReadingValue: r.ReadingValue,
			ReadingDate:  formatDate(r.ReadingDate),
			Notes:        r.Notes,
		})
		if r.PhotoFilename != "" {
			if data, err := uc.storage.Read(ctx, "meters", r.PhotoFilename); err == nil {
				doc.MeterPhotos = append(doc.MeterPhotos, &MeterPhotoRecord{
					ReadingID: r.ID,
					Filename:  r.PhotoFilename,
					Data:      base64.StdEncoding.EncodeToString(data),
				})
			} else {
				slog.Warn("backup skips missing meter photo", "readingID", r.ID, "error", err)
			}
		}
	}

	tariffs, err := uc.tariffRepo.FindByProperty(ctx, propertyID)
	if err != nil {
		return fmt.Errorf("failed to load tariffs: %w", err)
	}
	for _, t := range tariffs {
		doc.Tariffs = append(doc.Tariffs, &TariffRecord{
			ID:              t.ID,
			PropertyID:      t.PropertyID,
			TariffType:      string(t.TariffType),
			PricePerUnit:    t.PricePerUnit,
			BaseCostMonthly: t.BaseCostMonthly,
			ValidFrom:       formatDate(t.ValidFrom),
			ValidTo:         formatDatePtr(t.ValidTo),
		})
	}

	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{PropertyID: propertyID})
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}
	for _, e := range expenses {
		doc.Expenses = append(doc.Expenses, &ExpenseRecord{
			ID:            e.ID,
			PropertyID:    e.PropertyID,
			Vendor:        e.Vendor,
			InvoiceDate:   formatDate(e.InvoiceDate),
			InvoiceNumber: e.InvoiceNumber,
			NetAmount:     e.NetAmount,
			VATRate:       e.VATRate,
			Description:   e.Description,
			Category:      e.Category,
		})
		if err := uc.collectAttachments(ctx, doc, entity.AttachmentOwnerExpense, e.ID); err != nil {
			return err
		}
	}

	costs, err := uc.recurringRepo.FindByProperty(ctx, propertyID)
	if err != nil {
		return fmt.Errorf("failed to load recurring costs: %w", err)
	}
	for _, c := range costs {
		doc.RecurringCosts = append(doc.RecurringCosts, &RecurringCostRecord{
			ID:            c.ID,
			PropertyID:    c.PropertyID,
			Description:   c.Description,
			Vendor:        c.Vendor,
			MonthlyAmount: c.MonthlyAmount,
			VATRate:       c.VATRate,
			StartDate:     formatDate(c.StartDate),
			EndDate:       formatDatePtr(c.EndDate),
			Category:      c.Category,
		})
		if err := uc.collectAttachments(ctx, doc, entity.AttachmentOwnerRecurringCost, c.ID); err != nil {
			return err
		}
	}

	return nil
}

// collectAttachments appends the attachments of one owning record,
// embedding the file content where it can still be read.
func (uc *CreateBackupUseCase) collectAttachments(ctx context.Context, doc *Document, ownerType entity.AttachmentOwner, ownerID uuid.UUID) error {
	attachments, err := uc.attachmentRepo.FindByOwner(ctx, ownerType, ownerID)
	if err != nil {
		return fmt.Errorf("failed to load attachments: %w", err)
	}
	for _, att := range attachments {
		record := &AttachmentRecord{
			ID:               att.ID,
			OwnerType:        string(att.OwnerType),
			OwnerID:          att.OwnerID,
			OriginalFilename: att.OriginalFilename,
			StoredFilename:   att.StoredFilename,
			FileType:         string(att.FileType),
		}
		if data, err := uc.storage.Read(ctx, att.StorageCategory(), att.StoredFilename); err == nil {
			record.FileData = base64.StdEncoding.EncodeToString(data)
		} else {
			slog.Warn("backup skips missing attachment file", "attachmentID", att.ID, "error", err)
		}
		doc.Attachments = append(doc.Attachments, record)
	}
	return nil
}
