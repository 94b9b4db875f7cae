package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/domain/entity"
	"github.com/property-manager/backend/internal/integration/persistence/model"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.PropertyModel{},
		&model.UserModel{},
		&model.MeterReadingModel{},
		&model.TariffModel{},
		&model.ExpenseModel{},
		&model.RecurringCostModel{},
		&model.ContactModel{},
		&model.FileAttachmentModel{},
		&model.ActivityEntryModel{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMeterReadingRepository(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewMeterReadingRepository(db)
	propertyID := uuid.New()

	// Inserted out of order on purpose.
	for _, d := range []int{20, 5, 12} {
		reading := entity.NewMeterReading(propertyID, entity.MeterTypeWater,
			decimal.NewFromInt(int64(d)), date(2024, time.March, d), "")
		if err := repo.Create(ctx, reading); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	t.Run("listing is ordered by reading date ascending", func(t *testing.T) {
		readings, err := repo.FindByFilter(ctx, adapter.MeterReadingFilter{PropertyID: propertyID})
		if err != nil {
			t.Fatalf("FindByFilter() error = %v", err)
		}
		if len(readings) != 3 {
			t.Fatalf("got %d readings, want 3", len(readings))
		}
		for i := 1; i < len(readings); i++ {
			if readings[i].ReadingDate.Before(readings[i-1].ReadingDate) {
				t.Errorf("readings out of order: %s before %s", readings[i].ReadingDate, readings[i-1].ReadingDate)
			}
		}
	})

	t.Run("date bounds are inclusive", func(t *testing.T) {
		start := date(2024, time.March, 5)
		end := date(2024, time.March, 12)
		readings, err := repo.FindByFilter(ctx, adapter.MeterReadingFilter{
			PropertyID: propertyID, StartDate: &start, EndDate: &end,
		})
		if err != nil {
			t.Fatalf("FindByFilter() error = %v", err)
		}
		if len(readings) != 2 {
			t.Errorf("got %d readings, want 2", len(readings))
		}
	})

	t.Run("missing id yields nil without error", func(t *testing.T) {
		reading, err := repo.FindByID(ctx, uuid.New())
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if reading != nil {
			t.Errorf("FindByID() = %v, want nil", reading)
		}
	})
}

func TestUserRepositoryAssignments(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	userRepo := NewUserRepository(db)
	propertyRepo := NewPropertyRepository(db)

	propA := entity.NewProperty("Alpha", "", "")
	propB := entity.NewProperty("Beta", "", "")
	for _, p := range []*entity.Property{propA, propB} {
		if err := propertyRepo.Create(ctx, p); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	user := entity.NewUser("manager", "hash", entity.RoleManager, nil)
	user.PropertyIDs = []uuid.UUID{propA.ID}
	if err := userRepo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := userRepo.FindByUsername(ctx, "manager")
	if err != nil {
		t.Fatalf("FindByUsername() error = %v", err)
	}
	if found == nil || len(found.PropertyIDs) != 1 || found.PropertyIDs[0] != propA.ID {
		t.Fatalf("assignments after create = %v, want [%s]", found.PropertyIDs, propA.ID)
	}

	// Update replaces the assignment set.
	user.PropertyIDs = []uuid.UUID{propB.ID}
	if err := userRepo.Update(ctx, user); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	found, err = userRepo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if len(found.PropertyIDs) != 1 || found.PropertyIDs[0] != propB.ID {
		t.Errorf("assignments after update = %v, want [%s]", found.PropertyIDs, propB.ID)
	}

	exists, err := userRepo.ExistsByUsername(ctx, "manager")
	if err != nil || !exists {
		t.Errorf("ExistsByUsername() = %v, %v, want true, nil", exists, err)
	}
}

func TestExpenseRepositoryClearContact(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewExpenseRepository(db)
	propertyID := uuid.New()
	contactID := uuid.New()

	expense := entity.NewExpense(propertyID, &contactID, "plumber", date(2024, time.May, 2), "R-9",
		decimal.NewFromInt(200), entity.DefaultVATRate, "", "maintenance")
	if err := repo.Create(ctx, expense); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.ClearContact(ctx, contactID); err != nil {
		t.Fatalf("ClearContact() error = %v", err)
	}

	found, err := repo.FindByID(ctx, expense.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.ContactID != nil {
		t.Errorf("ContactID = %v, want nil", found.ContactID)
	}
}

func TestAttachmentRepositoryCounts(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewAttachmentRepository(db)

	ownerA := uuid.New()
	ownerB := uuid.New()
	for i := 0; i < 2; i++ {
		a := entity.NewFileAttachment(entity.AttachmentOwnerExpense, ownerA, "invoice.pdf", uuid.NewString()+".pdf", entity.AttachmentFileTypePDF)
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	counts, err := repo.CountByOwners(ctx, entity.AttachmentOwnerExpense, []uuid.UUID{ownerA, ownerB})
	if err != nil {
		t.Fatalf("CountByOwners() error = %v", err)
	}
	if counts[ownerA] != 2 {
		t.Errorf("count for ownerA = %d, want 2", counts[ownerA])
	}
	if _, ok := counts[ownerB]; ok {
		t.Errorf("ownerB present in counts, want absent")
	}
}

func TestPropertyRepositoryDeleteCascades(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	propertyRepo := NewPropertyRepository(db)
	readingRepo := NewMeterReadingRepository(db)
	expenseRepo := NewExpenseRepository(db)
	attachmentRepo := NewAttachmentRepository(db)

	property := entity.NewProperty("Gamma", "", "")
	if err := propertyRepo.Create(ctx, property); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	reading := entity.NewMeterReading(property.ID, entity.MeterTypeWater, decimal.NewFromInt(1), date(2024, time.January, 1), "")
	if err := readingRepo.Create(ctx, reading); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	expense := entity.NewExpense(property.ID, nil, "roofer", date(2024, time.January, 5), "",
		decimal.NewFromInt(50), entity.DefaultVATRate, "", "")
	if err := expenseRepo.Create(ctx, expense); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	attachment := entity.NewFileAttachment(entity.AttachmentOwnerExpense, expense.ID, "a.pdf", "a-stored.pdf", entity.AttachmentFileTypePDF)
	if err := attachmentRepo.Create(ctx, attachment); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := propertyRepo.Delete(ctx, property.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if got, err := readingRepo.FindByFilter(ctx, adapter.MeterReadingFilter{PropertyID: property.ID}); err != nil || len(got) != 0 {
		t.Errorf("readings after delete = %d, %v, want 0, nil", len(got), err)
	}
	if got, err := expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{PropertyID: property.ID}); err != nil || len(got) != 0 {
		t.Errorf("expenses after delete = %d, %v, want 0, nil", len(got), err)
	}
	if got, err := attachmentRepo.FindByOwner(ctx, entity.AttachmentOwnerExpense, expense.ID); err != nil || len(got) != 0 {
		t.Errorf("attachments after delete = %d, %v, want 0, nil", len(got), err)
	}
}

func TestActivityRepositoryFilterAndCount(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewActivityRepository(db)
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		entry := entity.NewActivityEntry(userID, "admin", entity.ActivityActionCreate, "expense", nil, "", "127.0.0.1")
		entry.Tags = []string{"bulk", "import"}
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	other := entity.NewActivityEntry(uuid.New(), "manager", entity.ActivityActionLogin, "", nil, "", "")
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	entries, total, err := repo.FindByFilter(ctx, adapter.ActivityFilter{
		UserID: &userID, Limit: 2, Offset: 0,
	})
	if err != nil {
		t.Fatalf("FindByFilter() error = %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2 (limit)", len(entries))
	}
	if len(entries) > 0 && len(entries[0].Tags) != 2 {
		t.Errorf("tags = %v, want round-tripped [bulk import]", entries[0].Tags)
	}
}
