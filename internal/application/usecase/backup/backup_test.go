package backup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/application/usecase/activity"
	"github.com/property-manager/backend/internal/domain/entity"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

type fakePropertyRepo struct {
	properties []*entity.Property
}

func (f *fakePropertyRepo) Create(ctx context.Context, p *entity.Property) error {
	f.properties = append(f.properties, p)
	return nil
}
func (f *fakePropertyRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	for _, p := range f.properties {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakePropertyRepo) FindAll(ctx context.Context) ([]*entity.Property, error) {
	return f.properties, nil
}
func (f *fakePropertyRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Property, error) {
	var out []*entity.Property
	for _, p := range f.properties {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}
func (f *fakePropertyRepo) Update(ctx context.Context, p *entity.Property) error { return nil }
func (f *fakePropertyRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	f.users = append(f.users, u)
	return nil
}
func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) { return f.users, nil }
func (f *fakeUserRepo) Update(ctx context.Context, u *entity.User) error    { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	u, _ := f.FindByUsername(ctx, username)
	return u != nil, nil
}

type fakeReadingRepo struct {
	readings []*entity.MeterReading
}

func (f *fakeReadingRepo) Create(ctx context.Context, r *entity.MeterReading) error {
	f.readings = append(f.readings, r)
	return nil
}
func (f *fakeReadingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MeterReading, error) {
	return nil, nil
}
func (f *fakeReadingRepo) FindByFilter(ctx context.Context, filter adapter.MeterReadingFilter) ([]*entity.MeterReading, error) {
	var out []*entity.MeterReading
	for _, r := range f.readings {
		if r.PropertyID == filter.PropertyID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeReadingRepo) Update(ctx context.Context, r *entity.MeterReading) error { return nil }
func (f *fakeReadingRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }

type fakeTariffRepo struct {
	tariffs []*entity.Tariff
}

func (f *fakeTariffRepo) Create(ctx context.Context, t *entity.Tariff) error {
	f.tariffs = append(f.tariffs, t)
	return nil
}
func (f *fakeTariffRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tariff, error) {
	return nil, nil
}
func (f *fakeTariffRepo) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Tariff, error) {
	var out []*entity.Tariff
	for _, t := range f.tariffs {
		if t.PropertyID == propertyID {
			out = append(out, t)
		}
	}
	return out, nil
}
func (f *fakeTariffRepo) Update(ctx context.Context, t *entity.Tariff) error { return nil }
func (f *fakeTariffRepo) Delete(ctx context.Context, id uuid.UUID) error     { return nil }

type fakeExpenseRepo struct {
	expenses []*entity.Expense
}

func (f *fakeExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	f.expenses = append(f.expenses, e)
	return nil
}
func (f *fakeExpenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	return nil, nil
}
func (f *fakeExpenseRepo) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range f.expenses {
		if e.PropertyID == filter.PropertyID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeExpenseRepo) Update(ctx context.Context, e *entity.Expense) error       { return nil }
func (f *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (f *fakeExpenseRepo) ClearContact(ctx context.Context, contactID uuid.UUID) error { return nil }

type fakeRecurringRepo struct {
	costs []*entity.RecurringCost
}

func (f *fakeRecurringRepo) Create(ctx context.Context, c *entity.RecurringCost) error {
	f.costs = append(f.costs, c)
	return nil
}
func (f *fakeRecurringRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringCost, error) {
	return nil, nil
}
func (f *fakeRecurringRepo) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.RecurringCost, error) {
	var out []*entity.RecurringCost
	for _, c := range f.costs {
		if c.PropertyID == propertyID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeRecurringRepo) Update(ctx context.Context, c *entity.RecurringCost) error { return nil }
func (f *fakeRecurringRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (f *fakeRecurringRepo) ClearContact(ctx context.Context, contactID uuid.UUID) error {
	return nil
}

type fakeAttachmentRepo struct {
	attachments []*entity.FileAttachment
}

func (f *fakeAttachmentRepo) Create(ctx context.Context, a *entity.FileAttachment) error {
	f.attachments = append(f.attachments, a)
	return nil
}
func (f *fakeAttachmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.FileAttachment, error) {
	return nil, nil
}
func (f *fakeAttachmentRepo) FindByOwner(ctx context.Context, ownerType entity.AttachmentOwner, ownerID uuid.UUID) ([]*entity.FileAttachment, error) {
	var out []*entity.FileAttachment
	for _, a := range f.attachments {
		if a.OwnerType == ownerType && a.OwnerID == ownerID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (f *fakeAttachmentRepo) CountByOwners(ctx context.Context, ownerType entity.AttachmentOwner, ownerIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64)
	for _, a := range f.attachments {
		if a.OwnerType != ownerType {
			continue
		}
		for _, id := range ownerIDs {
			if a.OwnerID == id {
				counts[id]++
			}
		}
	}
	return counts, nil
}
func (f *fakeAttachmentRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeActivityRepo struct {
	entries []*entity.ActivityEntry
}

func (f *fakeActivityRepo) Create(ctx context.Context, e *entity.ActivityEntry) error {
	f.entries = append(f.entries, e)
	return nil
}
func (f *fakeActivityRepo) FindByFilter(ctx context.Context, filter adapter.ActivityFilter) ([]*entity.ActivityEntry, int64, error) {
	return f.entries, int64(len(f.entries)), nil
}

type fakeStorage struct {
	files map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: make(map[string][]byte)}
}

func (f *fakeStorage) Save(ctx context.Context, category, filename string, data []byte) (string, error) {
	f.files[category+"/"+filename] = data
	return filename, nil
}
func (f *fakeStorage) Read(ctx context.Context, category, filename string) ([]byte, error) {
	data, ok := f.files[category+"/"+filename]
	if !ok {
		return nil, errors.New("file not found")
	}
	return data, nil
}
func (f *fakeStorage) Delete(ctx context.Context, category, filename string) error {
	delete(f.files, category+"/"+filename)
	return nil
}

type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}
func (fakePasswordService) VerifyPassword(hashedPassword, password string) error { return nil }

// fixture wires one full set of fakes behind the use cases.
type fixture struct {
	properties  *fakePropertyRepo
	users       *fakeUserRepo
	readings    *fakeReadingRepo
	tariffs     *fakeTariffRepo
	expenses    *fakeExpenseRepo
	recurring   *fakeRecurringRepo
	attachments *fakeAttachmentRepo
	activity    *fakeActivityRepo
	storage     *fakeStorage
	admin       *entity.User
}

func newFixture() *fixture {
	f := &fixture{
		properties:  &fakePropertyRepo{},
		users:       &fakeUserRepo{},
		readings:    &fakeReadingRepo{},
		tariffs:     &fakeTariffRepo{},
		expenses:    &fakeExpenseRepo{},
		recurring:   &fakeRecurringRepo{},
		attachments: &fakeAttachmentRepo{},
		activity:    &fakeActivityRepo{},
		storage:     newFakeStorage(),
	}
	f.admin = entity.NewUser("admin", "hash", entity.RoleAdmin, nil)
	f.users.users = append(f.users.users, f.admin)
	return f
}

func (f *fixture) infoUseCase() *InfoUseCase {
	return NewInfoUseCase(f.properties, f.users, f.readings, f.tariffs, f.expenses, f.recurring,
		f.attachments, access.NewService(f.users))
}

func (f *fixture) createUseCase() *CreateBackupUseCase {
	return NewCreateBackupUseCase(f.properties, f.users, f.readings, f.tariffs, f.expenses,
		f.recurring, f.attachments, f.storage, access.NewService(f.users),
		activity.NewRecorder(f.activity))
}

func (f *fixture) restoreUseCase() *RestoreBackupUseCase {
	return NewRestoreBackupUseCase(f.properties, f.users, f.readings, f.tariffs, f.expenses,
		f.recurring, f.attachments, f.storage, fakePasswordService{}, access.NewService(f.users),
		activity.NewRecorder(f.activity))
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestBackupRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := newFixture()

	property := entity.NewProperty("Hauptstraße 1", "Hauptstraße 1, Berlin", "")
	source.properties.properties = append(source.properties.properties, property)

	tenant := entity.NewUser("tenant", "hash", entity.RoleUser, &source.admin.ID)
	tenant.PropertyIDs = []uuid.UUID{property.ID}
	source.users.users = append(source.users.users, tenant)

	reading := entity.NewMeterReading(property.ID, entity.MeterTypeWater,
		decimal.NewFromInt(100), date(2024, time.January, 1), "")
	reading.PhotoFilename = "photo.jpg"
	source.readings.readings = append(source.readings.readings, reading)
	source.storage.files["meters/photo.jpg"] = []byte("jpeg-bytes")

	source.tariffs.tariffs = append(source.tariffs.tariffs, entity.NewTariff(property.ID,
		entity.TariffTypeWater, decimal.RequireFromString("2.5"), decimal.NewFromInt(5),
		date(2024, time.January, 1), nil))

	expense := entity.NewExpense(property.ID, nil, "Dachdecker", date(2024, time.February, 15),
		"R-100", decimal.NewFromInt(100), entity.DefaultVATRate, "Reparatur", "maintenance")
	source.expenses.expenses = append(source.expenses.expenses, expense)
	attachment := entity.NewFileAttachment(entity.AttachmentOwnerExpense, expense.ID,
		"invoice.pdf", "stored.pdf", entity.AttachmentFileTypePDF)
	source.attachments.attachments = append(source.attachments.attachments, attachment)
	source.storage.files["expenses/stored.pdf"] = []byte("pdf-bytes")

	source.recurring.costs = append(source.recurring.costs, entity.NewRecurringCost(property.ID,
		nil, "Versicherung", "Allianz", decimal.NewFromInt(30), entity.DefaultVATRate,
		date(2024, time.January, 1), nil, "insurance"))

	created, err := source.createUseCase().Execute(ctx, CreateBackupInput{UserID: source.admin.ID})
	if err != nil {
		t.Fatalf("create backup: %v", err)
	}
	if created.Filename == "" || len(created.Content) == 0 {
		t.Fatalf("create backup returned empty file: %+v", created)
	}

	target := newFixture()
	restored, err := target.restoreUseCase().Execute(ctx, RestoreBackupInput{
		UserID: target.admin.ID,
		Data:   created.Content,
	})
	if err != nil {
		t.Fatalf("restore backup: %v", err)
	}

	if restored.Properties != 1 {
		t.Errorf("Properties = %d, want 1", restored.Properties)
	}
	// The admin account exists in the target already and is matched by
	// username, only the tenant is created.
	if restored.Users != 1 {
		t.Errorf("Users = %d, want 1", restored.Users)
	}
	if restored.MeterReadings != 1 || restored.Expenses != 1 || restored.RecurringCosts != 1 {
		t.Errorf("counts = %+v, want one of each record kind", restored)
	}

	newProperty := target.properties.properties[0]
	if newProperty.ID == property.ID {
		t.Error("restored property kept its backup ID, want a fresh one")
	}
	if got := target.readings.readings[0].PropertyID; got != newProperty.ID {
		t.Errorf("reading PropertyID = %s, want remapped %s", got, newProperty.ID)
	}
	if got := target.readings.readings[0].PhotoFilename; got != "photo.jpg" {
		t.Errorf("reading PhotoFilename = %q, want %q", got, "photo.jpg")
	}
	if _, err := target.storage.Read(ctx, "meters", "photo.jpg"); err != nil {
		t.Error("restored meter photo missing from storage")
	}
	if _, err := target.storage.Read(ctx, "expenses", "stored.pdf"); err != nil {
		t.Error("restored attachment file missing from storage")
	}
	if len(target.attachments.attachments) != 1 {
		t.Fatalf("attachments = %d, want 1", len(target.attachments.attachments))
	}
	if got := target.attachments.attachments[0].OwnerID; got != target.expenses.expenses[0].ID {
		t.Errorf("attachment OwnerID = %s, want remapped expense ID", got)
	}

	restoredTenant, _ := target.users.FindByUsername(ctx, "tenant")
	if restoredTenant == nil {
		t.Fatal("tenant account was not restored")
	}
	if restoredTenant.PasswordHash != "hashed:changeme" {
		t.Errorf("restored tenant hash = %q, want initial password hash", restoredTenant.PasswordHash)
	}
	if !restoredTenant.CanAccessProperty(newProperty.ID) {
		t.Error("tenant lost property assignment across the round trip")
	}
}

func TestRestoreReusesPropertiesByName(t *testing.T) {
	ctx := context.Background()
	source := newFixture()
	property := entity.NewProperty("Hauptstraße 1", "Berlin", "")
	source.properties.properties = append(source.properties.properties, property)
	source.readings.readings = append(source.readings.readings, entity.NewMeterReading(property.ID,
		entity.MeterTypeWater, decimal.NewFromInt(50), date(2024, time.March, 1), ""))

	created, err := source.createUseCase().Execute(ctx, CreateBackupInput{UserID: source.admin.ID})
	if err != nil {
		t.Fatalf("create backup: %v", err)
	}

	// Restoring into the same installation must merge, not duplicate.
	restored, err := source.restoreUseCase().Execute(ctx, RestoreBackupInput{
		UserID: source.admin.ID,
		Data:   created.Content,
	})
	if err != nil {
		t.Fatalf("restore backup: %v", err)
	}
	if restored.Properties != 0 {
		t.Errorf("Properties = %d, want 0 for an existing name", restored.Properties)
	}
	if len(source.properties.properties) != 1 {
		t.Errorf("properties after restore = %d, want 1", len(source.properties.properties))
	}
	if got := source.readings.readings[1].PropertyID; got != property.ID {
		t.Errorf("reading PropertyID = %s, want existing property %s", got, property.ID)
	}
}

func TestBackupRequiresElevatedRole(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	tenant := entity.NewUser("tenant", "hash", entity.RoleUser, &f.admin.ID)
	f.users.users = append(f.users.users, tenant)

	if _, err := f.infoUseCase().Execute(ctx, InfoInput{UserID: tenant.ID}); !errors.Is(err, domainerror.ErrInsufficientRole) {
		t.Errorf("Info error = %v, want ErrInsufficientRole", err)
	}
	if _, err := f.createUseCase().Execute(ctx, CreateBackupInput{UserID: tenant.ID}); !errors.Is(err, domainerror.ErrInsufficientRole) {
		t.Errorf("Create error = %v, want ErrInsufficientRole", err)
	}
	if _, err := f.restoreUseCase().Execute(ctx, RestoreBackupInput{UserID: tenant.ID, Data: []byte("{}")}); !errors.Is(err, domainerror.ErrInsufficientRole) {
		t.Errorf("Restore error = %v, want ErrInsufficientRole", err)
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	if _, err := f.restoreUseCase().Execute(ctx, RestoreBackupInput{
		UserID: f.admin.ID,
		Data:   []byte("not json"),
	}); !errors.Is(err, domainerror.ErrInvalidBackup) {
		t.Errorf("error = %v, want ErrInvalidBackup", err)
	}
	if _, err := f.restoreUseCase().Execute(ctx, RestoreBackupInput{
		UserID: f.admin.ID,
		Data:   []byte("{}"),
	}); !errors.Is(err, domainerror.ErrInvalidBackup) {
		t.Errorf("error = %v, want ErrInvalidBackup for a missing version", err)
	}
}
