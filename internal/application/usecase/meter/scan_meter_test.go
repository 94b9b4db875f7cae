package meter

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/domain/entity"
)

type fakeScanner struct {
	meter *adapter.MeterScan
}

func (f *fakeScanner) ScanExpense(ctx context.Context, data []byte) (*adapter.ExpenseScan, error) {
	return nil, nil
}
func (f *fakeScanner) ScanRecurringCost(ctx context.Context, data []byte) (*adapter.RecurringCostScan, error) {
	return nil, nil
}
func (f *fakeScanner) ScanContact(ctx context.Context, data []byte) (*adapter.ContactScan, error) {
	return nil, nil
}
func (f *fakeScanner) ScanMeter(ctx context.Context, data []byte) (*adapter.MeterScan, error) {
	return f.meter, nil
}
func (f *fakeScanner) IsAvailable() bool { return true }

type fakeUserRepo struct {
	user *entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error { return nil }
func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.user != nil && f.user.ID == id {
		return f.user, nil
	}
	return nil, nil
}
func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Update(ctx context.Context, u *entity.User) error    { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func TestScanMeterPrefillsReadingForm(t *testing.T) {
	admin := entity.NewUser("admin", "x", entity.RoleAdmin, nil)
	accessService := access.NewService(&fakeUserRepo{user: admin})

	scanner := &fakeScanner{meter: &adapter.MeterScan{
		MeterType:    "water",
		ReadingValue: "1234.5",
		Date:         "2024-06-01",
	}}

	uc := NewScanMeterUseCase(scanner, accessService)
	got, err := uc.Execute(context.Background(), ScanMeterInput{
		UserID: admin.ID, PropertyID: uuid.New(), Data: []byte("img"),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got.MeterType != "water" {
		t.Errorf("MeterType = %q, want %q", got.MeterType, "water")
	}
	if got.ReadingValue != "1234.5" {
		t.Errorf("ReadingValue = %q, want %q", got.ReadingValue, "1234.5")
	}
	// The extracted date rides along so the reading form is fully
	// pre-filled.
	if got.Date != "2024-06-01" {
		t.Errorf("Date = %q, want %q", got.Date, "2024-06-01")
	}
}
