package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/application/usecase/activity"
	"github.com/property-manager/backend/internal/domain/billing"
	"github.com/property-manager/backend/internal/domain/entity"
)

// In-memory fakes covering the slices of the repositories the report use
// cases touch.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error { return nil }
func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Update(ctx context.Context, u *entity.User) error    { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}

type fakeReadingRepo struct {
	readings []*entity.MeterReading
}

func (f *fakeReadingRepo) Create(ctx context.Context, r *entity.MeterReading) error { return nil }
func (f *fakeReadingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MeterReading, error) {
	return nil, nil
}
func (f *fakeReadingRepo) FindByFilter(ctx context.Context, filter adapter.MeterReadingFilter) ([]*entity.MeterReading, error) {
	var out []*entity.MeterReading
	for _, r := range f.readings {
		if r.PropertyID != filter.PropertyID {
			continue
		}
		if filter.MeterType != nil && r.MeterType != *filter.MeterType {
			continue
		}
		if filter.StartDate != nil && r.ReadingDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && r.ReadingDate.After(*filter.EndDate) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
func (f *fakeReadingRepo) Update(ctx context.Context, r *entity.MeterReading) error { return nil }
func (f *fakeReadingRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }

type fakeTariffRepo struct {
	tariffs []*entity.Tariff
}

func (f *fakeTariffRepo) Create(ctx context.Context, t *entity.Tariff) error { return nil }
func (f *fakeTariffRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tariff, error) {
	return nil, nil
}
func (f *fakeTariffRepo) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Tariff, error) {
	return f.tariffs, nil
}
func (f *fakeTariffRepo) Update(ctx context.Context, t *entity.Tariff) error { return nil }
func (f *fakeTariffRepo) Delete(ctx context.Context, id uuid.UUID) error     { return nil }

type fakeExpenseRepo struct {
	expenses []*entity.Expense
}

func (f *fakeExpenseRepo) Create(ctx context.Context, e *entity.Expense) error { return nil }
func (f *fakeExpenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	return nil, nil
}
func (f *fakeExpenseRepo) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range f.expenses {
		if e.PropertyID != filter.PropertyID {
			continue
		}
		if filter.StartDate != nil && e.InvoiceDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && e.InvoiceDate.After(*filter.EndDate) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
func (f *fakeExpenseRepo) Update(ctx context.Context, e *entity.Expense) error       { return nil }
func (f *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (f *fakeExpenseRepo) ClearContact(ctx context.Context, contactID uuid.UUID) error { return nil }

type fakeRecurringRepo struct {
	costs []*entity.RecurringCost
}

func (f *fakeRecurringRepo) Create(ctx context.Context, c *entity.RecurringCost) error { return nil }
func (f *fakeRecurringRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringCost, error) {
	return nil, nil
}
func (f *fakeRecurringRepo) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.RecurringCost, error) {
	return f.costs, nil
}
func (f *fakeRecurringRepo) Update(ctx context.Context, c *entity.RecurringCost) error   { return nil }
func (f *fakeRecurringRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }
func (f *fakeRecurringRepo) ClearContact(ctx context.Context, contactID uuid.UUID) error { return nil }

type fakeActivityRepo struct{}

func (f *fakeActivityRepo) Create(ctx context.Context, e *entity.ActivityEntry) error { return nil }
func (f *fakeActivityRepo) FindByFilter(ctx context.Context, filter adapter.ActivityFilter) ([]*entity.ActivityEntry, int64, error) {
	return nil, 0, nil
}

func adminFixture() (*entity.User, *fakeUserRepo) {
	admin := entity.NewUser("admin", "x", entity.RoleAdmin, nil)
	return admin, &fakeUserRepo{users: map[uuid.UUID]*entity.User{admin.ID: admin}}
}

func TestMonthWindow(t *testing.T) {
	jan := monthWindow(2024, 1)
	if !jan.Start.Equal(billing.Date(2024, time.January, 1)) || !jan.End.Equal(billing.Date(2024, time.February, 1)) {
		t.Errorf("january window = [%s, %s], want [2024-01-01, 2024-02-01]", jan.Start, jan.End)
	}

	dec := monthWindow(2024, 12)
	if !dec.End.Equal(billing.Date(2024, time.December, 31)) {
		t.Errorf("december window ends %s, want 2024-12-31", dec.End)
	}

	// The overhang makes a monthly cost count twice in every month but
	// December.
	if got := billing.MonthsInclusive(jan.Start, jan.End); got != 2 {
		t.Errorf("january inclusive months = %d, want 2", got)
	}
	if got := billing.MonthsInclusive(dec.Start, dec.End); got != 1 {
		t.Errorf("december inclusive months = %d, want 1", got)
	}
}

func TestResolvePeriod(t *testing.T) {
	now := billing.Date(2024, time.August, 15)

	t.Run("defaults to year start through today", func(t *testing.T) {
		period, err := resolvePeriod(nil, nil, now)
		if err != nil {
			t.Fatalf("resolvePeriod() error = %v", err)
		}
		if !period.Start.Equal(billing.Date(2024, time.January, 1)) || !period.End.Equal(now) {
			t.Errorf("period = [%s, %s], want [2024-01-01, 2024-08-15]", period.Start, period.End)
		}
	})

	t.Run("inverted bounds are rejected", func(t *testing.T) {
		start := billing.Date(2024, time.June, 2)
		end := billing.Date(2024, time.June, 1)
		if _, err := resolvePeriod(&start, &end, now); err == nil {
			t.Error("resolvePeriod() = nil error, want invalid period")
		}
	})
}

func TestCostsReport(t *testing.T) {
	admin, userRepo := adminFixture()
	accessService := access.NewService(userRepo)
	propertyID := uuid.New()

	readings := &fakeReadingRepo{readings: []*entity.MeterReading{
		{ID: uuid.New(), PropertyID: propertyID, MeterType: entity.MeterTypeWater,
			ReadingValue: decimal.RequireFromString("100"), ReadingDate: billing.Date(2024, time.January, 1)},
		{ID: uuid.New(), PropertyID: propertyID, MeterType: entity.MeterTypeWater,
			ReadingValue: decimal.RequireFromString("200"), ReadingDate: billing.Date(2024, time.January, 31)},
	}}
	tariffs := &fakeTariffRepo{tariffs: []*entity.Tariff{
		{ID: uuid.New(), PropertyID: propertyID, TariffType: entity.TariffTypeWater,
			PricePerUnit: decimal.RequireFromString("3.00"), BaseCostMonthly: decimal.RequireFromString("10.00"),
			ValidFrom: billing.Date(2023, time.January, 1)},
		{ID: uuid.New(), PropertyID: propertyID, TariffType: entity.TariffTypeWastewater,
			PricePerUnit: decimal.RequireFromString("2.00"), BaseCostMonthly: decimal.RequireFromString("5.00"),
			ValidFrom: billing.Date(2023, time.January, 1)},
	}}
	expenses := &fakeExpenseRepo{expenses: []*entity.Expense{
		entity.NewExpense(propertyID, nil, "roofer", billing.Date(2024, time.January, 10), "R-1",
			decimal.RequireFromString("100"), entity.DefaultVATRate, "", "maintenance"),
	}}
	recurring := &fakeRecurringRepo{costs: []*entity.RecurringCost{
		entity.NewRecurringCost(propertyID, nil, "insurance", "insurer",
			decimal.RequireFromString("50"), entity.DefaultVATRate, billing.Date(2023, time.June, 1), nil, "insurance"),
	}}

	uc := NewCostsReportUseCase(readings, tariffs, expenses, recurring, accessService)
	start := billing.Date(2024, time.January, 1)
	end := billing.Date(2024, time.January, 31)

	got, err := uc.Execute(context.Background(), CostsReportInput{
		UserID: admin.ID, PropertyID: propertyID, Start: &start, End: &end,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	water := got.ConsumptionCosts[entity.TariffTypeWater]
	if water == nil {
		t.Fatal("missing water cost")
	}
	// 100 units * 3.00 + 1 month * 10.00
	if want := "310"; !water.TotalCost.Equal(decimal.RequireFromString(want)) {
		t.Errorf("water TotalCost = %s, want %s", water.TotalCost, want)
	}

	ww := got.ConsumptionCosts[entity.TariffTypeWastewater]
	if ww == nil {
		t.Fatal("missing wastewater cost, should be derived from water consumption")
	}
	if want := "100"; !ww.Consumption.Equal(decimal.RequireFromString(want)) {
		t.Errorf("wastewater Consumption = %s, want %s", ww.Consumption, want)
	}
	if want := "205"; !ww.TotalCost.Equal(decimal.RequireFromString(want)) {
		t.Errorf("wastewater TotalCost = %s, want %s", ww.TotalCost, want)
	}

	if want := "50"; !got.RecurringTotal.Equal(decimal.RequireFromString(want)) {
		t.Errorf("RecurringTotal = %s, want %s", got.RecurringTotal, want)
	}
	if want := "119"; !got.ExpensesTotal.Equal(decimal.RequireFromString(want)) {
		t.Errorf("ExpensesTotal = %s, want %s", got.ExpensesTotal, want)
	}
	// 310 + 205 + 50 + 119
	if want := "684"; !got.GrandTotal.Equal(decimal.RequireFromString(want)) {
		t.Errorf("GrandTotal = %s, want %s", got.GrandTotal, want)
	}
}

func TestExportCSV(t *testing.T) {
	admin, userRepo := adminFixture()
	accessService := access.NewService(userRepo)
	recorder := activity.NewRecorder(&fakeActivityRepo{})
	propertyID := uuid.New()

	readings := &fakeReadingRepo{readings: []*entity.MeterReading{
		{ID: uuid.New(), PropertyID: propertyID, MeterType: entity.MeterTypeWater,
			ReadingValue: decimal.RequireFromString("123.45"), ReadingDate: billing.Date(2024, time.March, 5), Notes: "manual"},
	}}

	uc := NewExportCSVUseCase(readings, &fakeExpenseRepo{}, &fakeRecurringRepo{}, accessService, recorder)
	start := billing.Date(2024, time.January, 1)
	end := billing.Date(2024, time.December, 31)

	t.Run("meters export uses semicolons and German headers", func(t *testing.T) {
		got, err := uc.Execute(context.Background(), ExportCSVInput{
			UserID: admin.ID, PropertyID: propertyID, Type: ExportTypeMeters, Start: &start, End: &end,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		lines := strings.Split(strings.TrimSpace(string(got.Content)), "\n")
		if len(lines) != 2 {
			t.Fatalf("lines = %d, want 2", len(lines))
		}
		if want := "Datum;Zählertyp;Wert;Notizen"; lines[0] != want {
			t.Errorf("header = %q, want %q", lines[0], want)
		}
		if want := "2024-03-05;water;123.45;manual"; lines[1] != want {
			t.Errorf("row = %q, want %q", lines[1], want)
		}
	})

	t.Run("unknown export type is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ExportCSVInput{
			UserID: admin.ID, PropertyID: propertyID, Type: "tariffs", Start: &start, End: &end,
		})
		if err == nil {
			t.Error("Execute() = nil error, want unknown export type")
		}
	})
}

func TestConsumptionReportOmitsSparseMeters(t *testing.T) {
	admin, userRepo := adminFixture()
	accessService := access.NewService(userRepo)
	propertyID := uuid.New()

	readings := &fakeReadingRepo{readings: []*entity.MeterReading{
		{ID: uuid.New(), PropertyID: propertyID, MeterType: entity.MeterTypeWater,
			ReadingValue: decimal.RequireFromString("100"), ReadingDate: billing.Date(2024, time.January, 1)},
		{ID: uuid.New(), PropertyID: propertyID, MeterType: entity.MeterTypeWater,
			ReadingValue: decimal.RequireFromString("150"), ReadingDate: billing.Date(2024, time.February, 1)},
		{ID: uuid.New(), PropertyID: propertyID, MeterType: entity.MeterTypeElectricityDay,
			ReadingValue: decimal.RequireFromString("999"), ReadingDate: billing.Date(2024, time.January, 1)},
	}}

	uc := NewConsumptionReportUseCase(readings, accessService)
	start := billing.Date(2024, time.January, 1)
	end := billing.Date(2024, time.December, 31)

	got, err := uc.Execute(context.Background(), ConsumptionReportInput{
		UserID: admin.ID, PropertyID: propertyID, Start: &start, End: &end,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(got.PerMeter) != 1 {
		t.Fatalf("PerMeter has %d entries, want 1", len(got.PerMeter))
	}
	water := got.PerMeter[entity.MeterTypeWater]
	if water == nil {
		t.Fatal("missing water consumption")
	}
	if want := "50"; !water.Total.Equal(decimal.RequireFromString(want)) {
		t.Errorf("Total = %s, want %s", water.Total, want)
	}
	if want := "1.6129"; water.DailyAvg.String() != want {
		t.Errorf("DailyAvg = %s, want %s", water.DailyAvg, want)
	}
}

type fakePropertyRepo struct {
	properties []*entity.Property
}

func (f *fakePropertyRepo) Create(ctx context.Context, p *entity.Property) error { return nil }
func (f *fakePropertyRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	return nil, nil
}
func (f *fakePropertyRepo) FindAll(ctx context.Context) ([]*entity.Property, error) {
	return f.properties, nil
}
func (f *fakePropertyRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Property, error) {
	return f.properties, nil
}
func (f *fakePropertyRepo) Update(ctx context.Context, p *entity.Property) error { return nil }
func (f *fakePropertyRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }

func TestDashboardActiveRecurringCounting(t *testing.T) {
	admin, userRepo := adminFixture()
	accessService := access.NewService(userRepo)
	property := entity.NewProperty("Lakeview House", "", "")

	endsToday := billing.Date(2024, time.June, 15)
	endedYesterday := billing.Date(2024, time.June, 14)
	recurring := &fakeRecurringRepo{costs: []*entity.RecurringCost{
		entity.NewRecurringCost(property.ID, nil, "insurance", "insurer",
			decimal.RequireFromString("50"), entity.DefaultVATRate, billing.Date(2023, time.January, 1), &endsToday, "insurance"),
		entity.NewRecurringCost(property.ID, nil, "old contract", "vendor",
			decimal.RequireFromString("20"), entity.DefaultVATRate, billing.Date(2023, time.January, 1), &endedYesterday, ""),
		entity.NewRecurringCost(property.ID, nil, "open ended", "vendor",
			decimal.RequireFromString("10"), entity.DefaultVATRate, billing.Date(2023, time.January, 1), nil, ""),
	}}

	uc := NewDashboardUseCase(&fakePropertyRepo{properties: []*entity.Property{property}},
		&fakeReadingRepo{}, &fakeExpenseRepo{}, recurring, accessService)
	// Mid-day clock: only the calendar date may decide activity.
	uc.now = func() time.Time { return time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC) }

	got, err := uc.Execute(context.Background(), DashboardInput{UserID: admin.ID})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(got.Properties) != 1 {
		t.Fatalf("Properties has %d entries, want 1", len(got.Properties))
	}
	// A cost whose end date is today is still active.
	if got.Properties[0].ActiveRecurringCosts != 2 {
		t.Errorf("ActiveRecurringCosts = %d, want 2", got.Properties[0].ActiveRecurringCosts)
	}
}
