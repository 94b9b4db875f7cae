// Package steps provides step definitions for BDD integration tests.
//
// Every scenario gets a fully wired API server backed by its own in-memory
// SQLite database, so scenarios exercise the real HTTP stack end to end
// without sharing state.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/property-manager/backend/config"
	"github.com/property-manager/backend/internal/domain/entity"
	"github.com/property-manager/backend/internal/infra/dependency"
	"github.com/property-manager/backend/internal/integration/adapters"
	"github.com/property-manager/backend/internal/integration/persistence"
	"github.com/property-manager/backend/internal/integration/persistence/model"
)

// dbCounter gives each scenario a distinct shared-cache memory database.
// A plain ":memory:" DSN would hand every pooled connection its own empty
// database.
var dbCounter int64

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Captured values, referenced in steps as {name}
	vars map[string]string

	// Auth
	accessToken string

	// Wiring
	db         *gorm.DB
	uploadsDir string
	cfg        *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		// Disables the login rate limiter so scenarios can log in freely.
		os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			vars:           make(map[string]string),
			cfg:            config.Load(),
		}

		if err := tc.startServer(); err != nil {
			return ctx, err
		}

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			tc.teardown()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// startServer wires the full application against a fresh in-memory
// database and seeds the default admin account.
func (tc *TestContext) startServer() error {
	dsn := fmt.Sprintf("file:godog_%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open test database: %w", err)
	}
	tc.db = db

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.PropertyModel{},
		&model.MeterReadingModel{},
		&model.TariffModel{},
		&model.ExpenseModel{},
		&model.RecurringCostModel{},
		&model.ContactModel{},
		&model.FileAttachmentModel{},
		&model.ActivityEntryModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate test database: %w", err)
	}

	if err := tc.seedAdmin(); err != nil {
		return err
	}

	tc.uploadsDir, err = os.MkdirTemp("", "uploads")
	if err != nil {
		return fmt.Errorf("failed to create uploads dir: %w", err)
	}
	storage, err := adapters.NewLocalFileStorage(tc.uploadsDir)
	if err != nil {
		return fmt.Errorf("failed to create file storage: %w", err)
	}

	injector := dependency.NewInjector(tc.cfg, db, storage, func() bool { return true })
	tc.engine = injector.Router.Setup("test")
	tc.server = httptest.NewServer(tc.engine)
	return nil
}

func (tc *TestContext) seedAdmin() error {
	userRepo := persistence.NewUserRepository(tc.db)
	passwordService := adapters.NewPasswordService()

	hash, err := passwordService.HashPassword("admin")
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	if err := userRepo.Create(context.Background(), entity.NewUser("admin", hash, entity.RoleAdmin, nil)); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	return nil
}

func (tc *TestContext) teardown() {
	if tc.server != nil {
		tc.server.Close()
	}
	if tc.db != nil {
		if sqlDB, err := tc.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if tc.uploadsDir != "" {
		os.RemoveAll(tc.uploadsDir)
	}
}
