// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/property-manager/backend/config"
	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/application/usecase/activity"
	"github.com/property-manager/backend/internal/application/usecase/attachment"
	"github.com/property-manager/backend/internal/application/usecase/auth"
	"github.com/property-manager/backend/internal/application/usecase/backup"
	"github.com/property-manager/backend/internal/application/usecase/contact"
	"github.com/property-manager/backend/internal/application/usecase/expense"
	"github.com/property-manager/backend/internal/application/usecase/meter"
	"github.com/property-manager/backend/internal/application/usecase/property"
	"github.com/property-manager/backend/internal/application/usecase/recurringcost"
	"github.com/property-manager/backend/internal/application/usecase/report"
	"github.com/property-manager/backend/internal/application/usecase/tariff"
	"github.com/property-manager/backend/internal/application/usecase/user"
	"github.com/property-manager/backend/internal/infra/server/router"
	"github.com/property-manager/backend/internal/integration/adapters"
	"github.com/property-manager/backend/internal/integration/entrypoint/controller"
	"github.com/property-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/property-manager/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies
// wired. The storage adapter is passed in because its construction can
// fail on a bad uploads directory.
func NewInjector(cfg *config.Config, db *gorm.DB, storage adapter.FileStorage, dbHealthy func() bool) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	propertyRepo := persistence.NewPropertyRepository(db)
	readingRepo := persistence.NewMeterReadingRepository(db)
	tariffRepo := persistence.NewTariffRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	recurringRepo := persistence.NewRecurringCostRepository(db)
	contactRepo := persistence.NewContactRepository(db)
	attachmentRepo := persistence.NewAttachmentRepository(db)
	activityRepo := persistence.NewActivityRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenExpiry)
	scanner := adapters.NewVisionService(cfg.Gemini.APIKey)

	// Shared application services
	accessService := access.NewService(userRepo)
	recorder := activity.NewRecorder(activityRepo)

	// Auth use cases
	loginUseCase := auth.NewLoginUseCase(userRepo, passwordService, tokenService, recorder)
	currentUserUseCase := auth.NewCurrentUserUseCase(userRepo)

	// User management use cases
	createUserUseCase := user.NewCreateUserUseCase(userRepo, passwordService, accessService, recorder)
	updateUserUseCase := user.NewUpdateUserUseCase(userRepo, passwordService, accessService, recorder)
	listUsersUseCase := user.NewListUsersUseCase(userRepo, accessService)
	deleteUserUseCase := user.NewDeleteUserUseCase(userRepo, accessService, recorder)

	// Property use cases
	createPropertyUseCase := property.NewCreatePropertyUseCase(propertyRepo, userRepo, accessService, recorder)
	updatePropertyUseCase := property.NewUpdatePropertyUseCase(propertyRepo, accessService, recorder)
	getPropertyUseCase := property.NewGetPropertyUseCase(propertyRepo, accessService)
	listPropertiesUseCase := property.NewListPropertiesUseCase(propertyRepo, accessService)
	deletePropertyUseCase := property.NewDeletePropertyUseCase(propertyRepo, accessService, recorder)

	// Meter reading use cases
	createReadingUseCase := meter.NewCreateReadingUseCase(readingRepo, storage, accessService, recorder)
	updateReadingUseCase := meter.NewUpdateReadingUseCase(readingRepo, accessService, recorder)
	listReadingsUseCase := meter.NewListReadingsUseCase(readingRepo, accessService)
	deleteReadingUseCase := meter.NewDeleteReadingUseCase(readingRepo, storage, accessService, recorder)
	scanMeterUseCase := meter.NewScanMeterUseCase(scanner, accessService)

	// Tariff use cases
	createTariffUseCase := tariff.NewCreateTariffUseCase(tariffRepo, accessService, recorder)
	updateTariffUseCase := tariff.NewUpdateTariffUseCase(tariffRepo, accessService, recorder)
	bulkCreateTariffsUseCase := tariff.NewBulkCreateTariffsUseCase(tariffRepo, accessService, recorder)
	listTariffsUseCase := tariff.NewListTariffsUseCase(tariffRepo, accessService)
	deleteTariffUseCase := tariff.NewDeleteTariffUseCase(tariffRepo, accessService, recorder)

	// Expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, attachmentRepo, storage, accessService, recorder)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, accessService, recorder)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo, attachmentRepo, accessService)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, attachmentRepo, storage, accessService, recorder)
	scanInvoiceUseCase := expense.NewScanInvoiceUseCase(scanner, contactRepo, accessService)

	// Recurring cost use cases
	createRecurringCostUseCase := recurringcost.NewCreateRecurringCostUseCase(recurringRepo, attachmentRepo, storage, accessService, recorder)
	updateRecurringCostUseCase := recurringcost.NewUpdateRecurringCostUseCase(recurringRepo, accessService, recorder)
	listRecurringCostsUseCase := recurringcost.NewListRecurringCostsUseCase(recurringRepo, accessService)
	deleteRecurringCostUseCase := recurringcost.NewDeleteRecurringCostUseCase(recurringRepo, attachmentRepo, storage, accessService, recorder)
	scanContractUseCase := recurringcost.NewScanContractUseCase(scanner, accessService)

	// Contact use cases
	createContactUseCase := contact.NewCreateContactUseCase(contactRepo, accessService, recorder)
	updateContactUseCase := contact.NewUpdateContactUseCase(contactRepo, accessService, recorder)
	getContactUseCase := contact.NewGetContactUseCase(contactRepo)
	listContactsUseCase := contact.NewListContactsUseCase(contactRepo)
	deleteContactUseCase := contact.NewDeleteContactUseCase(contactRepo, expenseRepo, recurringRepo, storage, accessService, recorder)
	scanCardUseCase := contact.NewScanCardUseCase(scanner, storage, accessService)

	// Attachment use cases
	addAttachmentUseCase := attachment.NewAddAttachmentUseCase(attachmentRepo, expenseRepo, recurringRepo, storage, accessService, recorder)
	listAttachmentsUseCase := attachment.NewListAttachmentsUseCase(attachmentRepo, expenseRepo, recurringRepo, accessService)
	deleteAttachmentUseCase := attachment.NewDeleteAttachmentUseCase(attachmentRepo, expenseRepo, recurringRepo, storage, accessService, recorder)

	// Report use cases
	costsReportUseCase := report.NewCostsReportUseCase(readingRepo, tariffRepo, expenseRepo, recurringRepo, accessService)
	consumptionReportUseCase := report.NewConsumptionReportUseCase(readingRepo, accessService)
	annualReportUseCase := report.NewAnnualReportUseCase(costsReportUseCase, attachmentRepo, accessService, recorder)
	monthlyComparisonUseCase := report.NewMonthlyComparisonUseCase(expenseRepo, recurringRepo, accessService)
	forecastReportUseCase := report.NewForecastReportUseCase(readingRepo, accessService)
	dashboardUseCase := report.NewDashboardUseCase(propertyRepo, readingRepo, expenseRepo, recurringRepo, accessService)
	exportCSVUseCase := report.NewExportCSVUseCase(readingRepo, expenseRepo, recurringRepo, accessService, recorder)

	// Activity use case
	listActivityUseCase := activity.NewListActivityUseCase(activityRepo, userRepo)

	// Backup use cases
	backupInfoUseCase := backup.NewInfoUseCase(propertyRepo, userRepo, readingRepo, tariffRepo, expenseRepo, recurringRepo, attachmentRepo, accessService)
	createBackupUseCase := backup.NewCreateBackupUseCase(propertyRepo, userRepo, readingRepo, tariffRepo, expenseRepo, recurringRepo, attachmentRepo, storage, accessService, recorder)
	restoreBackupUseCase := backup.NewRestoreBackupUseCase(propertyRepo, userRepo, readingRepo, tariffRepo, expenseRepo, recurringRepo, attachmentRepo, storage, passwordService, accessService, recorder)

	// Controllers
	healthController := controller.NewHealthController(dbHealthy)
	authController := controller.NewAuthController(loginUseCase, currentUserUseCase)
	userController := controller.NewUserController(createUserUseCase, updateUserUseCase, listUsersUseCase, deleteUserUseCase)
	propertyController := controller.NewPropertyController(createPropertyUseCase, updatePropertyUseCase, getPropertyUseCase, listPropertiesUseCase, deletePropertyUseCase)
	meterController := controller.NewMeterController(createReadingUseCase, updateReadingUseCase, listReadingsUseCase, deleteReadingUseCase, scanMeterUseCase)
	tariffController := controller.NewTariffController(createTariffUseCase, updateTariffUseCase, bulkCreateTariffsUseCase, listTariffsUseCase, deleteTariffUseCase)
	expenseController := controller.NewExpenseController(createExpenseUseCase, updateExpenseUseCase, listExpensesUseCase, deleteExpenseUseCase, scanInvoiceUseCase)
	recurringCostController := controller.NewRecurringCostController(createRecurringCostUseCase, updateRecurringCostUseCase, listRecurringCostsUseCase, deleteRecurringCostUseCase, scanContractUseCase)
	contactController := controller.NewContactController(createContactUseCase, updateContactUseCase, getContactUseCase, listContactsUseCase, deleteContactUseCase, scanCardUseCase)
	attachmentController := controller.NewAttachmentController(addAttachmentUseCase, listAttachmentsUseCase, deleteAttachmentUseCase)
	reportController := controller.NewReportController(dashboardUseCase, consumptionReportUseCase, costsReportUseCase, annualReportUseCase, monthlyComparisonUseCase, forecastReportUseCase, exportCSVUseCase)
	activityController := controller.NewActivityController(listActivityUseCase)
	backupController := controller.NewBackupController(backupInfoUseCase, createBackupUseCase, restoreBackupUseCase)
	uploadController := controller.NewUploadController(storage)

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		propertyController,
		meterController,
		tariffController,
		expenseController,
		recurringCostController,
		contactController,
		attachmentController,
		reportController,
		activityController,
		backupController,
		uploadController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
