// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/property-manager/backend/internal/integration/entrypoint/controller"
	"github.com/property-manager/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                  *gin.Engine
	healthController        *controller.HealthController
	authController          *controller.AuthController
	userController          *controller.UserController
	propertyController      *controller.PropertyController
	meterController         *controller.MeterController
	tariffController        *controller.TariffController
	expenseController       *controller.ExpenseController
	recurringCostController *controller.RecurringCostController
	contactController       *controller.ContactController
	attachmentController    *controller.AttachmentController
	reportController        *controller.ReportController
	activityController      *controller.ActivityController
	backupController        *controller.BackupController
	uploadController        *controller.UploadController
	loginRateLimiter        *middleware.RateLimiter
	authMiddleware          *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	propertyController *controller.PropertyController,
	meterController *controller.MeterController,
	tariffController *controller.TariffController,
	expenseController *controller.ExpenseController,
	recurringCostController *controller.RecurringCostController,
	contactController *controller.ContactController,
	attachmentController *controller.AttachmentController,
	reportController *controller.ReportController,
	activityController *controller.ActivityController,
	backupController *controller.BackupController,
	uploadController *controller.UploadController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:        healthController,
		authController:          authController,
		userController:          userController,
		propertyController:      propertyController,
		meterController:         meterController,
		tariffController:        tariffController,
		expenseController:       expenseController,
		recurringCostController: recurringCostController,
		contactController:       contactController,
		attachmentController:    attachmentController,
		reportController:        reportController,
		activityController:      activityController,
		backupController:        backupController,
		uploadController:        uploadController,
		loginRateLimiter:        loginRateLimiter,
		authMiddleware:          authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.engine.GET("/health", r.healthController.Check)
	r.setupAPIRoutes()

	return r.engine
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
	}

	authed := v1.Group("")
	authed.Use(r.authMiddleware.Authenticate())
	{
		authed.GET("/dashboard", r.reportController.Dashboard)

		users := authed.Group("/users")
		{
			users.GET("", r.userController.List)
			users.POST("", r.userController.Create)
			users.PUT("/:id", r.userController.Update)
			users.DELETE("/:id", r.userController.Delete)
		}

		properties := authed.Group("/properties")
		{
			properties.GET("", r.propertyController.List)
			properties.POST("", r.propertyController.Create)
			properties.GET("/:id", r.propertyController.Get)
			properties.PUT("/:id", r.propertyController.Update)
			properties.DELETE("/:id", r.propertyController.Delete)

			properties.GET("/:id/readings", r.meterController.List)
			properties.POST("/:id/readings", r.meterController.Create)
			properties.POST("/:id/readings/scan", r.meterController.Scan)

			properties.GET("/:id/tariffs", r.tariffController.List)
			properties.POST("/:id/tariffs", r.tariffController.Create)
			properties.POST("/:id/tariffs/bulk", r.tariffController.BulkCreate)

			properties.GET("/:id/expenses", r.expenseController.List)
			properties.POST("/:id/expenses", r.expenseController.Create)
			properties.POST("/:id/expenses/scan", r.expenseController.Scan)

			properties.GET("/:id/recurring-costs", r.recurringCostController.List)
			properties.POST("/:id/recurring-costs", r.recurringCostController.Create)
			properties.POST("/:id/recurring-costs/scan", r.recurringCostController.Scan)

			reports := properties.Group("/:id/reports")
			{
				reports.GET("/consumption", r.reportController.Consumption)
				reports.GET("/costs", r.reportController.Costs)
				reports.GET("/annual", r.reportController.Annual)
				reports.GET("/monthly", r.reportController.Monthly)
				reports.GET("/forecast", r.reportController.Forecast)
				reports.GET("/export", r.reportController.Export)
			}
		}

		readings := authed.Group("/readings")
		{
			readings.PUT("/:id", r.meterController.Update)
			readings.DELETE("/:id", r.meterController.Delete)
		}

		tariffs := authed.Group("/tariffs")
		{
			tariffs.PUT("/:id", r.tariffController.Update)
			tariffs.DELETE("/:id", r.tariffController.Delete)
		}

		expenses := authed.Group("/expenses")
		{
			expenses.PUT("/:id", r.expenseController.Update)
			expenses.DELETE("/:id", r.expenseController.Delete)
		}

		recurringCosts := authed.Group("/recurring-costs")
		{
			recurringCosts.PUT("/:id", r.recurringCostController.Update)
			recurringCosts.DELETE("/:id", r.recurringCostController.Delete)
		}

		contacts := authed.Group("/contacts")
		{
			contacts.GET("", r.contactController.List)
			contacts.POST("", r.contactController.Create)
			contacts.POST("/scan", r.contactController.Scan)
			contacts.GET("/:id", r.contactController.Get)
			contacts.PUT("/:id", r.contactController.Update)
			contacts.DELETE("/:id", r.contactController.Delete)
		}

		attachments := authed.Group("/attachments")
		{
			attachments.GET("/:owner_type/:owner_id", r.attachmentController.List)
			attachments.POST("/:owner_type/:owner_id", r.attachmentController.Add)
			attachments.DELETE("/:id", r.attachmentController.Delete)
		}

		authed.GET("/activity", r.activityController.List)

		authed.GET("/backup/info", r.backupController.Info)
		authed.GET("/backup", r.backupController.Create)
		authed.POST("/restore", r.backupController.Restore)

		authed.GET("/uploads/:category/:filename", r.uploadController.Serve)
	}
}
