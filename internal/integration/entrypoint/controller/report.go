package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/usecase/report"
	"github.com/property-manager/backend/internal/integration/entrypoint/dto"
	"github.com/property-manager/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles report and dashboard requests.
type ReportController struct {
	dashboardUseCase   *report.DashboardUseCase
	consumptionUseCase *report.ConsumptionReportUseCase
	costsUseCase       *report.CostsReportUseCase
	annualUseCase      *report.AnnualReportUseCase
	monthlyUseCase     *report.MonthlyComparisonUseCase
	forecastUseCase    *report.ForecastReportUseCase
	exportUseCase      *report.ExportCSVUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	dashboardUseCase *report.DashboardUseCase,
	consumptionUseCase *report.ConsumptionReportUseCase,
	costsUseCase *report.CostsReportUseCase,
	annualUseCase *report.AnnualReportUseCase,
	monthlyUseCase *report.MonthlyComparisonUseCase,
	forecastUseCase *report.ForecastReportUseCase,
	exportUseCase *report.ExportCSVUseCase,
) *ReportController {
	return &ReportController{
		dashboardUseCase:   dashboardUseCase,
		consumptionUseCase: consumptionUseCase,
		costsUseCase:       costsUseCase,
		annualUseCase:      annualUseCase,
		monthlyUseCase:     monthlyUseCase,
		forecastUseCase:    forecastUseCase,
		exportUseCase:      exportUseCase,
	}
}

// yearQuery reads the year query parameter, defaulting to the current
// year.
func yearQuery(ctx *gin.Context) (int, error) {
	raw := ctx.Query("year")
	if raw == "" {
		return time.Now().UTC().Year(), nil
	}
	return strconv.Atoi(raw)
}

// Dashboard handles GET /dashboard.
func (c *ReportController) Dashboard(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), report.DashboardInput{
		UserID: userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// Consumption handles GET /properties/:id/reports/consumption with
// optional start_date and end_date query parameters.
func (c *ReportController) Consumption(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	propertyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid property ID")
		return
	}

	start, err := parseOptionalDateQuery(ctx, "start_date")
	if err != nil {
		respondBadRequest(ctx, "Invalid start date, expected YYYY-MM-DD")
		return
	}
	end, err := parseOptionalDateQuery(ctx, "end_date")
	if err != nil {
		respondBadRequest(ctx, "Invalid end date, expected YYYY-MM-DD")
		return
	}

	output, err := c.consumptionUseCase.Execute(ctx.Request.Context(), report.ConsumptionReportInput{
		UserID:     userID,
		PropertyID: propertyID,
		Start:      start,
		End:        end,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConsumptionReportResponse(output))
}

// Costs handles GET /properties/:id/reports/costs with optional
// start_date and end_date query parameters.
func (c *ReportController) Costs(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	propertyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid property ID")
		return
	}

	start, err := parseOptionalDateQuery(ctx, "start_date")
	if err != nil {
		respondBadRequest(ctx, "Invalid start date, expected YYYY-MM-DD")
		return
	}
	end, err := parseOptionalDateQuery(ctx, "end_date")
	if err != nil {
		respondBadRequest(ctx, "Invalid end date, expected YYYY-MM-DD")
		return
	}

	output, err := c.costsUseCase.Execute(ctx.Request.Context(), report.CostsReportInput{
		UserID:     userID,
		PropertyID: propertyID,
		Start:      start,
		End:        end,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCostsReportResponse(output))
}

// Annual handles GET /properties/:id/reports/annual with an optional year
// query parameter.
func (c *ReportController) Annual(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	propertyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid property ID")
		return
	}

	year, err := yearQuery(ctx)
	if err != nil {
		respondBadRequest(ctx, "Invalid year")
		return
	}

	output, err := c.annualUseCase.Execute(ctx.Request.Context(), report.AnnualReportInput{
		UserID:     userID,
		PropertyID: propertyID,
		Year:       year,
		IPAddress:  ctx.ClientIP(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnnualReportResponse(output))
}

// Monthly handles GET /properties/:id/reports/monthly with an optional
// year query parameter.
func (c *ReportController) Monthly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	propertyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid property ID")
		return
	}

	year, err := yearQuery(ctx)
	if err != nil {
		respondBadRequest(ctx, "Invalid year")
		return
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), report.MonthlyComparisonInput{
		UserID:     userID,
		PropertyID: propertyID,
		Year:       year,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyComparisonResponse(output))
}

// Forecast handles GET /properties/:id/reports/forecast with an optional
// year query parameter.
func (c *ReportController) Forecast(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	propertyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid property ID")
		return
	}

	year, err := yearQuery(ctx)
	if err != nil {
		respondBadRequest(ctx, "Invalid year")
		return
	}

	output, err := c.forecastUseCase.Execute(ctx.Request.Context(), report.ForecastReportInput{
		UserID:     userID,
		PropertyID: propertyID,
		Year:       year,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToForecastReportResponse(output))
}

// Export handles GET /properties/:id/reports/export with a required type
// query parameter and optional start_date and end_date.
func (c *ReportController) Export(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	propertyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid property ID")
		return
	}

	start, err := parseOptionalDateQuery(ctx, "start_date")
	if err != nil {
		respondBadRequest(ctx, "Invalid start date, expected YYYY-MM-DD")
		return
	}
	end, err := parseOptionalDateQuery(ctx, "end_date")
	if err != nil {
		respondBadRequest(ctx, "Invalid end date, expected YYYY-MM-DD")
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), report.ExportCSVInput{
		UserID:     userID,
		PropertyID: propertyID,
		Type:       ctx.Query("type"),
		Start:      start,
		End:        end,
		IPAddress:  ctx.ClientIP(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", output.Content)
}
