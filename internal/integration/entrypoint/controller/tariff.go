package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/application/usecase/tariff"
	"github.com/property-manager/backend/internal/integration/entrypoint/dto"
	"github.com/property-manager/backend/internal/integration/entrypoint/middleware"
)

// TariffController handles tariff requests.
type TariffController struct {
	createUseCase *tariff.CreateTariffUseCase
	updateUseCase *tariff.UpdateTariffUseCase
	bulkUseCase   *tariff.BulkCreateTariffsUseCase
	listUseCase   *tariff.ListTariffsUseCase
	deleteUseCase *tariff.DeleteTariffUseCase
}

// NewTariffController creates a new tariff controller instance.
func NewTariffController(
	createUseCase *tariff.CreateTariffUseCase,
	updateUseCase *tariff.UpdateTariffUseCase,
	bulkUseCase *tariff.BulkCreateTariffsUseCase,
	listUseCase *tariff.ListTariffsUseCase,
	deleteUseCase *tariff.DeleteTariffUseCase,
) *TariffController {
	return &TariffController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		bulkUseCase:   bulkUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// parseBaseCost treats an absent base cost as zero.
func parseBaseCost(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(value)
}

// Create handles POST /properties/:id/tariffs.
func (c *TariffController) Create(ctx *gin.Context) {
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

	var req dto.CreateTariffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Tariff type, price per unit and valid from are required")
		return
	}

	price, err := parseDecimal(req.PricePerUnit)
	if err != nil {
		respondBadRequest(ctx, "Invalid price per unit")
		return
	}
	baseCost, err := parseBaseCost(req.BaseCostMonthly)
	if err != nil {
		respondBadRequest(ctx, "Invalid base cost")
		return
	}
	validFrom, err := parseDate(req.ValidFrom)
	if err != nil {
		respondBadRequest(ctx, "Invalid valid from date, expected YYYY-MM-DD")
		return
	}
	validTo, err := parseOptionalDate(req.ValidTo)
	if err != nil {
		respondBadRequest(ctx, "Invalid valid to date, expected YYYY-MM-DD")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), tariff.CreateTariffInput{
		UserID:          userID,
		PropertyID:      propertyID,
		TariffType:      req.TariffType,
		PricePerUnit:    price,
		BaseCostMonthly: baseCost,
		ValidFrom:       validFrom,
		ValidTo:         validTo,
		IPAddress:       ctx.ClientIP(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTariffResponse(output.Tariff))
}

// Update handles PUT /tariffs/:id.
func (c *TariffController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	tariffID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid tariff ID")
		return
	}

	var req dto.UpdateTariffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Tariff type, price per unit and valid from are required")
		return
	}

	price, err := parseDecimal(req.PricePerUnit)
	if err != nil {
		respondBadRequest(ctx, "Invalid price per unit")
		return
	}
	baseCost, err := parseBaseCost(req.BaseCostMonthly)
	if err != nil {
		respondBadRequest(ctx, "Invalid base cost")
		return
	}
	validFrom, err := parseDate(req.ValidFrom)
	if err != nil {
		respondBadRequest(ctx, "Invalid valid from date, expected YYYY-MM-DD")
		return
	}
	validTo, err := parseOptionalDate(req.ValidTo)
	if err != nil {
		respondBadRequest(ctx, "Invalid valid to date, expected YYYY-MM-DD")
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), tariff.UpdateTariffInput{
		UserID:          userID,
		TariffID:        tariffID,
		TariffType:      req.TariffType,
		PricePerUnit:    price,
		BaseCostMonthly: baseCost,
		ValidFrom:       validFrom,
		ValidTo:         validTo,
		IPAddress:       ctx.ClientIP(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTariffResponse(output.Tariff))
}

// BulkCreate handles POST /properties/:id/tariffs/bulk.
func (c *TariffController) BulkCreate(ctx *gin.Context) {
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

	var req dto.BulkCreateTariffsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Valid from and at least one tariff item are required")
		return
	}

	validFrom, err := parseDate(req.ValidFrom)
	if err != nil {
		respondBadRequest(ctx, "Invalid valid from date, expected YYYY-MM-DD")
		return
	}
	validTo, err := parseOptionalDate(req.ValidTo)
	if err != nil {
		respondBadRequest(ctx, "Invalid valid to date, expected YYYY-MM-DD")
		return
	}

	items := make([]tariff.BulkTariffItem, 0, len(req.Items))
	for _, item := range req.Items {
		price, err := parseDecimal(item.PricePerUnit)
		if err != nil {
			respondBadRequest(ctx, "Invalid price per unit")
			return
		}
		baseCost, err := parseBaseCost(item.BaseCostMonthly)
		if err != nil {
			respondBadRequest(ctx, "Invalid base cost")
			return
		}
		items = append(items, tariff.BulkTariffItem{
			TariffType:      item.TariffType,
			PricePerUnit:    price,
			BaseCostMonthly: baseCost,
		})
	}

	output, err := c.bulkUseCase.Execute(ctx.Request.Context(), tariff.BulkCreateTariffsInput{
		UserID:     userID,
		PropertyID: propertyID,
		ValidFrom:  validFrom,
		ValidTo:    validTo,
		Items:      items,
		IPAddress:  ctx.ClientIP(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, &dto.BulkCreateTariffsResponse{
		Tariffs: dto.ToTariffListResponse(output.Tariffs),
		Skipped: output.Skipped,
	})
}

// List handles GET /properties/:id/tariffs with an optional tariff_type
// query parameter.
func (c *TariffController) List(ctx *gin.Context) {
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

	output, err := c.listUseCase.Execute(ctx.Request.Context(), tariff.ListTariffsInput{
		UserID:     userID,
		PropertyID: propertyID,
		TariffType: ctx.Query("tariff_type"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTariffListResponse(output.Tariffs))
}

// Delete handles DELETE /tariffs/:id.
func (c *TariffController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	tariffID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid tariff ID")
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), tariff.DeleteTariffInput{
		UserID:    userID,
		TariffID:  tariffID,
		IPAddress: ctx.ClientIP(),
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
