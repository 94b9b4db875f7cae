package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/usecase/recurringcost"
	"github.com/property-manager/backend/internal/integration/entrypoint/dto"
	"github.com/property-manager/backend/internal/integration/entrypoint/middleware"
)

// RecurringCostController handles recurring cost requests.
type RecurringCostController struct {
	createUseCase *recurringcost.CreateRecurringCostUseCase
	updateUseCase *recurringcost.UpdateRecurringCostUseCase
	listUseCase   *recurringcost.ListRecurringCostsUseCase
	deleteUseCase *recurringcost.DeleteRecurringCostUseCase
	scanUseCase   *recurringcost.ScanContractUseCase
}

// NewRecurringCostController creates a new recurring cost controller
// instance.
func NewRecurringCostController(
	createUseCase *recurringcost.CreateRecurringCostUseCase,
	updateUseCase *recurringcost.UpdateRecurringCostUseCase,
	listUseCase *recurringcost.ListRecurringCostsUseCase,
	deleteUseCase *recurringcost.DeleteRecurringCostUseCase,
	scanUseCase *recurringcost.ScanContractUseCase,
) *RecurringCostController {
	return &RecurringCostController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
		scanUseCase:   scanUseCase,
	}
}

// Create handles POST /properties/:id/recurring-costs. Plain requests
// arrive as JSON; requests with contract documents arrive as a multipart
// form with files under "attachments".
func (c *RecurringCostController) Create(ctx *gin.Context) {
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

	input := recurringcost.CreateRecurringCostInput{
		UserID:     userID,
		PropertyID: propertyID,
		IPAddress:  ctx.ClientIP(),
	}

	if strings.HasPrefix(ctx.ContentType(), "multipart/form-data") {
		contactID, err := parseOptionalUUIDForm(ctx.PostForm("contact_id"))
		if err != nil {
			respondBadRequest(ctx, "Invalid contact ID")
			return
		}
		monthlyAmount, err := parseDecimal(ctx.PostForm("monthly_amount"))
		if err != nil {
			respondBadRequest(ctx, "Invalid monthly amount")
			return
		}
		vatRateForm := ctx.PostForm("vat_rate")
		vatRate, err := parseOptionalDecimal(&vatRateForm)
		if err != nil {
			respondBadRequest(ctx, "Invalid VAT rate")
			return
		}
		startDate, err := parseDate(ctx.PostForm("start_date"))
		if err != nil {
			respondBadRequest(ctx, "Invalid start date, expected YYYY-MM-DD")
			return
		}
		endDateForm := ctx.PostForm("end_date")
		endDate, err := parseOptionalDate(&endDateForm)
		if err != nil {
			respondBadRequest(ctx, "Invalid end date, expected YYYY-MM-DD")
			return
		}

		input.ContactID = contactID
		input.Description = ctx.PostForm("description")
		input.Vendor = ctx.PostForm("vendor")
		input.MonthlyAmount = monthlyAmount
		input.VATRate = vatRate
		input.StartDate = startDate
		input.EndDate = endDate
		input.Category = ctx.PostForm("category")

		form, err := ctx.MultipartForm()
		if err != nil {
			respondBadRequest(ctx, "Invalid multipart form")
			return
		}
		for _, header := range form.File["attachments"] {
			data, err := readFormFile(header)
			if err != nil {
				respondBadRequest(ctx, "Could not read uploaded file")
				return
			}
			input.Attachments = append(input.Attachments, recurringcost.AttachmentUpload{
				Filename: header.Filename,
				Data:     data,
			})
		}
	} else {
		var req dto.CreateRecurringCostRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			respondBadRequest(ctx, "Description, monthly amount and start date are required")
			return
		}

		monthlyAmount, err := parseDecimal(req.MonthlyAmount)
		if err != nil {
			respondBadRequest(ctx, "Invalid monthly amount")
			return
		}
		vatRate, err := parseOptionalDecimal(req.VATRate)
		if err != nil {
			respondBadRequest(ctx, "Invalid VAT rate")
			return
		}
		startDate, err := parseDate(req.StartDate)
		if err != nil {
			respondBadRequest(ctx, "Invalid start date, expected YYYY-MM-DD")
			return
		}
		endDate, err := parseOptionalDate(req.EndDate)
		if err != nil {
			respondBadRequest(ctx, "Invalid end date, expected YYYY-MM-DD")
			return
		}

		input.ContactID = req.ContactID
		input.Description = req.Description
		input.Vendor = req.Vendor
		input.MonthlyAmount = monthlyAmount
		input.VATRate = vatRate
		input.StartDate = startDate
		input.EndDate = endDate
		input.Category = req.Category
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecurringCostResponse(output.Cost))
}

// Update handles PUT /recurring-costs/:id.
func (c *RecurringCostController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	costID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid recurring cost ID")
		return
	}

	var req dto.UpdateRecurringCostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Description, monthly amount and start date are required")
		return
	}

	monthlyAmount, err := parseDecimal(req.MonthlyAmount)
	if err != nil {
		respondBadRequest(ctx, "Invalid monthly amount")
		return
	}
	vatRate, err := parseOptionalDecimal(req.VATRate)
	if err != nil {
		respondBadRequest(ctx, "Invalid VAT rate")
		return
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		respondBadRequest(ctx, "Invalid start date, expected YYYY-MM-DD")
		return
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		respondBadRequest(ctx, "Invalid end date, expected YYYY-MM-DD")
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), recurringcost.UpdateRecurringCostInput{
		UserID:        userID,
		CostID:        costID,
		ContactID:     req.ContactID,
		Description:   req.Description,
		Vendor:        req.Vendor,
		MonthlyAmount: monthlyAmount,
		VATRate:       vatRate,
		StartDate:     startDate,
		EndDate:       endDate,
		Category:      req.Category,
		IPAddress:     ctx.ClientIP(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringCostResponse(output.Cost))
}

// List handles GET /properties/:id/recurring-costs.
func (c *RecurringCostController) List(ctx *gin.Context) {
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

	output, err := c.listUseCase.Execute(ctx.Request.Context(), recurringcost.ListRecurringCostsInput{
		UserID:     userID,
		PropertyID: propertyID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringCostListResponse(output.Costs))
}

// Delete handles DELETE /recurring-costs/:id.
func (c *RecurringCostController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	costID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid recurring cost ID")
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), recurringcost.DeleteRecurringCostInput{
		UserID:    userID,
		CostID:    costID,
		IPAddress: ctx.ClientIP(),
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Scan handles POST /properties/:id/recurring-costs/scan. The contract
// document arrives as a multipart form under "file".
func (c *RecurringCostController) Scan(ctx *gin.Context) {
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

	header, err := ctx.FormFile("file")
	if err != nil {
		respondBadRequest(ctx, "A file upload is required")
		return
	}
	data, err := readFormFile(header)
	if err != nil {
		respondBadRequest(ctx, "Could not read uploaded file")
		return
	}

	output, err := c.scanUseCase.Execute(ctx.Request.Context(), recurringcost.ScanContractInput{
		UserID:     userID,
		PropertyID: propertyID,
		Data:       data,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToScanContractResponse(output))
}
