package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/usecase/expense"
	"github.com/property-manager/backend/internal/integration/entrypoint/dto"
	"github.com/property-manager/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense requests.
type ExpenseController struct {
	createUseCase *expense.CreateExpenseUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
	scanUseCase   *expense.ScanInvoiceUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	scanUseCase *expense.ScanInvoiceUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
		scanUseCase:   scanUseCase,
	}
}

// parseOptionalUUIDForm reads an optional UUID form field.
func parseOptionalUUIDForm(value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Create handles POST /properties/:id/expenses. Plain expenses arrive as
// JSON; expenses with documents arrive as a multipart form with files
// under "attachments".
func (c *ExpenseController) Create(ctx *gin.Context) {
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

	input := expense.CreateExpenseInput{
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
		invoiceDate, err := parseDate(ctx.PostForm("invoice_date"))
		if err != nil {
			respondBadRequest(ctx, "Invalid invoice date, expected YYYY-MM-DD")
			return
		}
		netAmount, err := parseDecimal(ctx.PostForm("net_amount"))
		if err != nil {
			respondBadRequest(ctx, "Invalid net amount")
			return
		}
		vatRateForm := ctx.PostForm("vat_rate")
		vatRate, err := parseOptionalDecimal(&vatRateForm)
		if err != nil {
			respondBadRequest(ctx, "Invalid VAT rate")
			return
		}

		input.ContactID = contactID
		input.Vendor = ctx.PostForm("vendor")
		input.InvoiceDate = invoiceDate
		input.InvoiceNumber = ctx.PostForm("invoice_number")
		input.NetAmount = netAmount
		input.VATRate = vatRate
		input.Description = ctx.PostForm("description")
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
			input.Attachments = append(input.Attachments, expense.AttachmentUpload{
				Filename: header.Filename,
				Data:     data,
			})
		}
	} else {
		var req dto.CreateExpenseRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			respondBadRequest(ctx, "Vendor, invoice date and net amount are required")
			return
		}

		invoiceDate, err := parseDate(req.InvoiceDate)
		if err != nil {
			respondBadRequest(ctx, "Invalid invoice date, expected YYYY-MM-DD")
			return
		}
		netAmount, err := parseDecimal(req.NetAmount)
		if err != nil {
			respondBadRequest(ctx, "Invalid net amount")
			return
		}
		vatRate, err := parseOptionalDecimal(req.VATRate)
		if err != nil {
			respondBadRequest(ctx, "Invalid VAT rate")
			return
		}

		input.ContactID = req.ContactID
		input.Vendor = req.Vendor
		input.InvoiceDate = invoiceDate
		input.InvoiceNumber = req.InvoiceNumber
		input.NetAmount = netAmount
		input.VATRate = vatRate
		input.Description = req.Description
		input.Category = req.Category
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Update handles PUT /expenses/:id.
func (c *ExpenseController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid expense ID")
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Vendor, invoice date and net amount are required")
		return
	}

	invoiceDate, err := parseDate(req.InvoiceDate)
	if err != nil {
		respondBadRequest(ctx, "Invalid invoice date, expected YYYY-MM-DD")
		return
	}
	netAmount, err := parseDecimal(req.NetAmount)
	if err != nil {
		respondBadRequest(ctx, "Invalid net amount")
		return
	}
	vatRate, err := parseOptionalDecimal(req.VATRate)
	if err != nil {
		respondBadRequest(ctx, "Invalid VAT rate")
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), expense.UpdateExpenseInput{
		UserID:        userID,
		ExpenseID:     expenseID,
		ContactID:     req.ContactID,
		Vendor:        req.Vendor,
		InvoiceDate:   invoiceDate,
		InvoiceNumber: req.InvoiceNumber,
		NetAmount:     netAmount,
		VATRate:       vatRate,
		Description:   req.Description,
		Category:      req.Category,
		IPAddress:     ctx.ClientIP(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// List handles GET /properties/:id/expenses with optional category,
// start_date and end_date query parameters.
func (c *ExpenseController) List(ctx *gin.Context) {
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

	startDate, err := parseOptionalDateQuery(ctx, "start_date")
	if err != nil {
		respondBadRequest(ctx, "Invalid start date, expected YYYY-MM-DD")
		return
	}
	endDate, err := parseOptionalDateQuery(ctx, "end_date")
	if err != nil {
		respondBadRequest(ctx, "Invalid end date, expected YYYY-MM-DD")
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{
		UserID:     userID,
		PropertyID: propertyID,
		Category:   ctx.Query("category"),
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// Delete handles DELETE /expenses/:id.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid expense ID")
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		UserID:    userID,
		ExpenseID: expenseID,
		IPAddress: ctx.ClientIP(),
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Scan handles POST /properties/:id/expenses/scan. The invoice document
// arrives as a multipart form under "file".
func (c *ExpenseController) Scan(ctx *gin.Context) {
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

	output, err := c.scanUseCase.Execute(ctx.Request.Context(), expense.ScanInvoiceInput{
		UserID:     userID,
		PropertyID: propertyID,
		Data:       data,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToScanInvoiceResponse(output))
}
