package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/usecase/contact"
	"github.com/property-manager/backend/internal/integration/entrypoint/dto"
	"github.com/property-manager/backend/internal/integration/entrypoint/middleware"
)

// ContactController handles contact requests.
type ContactController struct {
	createUseCase *contact.CreateContactUseCase
	updateUseCase *contact.UpdateContactUseCase
	getUseCase    *contact.GetContactUseCase
	listUseCase   *contact.ListContactsUseCase
	deleteUseCase *contact.DeleteContactUseCase
	scanUseCase   *contact.ScanCardUseCase
}

// NewContactController creates a new contact controller instance.
func NewContactController(
	createUseCase *contact.CreateContactUseCase,
	updateUseCase *contact.UpdateContactUseCase,
	getUseCase *contact.GetContactUseCase,
	listUseCase *contact.ListContactsUseCase,
	deleteUseCase *contact.DeleteContactUseCase,
	scanUseCase *contact.ScanCardUseCase,
) *ContactController {
	return &ContactController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
		scanUseCase:   scanUseCase,
	}
}

// Create handles POST /contacts.
func (c *ContactController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Contact name is required")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), contact.CreateContactInput{
		UserID:    userID,
		Name:      req.Name,
		Company:   req.Company,
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
		Website:   req.Website,
		TaxID:     req.TaxID,
		Notes:     req.Notes,
		IPAddress: ctx.ClientIP(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToContactResponse(output.Contact))
}

// Update handles PUT /contacts/:id.
func (c *ContactController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	contactID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid contact ID")
		return
	}

	var req dto.UpdateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Contact name is required")
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), contact.UpdateContactInput{
		UserID:    userID,
		ContactID: contactID,
		Name:      req.Name,
		Company:   req.Company,
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
		Website:   req.Website,
		TaxID:     req.TaxID,
		Notes:     req.Notes,
		IPAddress: ctx.ClientIP(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToContactResponse(output.Contact))
}

// Get handles GET /contacts/:id.
func (c *ContactController) Get(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		respondUnauthenticated(ctx)
		return
	}

	contactID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid contact ID")
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), contact.GetContactInput{
		ContactID: contactID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToContactResponse(output.Contact))
}

// List handles GET /contacts with an optional search query parameter.
func (c *ContactController) List(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), contact.ListContactsInput{
		Search: ctx.Query("search"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToContactListResponse(output.Contacts))
}

// Delete handles DELETE /contacts/:id.
func (c *ContactController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	contactID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid contact ID")
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), contact.DeleteContactInput{
		UserID:    userID,
		ContactID: contactID,
		IPAddress: ctx.ClientIP(),
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Scan handles POST /contacts/scan. The business card photo arrives as a
// multipart form under "file".
func (c *ContactController) Scan(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
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

	output, err := c.scanUseCase.Execute(ctx.Request.Context(), contact.ScanCardInput{
		UserID:   userID,
		Filename: header.Filename,
		Data:     data,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToScanCardResponse(output))
}
