package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/usecase/attachment"
	"github.com/property-manager/backend/internal/domain/entity"
	"github.com/property-manager/backend/internal/integration/entrypoint/dto"
	"github.com/property-manager/backend/internal/integration/entrypoint/middleware"
)

// AttachmentController handles file attachment requests for expenses and
// recurring costs.
type AttachmentController struct {
	addUseCase    *attachment.AddAttachmentUseCase
	listUseCase   *attachment.ListAttachmentsUseCase
	deleteUseCase *attachment.DeleteAttachmentUseCase
}

// NewAttachmentController creates a new attachment controller instance.
func NewAttachmentController(
	addUseCase *attachment.AddAttachmentUseCase,
	listUseCase *attachment.ListAttachmentsUseCase,
	deleteUseCase *attachment.DeleteAttachmentUseCase,
) *AttachmentController {
	return &AttachmentController{
		addUseCase:    addUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// parseOwnerType maps the URL segment to an attachment owner.
func parseOwnerType(raw string) (entity.AttachmentOwner, bool) {
	switch raw {
	case "expenses":
		return entity.AttachmentOwnerExpense, true
	case "recurring-costs":
		return entity.AttachmentOwnerRecurringCost, true
	default:
		return "", false
	}
}

// Add handles POST /attachments/:owner_type/:owner_id. The document
// arrives as a multipart form under "file".
func (c *AttachmentController) Add(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	ownerType, ok := parseOwnerType(ctx.Param("owner_type"))
	if !ok {
		respondBadRequest(ctx, "Unknown owner type")
		return
	}
	ownerID, err := uuid.Parse(ctx.Param("owner_id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid owner ID")
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

	output, err := c.addUseCase.Execute(ctx.Request.Context(), attachment.AddAttachmentInput{
		UserID:    userID,
		OwnerType: ownerType,
		OwnerID:   ownerID,
		Filename:  header.Filename,
		Data:      data,
		IPAddress: ctx.ClientIP(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAttachmentResponse(output.Attachment))
}

// List handles GET /attachments/:owner_type/:owner_id.
func (c *AttachmentController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	ownerType, ok := parseOwnerType(ctx.Param("owner_type"))
	if !ok {
		respondBadRequest(ctx, "Unknown owner type")
		return
	}
	ownerID, err := uuid.Parse(ctx.Param("owner_id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid owner ID")
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), attachment.ListAttachmentsInput{
		UserID:    userID,
		OwnerType: ownerType,
		OwnerID:   ownerID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAttachmentListResponse(output.Attachments))
}

// Delete handles DELETE /attachments/:id.
func (c *AttachmentController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	attachmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid attachment ID")
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), attachment.DeleteAttachmentInput{
		UserID:       userID,
		AttachmentID: attachmentID,
		IPAddress:    ctx.ClientIP(),
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
