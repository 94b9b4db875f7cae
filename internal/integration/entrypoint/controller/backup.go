package controller

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/property-manager/backend/internal/application/usecase/backup"
	"github.com/property-manager/backend/internal/integration/entrypoint/dto"
	"github.com/property-manager/backend/internal/integration/entrypoint/middleware"
)

// BackupController handles full-database export and restore requests.
type BackupController struct {
	infoUseCase    *backup.InfoUseCase
	createUseCase  *backup.CreateBackupUseCase
	restoreUseCase *backup.RestoreBackupUseCase
}

// NewBackupController creates a new backup controller instance.
func NewBackupController(
	infoUseCase *backup.InfoUseCase,
	createUseCase *backup.CreateBackupUseCase,
	restoreUseCase *backup.RestoreBackupUseCase,
) *BackupController {
	return &BackupController{
		infoUseCase:    infoUseCase,
		createUseCase:  createUseCase,
		restoreUseCase: restoreUseCase,
	}
}

// Info handles GET /backup/info.
func (c *BackupController) Info(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.infoUseCase.Execute(ctx.Request.Context(), backup.InfoInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBackupInfoResponse(output))
}

// Create handles GET /backup and answers with the backup file as a
// download.
func (c *BackupController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), backup.CreateBackupInput{
		UserID:    userID,
		IPAddress: ctx.ClientIP(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, "application/json", output.Content)
}

// Restore handles POST /restore. The backup document arrives either as a
// multipart file upload under "file" or as the raw request body.
func (c *BackupController) Restore(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var data []byte
	if header, err := ctx.FormFile("file"); err == nil {
		data, err = readFormFile(header)
		if err != nil {
			respondBadRequest(ctx, "Failed to read uploaded file")
			return
		}
	} else {
		body, err := io.ReadAll(ctx.Request.Body)
		if err != nil || len(body) == 0 {
			respondBadRequest(ctx, "No backup file provided")
			return
		}
		data = body
	}

	output, err := c.restoreUseCase.Execute(ctx.Request.Context(), backup.RestoreBackupInput{
		UserID:    userID,
		Data:      data,
		IPAddress: ctx.ClientIP(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRestoreResponse(output))
}
