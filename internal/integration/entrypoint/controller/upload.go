package controller

import (
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/integration/entrypoint/middleware"
)

// allowed upload categories, matching what the storage layer writes.
var uploadCategories = map[string]bool{
	"meters":          true,
	"expenses":        true,
	"recurring_costs": true,
	"contacts":        true,
}

// UploadController serves stored files back to authenticated clients.
type UploadController struct {
	storage adapter.FileStorage
}

// NewUploadController creates a new upload controller instance.
func NewUploadController(storage adapter.FileStorage) *UploadController {
	return &UploadController{storage: storage}
}

// Serve handles GET /uploads/:category/:filename.
func (c *UploadController) Serve(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		respondUnauthenticated(ctx)
		return
	}

	category := ctx.Param("category")
	if !uploadCategories[category] {
		respondBadRequest(ctx, "Unknown upload category")
		return
	}
	filename := ctx.Param("filename")

	data, err := c.storage.Read(ctx.Request.Context(), category, filename)
	if err != nil {
		ctx.Status(http.StatusNotFound)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ctx.Data(http.StatusOK, contentType, data)
}
