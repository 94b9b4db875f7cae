package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/usecase/property"
	"github.com/property-manager/backend/internal/integration/entrypoint/dto"
	"github.com/property-manager/backend/internal/integration/entrypoint/middleware"
)

// PropertyController handles property CRUD requests.
type PropertyController struct {
	createUseCase *property.CreatePropertyUseCase
	updateUseCase *property.UpdatePropertyUseCase
	getUseCase    *property.GetPropertyUseCase
	listUseCase   *property.ListPropertiesUseCase
	deleteUseCase *property.DeletePropertyUseCase
}

// NewPropertyController creates a new property controller instance.
func NewPropertyController(
	createUseCase *property.CreatePropertyUseCase,
	updateUseCase *property.UpdatePropertyUseCase,
	getUseCase *property.GetPropertyUseCase,
	listUseCase *property.ListPropertiesUseCase,
	deleteUseCase *property.DeletePropertyUseCase,
) *PropertyController {
	return &PropertyController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /properties.
func (c *PropertyController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreatePropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Property name is required")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), property.CreatePropertyInput{
		UserID:      userID,
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		IPAddress:   ctx.ClientIP(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPropertyResponse(output.Property))
}

// Update handles PUT /properties/:id.
func (c *PropertyController) Update(ctx *gin.Context) {
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

	var req dto.UpdatePropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Property name is required")
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), property.UpdatePropertyInput{
		UserID:      userID,
		PropertyID:  propertyID,
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		IPAddress:   ctx.ClientIP(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPropertyResponse(output.Property))
}

// Get handles GET /properties/:id.
func (c *PropertyController) Get(ctx *gin.Context) {
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

	output, err := c.getUseCase.Execute(ctx.Request.Context(), property.GetPropertyInput{
		UserID:     userID,
		PropertyID: propertyID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPropertyResponse(output.Property))
}

// List handles GET /properties.
func (c *PropertyController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), property.ListPropertiesInput{
		UserID: userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPropertyListResponse(output.Properties))
}

// Delete handles DELETE /properties/:id.
func (c *PropertyController) Delete(ctx *gin.Context) {
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

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), property.DeletePropertyInput{
		UserID:     userID,
		PropertyID: propertyID,
		IPAddress:  ctx.ClientIP(),
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
