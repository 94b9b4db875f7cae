package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/usecase/activity"
	"github.com/property-manager/backend/internal/integration/entrypoint/dto"
	"github.com/property-manager/backend/internal/integration/entrypoint/middleware"
)

// ActivityController handles activity log requests.
type ActivityController struct {
	listUseCase *activity.ListActivityUseCase
}

// NewActivityController creates a new activity controller instance.
func NewActivityController(listUseCase *activity.ListActivityUseCase) *ActivityController {
	return &ActivityController{listUseCase: listUseCase}
}

// List handles GET /activity with optional user_id, action, entity_type,
// limit and offset query parameters.
func (c *ActivityController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := activity.ListActivityInput{
		UserID:     userID,
		Action:     ctx.Query("action"),
		EntityType: ctx.Query("entity_type"),
	}

	if raw := ctx.Query("user_id"); raw != "" {
		filterUser, err := uuid.Parse(raw)
		if err != nil {
			respondBadRequest(ctx, "Invalid user ID filter")
			return
		}
		input.FilterUser = &filterUser
	}
	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			respondBadRequest(ctx, "Invalid limit")
			return
		}
		input.Limit = limit
	}
	if raw := ctx.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			respondBadRequest(ctx, "Invalid offset")
			return
		}
		input.Offset = offset
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActivityListResponse(output))
}
