package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/property-manager/backend/internal/application/usecase/auth"
	"github.com/property-manager/backend/internal/integration/entrypoint/dto"
	"github.com/property-manager/backend/internal/integration/entrypoint/middleware"
)

// AuthController handles authentication requests.
type AuthController struct {
	loginUseCase       *auth.LoginUseCase
	currentUserUseCase *auth.CurrentUserUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	loginUseCase *auth.LoginUseCase,
	currentUserUseCase *auth.CurrentUserUseCase,
) *AuthController {
	return &AuthController{
		loginUseCase:       loginUseCase,
		currentUserUseCase: currentUserUseCase,
	}
}

// Login handles POST /auth/login.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Username and password are required")
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginInput{
		Username:  req.Username,
		Password:  req.Password,
		IPAddress: ctx.ClientIP(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoginResponse(output))
}

// Me handles GET /auth/me.
func (c *AuthController) Me(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.currentUserUseCase.Execute(ctx.Request.Context(), auth.CurrentUserInput{
		UserID: userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCurrentUserResponse(output))
}
