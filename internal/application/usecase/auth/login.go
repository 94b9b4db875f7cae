package auth

import (
	"context"
	"fmt"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/activity"
	"github.com/property-manager/backend/internal/domain/entity"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// LoginInput represents the input for user login.
type LoginInput struct {
	Username  string
	Password  string
	IPAddress string
}

// LoginOutput represents the output of a successful login.
type LoginOutput struct {
	Token string
	User  *UserOutput
}

// LoginUseCase handles credential verification and token issuance.
type LoginUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	recorder        *activity.Recorder
}

// NewLoginUseCase creates a new LoginUseCase instance.
func NewLoginUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	recorder *activity.Recorder,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		recorder:        recorder,
	}
}

// Execute performs the login. Unknown usernames and wrong passwords are
// indistinguishable to the caller.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	user, err := uc.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, domainerror.ErrInvalidCredentials
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.ErrInvalidCredentials
	}

	token, err := uc.tokenService.GenerateToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionLogin, "auth", nil, "user logged in", input.IPAddress)

	return &LoginOutput{
		Token: token,
		User:  newUserOutput(user),
	}, nil
}
