package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campushire/talent-hub/internal/domain/talent"
	"github.com/campushire/talent-hub/internal/domain/user"
	"github.com/campushire/talent-hub/pkg/apperror"
	"github.com/campushire/talent-hub/pkg/auth"
	"github.com/campushire/talent-hub/pkg/logger"
	"go.uber.org/zap"
)

type RegisterUseCase struct {
	userRepo   user.Repository
	talentRepo talent.Repository
	jwtSvc     *auth.JWTService
	logger     logger.Logger
}

func NewRegisterUseCase(uRepo user.Repository, tRepo talent.Repository, jwtSvc *auth.JWTService, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:   uRepo,
		talentRepo: tRepo,
		jwtSvc:     jwtSvc,
		logger:     log,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

type RegisterOutput struct {
	UserID      uuid.UUID
	AccessToken string
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {

	ctx, span := tracer.Start(ctx, "Register")
	defer span.End()

	if len(input.Password) < 8 {
		return nil, apperror.NewInvalidInput("password must be at least 8 characters", nil)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	now := time.Now().UTC()
	newUser := &user.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hash,
		Role:         auth.RoleTalent,
		CreatedAt:    now,
	}

	// Every account starts with a pending profile; only a review decision
	// can move it out of pending.
	newProfile := &talent.Profile{
		OwnerID:        newUser.ID,
		FullName:       input.FullName,
		ProfileVisible: true,
		Status:         talent.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := newProfile.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("profile validation failed", err)
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := uc.talentRepo.Save(ctx, newProfile); err != nil {
		uc.logger.Error("Failed to create profile, removing the new account", err, zap.String("user_id", newUser.ID.String()))
		span.RecordError(err)
		// Without the compensating delete the email would stay burned on a
		// login-able account that has no profile.
		if delErr := uc.userRepo.Delete(ctx, newUser.ID); delErr != nil {
			uc.logger.Error("Failed to remove account after profile failure", delErr, zap.String("user_id", newUser.ID.String()))
		}
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(newUser.ID, newUser.Role)
	if err != nil {
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	return &RegisterOutput{UserID: newUser.ID, AccessToken: token}, nil
}
