package profile

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/campushire/talent-hub/internal/application/service"
	"github.com/campushire/talent-hub/internal/domain/talent"
	"github.com/campushire/talent-hub/pkg/apperror"
	"github.com/campushire/talent-hub/pkg/logger"
	"go.uber.org/zap"
)

type UploadAvatarUseCase struct {
	talentRepo talent.Repository
	uploader   service.Uploader
	logger     logger.Logger
}

func NewUploadAvatarUseCase(repo talent.Repository, up service.Uploader, log logger.Logger) *UploadAvatarUseCase {
	return &UploadAvatarUseCase{
		talentRepo: repo,
		uploader:   up,
		logger:     log,
	}
}

type UploadAvatarInput struct {
	OwnerID uuid.UUID
	File    io.Reader
}

type UploadAvatarOutput struct {
	AvatarURL string
}

func (uc *UploadAvatarUseCase) Execute(ctx context.Context, input UploadAvatarInput) (*UploadAvatarOutput, error) {

	// One avatar per talent; re-uploading overwrites the same public ID.
	publicID := fmt.Sprintf("avatar_%s", input.OwnerID)

	url, err := uc.uploader.Upload(ctx, input.File, "talent-hub/avatars", publicID)
	if err != nil {
		uc.logger.Error("Avatar upload failed", err, zap.String("owner_id", input.OwnerID.String()))
		return nil, apperror.NewInternal("failed to upload avatar", err)
	}

	if err := uc.talentRepo.SetAvatarURL(ctx, input.OwnerID, url); err != nil {
		return nil, err
	}

	return &UploadAvatarOutput{AvatarURL: url}, nil
}
