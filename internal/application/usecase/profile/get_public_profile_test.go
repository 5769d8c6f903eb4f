package profile

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/talent-hub/internal/domain/project"
	"github.com/campushire/talent-hub/internal/domain/skill"
	"github.com/campushire/talent-hub/internal/domain/talent"
	"github.com/campushire/talent-hub/pkg/apperror"
)

type fakeProfileRepo struct {
	talent.Repository

	profile      *talent.Profile
	skillCount   int
	projectCount int
}

func (f *fakeProfileRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*talent.Profile, error) {
	if f.profile == nil || f.profile.OwnerID != ownerID {
		return nil, apperror.NewNotFound("profile", ownerID.String())
	}
	return f.profile, nil
}

func (f *fakeProfileRepo) CountOwned(ctx context.Context, ownerID uuid.UUID) (int, int, error) {
	return f.skillCount, f.projectCount, nil
}

type fakeSkillRepo struct {
	skill.Repository

	skills []*skill.Skill
}

func (f *fakeSkillRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*skill.Skill, error) {
	return f.skills, nil
}

type fakeProjectRepo struct {
	project.Repository

	projects []*project.Project
}

func (f *fakeProjectRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*project.Project, error) {
	return f.projects, nil
}

func approvedProfile() *talent.Profile {
	return &talent.Profile{
		OwnerID:        uuid.New(),
		FullName:       "Minh Tran",
		Status:         talent.StatusApproved,
		ProfileVisible: true,
	}
}

func newGetPublicProfileUC(p *talent.Profile, skills []*skill.Skill, projects []*project.Project) *GetPublicProfileUseCase {
	return NewGetPublicProfileUseCase(
		&fakeProfileRepo{profile: p, skillCount: len(skills), projectCount: len(projects)},
		&fakeSkillRepo{skills: skills},
		&fakeProjectRepo{projects: projects},
	)
}

func TestGetPublicProfile_ApprovedVisibleForAnyone(t *testing.T) {
	p := approvedProfile()
	skills := []*skill.Skill{{ID: uuid.New(), OwnerID: p.OwnerID, Name: "Go"}}
	projects := []*project.Project{{ID: uuid.New(), OwnerID: p.OwnerID, Title: "Course planner"}}
	uc := newGetPublicProfileUC(p, skills, projects)

	out, err := uc.Execute(context.Background(), GetPublicProfileInput{ProfileID: p.OwnerID})

	require.NoError(t, err)
	assert.Equal(t, p.OwnerID, out.Profile.OwnerID)
	assert.Equal(t, 1, out.SkillCount)
	assert.Equal(t, 1, out.ProjectCount)
}

func TestGetPublicProfile_CountsNotCappedByListing(t *testing.T) {
	p := approvedProfile()
	projects := []*project.Project{{ID: uuid.New(), OwnerID: p.OwnerID, Title: "Course planner"}}
	repo := &fakeProfileRepo{profile: p, skillCount: 3, projectCount: 72}
	uc := NewGetPublicProfileUseCase(repo, &fakeSkillRepo{}, &fakeProjectRepo{projects: projects})

	out, err := uc.Execute(context.Background(), GetPublicProfileInput{ProfileID: p.OwnerID})

	require.NoError(t, err)
	assert.Len(t, out.Projects, 1)
	assert.Equal(t, 3, out.SkillCount)
	assert.Equal(t, 72, out.ProjectCount)
}

func TestGetPublicProfile_PendingHiddenFromStrangers(t *testing.T) {
	p := approvedProfile()
	p.Status = talent.StatusPending
	uc := newGetPublicProfileUC(p, nil, nil)

	_, err := uc.Execute(context.Background(), GetPublicProfileInput{
		ProfileID: p.OwnerID,
		CallerID:  uuid.New(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestGetPublicProfile_HiddenFromAnonymous(t *testing.T) {
	p := approvedProfile()
	p.ProfileVisible = false
	uc := newGetPublicProfileUC(p, nil, nil)

	_, err := uc.Execute(context.Background(), GetPublicProfileInput{ProfileID: p.OwnerID})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestGetPublicProfile_OwnerSeesOwnPendingProfile(t *testing.T) {
	p := approvedProfile()
	p.Status = talent.StatusPending
	uc := newGetPublicProfileUC(p, nil, nil)

	out, err := uc.Execute(context.Background(), GetPublicProfileInput{
		ProfileID: p.OwnerID,
		CallerID:  p.OwnerID,
	})

	require.NoError(t, err)
	assert.Equal(t, talent.StatusPending, out.Profile.Status)
}

func TestGetPublicProfile_AdminSeesRejectedProfile(t *testing.T) {
	p := approvedProfile()
	p.Status = talent.StatusRejected
	uc := newGetPublicProfileUC(p, nil, nil)

	out, err := uc.Execute(context.Background(), GetPublicProfileInput{
		ProfileID:   p.OwnerID,
		CallerID:    uuid.New(),
		CallerAdmin: true,
	})

	require.NoError(t, err)
	assert.Equal(t, talent.StatusRejected, out.Profile.Status)
}

func TestGetPublicProfile_NotFound(t *testing.T) {
	uc := newGetPublicProfileUC(approvedProfile(), nil, nil)

	_, err := uc.Execute(context.Background(), GetPublicProfileInput{ProfileID: uuid.New()})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
