package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/campushire/talent-hub/internal/domain/skill"
	"github.com/campushire/talent-hub/internal/domain/talent"
	"github.com/campushire/talent-hub/pkg/apperror"
	"github.com/campushire/talent-hub/pkg/logger"
)

type TalentRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger
	talentRepo  talent.Repository
	skillRepo   skill.Repository
}

func (s *TalentRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.testLogger = logger.NewNop()
	s.talentRepo = NewPostgresTalentRepo(s.dbPool, s.testLogger)
	s.skillRepo = NewPostgresSkillRepo(s.dbPool, s.testLogger)
}

func (s *TalentRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestTalentRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(TalentRepoIntegrationTestSuite))
}

// seedProfile inserts a user row plus a profile in the given status and
// returns the profile.
func (s *TalentRepoIntegrationTestSuite) seedProfile(fullName string, status talent.Status, visible bool) *talent.Profile {
	ctx := context.Background()
	ownerID := uuid.New()

	query := `INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)`
	_, err := s.dbPool.Exec(ctx, query, ownerID, fmt.Sprintf("%s@example.com", ownerID), "hashedpassword")
	s.Require().NoError(err)

	site := "https://example.com"
	p := &talent.Profile{
		OwnerID:          ownerID,
		FullName:         fullName,
		Headline:         "Final-year student",
		Institution:      "HCMUS",
		Links:            talent.Links{Website: &site},
		ProfileVisible:   visible,
		Status:           status,
		RequestedChanges: []string{},
		CreatedAt:        time.Now().UTC(),
		UpdatedAt:        time.Now().UTC(),
	}
	s.Require().NoError(s.talentRepo.Save(ctx, p))
	return p
}

func (s *TalentRepoIntegrationTestSuite) Test_Save_And_FindByOwner() {
	ctx := context.Background()
	seeded := s.seedProfile("Roundtrip Nguyen", talent.StatusPending, true)

	found, err := s.talentRepo.FindByOwner(ctx, seeded.OwnerID)

	s.NoError(err)
	s.NotNil(found)
	s.Equal(seeded.FullName, found.FullName)
	s.Equal(talent.StatusPending, found.Status)
	s.Require().NotNil(found.Links.Website)
	s.Equal("https://example.com", *found.Links.Website)
	s.NotNil(found.RequestedChanges)
}

func (s *TalentRepoIntegrationTestSuite) Test_FindByOwner_NotFound() {
	_, err := s.talentRepo.FindByOwner(context.Background(), uuid.New())

	s.Error(err)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *TalentRepoIntegrationTestSuite) Test_ApplyReview_Approve_Then_Conflict() {
	ctx := context.Background()
	seeded := s.seedProfile("Approve Once", talent.StatusPending, true)

	approved, err := s.talentRepo.ApplyReview(ctx, seeded.OwnerID, talent.ReviewUpdate{
		Status:     talent.StatusApproved,
		ReviewedAt: time.Now().UTC(),
	})

	s.NoError(err)
	s.Equal(talent.StatusApproved, approved.Status)
	s.NotNil(approved.ReviewedAt)

	_, err = s.talentRepo.ApplyReview(ctx, seeded.OwnerID, talent.ReviewUpdate{
		Status:     talent.StatusRejected,
		ReviewNote: "second thoughts",
		ReviewedAt: time.Now().UTC(),
	})

	s.Error(err)
	s.ErrorIs(err, apperror.ErrConflict)
}

func (s *TalentRepoIntegrationTestSuite) Test_ApplyReview_UnknownProfile() {
	_, err := s.talentRepo.ApplyReview(context.Background(), uuid.New(), talent.ReviewUpdate{
		Status:     talent.StatusApproved,
		ReviewedAt: time.Now().UTC(),
	})

	s.Error(err)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *TalentRepoIntegrationTestSuite) Test_ApplyReview_RequestChanges_KeepsPending() {
	ctx := context.Background()
	seeded := s.seedProfile("Needs Work", talent.StatusPending, true)

	updated, err := s.talentRepo.ApplyReview(ctx, seeded.OwnerID, talent.ReviewUpdate{
		Status:           talent.StatusPending,
		ReviewNote:       "please add a bio",
		RequestedChanges: []string{"bio", "avatar"},
		ReviewedAt:       time.Now().UTC(),
	})

	s.NoError(err)
	s.Equal(talent.StatusPending, updated.Status)
	s.Equal("please add a bio", updated.ReviewNote)
	s.Equal([]string{"bio", "avatar"}, updated.RequestedChanges)

	// Still pending, so a later approval must go through.
	approved, err := s.talentRepo.ApplyReview(ctx, seeded.OwnerID, talent.ReviewUpdate{
		Status:     talent.StatusApproved,
		ReviewedAt: time.Now().UTC(),
	})

	s.NoError(err)
	s.Equal(talent.StatusApproved, approved.Status)
}

func (s *TalentRepoIntegrationTestSuite) Test_ListDirectory_OnlyApprovedAndVisible() {
	ctx := context.Background()
	listed := s.seedProfile("Dir Listed Xyzzy", talent.StatusApproved, true)
	s.seedProfile("Dir Hidden Xyzzy", talent.StatusApproved, false)
	s.seedProfile("Dir Pending Xyzzy", talent.StatusPending, true)
	s.seedProfile("Dir Rejected Xyzzy", talent.StatusRejected, true)

	profiles, err := s.talentRepo.ListDirectory(ctx, talent.DirectoryFilter{
		Query: "Xyzzy", Sort: talent.SortRecent, Limit: 20,
	})

	s.NoError(err)
	s.Len(profiles, 1)
	s.Equal(listed.OwnerID, profiles[0].OwnerID)
}

func (s *TalentRepoIntegrationTestSuite) Test_ListDirectory_SearchBySkillName() {
	ctx := context.Background()
	designer := s.seedProfile("Search Skill Designer", talent.StatusApproved, true)
	s.seedProfile("Search Skill Backend", talent.StatusApproved, true)

	s.Require().NoError(s.skillRepo.Save(ctx, &skill.Skill{
		ID:          uuid.New(),
		OwnerID:     designer.OwnerID,
		Name:        "Figma",
		Category:    skill.CategoryDesign,
		Proficiency: 4,
		CreatedAt:   time.Now().UTC(),
	}))

	// Case-insensitive on the skill name.
	profiles, err := s.talentRepo.ListDirectory(ctx, talent.DirectoryFilter{
		Query: "figma", Sort: talent.SortRecent, Limit: 20,
	})

	s.NoError(err)
	s.Len(profiles, 1)
	s.Equal(designer.OwnerID, profiles[0].OwnerID)
}

func (s *TalentRepoIntegrationTestSuite) Test_SetVisibility_RemovesFromDirectory() {
	ctx := context.Background()
	seeded := s.seedProfile("Toggle Qwerty", talent.StatusApproved, true)

	s.NoError(s.talentRepo.SetVisibility(ctx, seeded.OwnerID, false))

	profiles, err := s.talentRepo.ListDirectory(ctx, talent.DirectoryFilter{
		Query: "Toggle Qwerty", Sort: talent.SortRecent, Limit: 20,
	})

	s.NoError(err)
	s.Len(profiles, 0)
}

func (s *TalentRepoIntegrationTestSuite) Test_ListPending_OldestFirst() {
	ctx := context.Background()
	older := s.seedProfile("Queue Older", talent.StatusPending, true)
	older.CreatedAt = time.Now().UTC().Add(-2 * time.Hour)
	_, err := s.dbPool.Exec(ctx,
		`UPDATE talent_profiles SET created_at = $2 WHERE owner_id = $1`,
		older.OwnerID, older.CreatedAt)
	s.Require().NoError(err)

	newer := s.seedProfile("Queue Newer", talent.StatusPending, true)

	profiles, err := s.talentRepo.ListPending(ctx, 100, 0)

	s.NoError(err)
	olderIdx, newerIdx := -1, -1
	for i, p := range profiles {
		switch p.OwnerID {
		case older.OwnerID:
			olderIdx = i
		case newer.OwnerID:
			newerIdx = i
		}
	}
	s.GreaterOrEqual(olderIdx, 0)
	s.GreaterOrEqual(newerIdx, 0)
	s.Less(olderIdx, newerIdx)
}

func (s *TalentRepoIntegrationTestSuite) Test_CountOwned() {
	ctx := context.Background()
	seeded := s.seedProfile("Counter Dvorak", talent.StatusPending, true)

	s.Require().NoError(s.skillRepo.Save(ctx, &skill.Skill{
		ID: uuid.New(), OwnerID: seeded.OwnerID,
		Name: "Go", Category: skill.CategoryLanguage, Proficiency: 5,
		CreatedAt: time.Now().UTC(),
	}))
	s.Require().NoError(s.skillRepo.Save(ctx, &skill.Skill{
		ID: uuid.New(), OwnerID: seeded.OwnerID,
		Name: "PostgreSQL", Category: skill.CategoryTool, Proficiency: 3,
		CreatedAt: time.Now().UTC(),
	}))

	skills, projects, err := s.talentRepo.CountOwned(ctx, seeded.OwnerID)

	s.NoError(err)
	s.Equal(2, skills)
	s.Equal(0, projects)
}
