package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/campushire/talent-hub/internal/domain/talent"
	"github.com/campushire/talent-hub/pkg/apperror"
	"github.com/campushire/talent-hub/pkg/logger"
)

type postgresTalentRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresTalentRepo(db *pgxpool.Pool, logger logger.Logger) talent.Repository {
	return &postgresTalentRepo{db: db, logger: logger}
}

var psqlTalent = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const talentColumns = `owner_id, full_name, headline, institution, major, graduation_year, bio, location, links, avatar_url, rating, is_top_talent, profile_visible, status, review_note, requested_changes, reviewed_at, created_at, updated_at`

func scanTalent(row pgx.Row, l logger.Logger) (*talent.Profile, error) {
	p := &talent.Profile{}
	var linksBytes []byte

	err := row.Scan(
		&p.OwnerID,
		&p.FullName,
		&p.Headline,
		&p.Institution,
		&p.Major,
		&p.GraduationYear,
		&p.Bio,
		&p.Location,
		&linksBytes,
		&p.AvatarURL,
		&p.Rating,
		&p.IsTopTalent,
		&p.ProfileVisible,
		&p.Status,
		&p.ReviewNote,
		&p.RequestedChanges,
		&p.ReviewedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "")
		}
		return nil, apperror.NewInternal("failed to scan profile row", err)
	}

	if err := json.Unmarshal(linksBytes, &p.Links); err != nil {
		l.Warn("Failed to unmarshal profile links", zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
		p.Links = talent.Links{}
	}
	if p.RequestedChanges == nil {
		p.RequestedChanges = []string{}
	}

	return p, nil
}

func scanTalents(rows pgx.Rows, l logger.Logger) ([]*talent.Profile, error) {
	defer rows.Close()
	profiles := make([]*talent.Profile, 0)

	for rows.Next() {
		p, err := scanTalent(rows, l)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating profile rows", err)
	}
	return profiles, nil
}

func (r *postgresTalentRepo) Save(ctx context.Context, p *talent.Profile) error {
	linksBytes, err := json.Marshal(p.Links)
	if err != nil {
		return apperror.NewInternal("failed to marshal profile links", err)
	}

	query := `
		INSERT INTO talent_profiles (owner_id, full_name, headline, institution, major, graduation_year, bio, location, links, avatar_url, rating, is_top_talent, profile_visible, status, review_note, requested_changes, reviewed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`
	_, err = r.db.Exec(ctx, query,
		p.OwnerID, p.FullName, p.Headline, p.Institution, p.Major, p.GraduationYear,
		p.Bio, p.Location, linksBytes, p.AvatarURL, p.Rating, p.IsTopTalent,
		p.ProfileVisible, p.Status, p.ReviewNote, p.RequestedChanges, p.ReviewedAt,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save profile", err)
	}
	return nil
}

func (r *postgresTalentRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*talent.Profile, error) {
	query := `SELECT ` + talentColumns + ` FROM talent_profiles WHERE owner_id = $1`
	row := r.db.QueryRow(ctx, query, ownerID)
	p, err := scanTalent(row, r.logger)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("profile", ownerID.String())
		}
		return nil, err
	}
	return p, nil
}

// UpdateFields writes the descriptive fields only. Status and review feedback
// are deliberately absent from the statement.
func (r *postgresTalentRepo) UpdateFields(ctx context.Context, p *talent.Profile) error {
	linksBytes, err := json.Marshal(p.Links)
	if err != nil {
		return apperror.NewInternal("failed to marshal profile links for update", err)
	}

	query := `
		UPDATE talent_profiles SET
			full_name = $2, headline = $3, institution = $4, major = $5,
			graduation_year = $6, bio = $7, location = $8, links = $9, updated_at = NOW()
		WHERE owner_id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.OwnerID, p.FullName, p.Headline, p.Institution, p.Major,
		p.GraduationYear, p.Bio, p.Location, linksBytes,
	)
	if err != nil {
		return apperror.NewInternal("failed to update profile", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("profile", p.OwnerID.String())
	}
	return nil
}

func (r *postgresTalentRepo) SetVisibility(ctx context.Context, ownerID uuid.UUID, visible bool) error {
	query := `UPDATE talent_profiles SET profile_visible = $2, updated_at = NOW() WHERE owner_id = $1`
	cmdTag, err := r.db.Exec(ctx, query, ownerID, visible)
	if err != nil {
		return apperror.NewInternal("failed to set profile visibility", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("profile", ownerID.String())
	}
	return nil
}

func (r *postgresTalentRepo) SetAvatarURL(ctx context.Context, ownerID uuid.UUID, url string) error {
	query := `UPDATE talent_profiles SET avatar_url = $2, updated_at = NOW() WHERE owner_id = $1`
	cmdTag, err := r.db.Exec(ctx, query, ownerID, url)
	if err != nil {
		return apperror.NewInternal("failed to set avatar url", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("profile", ownerID.String())
	}
	return nil
}

// ApplyReview is the only statement that writes the status column. The
// status='pending' guard rides in the same UPDATE, so a decision that races
// another one finds zero rows and reports the conflict instead of clobbering.
func (r *postgresTalentRepo) ApplyReview(ctx context.Context, ownerID uuid.UUID, upd talent.ReviewUpdate) (*talent.Profile, error) {
	query := `
		UPDATE talent_profiles SET
			status = $2, review_note = $3, requested_changes = $4, reviewed_at = $5, updated_at = NOW()
		WHERE owner_id = $1 AND status = 'pending'
		RETURNING ` + talentColumns

	requested := upd.RequestedChanges
	if requested == nil {
		requested = []string{}
	}

	row := r.db.QueryRow(ctx, query, ownerID, upd.Status, upd.ReviewNote, requested, upd.ReviewedAt)
	p, err := scanTalent(row, r.logger)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	// Distinguish "no such profile" from "already reviewed".
	var status talent.Status
	checkErr := r.db.QueryRow(ctx, `SELECT status FROM talent_profiles WHERE owner_id = $1`, ownerID).Scan(&status)
	if checkErr != nil {
		if errors.Is(checkErr, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", ownerID.String())
		}
		return nil, apperror.NewInternal("failed to check profile status", checkErr)
	}
	return nil, apperror.NewInvalidState("profile",
		"profile is already '"+string(status)+"'; only pending profiles can be decided")
}

func (r *postgresTalentRepo) ListPending(ctx context.Context, limit, offset int) ([]*talent.Profile, error) {
	builder := psqlTalent.Select(talentColumns).
		From("talent_profiles").
		Where(sq.Eq{"status": talent.StatusPending}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build pending queue query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query pending profiles", err)
	}

	return scanTalents(rows, r.logger)
}

func (r *postgresTalentRepo) ListDirectory(ctx context.Context, filter talent.DirectoryFilter) ([]*talent.Profile, error) {
	builder := psqlTalent.Select(talentColumns).
		From("talent_profiles").
		Where(sq.Eq{"status": talent.StatusApproved}).
		Where(sq.Eq{"profile_visible": true})

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"full_name": pattern},
			sq.ILike{"headline": pattern},
			sq.ILike{"institution": pattern},
			sq.Expr("EXISTS (SELECT 1 FROM skills s WHERE s.owner_id = talent_profiles.owner_id AND s.name ILIKE ?)", pattern),
		})
	}

	// Sort keys refine, never fully reorder: ties fall back to registration
	// order so paging stays stable.
	switch filter.Sort {
	case talent.SortRating:
		builder = builder.OrderBy("rating DESC", "created_at ASC", "owner_id ASC")
	case talent.SortTop:
		builder = builder.OrderBy("is_top_talent DESC", "created_at ASC", "owner_id ASC")
	default:
		builder = builder.OrderBy("created_at DESC", "owner_id ASC")
	}

	builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build directory query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query directory", err)
	}

	return scanTalents(rows, r.logger)
}

func (r *postgresTalentRepo) ListRecentlyApproved(ctx context.Context, limit int) ([]*talent.Profile, error) {
	builder := psqlTalent.Select(talentColumns).
		From("talent_profiles").
		Where(sq.Eq{"status": talent.StatusApproved}).
		Where(sq.Eq{"profile_visible": true}).
		OrderBy("reviewed_at DESC NULLS LAST").
		Limit(uint64(limit))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build recently approved query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query recently approved profiles", err)
	}

	return scanTalents(rows, r.logger)
}

func (r *postgresTalentRepo) CountOwned(ctx context.Context, ownerID uuid.UUID) (int, int, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM skills WHERE owner_id = $1),
			(SELECT COUNT(*) FROM projects WHERE owner_id = $1)
	`
	var skills, projects int
	if err := r.db.QueryRow(ctx, query, ownerID).Scan(&skills, &projects); err != nil {
		return 0, 0, apperror.NewInternal("failed to count owned records", err)
	}
	return skills, projects, nil
}
