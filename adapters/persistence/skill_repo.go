package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/talent-hub/internal/domain/skill"
	"github.com/campushire/talent-hub/pkg/apperror"
	"github.com/campushire/talent-hub/pkg/logger"
)

type postgresSkillRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillRepo(db *pgxpool.Pool, logger logger.Logger) skill.Repository {
	return &postgresSkillRepo{db: db, logger: logger}
}

func scanSkill(row pgx.Row) (*skill.Skill, error) {
	s := &skill.Skill{}
	err := row.Scan(&s.ID, &s.OwnerID, &s.Name, &s.Category, &s.Proficiency, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("skill", "")
		}
		return nil, apperror.NewInternal("failed to scan skill row", err)
	}
	return s, nil
}

func (r *postgresSkillRepo) Save(ctx context.Context, s *skill.Skill) error {
	query := `
		INSERT INTO skills (id, owner_id, name, category, proficiency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, s.ID, s.OwnerID, s.Name, s.Category, s.Proficiency, s.CreatedAt)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("skill", "name", s.Name)
		}
		return apperror.NewInternal("failed to save skill", err)
	}
	return nil
}

func (r *postgresSkillRepo) Update(ctx context.Context, s *skill.Skill) error {
	query := `
		UPDATE skills SET name = $3, category = $4, proficiency = $5
		WHERE id = $1 AND owner_id = $2
	`
	cmdTag, err := r.db.Exec(ctx, query, s.ID, s.OwnerID, s.Name, s.Category, s.Proficiency)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("skill", "name", s.Name)
		}
		return apperror.NewInternal("failed to update skill", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill", s.ID.String())
	}
	return nil
}

func (r *postgresSkillRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM skills WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete skill", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill", id.String())
	}
	return nil
}

func (r *postgresSkillRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*skill.Skill, error) {
	query := `
		SELECT id, owner_id, name, category, proficiency, created_at
		FROM skills
		WHERE id = $1 AND owner_id = $2
	`
	return scanSkill(r.db.QueryRow(ctx, query, id, ownerID))
}

func (r *postgresSkillRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*skill.Skill, error) {
	query := `
		SELECT id, owner_id, name, category, proficiency, created_at
		FROM skills
		WHERE owner_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills by owner", err)
	}
	defer rows.Close()

	skills := make([]*skill.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill rows", err)
	}
	return skills, nil
}
