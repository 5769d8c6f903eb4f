package http

import (
	"time"

	"github.com/campushire/talent-hub/internal/domain/notification"
	"github.com/campushire/talent-hub/internal/domain/project"
	"github.com/campushire/talent-hub/internal/domain/skill"
	"github.com/campushire/talent-hub/internal/domain/talent"
)

// Auth DTOs

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Profile DTOs

type LinksDTO struct {
	Website  *string `json:"website,omitempty"`
	GitHub   *string `json:"github,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
}

// ProfileDTO is the owner-facing projection: includes status and review
// feedback, never credentials.
type ProfileDTO struct {
	OwnerID          string     `json:"id"`
	FullName         string     `json:"full_name"`
	Headline         string     `json:"headline"`
	Institution      string     `json:"institution"`
	Major            string     `json:"major"`
	GraduationYear   *int       `json:"graduation_year"`
	Bio              string     `json:"bio"`
	Location         string     `json:"location"`
	Links            LinksDTO   `json:"links"`
	AvatarURL        *string    `json:"avatar_url"`
	ProfileVisible   bool       `json:"profile_visible"`
	Status           string     `json:"status"`
	ReviewNote       string     `json:"review_note,omitempty"`
	RequestedChanges []string   `json:"requested_changes,omitempty"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// PublicProfileDTO is the directory projection: no review feedback, no
// visibility flag.
type PublicProfileDTO struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	Headline       string    `json:"headline"`
	Institution    string    `json:"institution"`
	Major          string    `json:"major"`
	GraduationYear *int      `json:"graduation_year"`
	Location       string    `json:"location"`
	AvatarURL      *string   `json:"avatar_url"`
	Rating         float32   `json:"rating"`
	IsTopTalent    bool      `json:"is_top_talent"`
	CreatedAt      time.Time `json:"created_at"`
}

type PublicProfileDetailDTO struct {
	PublicProfileDTO
	Bio          string       `json:"bio"`
	Links        LinksDTO     `json:"links"`
	Skills       []SkillDTO   `json:"skills"`
	Projects     []ProjectDTO `json:"projects"`
	SkillCount   int          `json:"skill_count"`
	ProjectCount int          `json:"project_count"`
}

type UpdateProfileRequest struct {
	FullName       string   `json:"full_name" binding:"required"`
	Headline       string   `json:"headline"`
	Institution    string   `json:"institution"`
	Major          string   `json:"major"`
	GraduationYear *int     `json:"graduation_year"`
	Bio            string   `json:"bio"`
	Location       string   `json:"location"`
	Links          LinksDTO `json:"links"`
}

type SetVisibilityRequest struct {
	Visible *bool `json:"visible" binding:"required"`
}

func ToProfileDTO(p *talent.Profile) ProfileDTO {
	return ProfileDTO{
		OwnerID:          p.OwnerID.String(),
		FullName:         p.FullName,
		Headline:         p.Headline,
		Institution:      p.Institution,
		Major:            p.Major,
		GraduationYear:   p.GraduationYear,
		Bio:              p.Bio,
		Location:         p.Location,
		Links:            LinksDTO(p.Links),
		AvatarURL:        p.AvatarURL,
		ProfileVisible:   p.ProfileVisible,
		Status:           string(p.Status),
		ReviewNote:       p.ReviewNote,
		RequestedChanges: p.RequestedChanges,
		ReviewedAt:       p.ReviewedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func ToPublicProfileDTO(p *talent.Profile) PublicProfileDTO {
	return PublicProfileDTO{
		ID:             p.OwnerID.String(),
		FullName:       p.FullName,
		Headline:       p.Headline,
		Institution:    p.Institution,
		Major:          p.Major,
		GraduationYear: p.GraduationYear,
		Location:       p.Location,
		AvatarURL:      p.AvatarURL,
		Rating:         p.Rating,
		IsTopTalent:    p.IsTopTalent,
		CreatedAt:      p.CreatedAt,
	}
}

// Skill DTOs

type SkillDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
}

type CreateOrUpdateSkillRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=language framework tool design soft"`
	Proficiency int    `json:"proficiency" binding:"required,min=1,max=5"`
}

func ToSkillDTO(s *skill.Skill) SkillDTO {
	return SkillDTO{
		ID:          s.ID.String(),
		Name:        s.Name,
		Category:    s.Category,
		Proficiency: s.Proficiency,
	}
}

// Project DTOs

type ProjectDTO struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Stack         []string  `json:"stack"`
	RepositoryURL *string   `json:"repository_url"`
	LiveURL       *string   `json:"live_url"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateOrUpdateProjectRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Stack         []string `json:"stack"`
	RepositoryURL *string  `json:"repository_url"`
	LiveURL       *string  `json:"live_url"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	return ProjectDTO{
		ID:            p.ID.String(),
		Title:         p.Title,
		Description:   p.Description,
		Stack:         p.Stack,
		RepositoryURL: p.RepositoryURL,
		LiveURL:       p.LiveURL,
		UpdatedAt:     p.UpdatedAt,
	}
}

// Review DTOs

type DecisionRequest struct {
	Kind             string   `json:"kind" binding:"required,oneof=approve reject request_changes"`
	Note             string   `json:"note"`
	RequestedChanges []string `json:"requested_changes"`
}

type PendingItemDTO struct {
	Profile      ProfileDTO `json:"profile"`
	SkillCount   int        `json:"skill_count"`
	ProjectCount int        `json:"project_count"`
}

// Notification DTOs

type NotificationDTO struct {
	ID        string     `json:"id"`
	Kind      string     `json:"kind"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
}

func ToNotificationDTO(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID.String(),
		Kind:      n.Kind,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
		ReadAt:    n.ReadAt,
	}
}
