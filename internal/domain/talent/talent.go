package talent

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Links struct {
	Website  *string `json:"website,omitempty"`
	GitHub   *string `json:"github,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
}

// Profile is the talent record shown in the directory. Status is owned by the
// review flow: no profile write path outside the review repository methods may
// change it.
type Profile struct {
	OwnerID          uuid.UUID  `json:"owner_id"`
	FullName         string     `json:"full_name"`
	Headline         string     `json:"headline"`
	Institution      string     `json:"institution"`
	Major            string     `json:"major"`
	GraduationYear   *int       `json:"graduation_year"`
	Bio              string     `json:"bio"`
	Location         string     `json:"location"`
	Links            Links      `json:"links"`
	AvatarURL        *string    `json:"avatar_url"`
	Rating           float32    `json:"rating"`
	IsTopTalent      bool       `json:"is_top_talent"`
	ProfileVisible   bool       `json:"profile_visible"`
	Status           Status     `json:"status"`
	ReviewNote       string     `json:"review_note"`
	RequestedChanges []string   `json:"requested_changes"`
	ReviewedAt       *time.Time `json:"reviewed_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Listable reports whether the profile may appear in the public directory.
func (p *Profile) Listable() bool {
	return p.Status == StatusApproved && p.ProfileVisible
}

var ErrFullNameRequired = errors.New("full name is required")

func (p *Profile) Validate() error {
	if p.FullName == "" {
		return ErrFullNameRequired
	}
	return nil
}

type SortKey string

const (
	SortRecent SortKey = "recent"
	SortRating SortKey = "rating"
	SortTop    SortKey = "top"
)

// DirectoryFilter narrows the public listing. Query matches name, headline,
// institution and skill names case-insensitively.
type DirectoryFilter struct {
	Query  string
	Sort   SortKey
	Limit  int
	Offset int
}

// ReviewUpdate is the single write path for the status field. The repository
// must apply it only while the row is still pending, in one statement.
type ReviewUpdate struct {
	Status           Status
	ReviewNote       string
	RequestedChanges []string
	ReviewedAt       time.Time
}

type Repository interface {
	Save(ctx context.Context, p *Profile) error
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	// UpdateFields persists the owner-editable descriptive fields only.
	UpdateFields(ctx context.Context, p *Profile) error
	SetVisibility(ctx context.Context, ownerID uuid.UUID, visible bool) error
	SetAvatarURL(ctx context.Context, ownerID uuid.UUID, url string) error
	// ApplyReview performs the status transition guarded on status='pending'.
	// Returns apperror.ErrConflict when the row exists but is not pending.
	ApplyReview(ctx context.Context, ownerID uuid.UUID, upd ReviewUpdate) (*Profile, error)
	ListPending(ctx context.Context, limit, offset int) ([]*Profile, error)
	ListDirectory(ctx context.Context, filter DirectoryFilter) ([]*Profile, error)
	ListRecentlyApproved(ctx context.Context, limit int) ([]*Profile, error)
	CountOwned(ctx context.Context, ownerID uuid.UUID) (skills int, projects int, err error)
}
