package invitation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"volunteer-tracker-go/internal/domain/family"
	"volunteer-tracker-go/internal/domain/user"
	"volunteer-tracker-go/internal/domain/validation"
)

const DefaultTTL = 14 * 24 * time.Hour

type FamilyReader interface {
	Get(ctx context.Context, id string) (*family.Family, error)
}

type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

type Service struct {
	repo     Repository
	families FamilyReader
	users    UserReader
	ttl      time.Duration
	now      func() time.Time
}

func NewService(repo Repository, families FamilyReader, users UserReader, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		repo:     repo,
		families: families,
		users:    users,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]Details, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		return []Details{}, nil
	}
	return items, nil
}

// Create pre-registers a person so their first sign-in lands in the given
// role and family.
func (s *Service) Create(ctx context.Context, invitedBy string, input CreateInput) (*Invitation, error) {
	email := user.NormalizeEmail(input.Email)
	if email == "" {
		return nil, validation.New("email", "email is required")
	}

	role := input.Role
	if role == "" {
		role = user.RoleParent
	}
	if !role.Valid() {
		return nil, validation.New("role", "role must be parent or admin")
	}

	var familyID *string
	if input.FamilyID != nil && *input.FamilyID != "" {
		assigned, err := s.families.Get(ctx, *input.FamilyID)
		if err != nil {
			return nil, err
		}
		if assigned.IsArchived() {
			return nil, family.ErrFamilyArchived
		}
		familyID = &assigned.ID
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}

	now := s.now().UTC()
	created := Invitation{
		ID:        uuid.NewString(),
		Email:     email,
		FamilyID:  familyID,
		Token:     uuid.NewString(),
		Role:      role,
		ExpiresAt: now.Add(s.ttl),
		InvitedBy: invitedBy,
	}
	if err := s.repo.Create(ctx, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Service) Revoke(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.IsUsed() {
		return ErrInvitationUsed
	}
	return s.repo.Delete(ctx, id)
}

// Pending returns the assignment of the newest usable invitation for email,
// or nil. A family archived since the invitation was sent is dropped.
func (s *Service) Pending(ctx context.Context, email string) (*user.Assignment, error) {
	pending, err := s.repo.FindPending(ctx, user.NormalizeEmail(email), s.now().UTC())
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, nil
	}

	assignment := &user.Assignment{
		Role:         pending.Role,
		InvitationID: pending.ID,
	}
	if pending.FamilyID != nil {
		assigned, err := s.families.Get(ctx, *pending.FamilyID)
		switch {
		case err == nil:
			if !assigned.IsArchived() {
				assignment.FamilyID = &assigned.ID
			}
		case !errors.Is(err, family.ErrFamilyNotFound):
			return nil, err
		}
	}
	return assignment, nil
}

// Consume marks the invitation used. An invitation already used or revoked
// is left alone.
func (s *Service) Consume(ctx context.Context, id string) error {
	_, err := s.repo.MarkUsed(ctx, id, s.now().UTC())
	return err
}
