package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"volunteer-tracker-go/internal/domain/family"
	"volunteer-tracker-go/internal/domain/validation"
)

type FamilyReader interface {
	Get(ctx context.Context, id string) (*family.Family, error)
}

// InvitationClaimer looks up the pending assignment for an email and
// consumes it once the user row exists.
type InvitationClaimer interface {
	Pending(ctx context.Context, email string) (*Assignment, error)
	Consume(ctx context.Context, invitationID string) error
}

type Service struct {
	repo        Repository
	families    FamilyReader
	invitations InvitationClaimer
	now         func() time.Time
}

func NewService(repo Repository, families FamilyReader, invitations InvitationClaimer) *Service {
	return &Service{
		repo:        repo,
		families:    families,
		invitations: invitations,
		now:         time.Now,
	}
}

// Provision returns the local user for an identity, creating it on first sign-in.
func (s *Service) Provision(ctx context.Context, identity Identity) (*User, error) {
	if identity.ID == "" {
		return nil, fmt.Errorf("identity id is required")
	}
	email := NormalizeEmail(identity.Email)

	existing, err := s.repo.GetByID(ctx, identity.ID)
	switch {
	case err == nil:
		if email != "" && existing.Email != email {
			if err := s.repo.UpdateEmail(ctx, existing.ID, email); err != nil {
				return nil, err
			}
			existing.Email = email
		}
		return existing, nil
	case !errors.Is(err, ErrUserNotFound):
		return nil, err
	}

	assignment := Assignment{Role: RoleParent}
	if s.invitations != nil && email != "" {
		pending, err := s.invitations.Pending(ctx, email)
		if err != nil {
			return nil, err
		}
		if pending != nil {
			assignment = *pending
		}
	}

	created := User{
		ID:       identity.ID,
		Email:    email,
		Role:     assignment.Role,
		FamilyID: assignment.FamilyID,
	}
	if err := s.repo.Create(ctx, &created); err != nil {
		// a concurrent first request inserted the row and owns the invitation
		if errors.Is(err, ErrDuplicateUser) {
			return s.repo.GetByID(ctx, identity.ID)
		}
		return nil, err
	}

	if assignment.InvitationID != "" {
		if err := s.invitations.Consume(ctx, assignment.InvitationID); err != nil {
			return nil, fmt.Errorf("consume invitation: %w", err)
		}
	}
	return &created, nil
}

func (s *Service) List(ctx context.Context) ([]UserWithFamily, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		return []UserWithFamily{}, nil
	}
	return users, nil
}

// Update changes a user's family assignment and/or role. Admins cannot
// change their own record.
func (s *Service) Update(ctx context.Context, actorID, id string, input UpdateInput) (*User, error) {
	if !input.SetFamily && input.Role == nil {
		return nil, validation.New("", "no fields to update")
	}

	target, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorID == id {
		return nil, ErrCannotModifySelf
	}

	familyID := target.FamilyID
	if input.SetFamily {
		familyID = nil
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
	}

	role := target.Role
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, validation.New("role", "role must be parent or admin")
		}
		role = *input.Role
	}

	if err := s.repo.UpdateAssignment(ctx, id, familyID, role); err != nil {
		return nil, err
	}
	target.FamilyID = familyID
	target.Role = role
	return target, nil
}

func (s *Service) Archive(ctx context.Context, id string) (*User, error) {
	target, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if target.IsAdmin() {
		return nil, ErrCannotArchiveAdmin
	}
	if target.IsArchived() {
		return nil, ErrAlreadyArchived
	}

	now := s.now().UTC()
	if err := s.repo.SetArchivedAt(ctx, id, &now); err != nil {
		return nil, err
	}
	target.ArchivedAt = &now
	return target, nil
}

func (s *Service) Restore(ctx context.Context, id string) (*User, error) {
	target, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !target.IsArchived() {
		return nil, ErrNotArchived
	}

	if err := s.repo.SetArchivedAt(ctx, id, nil); err != nil {
		return nil, err
	}
	target.ArchivedAt = nil
	return target, nil
}

// PromoteAdmin grants the admin role. It is only reachable from the CLI.
func (s *Service) PromoteAdmin(ctx context.Context, lookup Lookup) (*User, error) {
	var (
		target *User
		err    error
	)
	switch {
	case lookup.ID != "":
		target, err = s.repo.GetByID(ctx, lookup.ID)
	case lookup.Email != "":
		target, err = s.repo.GetByEmail(ctx, NormalizeEmail(lookup.Email))
	default:
		return nil, fmt.Errorf("user id or email is required")
	}
	if err != nil {
		return nil, err
	}

	if target.IsAdmin() {
		return target, nil
	}
	if err := s.repo.UpdateAssignment(ctx, target.ID, target.FamilyID, RoleAdmin); err != nil {
		return nil, err
	}
	target.Role = RoleAdmin
	return target, nil
}
