package user

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"volunteer-tracker-go/internal/domain/family"
)

type fakeUserRepo struct {
	users map[string]*User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*User)}
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *fakeUserRepo) List(ctx context.Context) ([]UserWithFamily, error) {
	result := make([]UserWithFamily, 0, len(r.users))
	for _, user := range r.users {
		result = append(result, UserWithFamily{User: *user})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Email < result[j].Email })
	return result, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *User) error {
	if _, ok := r.users[user.ID]; ok {
		return ErrDuplicateUser
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) UpdateEmail(ctx context.Context, id, email string) error {
	r.users[id].Email = email
	return nil
}

func (r *fakeUserRepo) UpdateAssignment(ctx context.Context, id string, familyID *string, role Role) error {
	user, ok := r.users[id]
	if !ok {
		return ErrUserNotFound
	}
	user.FamilyID = familyID
	user.Role = role
	return nil
}

func (r *fakeUserRepo) SetArchivedAt(ctx context.Context, id string, archivedAt *time.Time) error {
	user, ok := r.users[id]
	if !ok {
		return ErrUserNotFound
	}
	user.ArchivedAt = archivedAt
	return nil
}

type fakeFamilies map[string]*family.Family

func (f fakeFamilies) Get(ctx context.Context, id string) (*family.Family, error) {
	item, ok := f[id]
	if !ok {
		return nil, family.ErrFamilyNotFound
	}
	return item, nil
}

type fakeClaimer struct {
	pending    map[string]Assignment
	consumed   []string
	consumeErr error
}

func (c *fakeClaimer) Pending(ctx context.Context, email string) (*Assignment, error) {
	assignment, ok := c.pending[email]
	if !ok {
		return nil, nil
	}
	return &assignment, nil
}

func (c *fakeClaimer) Consume(ctx context.Context, invitationID string) error {
	if c.consumeErr != nil {
		return c.consumeErr
	}
	c.consumed = append(c.consumed, invitationID)
	for email, assignment := range c.pending {
		if assignment.InvitationID == invitationID {
			delete(c.pending, email)
		}
	}
	return nil
}

// failingCreateRepo rejects every insert.
type failingCreateRepo struct {
	*fakeUserRepo
}

func (r failingCreateRepo) Create(ctx context.Context, user *User) error {
	return errors.New("disk full")
}

func strPtr(value string) *string {
	return &value
}

func TestProvisionCreatesParentOnFirstSignIn(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, fakeFamilies{}, &fakeClaimer{})

	user, err := svc.Provision(context.Background(), Identity{ID: "idp|1", Email: " Parent@Example.com "})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Role != RoleParent || user.HasFamily() {
		t.Fatalf("expected parent without family, got %+v", user)
	}
	if user.Email != "parent@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if _, ok := repo.users["idp|1"]; !ok {
		t.Fatalf("expected user stored")
	}
}

func TestProvisionUsesInvitation(t *testing.T) {
	repo := newFakeUserRepo()
	claimer := &fakeClaimer{pending: map[string]Assignment{
		"parent@example.com": {Role: RoleParent, FamilyID: strPtr("fam-1"), InvitationID: "inv-1"},
	}}
	svc := NewService(repo, fakeFamilies{}, claimer)

	user, err := svc.Provision(context.Background(), Identity{ID: "idp|1", Email: "parent@example.com"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !user.HasFamily() || *user.FamilyID != "fam-1" {
		t.Fatalf("expected family from invitation, got %+v", user)
	}
	if len(claimer.pending) != 0 || len(claimer.consumed) != 1 || claimer.consumed[0] != "inv-1" {
		t.Fatalf("expected invitation consumed, got %v", claimer.consumed)
	}
}

func TestProvisionKeepsInvitationWhenCreateFails(t *testing.T) {
	repo := failingCreateRepo{newFakeUserRepo()}
	claimer := &fakeClaimer{pending: map[string]Assignment{
		"parent@example.com": {Role: RoleAdmin, InvitationID: "inv-1"},
	}}
	svc := NewService(repo, fakeFamilies{}, claimer)

	if _, err := svc.Provision(context.Background(), Identity{ID: "idp|1", Email: "parent@example.com"}); err == nil {
		t.Fatalf("expected create error")
	}
	if len(claimer.consumed) != 0 || len(claimer.pending) != 1 {
		t.Fatalf("expected invitation still pending, consumed %v", claimer.consumed)
	}
}

func TestProvisionConcurrentFirstSignInKeepsWinnerRow(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["idp|1"] = &User{ID: "idp|1", Email: "parent@example.com", Role: RoleAdmin}
	claimer := &fakeClaimer{pending: map[string]Assignment{
		"parent@example.com": {Role: RoleAdmin, InvitationID: "inv-1"},
	}}
	svc := NewService(&racingRepo{fakeUserRepo: repo}, fakeFamilies{}, claimer)

	user, err := svc.Provision(context.Background(), Identity{ID: "idp|1", Email: "parent@example.com"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Role != RoleAdmin {
		t.Fatalf("expected winner's admin row, got %+v", user)
	}
	if len(claimer.consumed) != 0 {
		t.Fatalf("expected only the winning request to consume, got %v", claimer.consumed)
	}
}

func TestProvisionReportsConsumeFailure(t *testing.T) {
	repo := newFakeUserRepo()
	claimer := &fakeClaimer{
		pending:    map[string]Assignment{"parent@example.com": {Role: RoleParent, InvitationID: "inv-1"}},
		consumeErr: errors.New("connection reset"),
	}
	svc := NewService(repo, fakeFamilies{}, claimer)

	if _, err := svc.Provision(context.Background(), Identity{ID: "idp|1", Email: "parent@example.com"}); err == nil {
		t.Fatalf("expected consume error")
	}
	if _, ok := repo.users["idp|1"]; !ok {
		t.Fatalf("expected user row kept")
	}
}

// racingRepo hides the first lookup, as if another request had not yet
// committed its insert.
type racingRepo struct {
	*fakeUserRepo
	looked bool
}

func (r *racingRepo) GetByID(ctx context.Context, id string) (*User, error) {
	if !r.looked {
		r.looked = true
		return nil, ErrUserNotFound
	}
	return r.fakeUserRepo.GetByID(ctx, id)
}

func TestProvisionExistingUserUpdatesEmail(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["idp|1"] = &User{ID: "idp|1", Email: "old@example.com", Role: RoleAdmin}
	svc := NewService(repo, fakeFamilies{}, nil)

	user, err := svc.Provision(context.Background(), Identity{ID: "idp|1", Email: "new@example.com"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Role != RoleAdmin || user.Email != "new@example.com" || repo.users["idp|1"].Email != "new@example.com" {
		t.Fatalf("unexpected user %+v", user)
	}
}

func TestUpdateAssignsFamily(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["u1"] = &User{ID: "u1", Role: RoleParent}
	families := fakeFamilies{"fam-1": {ID: "fam-1", Name: "Smith"}}
	svc := NewService(repo, families, nil)

	user, err := svc.Update(context.Background(), "admin", "u1", UpdateInput{SetFamily: true, FamilyID: strPtr("fam-1")})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if *user.FamilyID != "fam-1" || *repo.users["u1"].FamilyID != "fam-1" {
		t.Fatalf("expected family assigned")
	}

	user, err = svc.Update(context.Background(), "admin", "u1", UpdateInput{SetFamily: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.FamilyID != nil {
		t.Fatalf("expected family cleared")
	}
}

func TestUpdateRules(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["admin"] = &User{ID: "admin", Role: RoleAdmin}
	repo.users["u1"] = &User{ID: "u1", Role: RoleParent}
	archivedAt := time.Now()
	families := fakeFamilies{"old": {ID: "old", Name: "Old", ArchivedAt: &archivedAt}}
	svc := NewService(repo, families, nil)
	ctx := context.Background()

	if _, err := svc.Update(ctx, "admin", "missing", UpdateInput{SetFamily: true}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.Update(ctx, "admin", "admin", UpdateInput{SetFamily: true}); !errors.Is(err, ErrCannotModifySelf) {
		t.Fatalf("expected ErrCannotModifySelf, got %v", err)
	}
	if _, err := svc.Update(ctx, "admin", "u1", UpdateInput{SetFamily: true, FamilyID: strPtr("nope")}); !errors.Is(err, family.ErrFamilyNotFound) {
		t.Fatalf("expected ErrFamilyNotFound, got %v", err)
	}
	if _, err := svc.Update(ctx, "admin", "u1", UpdateInput{SetFamily: true, FamilyID: strPtr("old")}); !errors.Is(err, family.ErrFamilyArchived) {
		t.Fatalf("expected ErrFamilyArchived, got %v", err)
	}
	bad := Role("owner")
	if _, err := svc.Update(ctx, "admin", "u1", UpdateInput{Role: &bad}); err == nil {
		t.Fatalf("expected validation error for unknown role")
	}
	if _, err := svc.Update(ctx, "admin", "u1", UpdateInput{}); err == nil {
		t.Fatalf("expected validation error for empty update")
	}
}

func TestArchiveUser(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["admin2"] = &User{ID: "admin2", Role: RoleAdmin}
	repo.users["u1"] = &User{ID: "u1", Role: RoleParent}
	svc := NewService(repo, fakeFamilies{}, nil)
	ctx := context.Background()

	if _, err := svc.Archive(ctx, "admin2"); !errors.Is(err, ErrCannotArchiveAdmin) {
		t.Fatalf("expected ErrCannotArchiveAdmin, got %v", err)
	}

	user, err := svc.Archive(ctx, "u1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !user.IsArchived() {
		t.Fatalf("expected archived user")
	}
	if _, err := svc.Archive(ctx, "u1"); !errors.Is(err, ErrAlreadyArchived) {
		t.Fatalf("expected ErrAlreadyArchived, got %v", err)
	}

	if _, err := svc.Restore(ctx, "u1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := svc.Restore(ctx, "u1"); !errors.Is(err, ErrNotArchived) {
		t.Fatalf("expected ErrNotArchived, got %v", err)
	}
}

func TestPromoteAdminByEmail(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["u1"] = &User{ID: "u1", Email: "parent@example.com", Role: RoleParent, FamilyID: strPtr("fam-1")}
	svc := NewService(repo, fakeFamilies{}, nil)

	user, err := svc.PromoteAdmin(context.Background(), Lookup{Email: "Parent@Example.com"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !user.IsAdmin() || repo.users["u1"].Role != RoleAdmin {
		t.Fatalf("expected admin role")
	}
	if repo.users["u1"].FamilyID == nil {
		t.Fatalf("expected family kept")
	}

	if _, err := svc.PromoteAdmin(context.Background(), Lookup{}); err == nil {
		t.Fatalf("expected error without lookup")
	}
}
