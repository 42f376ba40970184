package family

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteer-tracker-go/internal/db/dbtest"
	familydomain "volunteer-tracker-go/internal/domain/family"
	invitationdomain "volunteer-tracker-go/internal/domain/invitation"
	yeardomain "volunteer-tracker-go/internal/domain/schoolyear"
	userdomain "volunteer-tracker-go/internal/domain/user"
	"volunteer-tracker-go/internal/domain/validation"
	invitationrepo "volunteer-tracker-go/internal/repository/invitation"
	yearrepo "volunteer-tracker-go/internal/repository/schoolyear"
	userrepo "volunteer-tracker-go/internal/repository/user"
	"volunteer-tracker-go/pkg/civil"
)

func TestArchiveFamilyArchivesMembers(t *testing.T) {
	gormDB := dbtest.Open(t)
	ctx := context.Background()
	years := yeardomain.NewService(yearrepo.NewGorm(gormDB))
	svc := familydomain.NewService(NewGorm(gormDB), years)
	users := userrepo.NewGorm(gormDB)

	smith, err := svc.Create(ctx, "Smith")
	require.NoError(t, err)
	jones, err := svc.Create(ctx, "Jones")
	require.NoError(t, err)

	for id, familyID := range map[string]string{"u1": smith.ID, "u2": smith.ID, "u3": jones.ID} {
		familyID := familyID
		require.NoError(t, users.Create(ctx, &userdomain.User{ID: id, Email: id + "@example.com", Role: userdomain.RoleParent, FamilyID: &familyID}))
	}

	_, archived, err := svc.Archive(ctx, smith.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), archived)

	for id, want := range map[string]bool{"u1": true, "u2": true, "u3": false} {
		user, err := users.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, user.IsArchived(), "user %s archived", id)
	}

	families, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, families, 2)
	for _, item := range families {
		if item.ID == smith.ID {
			assert.True(t, item.IsArchived())
			assert.Len(t, item.Members, 2)
		}
	}
}

func TestArchiveFamilyDetachesPendingInvitations(t *testing.T) {
	gormDB := dbtest.Open(t)
	ctx := context.Background()
	years := yeardomain.NewService(yearrepo.NewGorm(gormDB))
	svc := familydomain.NewService(NewGorm(gormDB), years)
	invitations := invitationrepo.NewGorm(gormDB)

	smith, err := svc.Create(ctx, "Smith")
	require.NoError(t, err)
	require.NoError(t, userrepo.NewGorm(gormDB).Create(ctx, &userdomain.User{ID: "admin", Email: "admin@example.com", Role: userdomain.RoleAdmin}))

	usedAt := time.Now().UTC()
	for _, item := range []invitationdomain.Invitation{
		{ID: "open", Email: "open@example.com", FamilyID: &smith.ID, Token: "t1", Role: userdomain.RoleParent},
		{ID: "used", Email: "used@example.com", FamilyID: &smith.ID, Token: "t2", Role: userdomain.RoleParent, UsedAt: &usedAt},
	} {
		item := item
		item.InvitedBy = "admin"
		item.ExpiresAt = time.Now().Add(time.Hour)
		require.NoError(t, invitations.Create(ctx, &item))
	}

	_, _, err = svc.Archive(ctx, smith.ID)
	require.NoError(t, err)

	open, err := invitations.GetByID(ctx, "open")
	require.NoError(t, err)
	assert.Nil(t, open.FamilyID)

	used, err := invitations.GetByID(ctx, "used")
	require.NoError(t, err)
	require.NotNil(t, used.FamilyID)
	assert.Equal(t, smith.ID, *used.FamilyID)
}

func TestCreateFamilyAddsStatusRowForActiveYear(t *testing.T) {
	gormDB := dbtest.Open(t)
	ctx := context.Background()
	years := yeardomain.NewService(yearrepo.NewGorm(gormDB))
	svc := familydomain.NewService(NewGorm(gormDB), years)

	year, err := years.Create(ctx, yeardomain.CreateInput{
		Name:      "2024-2025",
		StartDate: civil.MustParse("2024-09-01"),
		EndDate:   civil.MustParse("2025-06-30"),
	})
	require.NoError(t, err)
	_, _, err = years.Activate(ctx, year.ID)
	require.NoError(t, err)

	family, err := svc.Create(ctx, "Smith")
	require.NoError(t, err)

	var count int64
	require.NoError(t, gormDB.Model(&yeardomain.FamilyYearStatus{}).
		Where("family_id = ? AND school_year_id = ?", family.ID, year.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFamilyNameUniqueAmongActive(t *testing.T) {
	gormDB := dbtest.Open(t)
	ctx := context.Background()
	repo := NewGorm(gormDB)
	svc := familydomain.NewService(repo, yeardomain.NewService(yearrepo.NewGorm(gormDB)))

	smith, err := svc.Create(ctx, "Smith")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "SMITH")
	verr, ok := validation.As(err)
	require.True(t, ok, "expected validation error, got %v", err)
	assert.Equal(t, "name", verr.Field)

	err = repo.Create(ctx, &familydomain.Family{ID: "raw", Name: "smith"})
	assert.ErrorIs(t, err, familydomain.ErrDuplicateName)

	_, _, err = svc.Archive(ctx, smith.ID)
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Smith")
	require.NoError(t, err)

	_, err = svc.Restore(ctx, smith.ID)
	assert.ErrorIs(t, err, familydomain.ErrRestoreNameTaken)
}
