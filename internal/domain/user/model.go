package user

import (
	"strings"
	"time"
)

type Role string

const (
	RoleParent Role = "parent"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleParent || r == RoleAdmin
}

type User struct {
	ID         string     `gorm:"primaryKey"`
	Email      string     `gorm:"not null"`
	Role       Role       `gorm:"type:text;not null"`
	FamilyID   *string    `gorm:"column:family_id"`
	ArchivedAt *time.Time `gorm:"column:archived_at"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u User) IsArchived() bool {
	return u.ArchivedAt != nil
}

func (u User) HasFamily() bool {
	return u.FamilyID != nil && *u.FamilyID != ""
}

// Identity is what the identity provider tells us about the caller.
type Identity struct {
	ID    string
	Email string
}

// Assignment is the role and family a new user starts with. InvitationID
// is set when it comes from an invitation.
type Assignment struct {
	Role         Role
	FamilyID     *string
	InvitationID string
}

type UserWithFamily struct {
	User
	FamilyName       *string
	FamilyArchivedAt *time.Time
}

type UpdateInput struct {
	SetFamily bool
	FamilyID  *string
	Role      *Role
}

type Lookup struct {
	ID    string
	Email string
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
