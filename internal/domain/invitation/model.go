package invitation

import (
	"time"

	"volunteer-tracker-go/internal/domain/user"
)

type Invitation struct {
	ID        string     `gorm:"primaryKey"`
	Email     string     `gorm:"not null"`
	FamilyID  *string    `gorm:"column:family_id"`
	Token     string     `gorm:"not null"`
	Role      user.Role  `gorm:"type:text;not null"`
	ExpiresAt time.Time  `gorm:"not null"`
	UsedAt    *time.Time `gorm:"column:used_at"`
	InvitedBy string     `gorm:"not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

func (Invitation) TableName() string {
	return "invitations"
}

func (i Invitation) IsUsed() bool {
	return i.UsedAt != nil
}

func (i Invitation) Expired(now time.Time) bool {
	return !i.ExpiresAt.After(now)
}

type Details struct {
	Invitation
	FamilyName *string
}

type CreateInput struct {
	Email    string
	Role     user.Role
	FamilyID *string
}
