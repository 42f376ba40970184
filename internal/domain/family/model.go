package family

import "time"

type Family struct {
	ID         string     `gorm:"primaryKey"`
	Name       string     `gorm:"not null"`
	ArchivedAt *time.Time `gorm:"column:archived_at"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime"`
}

func (Family) TableName() string {
	return "families"
}

func (f Family) IsArchived() bool {
	return f.ArchivedAt != nil
}

// Member is a user row as seen from the family listing.
type Member struct {
	ID         string
	FamilyID   string
	Email      string
	Role       string
	ArchivedAt *time.Time
}

type FamilyWithMembers struct {
	Family
	Members []Member
}
