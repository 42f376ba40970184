package category

import "time"

type Category struct {
	ID        string    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Category) TableName() string {
	return "task_categories"
}

type CreateInput struct {
	Name     string
	IsActive *bool
}

type UpdateInput struct {
	Name     *string
	IsActive *bool
}
