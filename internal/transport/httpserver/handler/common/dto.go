package common

import (
	"time"

	"volunteer-tracker-go/internal/domain/accounting"
	"volunteer-tracker-go/internal/domain/category"
	"volunteer-tracker-go/internal/domain/schoolyear"
	"volunteer-tracker-go/internal/domain/task"
	"volunteer-tracker-go/internal/domain/user"
	"volunteer-tracker-go/pkg/civil"
)

type SchoolYearResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	StartDate     civil.Date       `json:"startDate"`
	EndDate       civil.Date       `json:"endDate"`
	RequiredHours int              `json:"requiredHours"`
	HourlyRate    accounting.Cents `json:"hourlyRate"`
	IsActive      bool             `json:"isActive"`
	CreatedAt     time.Time        `json:"createdAt"`
}

func NewSchoolYearResponse(year schoolyear.SchoolYear) SchoolYearResponse {
	return SchoolYearResponse{
		ID:            year.ID,
		Name:          year.Name,
		StartDate:     year.StartDate,
		EndDate:       year.EndDate,
		RequiredHours: year.RequiredHours,
		HourlyRate:    year.HourlyRateCents,
		IsActive:      year.IsActive,
		CreatedAt:     year.CreatedAt,
	}
}

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewCategoryResponse(item category.Category) CategoryResponse {
	return CategoryResponse{
		ID:        item.ID,
		Name:      item.Name,
		IsActive:  item.IsActive,
		CreatedAt: item.CreatedAt,
	}
}

func NewCategoryResponses(items []category.Category) []CategoryResponse {
	response := make([]CategoryResponse, 0, len(items))
	for _, item := range items {
		response = append(response, NewCategoryResponse(item))
	}
	return response
}

type taskCategory struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
}

type taskSubmitter struct {
	ID    string  `json:"id"`
	Email *string `json:"email"`
}

type TaskResponse struct {
	ID           string        `json:"id"`
	FamilyID     string        `json:"familyId"`
	SchoolYearID string        `json:"schoolYearId"`
	UserID       string        `json:"userId"`
	Hours        float64       `json:"hours"`
	Date         civil.Date    `json:"date"`
	Description  *string       `json:"description"`
	Category     taskCategory  `json:"category"`
	SubmittedBy  taskSubmitter `json:"submittedBy"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

func NewTaskResponse(details task.Details) TaskResponse {
	return TaskResponse{
		ID:           details.ID,
		FamilyID:     details.FamilyID,
		SchoolYearID: details.SchoolYearID,
		UserID:       details.UserID,
		Hours:        details.Hours,
		Date:         details.Date,
		Description:  details.Description,
		Category:     taskCategory{ID: details.CategoryID, Name: details.CategoryName},
		SubmittedBy:  taskSubmitter{ID: details.UserID, Email: details.SubmittedByEmail},
		CreatedAt:    details.CreatedAt,
		UpdatedAt:    details.UpdatedAt,
	}
}

func NewTaskResponses(items []task.Details) []TaskResponse {
	response := make([]TaskResponse, 0, len(items))
	for _, item := range items {
		response = append(response, NewTaskResponse(item))
	}
	return response
}

type UserResponse struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Role       user.Role  `json:"role"`
	FamilyID   *string    `json:"familyId"`
	ArchivedAt *time.Time `json:"archivedAt"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func NewUserResponse(account user.User) UserResponse {
	return UserResponse{
		ID:         account.ID,
		Email:      account.Email,
		Role:       account.Role,
		FamilyID:   account.FamilyID,
		ArchivedAt: account.ArchivedAt,
		CreatedAt:  account.CreatedAt,
		UpdatedAt:  account.UpdatedAt,
	}
}
