package admin

import (
	"volunteer-tracker-go/internal/domain/category"
	"volunteer-tracker-go/internal/domain/family"
	"volunteer-tracker-go/internal/domain/invitation"
	"volunteer-tracker-go/internal/domain/report"
	"volunteer-tracker-go/internal/domain/schoolyear"
	"volunteer-tracker-go/internal/domain/user"
	"volunteer-tracker-go/pkg/logger"
)

type Handlers struct {
	Families    *family.Service
	Users       *user.Service
	Invitations *invitation.Service
	Categories  *category.Service
	Years       *schoolyear.Service
	Reports     *report.Service
	log         logger.Logger
}

func New(
	families *family.Service,
	users *user.Service,
	invitations *invitation.Service,
	categories *category.Service,
	years *schoolyear.Service,
	reports *report.Service,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Families:    families,
		Users:       users,
		Invitations: invitations,
		Categories:  categories,
		Years:       years,
		Reports:     reports,
		log:         log,
	}
}
