package app

import (
	"gorm.io/gorm"

	"volunteer-tracker-go/internal/config"
	"volunteer-tracker-go/internal/domain/category"
	"volunteer-tracker-go/internal/domain/dashboard"
	"volunteer-tracker-go/internal/domain/family"
	"volunteer-tracker-go/internal/domain/invitation"
	"volunteer-tracker-go/internal/domain/report"
	"volunteer-tracker-go/internal/domain/schoolyear"
	"volunteer-tracker-go/internal/domain/task"
	"volunteer-tracker-go/internal/domain/user"
	categoryrepo "volunteer-tracker-go/internal/repository/category"
	familyrepo "volunteer-tracker-go/internal/repository/family"
	"volunteer-tracker-go/internal/repository/inmemory"
	invitationrepo "volunteer-tracker-go/internal/repository/invitation"
	reportrepo "volunteer-tracker-go/internal/repository/report"
	schoolyearrepo "volunteer-tracker-go/internal/repository/schoolyear"
	taskrepo "volunteer-tracker-go/internal/repository/task"
	userrepo "volunteer-tracker-go/internal/repository/user"
	"volunteer-tracker-go/internal/transport/httpserver/handler"
	"volunteer-tracker-go/internal/transport/httpserver/handler/admin"
	"volunteer-tracker-go/internal/transport/httpserver/handler/common"
	"volunteer-tracker-go/internal/transport/httpserver/handler/parent"
	"volunteer-tracker-go/pkg/logger"
)

// Services is the domain layer wired to gorm repositories. The HTTP server,
// the CLI and the router tests all build it the same way.
type Services struct {
	Years       *schoolyear.Service
	Families    *family.Service
	Users       *user.Service
	Invitations *invitation.Service
	Categories  *category.Service
	Tasks       *task.Service
	Dashboard   *dashboard.Service
	Reports     *report.Service
}

func NewServices(cfg config.Config, gormDB *gorm.DB) *Services {
	users := userrepo.NewGorm(gormDB)

	years := schoolyear.NewServiceWithCache(
		schoolyearrepo.NewGorm(gormDB),
		inmemory.NewSchoolYearCache(),
		cfg.SchoolYearCacheTTL,
	)
	families := family.NewService(familyrepo.NewGorm(gormDB), years)
	invitations := invitation.NewService(invitationrepo.NewGorm(gormDB), families, users, cfg.InvitationTTL)
	categories := category.NewService(categoryrepo.NewGorm(gormDB))
	tasks := task.NewService(taskrepo.NewGorm(gormDB), years, categories)

	return &Services{
		Years:       years,
		Families:    families,
		Users:       user.NewService(users, families, invitations),
		Invitations: invitations,
		Categories:  categories,
		Tasks:       tasks,
		Dashboard:   dashboard.NewService(years, families, tasks),
		Reports:     report.NewService(reportrepo.NewGorm(gormDB), years),
	}
}

func (s *Services) Handlers(pinger common.Pinger, log logger.Logger) *handler.Handlers {
	return handler.New(
		common.New(pinger, s.Years, s.Categories, log),
		parent.New(s.Tasks, s.Dashboard, log),
		admin.New(s.Families, s.Users, s.Invitations, s.Categories, s.Years, s.Reports, log),
	)
}
