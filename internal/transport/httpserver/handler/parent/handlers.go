package parent

import (
	"volunteer-tracker-go/internal/domain/dashboard"
	"volunteer-tracker-go/internal/domain/task"
	"volunteer-tracker-go/pkg/logger"
)

type Handlers struct {
	Tasks     *task.Service
	Dashboard *dashboard.Service
	log       logger.Logger
}

func New(tasks *task.Service, dashboard *dashboard.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Tasks:     tasks,
		Dashboard: dashboard,
		log:       log,
	}
}
