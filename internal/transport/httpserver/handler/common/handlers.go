package common

import (
	"context"

	"volunteer-tracker-go/internal/domain/category"
	"volunteer-tracker-go/internal/domain/schoolyear"
	"volunteer-tracker-go/pkg/logger"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handlers struct {
	DB         Pinger
	Years      *schoolyear.Service
	Categories *category.Service
	log        logger.Logger
}

func New(db Pinger, years *schoolyear.Service, categories *category.Service, log logger.Logger) *Handlers {
	return &Handlers{
		DB:         db,
		Years:      years,
		Categories: categories,
		log:        log,
	}
}
