package handler

import (
	"volunteer-tracker-go/internal/transport/httpserver/handler/admin"
	"volunteer-tracker-go/internal/transport/httpserver/handler/common"
	"volunteer-tracker-go/internal/transport/httpserver/handler/parent"
)

type Handlers struct {
	Common *common.Handlers
	Parent *parent.Handlers
	Admin  *admin.Handlers
}

func New(common *common.Handlers, parent *parent.Handlers, admin *admin.Handlers) *Handlers {
	return &Handlers{
		Common: common,
		Parent: parent,
		Admin:  admin,
	}
}
