package main

import (
	"go.uber.org/zap"

	"github.com/springweb/springweb/internal/config"
	"github.com/springweb/springweb/internal/handler"
)

// Handlers holds all handler instances
type Handlers struct {
	Home          *handler.HomeHandler
	PathVariables *handler.PathVariableHandler
	RequestParams *handler.RequestParamHandler
	UserViews     *handler.UserViewHandler
	UserRest      *handler.UserRestHandler
	Health        *handler.HealthHandler
	Docs          *handler.DocsHandler
}

// initHandlers initializes all handlers
func initHandlers(
	cfg *config.Config,
	logger *zap.Logger,
	svcs *Services,
	checks ...handler.ReadinessCheck,
) *Handlers {
	return &Handlers{
		Home:          handler.NewHomeHandler(),
		PathVariables: handler.NewPathVariableHandler(svcs.Users, svcs.Values, logger),
		RequestParams: handler.NewRequestParamHandler(cfg.Params.StrictRequest),
		UserViews:     handler.NewUserViewHandler(svcs.Users, logger),
		UserRest:      handler.NewUserRestHandler(svcs.Users),
		Health:        handler.NewHealthHandler(appVersion, checks...),
		Docs:          handler.NewDocsHandler(),
	}
}
