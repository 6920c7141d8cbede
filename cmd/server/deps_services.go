package main

import (
	"github.com/springweb/springweb/internal/config"
	"github.com/springweb/springweb/internal/service"
)

// Services holds all service instances
type Services struct {
	Users  *service.UserService
	Values *service.ValuesService
}

// initServices initializes all services
func initServices(cfg *config.Config) *Services {
	return &Services{
		Users:  service.NewUserService(),
		Values: service.NewValuesService(cfg),
	}
}
