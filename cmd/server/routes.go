package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registerRoutes registers all HTTP routes
func registerRoutes(app *fiber.App, deps *Dependencies) {
	h := deps.Handlers // Shorthand for handlers

	// Health, version and documentation
	h.Health.RegisterRoutes(app)
	h.Docs.RegisterRoutes(app)

	if deps.Config.Metrics.Enabled {
		app.Get(deps.Config.Metrics.Path, adaptor.HTTPHandler(promhttp.Handler()))
	}

	// Landing
	app.Get("/", h.Home.Home)
	app.Get("/home", h.Home.Home)

	// Server-rendered views
	app.Get("/details", h.UserViews.Details)
	app.Get("/list", h.UserViews.List)

	// Path variables, request body and configured values
	pathVars := app.Group("/api/var")
	{
		pathVars.Get("/baz/:message", h.PathVariables.Baz)
		pathVars.Get("/mix/:product/:code", h.PathVariables.Mix)
		pathVars.Post("/create", h.PathVariables.Create)
		pathVars.Get("/values", h.PathVariables.Values)
	}

	// Query parameters
	params := app.Group("/api/params")
	{
		params.Get("/foo", h.RequestParams.Foo)
		params.Get("/bar", h.RequestParams.Bar)
		params.Get("/request", h.RequestParams.Request)
	}

	// Users as JSON
	api := app.Group("/api")
	{
		api.Get("/details", h.UserRest.Details)
		api.Get("/details-map", h.UserRest.DetailsMap)
		api.Get("/list", h.UserRest.List)
	}
}
