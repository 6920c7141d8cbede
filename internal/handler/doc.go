// Package handler contains the HTTP request handlers for springweb.
//
// There is one handler type per group of routes:
//   - HomeHandler - / and /home redirect to the user list
//   - PathVariableHandler - /api/var/*: path segments, JSON body, configured values
//   - RequestParamHandler - /api/params/*: query parameters and the raw query map
//   - UserViewHandler - /details and /list server-rendered pages
//   - UserRestHandler - /api/details, /api/details-map, /api/list
//   - HealthHandler, DocsHandler - probes, version and API documentation
//
// Handlers bind each route into a typed struct from the dto package and
// return *apperrors.AppError for client errors. Rendering of error
// responses is left to the application error handler.
//
// All handlers are safe for concurrent use.
package handler
