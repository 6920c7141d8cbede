// Package service contains the logic behind the springweb handlers.
//
// Services build the in-memory objects the handlers return: the fixed user
// records and the snapshot of configuration values. Nothing is persisted and
// no service holds mutable state, so all services are safe for concurrent use.
package service
