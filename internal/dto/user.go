package dto

import "github.com/springweb/springweb/internal/domain"

// CreateUserRequest is the body of POST /api/var/create
type CreateUserRequest struct {
	Name     string  `json:"name" validate:"required"`
	Lastname string  `json:"lastname" validate:"required"`
	Email    *string `json:"email,omitempty"`
}

// ToUser converts the request into a domain user
func (r CreateUserRequest) ToUser() domain.User {
	return domain.User{Name: r.Name, Lastname: r.Lastname, Email: r.Email}
}

// UserDto pairs a title with a user
type UserDto struct {
	Title string      `json:"title"`
	User  domain.User `json:"user"`
}
