package service

import (
	"github.com/springweb/springweb/internal/domain"
)

const (
	// DetailsTitle is the title of the details page and its API counterpart
	DetailsTitle = "Hola Mundo Cruel"
	// ListTitle is the title of the list page
	ListTitle = "Hola mundo cruel"
)

// UserService builds the fixed user records served by the sample
type UserService struct{}

// NewUserService creates a new user service
func NewUserService() *UserService {
	return &UserService{}
}

// Featured returns the user shown on the details endpoints
func (s *UserService) Featured() domain.User {
	return domain.NewUser("Jose", "Carrillo")
}

// List returns the three users of GET /api/list, always in the same order
func (s *UserService) List() []domain.User {
	return []domain.User{
		domain.NewUser("Jose", "Carrillo"),
		domain.NewUser("Manolo", "Jimenez"),
		domain.NewUser("Maria", "Cabello"),
	}
}

// ViewUsers returns the users shared by every server-rendered page
func (s *UserService) ViewUsers() []domain.User {
	return []domain.User{
		domain.NewUserWithEmail("Jose", "Carrillo", "carrillo@email.com"),
		domain.NewUser("Manuel", "Benitez"),
		domain.NewUser("Paco", "Lolo"),
	}
}

// Create echoes the user back with name and lastname upper-cased.
// Nothing is stored.
func (s *UserService) Create(user domain.User) domain.User {
	return user.Upper()
}
