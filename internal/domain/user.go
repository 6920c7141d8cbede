package domain

import "strings"

// User is a person shown by the sample endpoints. Users carry no identity
// beyond their field values.
type User struct {
	Name     string  `json:"name"`
	Lastname string  `json:"lastname"`
	Email    *string `json:"email"`
}

// NewUser creates a user without an email address
func NewUser(name, lastname string) User {
	return User{Name: name, Lastname: lastname}
}

// NewUserWithEmail creates a user with an email address
func NewUserWithEmail(name, lastname, email string) User {
	return User{Name: name, Lastname: lastname, Email: &email}
}

// EmailAddress returns the email or an empty string when none is set
func (u User) EmailAddress() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}

// FullName joins name and lastname
func (u User) FullName() string {
	return strings.TrimSpace(u.Name + " " + u.Lastname)
}

// Upper returns a copy with name and lastname upper-cased. The email is kept.
func (u User) Upper() User {
	out := u
	out.Name = strings.ToUpper(u.Name)
	out.Lastname = strings.ToUpper(u.Lastname)
	return out
}
