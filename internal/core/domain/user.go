package domain

import "errors"

const (
	RoleReader = "reader"
	RoleWriter = "writer"
)

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models an authenticated actor. Records are loaded once at startup and
// never mutated afterwards; there is no registration or role-management API.
type User struct {
	ID           string   `json:"id"`
	FirstName    string   `json:"first_name,omitempty"`
	LastName     string   `json:"last_name,omitempty"`
	Email        string   `json:"email,omitempty"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Roles        []string `json:"roles"`
}

// HasAnyRole reports whether the user holds at least one of the given roles.
func (u *User) HasAnyRole(required ...string) bool {
	return RolesIntersect(u.Roles, required)
}

// RolesIntersect reports whether held and required share at least one role.
// An empty required set admits any caller.
func RolesIntersect(held, required []string) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		for _, h := range held {
			if h == r {
				return true
			}
		}
	}
	return false
}
