// Package users provides the user repository and session-backed
// authorization service.
package users

import "fmt"

// User is an account record. The password participates in
// serialization and authentication but is kept out of String output.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Login    string `json:"login"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
	Address  string `json:"address,omitempty"`
}

// String renders the user without the password.
func (u User) String() string {
	return fmt.Sprintf("User(id=%d, name=%q, login=%q, email=%q, address=%q)",
		u.ID, u.Name, u.Login, u.Email, u.Address)
}
