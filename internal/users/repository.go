package users

import "errors"

// Repository errors.
var (
	// ErrNotFound indicates the requested user does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateID indicates an Add with an ID already in use.
	ErrDuplicateID = errors.New("user id already exists")

	// ErrDuplicateLogin indicates a login collision on Add or Update.
	ErrDuplicateLogin = errors.New("login already exists")
)

// Repository is the CRUD contract for user records.
//
// IDs and logins are unique across the repository. GetAll returns
// users sorted by name.
type Repository interface {
	GetAll() ([]User, error)
	GetByID(id int) (*User, error)
	GetByLogin(login string) (*User, error)
	Add(u User) error
	Update(u User) error
	Delete(id int) error
}
