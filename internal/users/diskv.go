package users

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/peterbourgon/diskv/v3"
)

// DiskRepository stores one JSON record per user under a base
// directory.
type DiskRepository struct {
	d *diskv.Diskv
}

// NewDiskRepository creates a repository rooted at basePath. The
// directory is created on first write.
func NewDiskRepository(basePath string) *DiskRepository {
	return &DiskRepository{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil }, // flat layout
		CacheSizeMax: 1024 * 1024,                          // 1MB
	})}
}

func userKey(id int) string {
	return fmt.Sprintf("user-%d.json", id)
}

func (r *DiskRepository) read(key string) (*User, error) {
	data, err := r.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", key, err)
	}
	return &u, nil
}

func (r *DiskRepository) write(u User) error {
	data, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling user %d: %w", u.ID, err)
	}
	if err := r.d.Write(userKey(u.ID), data); err != nil {
		return fmt.Errorf("writing user %d: %w", u.ID, err)
	}
	return nil
}

// GetAll returns every user, sorted by name then ID.
func (r *DiskRepository) GetAll() ([]User, error) {
	var all []User
	for key := range r.d.Keys(nil) {
		u, err := r.read(key)
		if err != nil {
			return nil, err
		}
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Name != all[j].Name {
			return all[i].Name < all[j].Name
		}
		return all[i].ID < all[j].ID
	})
	return all, nil
}

// GetByID returns the user with the given ID, or ErrNotFound.
func (r *DiskRepository) GetByID(id int) (*User, error) {
	if !r.d.Has(userKey(id)) {
		return nil, ErrNotFound
	}
	return r.read(userKey(id))
}

// GetByLogin returns the user with the given login, or ErrNotFound.
func (r *DiskRepository) GetByLogin(login string) (*User, error) {
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Login == login {
			return &all[i], nil
		}
	}
	return nil, ErrNotFound
}

// Add stores a new user, enforcing ID and login uniqueness.
func (r *DiskRepository) Add(u User) error {
	if r.d.Has(userKey(u.ID)) {
		return fmt.Errorf("%w: %d", ErrDuplicateID, u.ID)
	}
	if _, err := r.GetByLogin(u.Login); err == nil {
		return fmt.Errorf("%w: %s", ErrDuplicateLogin, u.Login)
	}
	return r.write(u)
}

// Update rewrites an existing user. Changing the login to one held by
// another user is rejected.
func (r *DiskRepository) Update(u User) error {
	if !r.d.Has(userKey(u.ID)) {
		return fmt.Errorf("%w: %d", ErrNotFound, u.ID)
	}
	if existing, err := r.GetByLogin(u.Login); err == nil && existing.ID != u.ID {
		return fmt.Errorf("%w: %s", ErrDuplicateLogin, u.Login)
	}
	return r.write(u)
}

// Delete removes a user. Deleting an absent user is a no-op.
func (r *DiskRepository) Delete(id int) error {
	if !r.d.Has(userKey(id)) {
		return nil
	}
	if err := r.d.Erase(userKey(id)); err != nil {
		return fmt.Errorf("deleting user %d: %w", id, err)
	}
	return nil
}
