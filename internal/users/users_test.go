package users

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func newTestRepo(t *testing.T) *DiskRepository {
	t.Helper()
	return NewDiskRepository(filepath.Join(t.TempDir(), "users"))
}

func TestRepositoryAddAndGet(t *testing.T) {
	repo := newTestRepo(t)
	alice := User{ID: 1, Name: "Alice", Login: "alice", Password: "1234", Email: "a@mail.com"}

	if err := repo.Add(alice); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := repo.GetByID(1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if *got != alice {
		t.Errorf("got %+v, want %+v", got, alice)
	}

	byLogin, err := repo.GetByLogin("alice")
	if err != nil {
		t.Fatalf("GetByLogin: %v", err)
	}
	if byLogin.ID != 1 {
		t.Errorf("GetByLogin returned id %d", byLogin.ID)
	}
}

func TestRepositoryUniqueness(t *testing.T) {
	repo := newTestRepo(t)
	if err := repo.Add(User{ID: 1, Name: "Alice", Login: "alice", Password: "1234"}); err != nil {
		t.Fatal(err)
	}

	if err := repo.Add(User{ID: 1, Name: "Copy", Login: "copy", Password: "x"}); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("duplicate id err = %v", err)
	}
	if err := repo.Add(User{ID: 2, Name: "Imposter", Login: "alice", Password: "x"}); !errors.Is(err, ErrDuplicateLogin) {
		t.Errorf("duplicate login err = %v", err)
	}
}

func TestRepositoryUpdate(t *testing.T) {
	repo := newTestRepo(t)
	repo.Add(User{ID: 1, Name: "Alice", Login: "alice", Password: "1234"})
	repo.Add(User{ID: 2, Name: "Bob", Login: "bob", Password: "0000"})

	if err := repo.Update(User{ID: 1, Name: "Alice Smith", Login: "alice", Password: "1234"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := repo.GetByID(1)
	if got.Name != "Alice Smith" {
		t.Errorf("name = %q", got.Name)
	}

	if err := repo.Update(User{ID: 2, Name: "Bob", Login: "alice", Password: "0000"}); !errors.Is(err, ErrDuplicateLogin) {
		t.Errorf("login takeover err = %v", err)
	}
	if err := repo.Update(User{ID: 9, Name: "Ghost", Login: "ghost", Password: "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing update err = %v", err)
	}
}

func TestRepositoryGetAllSortedByName(t *testing.T) {
	repo := newTestRepo(t)
	repo.Add(User{ID: 1, Name: "Zoe", Login: "zoe", Password: "x"})
	repo.Add(User{ID: 2, Name: "Alice", Login: "alice", Password: "x"})
	repo.Add(User{ID: 3, Name: "Bob", Login: "bob", Password: "x"})

	all, err := repo.GetAll()
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, len(all))
	for i, u := range all {
		names[i] = u.Name
	}
	if strings.Join(names, ",") != "Alice,Bob,Zoe" {
		t.Errorf("order = %v", names)
	}
}

func TestRepositoryDelete(t *testing.T) {
	repo := newTestRepo(t)
	repo.Add(User{ID: 1, Name: "Alice", Login: "alice", Password: "x"})

	if err := repo.Delete(1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete err = %v", err)
	}
	// Deleting again is a no-op.
	if err := repo.Delete(1); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestUserStringOmitsPassword(t *testing.T) {
	u := User{ID: 1, Name: "Alice", Login: "alice", Password: "s3cret"}
	if s := u.String(); strings.Contains(s, "s3cret") {
		t.Errorf("String leaked the password: %s", s)
	}
}

func TestAuthSignInAndOut(t *testing.T) {
	dir := t.TempDir()
	repo := NewDiskRepository(filepath.Join(dir, "users"))
	repo.Add(User{ID: 1, Name: "Alice", Login: "alice", Password: "1234"})

	auth := NewAuthService(filepath.Join(dir, "session.json"), repo, nil)
	if auth.Authorized() {
		t.Fatal("authorized before sign-in")
	}

	if err := auth.SignIn("alice", "bad"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("wrong password err = %v", err)
	}
	if err := auth.SignIn("nobody", "x"); !errors.Is(err, ErrUnknownLogin) {
		t.Errorf("unknown login err = %v", err)
	}

	if err := auth.SignIn("alice", "1234"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if !auth.Authorized() || auth.CurrentUser().Login != "alice" {
		t.Error("sign-in did not take effect")
	}
	if auth.Token() == "" {
		t.Error("no session token issued")
	}

	auth.SignOut()
	if auth.Authorized() || auth.Token() != "" {
		t.Error("sign-out did not clear the session")
	}
}

func TestAuthSessionSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	repo := NewDiskRepository(filepath.Join(dir, "users"))
	repo.Add(User{ID: 1, Name: "Alice", Login: "alice", Password: "1234"})
	sessionPath := filepath.Join(dir, "session.json")

	first := NewAuthService(sessionPath, repo, nil)
	if err := first.SignIn("alice", "1234"); err != nil {
		t.Fatal(err)
	}
	token := first.Token()

	second := NewAuthService(sessionPath, repo, nil)
	if !second.Authorized() {
		t.Fatal("session not restored")
	}
	if second.CurrentUser().ID != 1 {
		t.Errorf("restored user id = %d", second.CurrentUser().ID)
	}
	if second.Token() != token {
		t.Errorf("restored token differs")
	}
}

func TestAuthSessionForMissingUserIgnored(t *testing.T) {
	dir := t.TempDir()
	repo := NewDiskRepository(filepath.Join(dir, "users"))
	repo.Add(User{ID: 1, Name: "Alice", Login: "alice", Password: "1234"})
	sessionPath := filepath.Join(dir, "session.json")

	auth := NewAuthService(sessionPath, repo, nil)
	if err := auth.SignIn("alice", "1234"); err != nil {
		t.Fatal(err)
	}
	repo.Delete(1)

	restarted := NewAuthService(sessionPath, repo, nil)
	if restarted.Authorized() {
		t.Error("session restored for a deleted user")
	}
}
