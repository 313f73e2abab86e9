package services

import (
	"context"
	"fmt"

	"github.com/fsa-drive/admin-service/internal/models"
)

// fakeUserStore is an in-memory UserStore for service tests.
type fakeUserStore struct {
	users      map[string]*models.User
	insertSeq  int
	inserted   []string
	updated    []string
	deleted    []string
	insertErr  map[string]error
	snapshots  int
	getByEmail map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:      map[string]*models.User{},
		insertErr:  map[string]error{},
		getByEmail: map[string]*models.User{},
	}
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, models.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.getByEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, models.ErrNotFound)
}

func (f *fakeUserStore) List(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) Insert(_ context.Context, user *models.User) (string, error) {
	if err := f.insertErr[user.Email]; err != nil {
		return "", err
	}
	f.insertSeq++
	if user.ID == "" {
		user.ID = fmt.Sprintf("id-%d", f.insertSeq)
	}
	cp := *user
	f.users[user.ID] = &cp
	f.inserted = append(f.inserted, user.Email)
	return user.ID, nil
}

func (f *fakeUserStore) Update(_ context.Context, id string, user *models.User) error {
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("user %s: %w", id, models.ErrNotFound)
	}
	// Mirrors the store's unique email index.
	for otherID, other := range f.users {
		if otherID != id && other.Email == user.Email {
			return fmt.Errorf("user %s: %w", user.Email, models.ErrDuplicate)
		}
	}
	cp := *user
	cp.ID = id
	f.users[id] = &cp
	f.updated = append(f.updated, id)
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("user %s: %w", id, models.ErrNotFound)
	}
	delete(f.users, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeUserStore) PublishSnapshot(_ context.Context) error {
	f.snapshots++
	return nil
}

// fakeIdentity records credential calls and can fail selected addresses.
type fakeIdentity struct {
	accountSeq int
	created    []string
	deleted    []string
	passwords  map[string]string
	createErr  map[string]error
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{
		passwords: map[string]string{},
		createErr: map[string]error{},
	}
}

func (f *fakeIdentity) CreateAccount(_ context.Context, email, password string) (string, error) {
	if err := f.createErr[email]; err != nil {
		return "", err
	}
	f.accountSeq++
	f.created = append(f.created, email)
	id := fmt.Sprintf("acct-%d", f.accountSeq)
	f.passwords[id] = password
	return id, nil
}

func (f *fakeIdentity) DeleteAccount(_ context.Context, accountID string) error {
	f.deleted = append(f.deleted, accountID)
	return nil
}

func (f *fakeIdentity) SetPassword(_ context.Context, accountID, password string) error {
	f.passwords[accountID] = password
	return nil
}

func (f *fakeIdentity) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, e := range f.created {
		if e == email {
			return true, nil
		}
	}
	return false, nil
}
