package repositories

import (
	"context"

	"github.com/fsa-drive/admin-service/internal/models"
)

// UserSnapshotTopic carries the full user collection after every mutation.
// Subscribers must treat each message as a complete replacement of the
// previous collection, not an incremental patch.
const UserSnapshotTopic = "users.snapshot"

// UserStore is the document-store boundary for user records.
type UserStore interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, user *models.User) (string, error)
	Update(ctx context.Context, id string, user *models.User) error
	Delete(ctx context.Context, id string) error

	// PublishSnapshot pushes the current full collection on the snapshot
	// topic. Stores call it after each mutation; callers may invoke it
	// directly to seed subscribers at startup.
	PublishSnapshot(ctx context.Context) error
}

// IdentityRepository is the external identity-service boundary.
type IdentityRepository interface {
	// CreateAccount provisions a credential and returns the account id.
	// A known address fails with models.ErrDuplicate.
	CreateAccount(ctx context.Context, email, password string) (string, error)
	DeleteAccount(ctx context.Context, accountID string) error
	SetPassword(ctx context.Context, accountID, password string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
