// Package directory maintains the searchable in-memory view of the user
// collection. It sits downstream of the document store's snapshot pushes
// and never writes back.
package directory

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/fsa-drive/admin-service/internal/models"
	"github.com/fsa-drive/admin-service/internal/repositories"
	"github.com/fsa-drive/admin-service/internal/utils"
)

// Index holds the latest full user snapshot plus the current query and the
// filtered view derived from them. Each snapshot replaces the previous
// collection wholesale; the filtered view is recomputed under the same lock
// so readers never observe a half-applied snapshot.
type Index struct {
	mu       sync.RWMutex
	users    []models.User
	query    string
	filtered []models.User

	logger utils.Logger
}

func NewIndex(logger utils.Logger) *Index {
	return &Index{logger: logger}
}

// Run consumes snapshot messages until ctx is cancelled.
func (ix *Index) Run(ctx context.Context, subscriber message.Subscriber) error {
	messages, err := subscriber.Subscribe(ctx, repositories.UserSnapshotTopic)
	if err != nil {
		return err
	}

	for msg := range messages {
		var users []models.User
		if err := json.Unmarshal(msg.Payload, &users); err != nil {
			ix.logger.Error("failed to decode user snapshot", "error", err)
			msg.Ack()
			continue
		}
		ix.Replace(users)
		msg.Ack()
	}
	return nil
}

// Replace installs a new full snapshot and recomputes the filtered view.
func (ix *Index) Replace(users []models.User) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.users = users
	ix.filtered = filter(ix.users, ix.query)
}

// SetQuery updates the active query and recomputes the filtered view.
func (ix *Index) SetQuery(query string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.query = query
	ix.filtered = filter(ix.users, ix.query)
}

// Filtered returns the current filtered view.
func (ix *Index) Filtered() []models.User {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make([]models.User, len(ix.filtered))
	copy(out, ix.filtered)
	return out
}

// Search filters the current snapshot by an ad-hoc query without touching
// the index's own query state.
func (ix *Index) Search(query string) []models.User {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return filter(ix.users, query)
}

// Matches reports whether a user matches the query: case-insensitive
// substring against first name, last name, or email. The empty query
// matches everyone; an empty field simply cannot match.
func Matches(u models.User, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(u.FirstName), q) ||
		strings.Contains(strings.ToLower(u.LastName), q) ||
		strings.Contains(strings.ToLower(u.Email), q)
}

func filter(users []models.User, query string) []models.User {
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if Matches(u, query) {
			out = append(out, u)
		}
	}
	return out
}
