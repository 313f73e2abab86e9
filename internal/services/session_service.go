package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fsa-drive/admin-service/internal/catalog"
	"github.com/fsa-drive/admin-service/internal/models"
)

const (
	sessionKeyPrefix = "session:subjects:"
	sessionTTL       = 24 * time.Hour
)

// SessionService persists a user's last confirmed subject selection so the
// drive picker can restore it on the next sign-in.
type SessionService interface {
	Save(ctx context.Context, email string, subjects []string) error
	Load(ctx context.Context, email string) (*models.SessionResponse, error)
}

type sessionService struct {
	redis  *redis.Client
	logger *slog.Logger
}

func NewSessionService(client *redis.Client, logger *slog.Logger) SessionService {
	return &sessionService{redis: client, logger: logger}
}

func (s *sessionService) Save(ctx context.Context, email string, subjects []string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", models.ErrValidation)
	}
	if len(subjects) == 0 {
		return fmt.Errorf("%w: subject selection must not be empty", models.ErrValidation)
	}

	payload, err := json.Marshal(subjects)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := s.redis.Set(ctx, sessionKeyPrefix+email, payload, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save session for %s: %w", email, err)
	}

	s.logger.Debug("session saved", "email", email, "subjects", len(subjects))
	return nil
}

func (s *sessionService) Load(ctx context.Context, email string) (*models.SessionResponse, error) {
	raw, err := s.redis.Get(ctx, sessionKeyPrefix+email).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("session for %s: %w", email, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session for %s: %w", email, err)
	}

	var subjects []string
	if err := json.Unmarshal(raw, &subjects); err != nil {
		return nil, fmt.Errorf("corrupt session for %s: %w", email, err)
	}

	resp := &models.SessionResponse{Subjects: subjects}
	for _, subject := range subjects {
		if subject == catalog.FullDrive {
			resp.FullDrive = true
			break
		}
	}
	return resp, nil
}
