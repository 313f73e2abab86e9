package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fsa-drive/admin-service/internal/models"
	"github.com/fsa-drive/admin-service/internal/repositories"
)

// UserPostgres persists user records in Postgres and pushes a full-collection
// snapshot on the watermill topic after every mutation, giving downstream
// consumers the same push contract a hosted document store offers.
type UserPostgres struct {
	db        *gorm.DB
	publisher message.Publisher
}

func NewUserPostgres(db *gorm.DB, publisher message.Publisher) repositories.UserStore {
	return &UserPostgres{
		db:        db,
		publisher: publisher,
	}
}

func (s *UserPostgres) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (s *UserPostgres) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", email, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (s *UserPostgres) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Order("last_name ASC, first_name ASC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserPostgres) Insert(ctx context.Context, user *models.User) (string, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	err := s.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", fmt.Errorf("user %s: %w", user.Email, models.ErrDuplicate)
		}
		return "", fmt.Errorf("failed to insert user: %w", err)
	}

	s.publishSnapshot(ctx)
	return user.ID, nil
}

func (s *UserPostgres) Update(ctx context.Context, id string, user *models.User) error {
	result := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Select("FirstName", "LastName", "Email", "Role", "GradeLevel", "CourseCategory", "Subjects").
		Updates(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("user %s: %w", user.Email, models.ErrDuplicate)
		}
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %s: %w", id, models.ErrNotFound)
	}

	s.publishSnapshot(ctx)
	return nil
}

func (s *UserPostgres) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %s: %w", id, models.ErrNotFound)
	}

	s.publishSnapshot(ctx)
	return nil
}

func (s *UserPostgres) PublishSnapshot(ctx context.Context) error {
	users, err := s.List(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to marshal user snapshot: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.publisher.Publish(repositories.UserSnapshotTopic, msg); err != nil {
		return fmt.Errorf("failed to publish user snapshot: %w", err)
	}
	return nil
}

// publishSnapshot is the post-mutation variant; a failed push must not fail
// the mutation that already committed.
func (s *UserPostgres) publishSnapshot(ctx context.Context) {
	_ = s.PublishSnapshot(ctx)
}
