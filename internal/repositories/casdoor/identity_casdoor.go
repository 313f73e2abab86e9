package casdoor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/fsa-drive/admin-service/internal/models"
	"github.com/fsa-drive/admin-service/internal/repositories"
)

// CasdoorConfig holds the configuration for the Casdoor connection.
type CasdoorConfig struct {
	Endpoint         string
	ClientID         string
	ClientSecret     string
	Certificate      string
	OrganizationName string
	ApplicationName  string
}

// IdentityCasdoor implements the identity-service boundary against Casdoor,
// with a short-lived Redis cache in front of existence checks so the bulk
// import does not hammer the identity API.
type IdentityCasdoor struct {
	client *casdoorsdk.Client
	redis  *redis.Client
	config CasdoorConfig

	cachePrefix string
	cacheTTL    time.Duration
}

func NewIdentityCasdoor(config CasdoorConfig, redisClient *redis.Client) repositories.IdentityRepository {
	client := casdoorsdk.NewClient(
		config.Endpoint,
		config.ClientID,
		config.ClientSecret,
		config.Certificate,
		config.OrganizationName,
		config.ApplicationName,
	)

	return &IdentityCasdoor{
		client:      client,
		redis:       redisClient,
		config:      config,
		cachePrefix: "identity:",
		cacheTTL:    1 * time.Minute,
	}
}

func (r *IdentityCasdoor) cacheKey(key string) string {
	return fmt.Sprintf("%s%s", r.cachePrefix, key)
}

// CreateAccount provisions a credential for email. A known address fails
// with models.ErrDuplicate and leaves the identity service untouched.
func (r *IdentityCasdoor) CreateAccount(ctx context.Context, email, password string) (string, error) {
	exists, err := r.ExistsByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", fmt.Errorf("account %s: %w", email, models.ErrDuplicate)
	}

	accountID := uuid.New().String()
	name := localPart(email)

	user := &casdoorsdk.User{
		Owner:             r.config.OrganizationName,
		Name:              name,
		Id:                accountID,
		Email:             email,
		Password:          password,
		DisplayName:       name,
		SignupApplication: r.config.ApplicationName,
		CreatedTime:       time.Now().Format(time.RFC3339),
	}

	ok, err := r.client.AddUser(user)
	if err != nil {
		return "", fmt.Errorf("failed to create account: %w: %v", models.ErrExternalService, err)
	}
	if !ok {
		return "", fmt.Errorf("account %s: %w", email, models.ErrDuplicate)
	}

	r.setExistsCache(ctx, email, true)
	return accountID, nil
}

func (r *IdentityCasdoor) DeleteAccount(ctx context.Context, accountID string) error {
	user, err := r.client.GetUserByUserId(accountID)
	if err != nil {
		return fmt.Errorf("failed to look up account: %w: %v", models.ErrExternalService, err)
	}
	if user == nil {
		return fmt.Errorf("account %s: %w", accountID, models.ErrNotFound)
	}

	if _, err := r.client.DeleteUser(user); err != nil {
		return fmt.Errorf("failed to delete account: %w: %v", models.ErrExternalService, err)
	}

	r.invalidateExistsCache(ctx, user.Email)
	return nil
}

func (r *IdentityCasdoor) SetPassword(ctx context.Context, accountID, password string) error {
	user, err := r.client.GetUserByUserId(accountID)
	if err != nil {
		return fmt.Errorf("failed to look up account: %w: %v", models.ErrExternalService, err)
	}
	if user == nil {
		return fmt.Errorf("account %s: %w", accountID, models.ErrNotFound)
	}

	if _, err := r.client.SetPassword(user.Owner, user.Name, "", password); err != nil {
		return fmt.Errorf("failed to set password: %w: %v", models.ErrExternalService, err)
	}
	return nil
}

func (r *IdentityCasdoor) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if cached, ok := r.getExistsCache(ctx, email); ok {
		return cached, nil
	}

	user, err := r.client.GetUserByEmail(email)
	if err != nil {
		// The SDK reports unknown users as errors on some deployments;
		// only treat transport-level failures as external errors.
		if strings.Contains(err.Error(), "doesn't exist") {
			r.setExistsCache(ctx, email, false)
			return false, nil
		}
		return false, fmt.Errorf("failed to check account existence: %w: %v", models.ErrExternalService, err)
	}

	exists := user != nil
	r.setExistsCache(ctx, email, exists)
	return exists, nil
}

// ===== CACHE =====

func (r *IdentityCasdoor) getExistsCache(ctx context.Context, email string) (bool, bool) {
	if r.redis == nil {
		return false, false
	}
	val, err := r.redis.Get(ctx, r.cacheKey("exists:"+email)).Result()
	if err != nil {
		// redis.Nil and transport errors alike fall through to Casdoor.
		return false, false
	}
	return val == "true", true
}

func (r *IdentityCasdoor) setExistsCache(ctx context.Context, email string, exists bool) {
	if r.redis == nil {
		return
	}
	r.redis.Set(ctx, r.cacheKey("exists:"+email), fmt.Sprintf("%t", exists), r.cacheTTL)
}

func (r *IdentityCasdoor) invalidateExistsCache(ctx context.Context, email string) {
	if r.redis == nil || email == "" {
		return
	}
	r.redis.Del(ctx, r.cacheKey("exists:"+email))
}

func localPart(email string) string {
	if idx := strings.Index(email, "@"); idx > 0 {
		return email[:idx]
	}
	return email
}
