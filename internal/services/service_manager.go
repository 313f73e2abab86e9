package services

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/fsa-drive/admin-service/internal/repositories"
	"github.com/fsa-drive/admin-service/internal/validator"
)

// ServiceManager bundles the service instances behind one wiring point so
// handlers receive a single dependency.
type ServiceManager interface {
	Users() UserService
	Import() ImportService
	Session() SessionService
}

type serviceManager struct {
	userService    UserService
	importService  ImportService
	sessionService SessionService
}

func NewServiceManager(
	store repositories.UserStore,
	identity repositories.IdentityRepository,
	redisClient *redis.Client,
	v *validator.Validator,
	defaultPassword string,
	logger *slog.Logger,
) ServiceManager {
	return &serviceManager{
		userService:    NewUserService(store, identity, v, defaultPassword, logger),
		importService:  NewImportService(store, identity, defaultPassword, logger),
		sessionService: NewSessionService(redisClient, logger),
	}
}

func (sm *serviceManager) Users() UserService      { return sm.userService }
func (sm *serviceManager) Import() ImportService   { return sm.importService }
func (sm *serviceManager) Session() SessionService { return sm.sessionService }
