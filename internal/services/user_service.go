package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fsa-drive/admin-service/internal/catalog"
	"github.com/fsa-drive/admin-service/internal/models"
	"github.com/fsa-drive/admin-service/internal/repositories"
	"github.com/fsa-drive/admin-service/internal/selection"
	"github.com/fsa-drive/admin-service/internal/validator"
)

// UserService owns the single-record admin operations. The pure selection
// engine computes the subject set; this service only adds persistence and
// the identity-service calls around it.
type UserService interface {
	Get(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, req models.UserCreateRequest) (*models.User, error)
	Update(ctx context.Context, id string, req models.UserUpdateRequest) (*models.User, error)
	// Delete removes the record; when the target is the caller's own
	// account the identity credential is deleted as well.
	Delete(ctx context.Context, id string, callerAccountID string) error
	ResetPassword(ctx context.Context, id string, password string) error
}

type userService struct {
	store           repositories.UserStore
	identity        repositories.IdentityRepository
	validator       *validator.Validator
	defaultPassword string
	logger          *slog.Logger
}

func NewUserService(
	store repositories.UserStore,
	identity repositories.IdentityRepository,
	v *validator.Validator,
	defaultPassword string,
	logger *slog.Logger,
) UserService {
	return &userService{
		store:           store,
		identity:        identity,
		validator:       v,
		defaultPassword: defaultPassword,
		logger:          logger,
	}
}

func (s *userService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.store.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.store.List(ctx)
}

func (s *userService) Create(ctx context.Context, req models.UserCreateRequest) (*models.User, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, errs)
	}

	role := req.Role
	if role == "" {
		role = models.RoleTeacher
	}

	// Duplicate pre-check against the document store before touching the
	// identity service, so a conflict costs no side effect.
	if _, err := s.store.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("user %s: %w", req.Email, models.ErrDuplicate)
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	state := buildFormState(role, req.GradeLevel, req.CourseCategory, req.Subjects)

	password := req.Password
	if password == "" {
		password = s.defaultPassword
	}

	accountID, err := s.identity.CreateAccount(ctx, req.Email, password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		AccountID:      accountID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Role:           state.Role,
		GradeLevel:     state.GradeLevel,
		CourseCategory: state.CourseCategory,
		Subjects:       state.Subjects,
		AuthProvider:   models.AuthProviderAdmin,
	}

	if _, err := s.store.Insert(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", "email", user.Email, "role", user.Role)
	return user, nil
}

func (s *userService) Update(ctx context.Context, id string, req models.UserUpdateRequest) (*models.User, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, errs)
	}

	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Same pre-check as Create when the email moves to a new address.
	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.store.GetByEmail(ctx, *req.Email); err == nil {
			return nil, fmt.Errorf("user %s: %w", *req.Email, models.ErrDuplicate)
		} else if !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
	}

	state := selection.FromUser(user)
	if req.Role != nil && *req.Role != state.Role {
		state = state.SetRole(*req.Role)
	}
	if req.GradeLevel != nil {
		state = state.SetGradeLevel(*req.GradeLevel)
	}
	if req.CourseCategory != nil {
		state = state.SetCourseCategory(*req.CourseCategory)
	}
	// The request's subject list is the dialog's final selection; the
	// admin invariant still wins over whatever was submitted.
	if req.Subjects != nil && state.Role != models.RoleAdmin {
		state.Subjects = dedupe(req.Subjects)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	user.Role = state.Role
	user.GradeLevel = state.GradeLevel
	user.CourseCategory = state.CourseCategory
	user.Subjects = state.Subjects

	if err := s.store.Update(ctx, id, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "id", id)
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id string, callerAccountID string) error {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	if user.AccountID != "" && user.AccountID == callerAccountID {
		if err := s.identity.DeleteAccount(ctx, user.AccountID); err != nil {
			return fmt.Errorf("record deleted but credential removal failed: %w", err)
		}
	}

	s.logger.Info("user deleted", "id", id, "email", user.Email)
	return nil
}

func (s *userService) ResetPassword(ctx context.Context, id string, password string) error {
	if errs := s.validator.Validate(models.ResetPasswordRequest{Password: password}); errs != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, errs)
	}

	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.AccountID == "" {
		return fmt.Errorf("user %s has no identity account: %w", id, models.ErrNotFound)
	}

	return s.identity.SetPassword(ctx, user.AccountID, password)
}

// buildFormState replays the create dialog's transitions over an empty
// form so the persisted selection obeys the same rules the UI enforces:
// admin collapses to {"Full Drive"}, teacher subjects pass through the
// scope transitions and set semantics.
func buildFormState(
	role models.UserRole,
	grade catalog.GradeLevel,
	category catalog.CourseCategory,
	subjects []string,
) selection.FormState {
	state := selection.FormState{}.SetRole(role)
	if role == models.RoleAdmin {
		return state
	}
	if grade != "" {
		state = state.SetGradeLevel(grade)
	}
	if category != "" {
		state = state.SetCourseCategory(category)
	}
	for _, subject := range dedupe(subjects) {
		state = state.ToggleSubject(subject)
	}
	return state
}

func dedupe(subjects []string) []string {
	out := make([]string, 0, len(subjects))
	seen := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		if !seen[s] {
			out = append(out, s)
			seen[s] = true
		}
	}
	return out
}
