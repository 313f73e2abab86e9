package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fsa-drive/admin-service/internal/catalog"
	"github.com/fsa-drive/admin-service/internal/models"
	"github.com/fsa-drive/admin-service/internal/repositories"
	"github.com/fsa-drive/admin-service/internal/validator"
)

// roleLabels are the accepted values of the fourth roster column,
// case-sensitive.
var roleLabels = map[string]models.UserRole{
	"Teacher": models.RoleTeacher,
	"Admin":   models.RoleAdmin,
}

// ImportService provisions accounts from an uploaded roster in two phases:
// an all-or-nothing validation pass over every row, then one sequential
// provisioning call per row where failures are independent and non-fatal.
type ImportService interface {
	Import(ctx context.Context, rows [][]string) (*models.ImportResult, error)
}

type importService struct {
	store           repositories.UserStore
	identity        repositories.IdentityRepository
	defaultPassword string
	logger          *slog.Logger
}

func NewImportService(
	store repositories.UserStore,
	identity repositories.IdentityRepository,
	defaultPassword string,
	logger *slog.Logger,
) ImportService {
	return &importService{
		store:           store,
		identity:        identity,
		defaultPassword: defaultPassword,
		logger:          logger,
	}
}

type importRow struct {
	FirstName string
	LastName  string
	Email     string
	RoleLabel string
}

func (s *importService) Import(ctx context.Context, rows [][]string) (*models.ImportResult, error) {
	parsed := normalize(rows)

	// Phase 1: validate everything before any side effect. The first bad
	// row aborts the whole batch with zero provisioning calls.
	if err := validateAll(parsed); err != nil {
		return nil, err
	}

	// Phase 2: one provisioning call per row, strictly in order. A row's
	// failure is recorded and the loop moves on; it never aborts siblings.
	result := &models.ImportResult{TotalRows: len(parsed)}
	for i, row := range parsed {
		if err := s.provision(ctx, row); err != nil {
			s.logger.Warn("import row failed", "row", i+1, "email", row.Email, "error", err)
			result.Failures = append(result.Failures, models.ImportFailure{
				Row:    i + 1,
				Email:  row.Email,
				Reason: err.Error(),
			})
			continue
		}
		result.Provisioned++
	}

	s.logger.Info("import finished",
		"total", result.TotalRows,
		"provisioned", result.Provisioned,
		"failed", len(result.Failures),
	)
	return result, nil
}

// normalize trims fields and discards rows too short to interpret. Rows
// with extra columns keep only the first four.
func normalize(rows [][]string) []importRow {
	out := make([]importRow, 0, len(rows))
	for _, row := range rows {
		if len(row) < 4 {
			continue
		}
		out = append(out, importRow{
			FirstName: strings.TrimSpace(row[0]),
			LastName:  strings.TrimSpace(row[1]),
			Email:     strings.TrimSpace(row[2]),
			RoleLabel: strings.TrimSpace(row[3]),
		})
	}
	return out
}

func validateAll(rows []importRow) error {
	for i, row := range rows {
		if err := validateRow(i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func validateRow(rowNum int, row importRow) error {
	fields := []struct {
		name  string
		value string
	}{
		{"first_name", row.FirstName},
		{"last_name", row.LastName},
		{"email", row.Email},
		{"role", row.RoleLabel},
	}
	for _, f := range fields {
		if f.value == "" {
			return &models.ImportRowError{
				Row: rowNum, Field: f.name, Rule: "required",
				Message: "must not be empty",
			}
		}
	}

	if !validator.IsGmailAddress(row.Email) {
		return &models.ImportRowError{
			Row: rowNum, Field: "email", Rule: "gmail_email",
			Message: "must be a gmail.com address",
		}
	}

	if _, ok := roleLabels[row.RoleLabel]; !ok {
		return &models.ImportRowError{
			Row: rowNum, Field: "role", Rule: "role_label",
			Message: `must be "Teacher" or "Admin"`,
		}
	}
	return nil
}

func (s *importService) provision(ctx context.Context, row importRow) error {
	role := models.UserRole(strings.ToLower(row.RoleLabel))

	subjects := []string{}
	if role == models.RoleAdmin {
		subjects = []string{catalog.FullDrive}
	}

	accountID, err := s.identity.CreateAccount(ctx, row.Email, s.defaultPassword)
	if err != nil {
		return err
	}

	user := &models.User{
		AccountID:    accountID,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Email:        row.Email,
		Role:         role,
		Subjects:     subjects,
		AuthProvider: models.AuthProviderAdmin,
	}
	if _, err := s.store.Insert(ctx, user); err != nil {
		return err
	}
	return nil
}
