package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fsa-drive/admin-service/internal/catalog"
	"github.com/fsa-drive/admin-service/internal/models"
	"github.com/fsa-drive/admin-service/internal/validator"
)

func userFixture(t *testing.T) (UserService, *fakeUserStore, *fakeIdentity) {
	t.Helper()
	store := newFakeUserStore()
	identity := newFakeIdentity()
	svc := NewUserService(store, identity, validator.New(), "FSA123", discardLogger())
	return svc, store, identity
}

func TestCreateTeacherRetainsCatalogSubjects(t *testing.T) {
	svc, _, _ := userFixture(t)

	user, err := svc.Create(context.Background(), models.UserCreateRequest{
		FirstName:      "Ann",
		LastName:       "Lee",
		Email:          "ann@gmail.com",
		GradeLevel:     catalog.GradeHigh,
		CourseCategory: catalog.CategoryMath,
		Subjects:       []string{"AP Statistics", "Not A Subject"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if user.Role != models.RoleTeacher {
		t.Errorf("Role = %q, want teacher default", user.Role)
	}
	if len(user.Subjects) != 1 || user.Subjects[0] != "AP Statistics" {
		t.Errorf("Subjects = %v, want only the catalog-valid selection", user.Subjects)
	}
}

func TestCreateAdminForcesFullDrive(t *testing.T) {
	svc, _, identity := userFixture(t)

	user, err := svc.Create(context.Background(), models.UserCreateRequest{
		FirstName:  "Cleo",
		LastName:   "Diaz",
		Email:      "cleo@gmail.com",
		Role:       models.RoleAdmin,
		GradeLevel: catalog.GradeElementary,
		Subjects:   []string{"Science K-5"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if len(user.Subjects) != 1 || user.Subjects[0] != catalog.FullDrive {
		t.Errorf("Subjects = %v, want exactly [Full Drive]", user.Subjects)
	}
	if user.GradeLevel != "" || user.CourseCategory != "" {
		t.Errorf("admin kept scope %q/%q, want cleared", user.GradeLevel, user.CourseCategory)
	}
	if len(identity.created) != 1 || identity.created[0] != "cleo@gmail.com" {
		t.Errorf("identity.created = %v, want one credential", identity.created)
	}
}

func TestCreateDuplicateEmailNoSideEffects(t *testing.T) {
	svc, store, identity := userFixture(t)
	store.getByEmail["ann@gmail.com"] = &models.User{ID: "id-1", Email: "ann@gmail.com"}

	_, err := svc.Create(context.Background(), models.UserCreateRequest{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@gmail.com",
	})
	if !errors.Is(err, models.ErrDuplicate) {
		t.Fatalf("Create() error = %v, want ErrDuplicate", err)
	}
	if len(identity.created) != 0 {
		t.Errorf("duplicate pre-check must run before the identity call, created = %v", identity.created)
	}
}

func TestCreateRejectsNonGmail(t *testing.T) {
	svc, _, _ := userFixture(t)

	_, err := svc.Create(context.Background(), models.UserCreateRequest{
		FirstName: "Bo",
		LastName:  "Kim",
		Email:     "bo@yahoo.com",
	})
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("Create() error = %v, want ErrValidation", err)
	}
}

func TestUpdateGradeChangeRetainsValidSubjects(t *testing.T) {
	svc, store, _ := userFixture(t)
	store.users["id-1"] = &models.User{
		ID:             "id-1",
		Email:          "ann@gmail.com",
		Role:           models.RoleTeacher,
		GradeLevel:     catalog.GradeHigh,
		CourseCategory: catalog.CategoryElectives,
		Subjects:       []string{"Spanish I", "AP Statistics"},
	}

	grade := catalog.GradeMiddle
	user, err := svc.Update(context.Background(), "id-1", models.UserUpdateRequest{
		GradeLevel: &grade,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	// Spanish I exists in the middle-school catalog, AP Statistics does not.
	if len(user.Subjects) != 1 || user.Subjects[0] != "Spanish I" {
		t.Errorf("Subjects = %v, want only Spanish I retained", user.Subjects)
	}
	if user.CourseCategory != "" {
		t.Errorf("CourseCategory = %q, want cleared on grade change", user.CourseCategory)
	}
}

func TestUpdateSubjectsIgnoredForAdmin(t *testing.T) {
	svc, store, _ := userFixture(t)
	store.users["id-1"] = &models.User{
		ID:       "id-1",
		Email:    "cleo@gmail.com",
		Role:     models.RoleAdmin,
		Subjects: []string{catalog.FullDrive},
	}

	user, err := svc.Update(context.Background(), "id-1", models.UserUpdateRequest{
		Subjects: []string{"Algebra I"},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if len(user.Subjects) != 1 || user.Subjects[0] != catalog.FullDrive {
		t.Errorf("Subjects = %v, admin must stay [Full Drive]", user.Subjects)
	}
}

func TestUpdateScopeChangeIgnoredForAdmin(t *testing.T) {
	svc, store, _ := userFixture(t)
	store.users["id-1"] = &models.User{
		ID:       "id-1",
		Email:    "cleo@gmail.com",
		Role:     models.RoleAdmin,
		Subjects: []string{catalog.FullDrive},
	}

	grade := catalog.GradeElementary
	category := catalog.CategoryMath
	user, err := svc.Update(context.Background(), "id-1", models.UserUpdateRequest{
		GradeLevel:     &grade,
		CourseCategory: &category,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if len(user.Subjects) != 1 || user.Subjects[0] != catalog.FullDrive {
		t.Errorf("Subjects = %v, admin must stay exactly [Full Drive]", user.Subjects)
	}
	if user.GradeLevel != "" || user.CourseCategory != "" {
		t.Errorf("admin scope = %q/%q, want empty after update", user.GradeLevel, user.CourseCategory)
	}

	stored, err := store.GetByID(context.Background(), "id-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(stored.Subjects) != 1 || stored.Subjects[0] != catalog.FullDrive {
		t.Errorf("persisted Subjects = %v, want exactly [Full Drive]", stored.Subjects)
	}
}

func TestUpdateDuplicateEmailRejected(t *testing.T) {
	svc, store, _ := userFixture(t)
	store.users["id-1"] = &models.User{ID: "id-1", Email: "ann@gmail.com", Role: models.RoleTeacher}
	store.users["id-2"] = &models.User{ID: "id-2", Email: "bo@gmail.com", Role: models.RoleTeacher}

	email := "ann@gmail.com"
	_, err := svc.Update(context.Background(), "id-2", models.UserUpdateRequest{Email: &email})
	if !errors.Is(err, models.ErrDuplicate) {
		t.Fatalf("Update() error = %v, want ErrDuplicate", err)
	}
	if len(store.updated) != 0 {
		t.Errorf("duplicate email must be rejected before the store write, updated = %v", store.updated)
	}

	// Keeping the current address is not a conflict.
	keep := "bo@gmail.com"
	if _, err := svc.Update(context.Background(), "id-2", models.UserUpdateRequest{Email: &keep}); err != nil {
		t.Errorf("Update() with unchanged email error = %v", err)
	}
}

func TestDeleteRemovesOwnCredentialOnly(t *testing.T) {
	svc, store, identity := userFixture(t)
	store.users["id-1"] = &models.User{ID: "id-1", AccountID: "acct-1", Email: "ann@gmail.com"}
	store.users["id-2"] = &models.User{ID: "id-2", AccountID: "acct-2", Email: "bo@gmail.com"}

	// Deleting someone else keeps their credential.
	if err := svc.Delete(context.Background(), "id-1", "acct-9"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(identity.deleted) != 0 {
		t.Errorf("identity.deleted = %v, want none for foreign delete", identity.deleted)
	}

	// Self-delete removes the credential too.
	if err := svc.Delete(context.Background(), "id-2", "acct-2"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(identity.deleted) != 1 || identity.deleted[0] != "acct-2" {
		t.Errorf("identity.deleted = %v, want [acct-2]", identity.deleted)
	}
}

func TestResetPassword(t *testing.T) {
	svc, store, identity := userFixture(t)
	store.users["id-1"] = &models.User{ID: "id-1", AccountID: "acct-1", Email: "ann@gmail.com"}

	if err := svc.ResetPassword(context.Background(), "id-1", "s3cret!"); err != nil {
		t.Fatalf("ResetPassword() error = %v", err)
	}
	if identity.passwords["acct-1"] != "s3cret!" {
		t.Errorf("password = %q, want the new value", identity.passwords["acct-1"])
	}

	if err := svc.ResetPassword(context.Background(), "id-1", "ab"); !errors.Is(err, models.ErrValidation) {
		t.Errorf("short password error = %v, want ErrValidation", err)
	}
}
