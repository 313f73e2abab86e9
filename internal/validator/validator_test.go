package validator

import (
	"testing"

	"github.com/fsa-drive/admin-service/internal/models"
)

func TestIsGmailAddress(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"ann@gmail.com", true},
		{"ann.lee+drive@gmail.com", true},
		{"bo@yahoo.com", false},
		{"@gmail.com", false},
		{"ann lee@gmail.com", false},
		{"ann@gmail.com ", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsGmailAddress(tt.email); got != tt.want {
			t.Errorf("IsGmailAddress(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestValidateUserCreateRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     models.UserCreateRequest
		wantErr bool
	}{
		{
			name: "valid teacher",
			req: models.UserCreateRequest{
				FirstName: "Ann", LastName: "Lee",
				Email: "ann@gmail.com", Role: models.RoleTeacher,
				GradeLevel: "Middle School",
			},
		},
		{
			name: "wrong email domain",
			req: models.UserCreateRequest{
				FirstName: "Bo", LastName: "Kim",
				Email: "bo@yahoo.com", Role: models.RoleAdmin,
			},
			wantErr: true,
		},
		{
			name: "unknown role",
			req: models.UserCreateRequest{
				FirstName: "Cy", LastName: "Ode",
				Email: "cy@gmail.com", Role: "proctor",
			},
			wantErr: true,
		},
		{
			name: "unknown grade level",
			req: models.UserCreateRequest{
				FirstName: "Di", LastName: "Eze",
				Email: "di@gmail.com", Role: models.RoleTeacher,
				GradeLevel: "Night School",
			},
			wantErr: true,
		},
		{
			name: "missing first name",
			req: models.UserCreateRequest{
				LastName: "Fox", Email: "fox@gmail.com",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Validate(tt.req)
			if (errs != nil) != tt.wantErr {
				t.Errorf("Validate() errors = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}
