package models

import (
	"github.com/fsa-drive/admin-service/internal/catalog"
)

type UserCreateRequest struct {
	FirstName      string                 `json:"first_name" validate:"required,max=100"`
	LastName       string                 `json:"last_name" validate:"required,max=100"`
	Email          string                 `json:"email" validate:"required,gmail_email"`
	Password       string                 `json:"password" validate:"omitempty,min=6,max=72"`
	Role           UserRole               `json:"role" validate:"omitempty,user_role"`
	GradeLevel     catalog.GradeLevel     `json:"grade_level" validate:"omitempty,grade_level"`
	CourseCategory catalog.CourseCategory `json:"course_category" validate:"omitempty,course_category"`
	Subjects       []string               `json:"subjects"`
}

type UserUpdateRequest struct {
	FirstName      *string                 `json:"first_name" validate:"omitempty,max=100"`
	LastName       *string                 `json:"last_name" validate:"omitempty,max=100"`
	Email          *string                 `json:"email" validate:"omitempty,gmail_email"`
	Role           *UserRole               `json:"role" validate:"omitempty,user_role"`
	GradeLevel     *catalog.GradeLevel     `json:"grade_level" validate:"omitempty,grade_level"`
	CourseCategory *catalog.CourseCategory `json:"course_category" validate:"omitempty,course_category"`
	Subjects       []string                `json:"subjects"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type SessionRequest struct {
	Subjects []string `json:"subjects" validate:"required,min=1"`
}

type SessionResponse struct {
	Subjects  []string `json:"subjects"`
	FullDrive bool     `json:"full_drive"`
}

// ===== BATCH IMPORT =====

type ImportFailure struct {
	Row    int    `json:"row"`
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	TotalRows   int             `json:"total_rows"`
	Provisioned int             `json:"provisioned"`
	Failures    []ImportFailure `json:"failures"`
}
