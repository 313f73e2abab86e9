package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fsa-drive/admin-service/internal/catalog"
)

type UserRole string

const (
	RoleTeacher UserRole = "teacher"
	RoleAdmin   UserRole = "admin"
)

// AuthProviderAdmin tags records provisioned through the admin screen or a
// bulk import, as opposed to self-service sign-up.
const AuthProviderAdmin = "admin"

// User is the directory record backing both the admin screen and the drive
// launcher. AccountID references the external identity credential; ID is
// the record key in the document store.
type User struct {
	ID        string   `json:"id" gorm:"primaryKey;size:255"`
	AccountID string   `json:"account_id" gorm:"index;size:255"`
	FirstName string   `json:"first_name" gorm:"size:100"`
	LastName  string   `json:"last_name" gorm:"size:100"`
	Email     string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Role      UserRole `json:"role" gorm:"size:20"`

	// Teacher scope; irrelevant when Role is admin.
	GradeLevel     catalog.GradeLevel     `json:"grade_level" gorm:"size:50"`
	CourseCategory catalog.CourseCategory `json:"course_category" gorm:"size:50"`

	// Subjects is a set: no duplicates. Admin accounts hold exactly
	// {"Full Drive"}.
	Subjects datatypes.JSONSlice[string] `json:"subjects"`

	AuthProvider string `json:"auth_provider" gorm:"size:20"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

// IsFullDrive reports whether the record grants unrestricted drive access.
func (u *User) IsFullDrive() bool {
	for _, s := range u.Subjects {
		if s == catalog.FullDrive {
			return true
		}
	}
	return false
}
