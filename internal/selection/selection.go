// Package selection computes the next form state for the add-user and
// edit-user dialogs. Every transition is a pure function of (state, event);
// persistence happens elsewhere, so this package stays unit-testable
// without a backend. The add and edit flows are two instances of the same
// FormState, never one handler branching on a dialog flag.
package selection

import (
	"github.com/fsa-drive/admin-service/internal/catalog"
	"github.com/fsa-drive/admin-service/internal/models"
)

// FormState is the transient working copy of a user record held by an open
// dialog. Subjects is an ordered set: insertion order, no duplicates.
type FormState struct {
	Role           models.UserRole        `json:"role"`
	GradeLevel     catalog.GradeLevel     `json:"grade_level"`
	CourseCategory catalog.CourseCategory `json:"course_category"`
	Subjects       []string               `json:"subjects"`
}

// FromUser seeds a FormState from an existing record for the edit dialog.
func FromUser(u *models.User) FormState {
	subjects := make([]string, len(u.Subjects))
	copy(subjects, u.Subjects)
	return FormState{
		Role:           u.Role,
		GradeLevel:     u.GradeLevel,
		CourseCategory: u.CourseCategory,
		Subjects:       subjects,
	}
}

// SetRole switches the dialog role. Admin forces the subject set to exactly
// {"Full Drive"} and clears the teacher scope; switching to teacher starts
// from an empty selection.
func (s FormState) SetRole(role models.UserRole) FormState {
	next := FormState{Role: role}
	if role == models.RoleAdmin {
		next.Subjects = []string{catalog.FullDrive}
	} else {
		next.Subjects = []string{}
	}
	return next
}

// SetGradeLevel changes the teacher's grade level. The course category is
// cleared and only subjects still valid in the new scope are retained;
// out-of-catalog leftovers from the previous scope are dropped. Applying
// the current grade level again keeps the selection unchanged apart from
// the category reset. An admin state is returned unchanged: the admin
// selection is exactly {"Full Drive"} and no scope transition may touch it.
func (s FormState) SetGradeLevel(grade catalog.GradeLevel) FormState {
	if s.Role == models.RoleAdmin {
		return s
	}
	next := s
	next.GradeLevel = grade
	next.CourseCategory = ""
	next.Subjects = intersect(s.Subjects, catalog.SubjectsFor(grade, ""))
	return next
}

// SetCourseCategory changes the High School course category, retaining the
// intersection of the prior selection with the new category's subjects.
// No-op on an admin state.
func (s FormState) SetCourseCategory(category catalog.CourseCategory) FormState {
	if s.Role == models.RoleAdmin {
		return s
	}
	next := s
	next.CourseCategory = category
	next.Subjects = intersect(s.Subjects, catalog.SubjectsFor(s.GradeLevel, category))
	return next
}

// ToggleSubject flips a subject's membership. Toggling a selected subject
// removes it; toggling an absent one appends it once. No-op on an admin
// state, whose selection is fixed at {"Full Drive"}.
func (s FormState) ToggleSubject(subject string) FormState {
	if s.Role == models.RoleAdmin {
		return s
	}
	next := s
	out := make([]string, 0, len(s.Subjects)+1)
	found := false
	for _, existing := range s.Subjects {
		if existing == subject {
			found = true
			continue
		}
		out = append(out, existing)
	}
	if !found {
		out = append(out, subject)
	}
	next.Subjects = out
	return next
}

// SubjectOption is one row of the subject checklist.
type SubjectOption struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
	// Other marks a selected subject that is not in the current scope's
	// catalog. It stays visible so the user can deselect it; the selection
	// must never hold an entry the form gives no way to remove.
	Other bool `json:"other"`
}

// View renders the checklist for the current scope: every available subject
// with its selection state, followed by selected out-of-catalog entries
// flagged as Other. View never mutates state.
func (s FormState) View() []SubjectOption {
	available := catalog.SubjectsFor(s.GradeLevel, s.CourseCategory)
	selected := make(map[string]bool, len(s.Subjects))
	for _, subject := range s.Subjects {
		selected[subject] = true
	}

	options := make([]SubjectOption, 0, len(available)+len(s.Subjects))
	inCatalog := make(map[string]bool, len(available))
	for _, subject := range available {
		inCatalog[subject] = true
		options = append(options, SubjectOption{
			Name:     subject,
			Selected: selected[subject],
		})
	}
	for _, subject := range s.Subjects {
		if !inCatalog[subject] {
			options = append(options, SubjectOption{
				Name:     subject,
				Selected: true,
				Other:    true,
			})
		}
	}
	return options
}

// intersect keeps the members of have that appear in valid, preserving the
// order of have and dropping duplicates.
func intersect(have, valid []string) []string {
	validSet := make(map[string]bool, len(valid))
	for _, s := range valid {
		validSet[s] = true
	}
	out := make([]string, 0, len(have))
	seen := make(map[string]bool, len(have))
	for _, s := range have {
		if validSet[s] && !seen[s] {
			out = append(out, s)
			seen[s] = true
		}
	}
	return out
}
