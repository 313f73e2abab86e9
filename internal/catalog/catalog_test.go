package catalog

import (
	"testing"
)

func TestSubjectsFor(t *testing.T) {
	tests := []struct {
		name     string
		grade    GradeLevel
		category CourseCategory
		want     int
		contains string
		excludes string
	}{
		{name: "elementary flat list", grade: GradeElementary, want: 7, contains: "Kindergarten"},
		{name: "middle flat list", grade: GradeMiddle, contains: "Math 7AB", want: 35},
		{name: "high school math only", grade: GradeHigh, category: CategoryMath, contains: "AP Statistics", excludes: "AP Biology", want: 9},
		{name: "high school science only", grade: GradeHigh, category: CategoryScience, contains: "AP Biology", excludes: "AP Statistics", want: 10},
		{name: "high school without category", grade: GradeHigh, want: 0},
		{name: "unknown grade", grade: GradeLevel("Night School"), want: 0},
		{name: "unknown category", grade: GradeHigh, category: CourseCategory("Alchemy"), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubjectsFor(tt.grade, tt.category)
			if len(got) != tt.want {
				t.Errorf("SubjectsFor(%q, %q) returned %d subjects, want %d", tt.grade, tt.category, len(got), tt.want)
			}
			if tt.contains != "" && !Contains(tt.grade, tt.category, tt.contains) {
				t.Errorf("expected %q in SubjectsFor(%q, %q)", tt.contains, tt.grade, tt.category)
			}
			if tt.excludes != "" && Contains(tt.grade, tt.category, tt.excludes) {
				t.Errorf("did not expect %q in SubjectsFor(%q, %q)", tt.excludes, tt.grade, tt.category)
			}
		})
	}
}

func TestCategoriesFor(t *testing.T) {
	if got := CategoriesFor(GradeHigh); len(got) != 5 {
		t.Errorf("CategoriesFor(High School) = %d categories, want 5", len(got))
	}
	if got := CategoriesFor(GradeElementary); len(got) != 0 {
		t.Errorf("CategoriesFor(Elementary School) = %v, want empty", got)
	}
	if got := CategoriesFor(GradeLevel("")); len(got) != 0 {
		t.Errorf("CategoriesFor(\"\") = %v, want empty", got)
	}
}

func TestSubjectsForReturnsCopy(t *testing.T) {
	first := SubjectsFor(GradeElementary, "")
	first[0] = "mutated"
	second := SubjectsFor(GradeElementary, "")
	if second[0] == "mutated" {
		t.Fatal("SubjectsFor must not expose internal catalog state")
	}
}

func TestSubjectUniquenessWithinScope(t *testing.T) {
	scopes := []struct {
		grade    GradeLevel
		category CourseCategory
	}{
		{GradeElementary, ""},
		{GradeMiddle, ""},
		{GradeHigh, CategoryMath},
		{GradeHigh, CategoryScience},
		{GradeHigh, CategoryEnglish},
		{GradeHigh, CategorySocialStudies},
		{GradeHigh, CategoryElectives},
	}
	for _, scope := range scopes {
		seen := make(map[string]bool)
		for _, s := range SubjectsFor(scope.grade, scope.category) {
			if seen[s] {
				t.Errorf("duplicate subject %q in scope %q/%q", s, scope.grade, scope.category)
			}
			seen[s] = true
		}
	}
}
