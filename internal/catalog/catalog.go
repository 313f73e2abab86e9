// Package catalog holds the static grade-level / course-category / subject
// taxonomy. The data is fixed at compile time; there is no mutation API.
package catalog

type GradeLevel string

const (
	GradeElementary GradeLevel = "Elementary School"
	GradeMiddle     GradeLevel = "Middle School"
	GradeHigh       GradeLevel = "High School"
)

type CourseCategory string

const (
	CategoryMath          CourseCategory = "Math"
	CategoryScience       CourseCategory = "Science"
	CategoryEnglish       CourseCategory = "English"
	CategorySocialStudies CourseCategory = "Social Studies"
	CategoryElectives     CourseCategory = "Electives"
)

// FullDrive is the sentinel subject granting unrestricted drive access.
// Admin accounts carry exactly this subject and nothing else.
const FullDrive = "Full Drive"

var gradeLevels = []GradeLevel{GradeElementary, GradeMiddle, GradeHigh}

var highSchoolCategories = []CourseCategory{
	CategoryMath,
	CategoryScience,
	CategoryEnglish,
	CategorySocialStudies,
	CategoryElectives,
}

// Subject lists are kept pre-sorted; order is part of the catalog contract.
var flatSubjects = map[GradeLevel][]string{
	GradeElementary: {
		"1st Grade", "2nd Grade", "3rd Grade", "4th Grade", "5th Grade",
		"Kindergarten", "Pre-Kindergarten",
	},
	GradeMiddle: {
		"6th Grade Band", "6th Grade Computer Science",
		"6th Grade Creative Problem Solving", "6th Grade ELA",
		"6th Grade Physical Education", "6th Grade Science",
		"6th Grade Social Studies", "6th Grade Visual Arts",
		"7th Grade Band", "7th Grade Computer Science",
		"7th Grade Creative Problem Solving", "7th Grade ELA",
		"7th Grade Orchestra", "7th Grade Physical Education",
		"7th Grade Science", "7th Grade Social Studies",
		"7th Grade Visual Arts",
		"8th Grade Band", "8th Grade Computer Science",
		"8th Grade Creative Problem Solving", "8th Grade ELA",
		"8th Grade Orchestra", "8th Grade Physical Education",
		"8th Grade Science", "8th Grade Social Studies",
		"8th Grade Visual Arts",
		"Enhanced Algebra: Concepts and Connections",
		"Introduction to World Languages",
		"Math 6AB", "Math 6B/7AB", "Math 7AB", "Math 8AB",
		"Spanish 6", "Spanish I", "Spanish II",
	},
}

var highSchoolSubjects = map[CourseCategory][]string{
	CategoryMath: {
		"AP Calculus AB", "AP Calculus BC", "AP Precalculus", "AP Statistics",
		"Algebra: Concepts and Connections", "Geometry: Concepts and Connections",
		"Multivariable Calculus", "Precalculus", "Statistics",
	},
	CategoryScience: {
		"AP Biology", "AP Chemistry", "AP Environmental Science",
		"AP Physics C", "AP Physics I", "Biology", "Chemistry", "Forensics",
		"Human Anatomy & Physiology", "Physics I",
	},
	CategoryEnglish: {
		"AP Language and Composition", "AP Literature and Composition",
		"Advanced Composition", "American Literature",
		"British Literature and Composition", "World Literature",
	},
	CategorySocialStudies: {
		"AP Human Geography", "AP Macroeconomics", "AP Psychology",
		"AP U.S. Government and Politics", "AP U.S. History", "AP World History",
		"U.S. History", "World History",
	},
	CategoryElectives: {
		"AP Art and Design", "AP Music Theory", "Band", "Drama", "Orchestra",
		"Scientific Illustration", "Spanish I", "Spanish II", "Spanish III",
		"Spanish IV", "Turkish I", "Turkish II", "Turkish III", "Turkish IV",
	},
}

// GradeLevels returns all known grade levels in display order.
func GradeLevels() []GradeLevel {
	out := make([]GradeLevel, len(gradeLevels))
	copy(out, gradeLevels)
	return out
}

// CategoriesFor returns the course categories of a grade level.
// Only High School has categories; every other input yields an empty slice.
func CategoriesFor(grade GradeLevel) []CourseCategory {
	if grade != GradeHigh {
		return nil
	}
	out := make([]CourseCategory, len(highSchoolCategories))
	copy(out, highSchoolCategories)
	return out
}

// SubjectsFor returns the valid subject list for a grade level and, for
// High School, a course category. Unknown keys resolve to an empty slice.
// High School with no category chosen is empty until a category is picked.
func SubjectsFor(grade GradeLevel, category CourseCategory) []string {
	if grade == GradeHigh {
		subjects, ok := highSchoolSubjects[category]
		if !ok {
			return nil
		}
		out := make([]string, len(subjects))
		copy(out, subjects)
		return out
	}
	subjects, ok := flatSubjects[grade]
	if !ok {
		return nil
	}
	out := make([]string, len(subjects))
	copy(out, subjects)
	return out
}

// Contains reports whether subject is valid for the given scope.
func Contains(grade GradeLevel, category CourseCategory, subject string) bool {
	for _, s := range SubjectsFor(grade, category) {
		if s == subject {
			return true
		}
	}
	return false
}
