package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsa-drive/admin-service/internal/catalog"
	"github.com/fsa-drive/admin-service/internal/models"
	"github.com/fsa-drive/admin-service/internal/selection"
	"github.com/fsa-drive/admin-service/internal/utils"
)

type CatalogHandler struct {
	BaseHandler
}

func NewCatalogHandler(logger utils.Logger) *CatalogHandler {
	return &CatalogHandler{BaseHandler: NewBaseHandler(logger)}
}

func (h *CatalogHandler) GetGradeLevels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"grade_levels": catalog.GradeLevels()})
}

// GetCategories returns the course categories of a grade level. Only High
// School has any.
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	grade := catalog.GradeLevel(c.Query("grade"))
	if grade == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Query parameter 'grade' is required",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": catalog.CategoriesFor(grade)})
}

func (h *CatalogHandler) GetSubjects(c *gin.Context) {
	grade := catalog.GradeLevel(c.Query("grade"))
	if grade == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Query parameter 'grade' is required",
		})
		return
	}
	category := catalog.CourseCategory(c.Query("category"))

	c.JSON(http.StatusOK, gin.H{"subjects": catalog.SubjectsFor(grade, category)})
}

// SelectionEvent is one dialog interaction applied to a form state.
type SelectionEvent struct {
	Type  string `json:"type" validate:"required"`
	Value string `json:"value"`
}

type SelectionTransitionRequest struct {
	State selection.FormState `json:"state"`
	Event SelectionEvent      `json:"event"`
}

type SelectionTransitionResponse struct {
	State   selection.FormState       `json:"state"`
	Options []selection.SubjectOption `json:"options"`
}

// TransitionSelection applies a dialog event to a form state and returns
// the next state plus the subject checklist to render. The admin screen
// calls this on every role, grade, category, and subject interaction so
// the cascading rules live on one side only.
func (h *CatalogHandler) TransitionSelection(c *gin.Context) {
	var req SelectionTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	state := req.State
	switch req.Event.Type {
	case "set_role":
		state = state.SetRole(models.UserRole(req.Event.Value))
	case "set_grade_level":
		state = state.SetGradeLevel(catalog.GradeLevel(req.Event.Value))
	case "set_course_category":
		state = state.SetCourseCategory(catalog.CourseCategory(req.Event.Value))
	case "toggle_subject":
		state = state.ToggleSubject(req.Event.Value)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("Unknown selection event type %q", req.Event.Type),
		})
		return
	}

	c.JSON(http.StatusOK, SelectionTransitionResponse{
		State:   state,
		Options: state.View(),
	})
}
