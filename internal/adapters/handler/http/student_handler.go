package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-ledger/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-ledger/internal/core/domain"
	"github.com/comitanigiacomo/kanso-ledger/internal/core/services"
)

// StudentHandler serves the teacher dashboard.
type StudentHandler struct {
	svc    *services.LedgerService
	roster *services.RosterService
}

func NewStudentHandler(svc *services.LedgerService, roster *services.RosterService) *StudentHandler {
	return &StudentHandler{svc: svc, roster: roster}
}

type rosterQuery struct {
	Class   string `form:"class" binding:"max=20"`
	Section string `form:"section" binding:"max=20"`
}

func (h *StudentHandler) RegisterRoutes(router *gin.RouterGroup) {
	students := router.Group("/students")
	students.Use(middleware.RequireRole(domain.RoleTeacher))
	{
		students.GET("", h.List)
		students.GET("/:identity/feedback", h.Feedback)
	}
}

// List godoc
// @Summary   Students of a class with their grade and radar
// @Tags      teacher
// @Produce   json
// @Security  BearerAuth
// @Param     class    query     string  false  "class name"
// @Param     section  query     string  false  "section"
// @Success   200      {array}   services.StudentSummary
// @Failure   403      {object}  errorResponse
// @Router    /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	var q rosterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindingError(c, err)
		return
	}

	students, err := h.roster.Students(c.Request.Context(), q.Class, q.Section)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// Feedback godoc
// @Summary   A student's feedback report
// @Tags      teacher
// @Produce   json
// @Security  BearerAuth
// @Param     identity  path      string  true  "student email"
// @Success   200       {object}  analytics.Report
// @Failure   403       {object}  errorResponse
// @Router    /students/{identity}/feedback [get]
func (h *StudentHandler) Feedback(c *gin.Context) {
	identity := strings.ToLower(strings.TrimSpace(c.Param("identity")))

	report, err := h.svc.Feedback(c.Request.Context(), identity)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
