package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	weberrors "github.com/yukikurage/triager/internal/errors"
	"github.com/yukikurage/triager/internal/middleware"
	"github.com/yukikurage/triager/internal/services"
	"github.com/yukikurage/triager/internal/view"
)

// DashboardHandler serves the landing page after login: every report in
// the system plus the current user's personal to-do list.
type DashboardHandler struct {
	authService   *services.AuthService
	reportService *services.ReportService
	taskService   *services.TaskService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(authService *services.AuthService, reportService *services.ReportService, taskService *services.TaskService) *DashboardHandler {
	return &DashboardHandler{
		authService:   authService,
		reportService: reportService,
		taskService:   taskService,
	}
}

// Show renders the dashboard.
func (h *DashboardHandler) Show(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		// Stale session for a deleted account; start over.
		session := sessions.Default(c)
		session.Clear()
		_ = session.Save()
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	reports, err := h.reportService.List()
	if err != nil {
		weberrors.FailurePage(c)
		return
	}

	tasks, err := h.taskService.ListForUser(userID)
	if err != nil {
		weberrors.FailurePage(c)
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", view.DashboardView{
		Flashes:  takeFlashes(c),
		Username: user.Username,
		Reports:  view.ToReportRows(reports),
		Tasks:    view.ToTaskRows(tasks),
	})
}
