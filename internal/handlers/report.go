package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	weberrors "github.com/yukikurage/triager/internal/errors"
	"github.com/yukikurage/triager/internal/models"
	"github.com/yukikurage/triager/internal/services"
	"github.com/yukikurage/triager/internal/view"
)

// ReportHandler serves the report screens. Reports carry no owner: every
// authenticated user can view, edit, and delete every report.
type ReportHandler struct {
	reportService *services.ReportService
	taskService   *services.TaskService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *services.ReportService, taskService *services.TaskService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		taskService:   taskService,
	}
}

type reportForm struct {
	DateReceived     string `form:"date_received"`
	DayZero          string `form:"day_zero"`
	CaseID           string `form:"case_id"`
	CaseVersion      string `form:"case_version"`
	OtherCaseIDs     string `form:"other_case_ids"`
	DrugName         string `form:"drug_name"`
	Seriousness      string `form:"seriousness"`
	Listedness       string `form:"listedness"`
	Expedited        bool   `form:"expedited"`
	ExchangePartners bool   `form:"exchange_partners"`
	Comment          string `form:"comment"`
}

func (f reportForm) toInput() (services.ReportInput, error) {
	received, err := parseDate(f.DateReceived)
	if err != nil {
		return services.ReportInput{}, err
	}
	dayZero, err := parseDate(f.DayZero)
	if err != nil {
		return services.ReportInput{}, err
	}

	return services.ReportInput{
		DateReceived:     received,
		DayZero:          dayZero,
		CaseID:           f.CaseID,
		CaseVersion:      models.CaseVersion(f.CaseVersion),
		OtherCaseIDs:     f.OtherCaseIDs,
		DrugName:         f.DrugName,
		Seriousness:      models.Seriousness(f.Seriousness),
		Listedness:       models.Listedness(f.Listedness),
		Expedited:        f.Expedited,
		ExchangePartners: f.ExchangePartners,
		Comment:          f.Comment,
	}, nil
}

// New renders the blank report form.
func (h *ReportHandler) New(c *gin.Context) {
	c.HTML(http.StatusOK, "new_report.html", view.ReportFormView{
		Flashes:            takeFlashes(c),
		CaseVersionOptions: view.CaseVersionOptions(models.CaseVersionInitial),
		SeriousnessOptions: view.SeriousnessOptions(models.SeriousnessNonSerious),
		ListednessOptions:  view.ListednessOptions(models.ListednessUnlisted),
	})
}

// Create persists a new report and returns to the dashboard.
func (h *ReportHandler) Create(c *gin.Context) {
	var form reportForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, "Invalid form submission")
		c.Redirect(http.StatusSeeOther, "/new_report")
		return
	}

	input, err := form.toInput()
	if err == nil {
		_, err = h.reportService.Create(input)
	}
	if err != nil {
		addFlash(c, flashMessage(err))
		c.Redirect(http.StatusSeeOther, "/new_report")
		return
	}

	addFlash(c, "Report created")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Show renders one report with its tasks and the add-task form.
func (h *ReportHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		weberrors.NotFoundPage(c, "Report not found")
		return
	}

	report, err := h.reportService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			weberrors.NotFoundPage(c, "Report not found")
			return
		}
		weberrors.FailurePage(c)
		return
	}

	tasks, err := h.taskService.ListForReport(id)
	if err != nil {
		weberrors.FailurePage(c)
		return
	}

	ownerChoices, err := h.taskService.OwnerChoices(nil)
	if err != nil {
		weberrors.FailurePage(c)
		return
	}

	c.HTML(http.StatusOK, "report_detail.html", view.ReportDetailView{
		Flashes:            takeFlashes(c),
		Report:             view.ToReportDetail(*report),
		CaseVersionOptions: view.CaseVersionOptions(report.CaseVersion),
		SeriousnessOptions: view.SeriousnessOptions(report.Seriousness),
		ListednessOptions:  view.ListednessOptions(report.Listedness),
		Tasks:              view.ToTaskRows(tasks),
		OwnerOptions:       view.OwnerOptions(ownerChoices),
		TaskTypeOptions:    view.TaskTypeOptions(models.TaskTypeDataEntry),
	})
}

// Submit dispatches the report page POST: either the edit form or the
// add-task form beneath it.
func (h *ReportHandler) Submit(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		weberrors.NotFoundPage(c, "Report not found")
		return
	}

	switch c.PostForm("form") {
	case "update":
		h.update(c, id)
	case "add_task":
		h.addTask(c, id)
	default:
		addFlash(c, "Unknown form submission")
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/report/%d", id))
	}
}

func (h *ReportHandler) update(c *gin.Context, id uint64) {
	var form reportForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, "Invalid form submission")
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/report/%d", id))
		return
	}

	input, err := form.toInput()
	if err == nil {
		_, err = h.reportService.Update(id, input)
	}
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			weberrors.NotFoundPage(c, "Report not found")
			return
		}
		addFlash(c, flashMessage(err))
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/report/%d", id))
		return
	}

	addFlash(c, "Report updated")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/report/%d", id))
}

func (h *ReportHandler) addTask(c *gin.Context, reportID uint64) {
	type addTaskForm struct {
		OwnerID  string `form:"owner_id"`
		TaskType string `form:"task_type"`
		DueDate  string `form:"due_date"`
		Comment  string `form:"comment"`
	}

	var form addTaskForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, "Invalid form submission")
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/report/%d", reportID))
		return
	}

	ownerID, err := parseOwnerID(form.OwnerID)
	if err != nil {
		addFlash(c, flashMessage(err))
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/report/%d", reportID))
		return
	}

	due, err := parseDate(form.DueDate)
	if err != nil {
		addFlash(c, flashMessage(err))
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/report/%d", reportID))
		return
	}

	_, err = h.taskService.Add(services.AddTaskInput{
		ReportID: reportID,
		OwnerID:  ownerID,
		TaskType: models.TaskType(form.TaskType),
		DueDate:  due,
		Comment:  form.Comment,
	})
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			weberrors.NotFoundPage(c, "Report not found")
			return
		}
		addFlash(c, flashMessage(err))
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/report/%d", reportID))
		return
	}

	addFlash(c, "Task added")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/report/%d", reportID))
}

// Delete removes a report and, with it, every attached task.
func (h *ReportHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		weberrors.NotFoundPage(c, "Report not found")
		return
	}

	if err := h.reportService.Delete(id); err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			weberrors.NotFoundPage(c, "Report not found")
			return
		}
		weberrors.FailurePage(c)
		return
	}

	addFlash(c, "Report and its tasks deleted")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}
