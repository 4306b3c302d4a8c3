package view

import (
	"strconv"
	"time"

	"github.com/yukikurage/triager/internal/constants"
	"github.com/yukikurage/triager/internal/models"
	"github.com/yukikurage/triager/internal/services"
)

// Option is one entry of an HTML select.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// HomeView backs the combined login + register page.
type HomeView struct {
	Flashes []string
}

// ReportRow is one line of a report listing.
type ReportRow struct {
	ID           uint64
	CaseID       string
	CaseVersion  string
	DateReceived string
	DayZero      string
	DrugName     string
}

// TaskRow is one line of a task listing.
type TaskRow struct {
	ID           uint64
	Type         string
	Owner        string
	DueDate      string
	Completed    bool
	Comment      string
	ReportID     uint64
	ReportCaseID string
}

// DashboardView lists every report plus the current user's tasks.
type DashboardView struct {
	Flashes  []string
	Username string
	Reports  []ReportRow
	Tasks    []TaskRow
}

// ReportFormView backs the new-report form.
type ReportFormView struct {
	Flashes            []string
	CaseVersionOptions []Option
	SeriousnessOptions []Option
	ListednessOptions  []Option
}

// ReportDetail carries every report field, dates pre-formatted.
type ReportDetail struct {
	ID               uint64
	DateReceived     string
	DayZero          string
	CaseID           string
	OtherCaseIDs     string
	DrugName         string
	Expedited        bool
	ExchangePartners bool
	Comment          string
}

// ReportDetailView backs the view/edit report page, including the
// add-task form beneath it.
type ReportDetailView struct {
	Flashes            []string
	Report             ReportDetail
	CaseVersionOptions []Option
	SeriousnessOptions []Option
	ListednessOptions  []Option
	Tasks              []TaskRow
	OwnerOptions       []Option
	TaskTypeOptions    []Option
}

// TaskDetail carries the editable state of one task.
type TaskDetail struct {
	ID           uint64
	ReportID     uint64
	ReportCaseID string
	DueDate      string
	Completed    bool
	Comment      string
}

// TaskEditView backs the view/edit task page.
type TaskEditView struct {
	Flashes      []string
	Task         TaskDetail
	OwnerOptions []Option
	TypeOptions  []Option
}

// TaskListView backs the three-way task listing.
type TaskListView struct {
	Flashes []string
	View    string
	Tasks   []TaskRow
}

// AccountView backs the account settings page.
type AccountView struct {
	Flashes  []string
	Username string
	Email    string
}

// ErrorView backs the not-found and generic failure pages.
type ErrorView struct {
	Status  int
	Message string
}

// FormatDate renders a date for form inputs; the zero time renders empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(constants.DateLayout)
}

// ToReportRow converts a report for listing.
func ToReportRow(report models.Report) ReportRow {
	return ReportRow{
		ID:           report.ID,
		CaseID:       report.CaseID,
		CaseVersion:  report.CaseVersion.Label(),
		DateReceived: FormatDate(report.DateReceived),
		DayZero:      FormatDate(report.DayZero),
		DrugName:     report.DrugName,
	}
}

// ToReportRows converts a slice of reports for listing.
func ToReportRows(reports []models.Report) []ReportRow {
	rows := make([]ReportRow, len(reports))
	for i, report := range reports {
		rows[i] = ToReportRow(report)
	}
	return rows
}

// ToReportDetail converts a report for the edit form.
func ToReportDetail(report models.Report) ReportDetail {
	return ReportDetail{
		ID:               report.ID,
		DateReceived:     FormatDate(report.DateReceived),
		DayZero:          FormatDate(report.DayZero),
		CaseID:           report.CaseID,
		OtherCaseIDs:     report.OtherCaseIDs,
		DrugName:         report.DrugName,
		Expedited:        report.Expedited,
		ExchangePartners: report.ExchangePartners,
		Comment:          report.Comment,
	}
}

// ToTaskRow converts a task for listing. An owner that does not resolve
// renders as unassigned.
func ToTaskRow(task models.Task) TaskRow {
	owner := "Unassigned"
	if task.OwnerID != nil && task.Owner != nil && task.Owner.ID != 0 {
		owner = task.Owner.Username
	}

	return TaskRow{
		ID:           task.ID,
		Type:         task.TaskType.Label(),
		Owner:        owner,
		DueDate:      FormatDate(task.DueDate),
		Completed:    task.Completed,
		Comment:      task.Comment,
		ReportID:     task.ReportID,
		ReportCaseID: task.Report.CaseID,
	}
}

// ToTaskRows converts a slice of tasks for listing.
func ToTaskRows(tasks []models.Task) []TaskRow {
	rows := make([]TaskRow, len(tasks))
	for i, task := range tasks {
		rows[i] = ToTaskRow(task)
	}
	return rows
}

// ToTaskDetail converts a task for the edit form.
func ToTaskDetail(task models.Task) TaskDetail {
	return TaskDetail{
		ID:           task.ID,
		ReportID:     task.ReportID,
		ReportCaseID: task.Report.CaseID,
		DueDate:      FormatDate(task.DueDate),
		Completed:    task.Completed,
		Comment:      task.Comment,
	}
}

// CaseVersionOptions builds the case version select.
func CaseVersionOptions(selected models.CaseVersion) []Option {
	versions := models.CaseVersions()
	options := make([]Option, len(versions))
	for i, v := range versions {
		options[i] = Option{Value: string(v), Label: v.Label(), Selected: v == selected}
	}
	return options
}

// SeriousnessOptions builds the seriousness select.
func SeriousnessOptions(selected models.Seriousness) []Option {
	values := models.SeriousnessValues()
	options := make([]Option, len(values))
	for i, v := range values {
		options[i] = Option{Value: string(v), Label: v.Label(), Selected: v == selected}
	}
	return options
}

// ListednessOptions builds the listedness select.
func ListednessOptions(selected models.Listedness) []Option {
	values := models.ListednessValues()
	options := make([]Option, len(values))
	for i, v := range values {
		options[i] = Option{Value: string(v), Label: v.Label(), Selected: v == selected}
	}
	return options
}

// TaskTypeOptions builds the task type select.
func TaskTypeOptions(selected models.TaskType) []Option {
	types := models.TaskTypes()
	options := make([]Option, len(types))
	for i, t := range types {
		options[i] = Option{Value: string(t), Label: t.Label(), Selected: t == selected}
	}
	return options
}

// OwnerOptions builds the owner select from an already ordered choice
// list. The first entry is preselected, which is exactly the ordering
// contract of TaskService.OwnerChoices.
func OwnerOptions(choices []services.OwnerChoice) []Option {
	options := make([]Option, len(choices))
	for i, choice := range choices {
		option := Option{Value: "", Label: "Unassigned", Selected: i == 0}
		if choice.ID != nil {
			option.Value = strconv.FormatUint(*choice.ID, 10)
			option.Label = choice.Name
		}
		options[i] = option
	}
	return options
}
