package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/triager/internal/models"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	env     *testEnv
	alice   *models.User
	cookies []*http.Cookie
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	suite.env = setupTestEnv(suite.T())
	suite.alice = suite.env.registerUser(suite.T(), "alice", "a@x.com", "pw1")
	suite.cookies = suite.env.login(suite.T(), "alice", "pw1")
}

func (suite *TaskHandlerTestSuite) TestAddTaskUnassigned() {
	report := suite.env.createReport(suite.T(), "CASE-101")

	form := url.Values{
		"form":      {"add_task"},
		"owner_id":  {""},
		"task_type": {"quality_check"},
		"due_date":  {"2024-02-01"},
		"comment":   {"double check coding"},
	}
	w := suite.env.postForm(suite.T(), fmt.Sprintf("/report/%d", report.ID), form, suite.cookies)
	suite.Equal(http.StatusSeeOther, w.Code)

	var task models.Task
	suite.Require().NoError(suite.env.db.First(&task).Error)
	suite.Equal(report.ID, task.ReportID)
	suite.Nil(task.OwnerID)
	suite.Equal(models.TaskTypeQualityCheck, task.TaskType)
	suite.Equal("2024-02-01", task.DueDate.Format("2006-01-02"))
	suite.False(task.Completed)
	suite.Equal("double check coding", task.Comment)
}

func (suite *TaskHandlerTestSuite) TestAddTaskWithOwner() {
	report := suite.env.createReport(suite.T(), "CASE-102")

	form := url.Values{
		"form":      {"add_task"},
		"owner_id":  {fmt.Sprintf("%d", suite.alice.ID)},
		"task_type": {"data_entry"},
		"due_date":  {"2024-02-01"},
	}
	suite.env.postForm(suite.T(), fmt.Sprintf("/report/%d", report.ID), form, suite.cookies)

	var task models.Task
	suite.Require().NoError(suite.env.db.First(&task).Error)
	suite.Require().NotNil(task.OwnerID)
	suite.Equal(suite.alice.ID, *task.OwnerID)
}

func (suite *TaskHandlerTestSuite) TestAddTaskUnknownOwner() {
	report := suite.env.createReport(suite.T(), "CASE-103")

	form := url.Values{
		"form":      {"add_task"},
		"owner_id":  {"999"},
		"task_type": {"data_entry"},
	}
	w := suite.env.postForm(suite.T(), fmt.Sprintf("/report/%d", report.ID), form, suite.cookies)
	suite.Equal(http.StatusSeeOther, w.Code)

	var count int64
	suite.env.db.Model(&models.Task{}).Count(&count)
	suite.Zero(count)
}

func (suite *TaskHandlerTestSuite) TestCompleteTaskIsIdempotent() {
	report := suite.env.createReport(suite.T(), "CASE-104")
	task := suite.env.createTask(suite.T(), report.ID, nil, "finalize")

	for i := 0; i < 2; i++ {
		w := suite.env.get(suite.T(), fmt.Sprintf("/complete_task/%d", task.ID), suite.cookies)
		suite.Equal(http.StatusSeeOther, w.Code)

		var stored models.Task
		suite.Require().NoError(suite.env.db.First(&stored, task.ID).Error)
		suite.True(stored.Completed)
	}
}

func (suite *TaskHandlerTestSuite) TestCompleteTaskRedirectsToReferer() {
	report := suite.env.createReport(suite.T(), "CASE-105")
	task := suite.env.createTask(suite.T(), report.ID, nil, "review")

	referer := fmt.Sprintf("/report/%d", report.ID)
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/complete_task/%d", task.ID), nil)
	req.Header.Set("Referer", referer)
	for _, ck := range suite.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	suite.env.router.ServeHTTP(w, req)

	suite.Equal(http.StatusSeeOther, w.Code)
	suite.Equal(referer, w.Header().Get("Location"))
}

func (suite *TaskHandlerTestSuite) TestCompleteTaskNotFound() {
	w := suite.env.get(suite.T(), "/complete_task/999", suite.cookies)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask() {
	report := suite.env.createReport(suite.T(), "CASE-106")
	task := suite.env.createTask(suite.T(), report.ID, nil, "obsolete")

	w := suite.env.get(suite.T(), fmt.Sprintf("/delete_task/%d", task.ID), suite.cookies)
	suite.Equal(http.StatusSeeOther, w.Code)

	var count int64
	suite.env.db.Model(&models.Task{}).Count(&count)
	suite.Zero(count)
}

func (suite *TaskHandlerTestSuite) TestDeleteTaskNotFound() {
	w := suite.env.get(suite.T(), "/delete_task/999", suite.cookies)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestEditTaskReassignAndToggle() {
	bob := suite.env.registerUser(suite.T(), "bob", "b@x.com", "pw2")
	report := suite.env.createReport(suite.T(), "CASE-107")
	task := suite.env.createTask(suite.T(), report.ID, &suite.alice.ID, "reassign me")

	form := url.Values{
		"owner_id":  {fmt.Sprintf("%d", bob.ID)},
		"task_type": {"medical_review"},
		"due_date":  {"2024-03-01"},
		"completed": {"true"},
		"comment":   {"now with bob"},
	}
	w := suite.env.postForm(suite.T(), fmt.Sprintf("/task/%d", task.ID), form, suite.cookies)
	suite.Equal(http.StatusSeeOther, w.Code)

	var stored models.Task
	suite.Require().NoError(suite.env.db.First(&stored, task.ID).Error)
	suite.Require().NotNil(stored.OwnerID)
	suite.Equal(bob.ID, *stored.OwnerID)
	suite.Equal(models.TaskTypeMedicalReview, stored.TaskType)
	suite.Equal("2024-03-01", stored.DueDate.Format("2006-01-02"))
	suite.True(stored.Completed)
	suite.Equal("now with bob", stored.Comment)
}

func (suite *TaskHandlerTestSuite) TestShowTaskNotFound() {
	w := suite.env.get(suite.T(), "/task/999", suite.cookies)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestTaskListThreeViews() {
	bob := suite.env.registerUser(suite.T(), "bob", "b@x.com", "pw2")
	report := suite.env.createReport(suite.T(), "CASE-108")

	suite.env.createTask(suite.T(), report.ID, &suite.alice.ID, "mine-open")
	suite.env.createTask(suite.T(), report.ID, &bob.ID, "bobs-open")
	done := suite.env.createTask(suite.T(), report.ID, &suite.alice.ID, "mine-done")
	suite.Require().NoError(suite.env.taskService.Complete(done.ID))

	// Default view: mine and incomplete.
	w := suite.env.get(suite.T(), "/task_list", suite.cookies)
	suite.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	suite.Contains(body, "mine-open")
	suite.NotContains(body, "bobs-open")
	suite.NotContains(body, "mine-done")

	w = suite.env.get(suite.T(), "/task_list?view=all_incomplete", suite.cookies)
	body = w.Body.String()
	suite.Contains(body, "mine-open")
	suite.Contains(body, "bobs-open")
	suite.NotContains(body, "mine-done")

	w = suite.env.get(suite.T(), "/task_list?view=all_completed", suite.cookies)
	body = w.Body.String()
	suite.NotContains(body, "mine-open")
	suite.NotContains(body, "bobs-open")
	suite.Contains(body, "mine-done")
}

func (suite *TaskHandlerTestSuite) TestReportPageShowsItsTasks() {
	report := suite.env.createReport(suite.T(), "CASE-109")
	suite.env.createTask(suite.T(), report.ID, &suite.alice.ID, "visible on page")

	w := suite.env.get(suite.T(), fmt.Sprintf("/report/%d", report.ID), suite.cookies)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Data entry")
	suite.Contains(w.Body.String(), "alice")
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
