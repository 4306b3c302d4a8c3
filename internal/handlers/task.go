package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	weberrors "github.com/yukikurage/triager/internal/errors"
	"github.com/yukikurage/triager/internal/middleware"
	"github.com/yukikurage/triager/internal/models"
	"github.com/yukikurage/triager/internal/services"
	"github.com/yukikurage/triager/internal/view"
)

// TaskHandler serves the task screens.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// Show renders the edit form for one task.
func (h *TaskHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		weberrors.NotFoundPage(c, "Task not found")
		return
	}

	task, err := h.taskService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			weberrors.NotFoundPage(c, "Task not found")
			return
		}
		weberrors.FailurePage(c)
		return
	}

	choices, err := h.taskService.OwnerChoices(task)
	if err != nil {
		weberrors.FailurePage(c)
		return
	}

	c.HTML(http.StatusOK, "task_edit.html", view.TaskEditView{
		Flashes:      takeFlashes(c),
		Task:         view.ToTaskDetail(*task),
		OwnerOptions: view.OwnerOptions(choices),
		TypeOptions:  view.TaskTypeOptions(task.TaskType),
	})
}

// Update overwrites the editable fields of a task.
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		weberrors.NotFoundPage(c, "Task not found")
		return
	}

	type editTaskForm struct {
		OwnerID   string `form:"owner_id"`
		TaskType  string `form:"task_type"`
		DueDate   string `form:"due_date"`
		Completed bool   `form:"completed"`
		Comment   string `form:"comment"`
	}

	var form editTaskForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, "Invalid form submission")
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/task/%d", id))
		return
	}

	ownerID, err := parseOwnerID(form.OwnerID)
	if err != nil {
		addFlash(c, flashMessage(err))
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/task/%d", id))
		return
	}

	due, err := parseDate(form.DueDate)
	if err != nil {
		addFlash(c, flashMessage(err))
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/task/%d", id))
		return
	}

	_, err = h.taskService.Edit(id, services.EditTaskInput{
		OwnerID:   ownerID,
		TaskType:  models.TaskType(form.TaskType),
		DueDate:   due,
		Completed: form.Completed,
		Comment:   form.Comment,
	})
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			weberrors.NotFoundPage(c, "Task not found")
			return
		}
		addFlash(c, flashMessage(err))
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/task/%d", id))
		return
	}

	addFlash(c, "Task updated")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/task/%d", id))
}

// Complete is the one-click shortcut: marks the task done and returns
// to the referring page.
func (h *TaskHandler) Complete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		weberrors.NotFoundPage(c, "Task not found")
		return
	}

	if err := h.taskService.Complete(id); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			weberrors.NotFoundPage(c, "Task not found")
			return
		}
		weberrors.FailurePage(c)
		return
	}

	redirectBack(c, "/dashboard")
}

// Delete removes a task.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		weberrors.NotFoundPage(c, "Task not found")
		return
	}

	if err := h.taskService.Delete(id); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			weberrors.NotFoundPage(c, "Task not found")
			return
		}
		weberrors.FailurePage(c)
		return
	}

	addFlash(c, "Task deleted")
	redirectBack(c, "/dashboard")
}

// List renders one of the three task views.
func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	taskView := services.TaskView(c.DefaultQuery("view", string(services.TaskViewMineIncomplete)))

	tasks, err := h.taskService.ListView(taskView, userID)
	if err != nil {
		weberrors.FailurePage(c)
		return
	}

	c.HTML(http.StatusOK, "task_list.html", view.TaskListView{
		Flashes: takeFlashes(c),
		View:    string(taskView),
		Tasks:   view.ToTaskRows(tasks),
	})
}
