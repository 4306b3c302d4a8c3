package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/triager/internal/constants"
	"github.com/yukikurage/triager/internal/models"
	"github.com/yukikurage/triager/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskOwnerNotFound = errors.New("task owner does not exist")
)

// TaskView selects one of the three task listing views.
type TaskView string

const (
	TaskViewMineIncomplete TaskView = "mine_incomplete"
	TaskViewAllIncomplete  TaskView = "all_incomplete"
	TaskViewAllCompleted   TaskView = "all_completed"
)

// TaskService handles follow-up task business logic.
type TaskService struct {
	taskRepo   repository.TaskRepository
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, reportRepo repository.ReportRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo:   taskRepo,
		reportRepo: reportRepo,
		userRepo:   userRepo,
	}
}

// AddTaskInput represents input for creating a task under a report.
// A nil OwnerID leaves the task unassigned.
type AddTaskInput struct {
	ReportID uint64
	OwnerID  *uint64
	TaskType models.TaskType
	DueDate  time.Time
	Comment  string
}

// Add creates a task. The parent report must exist and a given owner
// must resolve to a real user.
func (s *TaskService) Add(input AddTaskInput) (*models.Task, error) {
	if len(input.Comment) > constants.MaxCommentLength {
		return nil, ErrCommentTooLong
	}

	if _, err := s.reportRepo.FindByID(input.ReportID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to find report: %w", err)
	}

	if err := s.resolveOwner(input.OwnerID); err != nil {
		return nil, err
	}

	task := &models.Task{
		ReportID:  input.ReportID,
		OwnerID:   input.OwnerID,
		TaskType:  input.TaskType,
		DueDate:   input.DueDate,
		Completed: false,
		Comment:   input.Comment,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// Get returns a task with owner and report preloaded.
func (s *TaskService) Get(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id, "Owner", "Report")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

// EditTaskInput represents the full editable state of a task. Every
// field is applied unconditionally, including Completed, so an edit can
// revert the one-click completion.
type EditTaskInput struct {
	OwnerID   *uint64
	TaskType  models.TaskType
	DueDate   time.Time
	Completed bool
	Comment   string
}

// Edit overwrites the editable fields of a task.
func (s *TaskService) Edit(id uint64, input EditTaskInput) (*models.Task, error) {
	if len(input.Comment) > constants.MaxCommentLength {
		return nil, ErrCommentTooLong
	}

	task, err := s.findByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.resolveOwner(input.OwnerID); err != nil {
		return nil, err
	}

	task.OwnerID = input.OwnerID
	task.TaskType = input.TaskType
	task.DueDate = input.DueDate
	task.Completed = input.Completed
	task.Comment = input.Comment

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Complete marks a task done. Completing an already completed task is a
// no-op with the same end state.
func (s *TaskService) Complete(id uint64) error {
	task, err := s.findByID(id)
	if err != nil {
		return err
	}

	if task.Completed {
		return nil
	}

	task.Completed = true
	if err := s.taskRepo.Update(task); err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}

	return nil
}

// Delete removes a task.
func (s *TaskService) Delete(id uint64) error {
	if _, err := s.findByID(id); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// ListForUser returns every task owned by the user, regardless of report
// or completion state. Used for the dashboard's personal to-do list.
func (s *TaskService) ListForUser(userID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.List(repository.TaskFilter{OwnerID: &userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// ListForReport returns every task attached to the report.
func (s *TaskService) ListForReport(reportID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.List(repository.TaskFilter{ReportID: &reportID})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// ListView returns tasks for one of the three listing views. An unknown
// view falls back to "mine and incomplete".
func (s *TaskService) ListView(view TaskView, userID uint64) ([]models.Task, error) {
	incomplete := false
	completed := true

	var filter repository.TaskFilter
	switch view {
	case TaskViewAllIncomplete:
		filter.Completed = &incomplete
	case TaskViewAllCompleted:
		filter.Completed = &completed
	default:
		filter.OwnerID = &userID
		filter.Completed = &incomplete
	}

	tasks, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// OwnerChoice is one entry in a task owner selection list. A nil ID is
// the unassigned placeholder.
type OwnerChoice struct {
	ID   *uint64
	Name string
}

// OwnerChoices builds the owner selection list for editing a task. The
// currently assigned owner comes first when it still resolves to a real
// user; otherwise the unassigned placeholder leads and a dangling
// reference is treated exactly like no owner at all.
func (s *TaskService) OwnerChoices(task *models.Task) ([]OwnerChoice, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var current *models.User
	if task != nil && task.OwnerID != nil {
		for i := range users {
			if users[i].ID == *task.OwnerID {
				current = &users[i]
				break
			}
		}
	}

	choices := make([]OwnerChoice, 0, len(users)+1)
	if current != nil {
		choices = append(choices, OwnerChoice{ID: &current.ID, Name: current.Username})
		choices = append(choices, OwnerChoice{})
	} else {
		choices = append(choices, OwnerChoice{})
	}

	for i := range users {
		if current != nil && users[i].ID == current.ID {
			continue
		}
		choices = append(choices, OwnerChoice{ID: &users[i].ID, Name: users[i].Username})
	}

	return choices, nil
}

// findByID loads a task without preloads, for mutation paths.
func (s *TaskService) findByID(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

func (s *TaskService) resolveOwner(ownerID *uint64) error {
	if ownerID == nil {
		return nil
	}

	if _, err := s.userRepo.FindByID(*ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskOwnerNotFound
		}
		return fmt.Errorf("failed to find owner: %w", err)
	}

	return nil
}
