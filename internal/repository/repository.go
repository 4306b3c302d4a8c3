package repository

import (
	"github.com/yukikurage/triager/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// List returns all registered users in insertion order
	List() ([]models.User, error)

	// UpdatePassword replaces the stored password hash
	UpdatePassword(id uint64, passwordHash string) error

	// DeleteAndDetachTasks deletes the user and detaches every task the
	// user owned, within a single transaction
	DeleteAndDetachTasks(id uint64) error
}

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	// Create creates a new report
	Create(report *models.Report) error

	// FindByID finds a report by ID
	FindByID(id uint64) (*models.Report, error)

	// Update overwrites a report
	Update(report *models.Report) error

	// DeleteWithTasks deletes the report and every task referencing it,
	// within a single transaction
	DeleteWithTasks(id uint64) error

	// List returns all reports in insertion order
	List() ([]models.Report, error)
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	OwnerID   *uint64
	ReportID  *uint64
	Completed *bool
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete deletes a task
	Delete(id uint64) error

	// List retrieves tasks matching the filter, owner and report preloaded
	List(filter TaskFilter) ([]models.Task, error)
}
