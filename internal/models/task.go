package models

import "time"

type TaskType string

const (
	TaskTypeDataEntry           TaskType = "data_entry"
	TaskTypeQualityCheck        TaskType = "quality_check"
	TaskTypeMedicalReview       TaskType = "medical_review"
	TaskTypeAuthoritySubmission TaskType = "authority_submission"
	TaskTypePartnerExchange     TaskType = "partner_exchange"
	TaskTypeCaseFinalization    TaskType = "case_finalization"
)

// TaskTypes lists the selectable follow-up actions in form order.
func TaskTypes() []TaskType {
	return []TaskType{
		TaskTypeDataEntry,
		TaskTypeQualityCheck,
		TaskTypeMedicalReview,
		TaskTypeAuthoritySubmission,
		TaskTypePartnerExchange,
		TaskTypeCaseFinalization,
	}
}

func (t TaskType) Label() string {
	switch t {
	case TaskTypeDataEntry:
		return "Data entry"
	case TaskTypeQualityCheck:
		return "Quality check"
	case TaskTypeMedicalReview:
		return "Medical review"
	case TaskTypeAuthoritySubmission:
		return "Submission to regulatory authority"
	case TaskTypePartnerExchange:
		return "Exchange with partners"
	case TaskTypeCaseFinalization:
		return "Case finalization"
	default:
		return string(t)
	}
}

// Task is one follow-up action on a report. OwnerID is nullable: a task
// with no resolvable owner is treated as unassigned, never as an error.
type Task struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	OwnerID   *uint64   `gorm:"index" json:"owner_id"`
	ReportID  uint64    `gorm:"not null;index" json:"report_id"`
	TaskType  TaskType  `gorm:"type:varchar(50);not null" json:"task_type"`
	DueDate   time.Time `json:"due_date"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	Comment   string    `gorm:"type:varchar(1000)" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Owner  *User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Report Report `gorm:"foreignKey:ReportID" json:"report,omitempty"`
}
