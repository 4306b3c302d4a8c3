package repository

import (
	"github.com/yukikurage/triager/internal/models"
	"gorm.io/gorm"
)

// GormReportRepository is a GORM implementation of ReportRepository
type GormReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &GormReportRepository{db: db}
}

// Create creates a new report
func (r *GormReportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

// FindByID finds a report by ID
func (r *GormReportRepository) FindByID(id uint64) (*models.Report, error) {
	var report models.Report
	if err := r.db.First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// Update overwrites a report
func (r *GormReportRepository) Update(report *models.Report) error {
	return r.db.Save(report).Error
}

// DeleteWithTasks deletes the report and all referencing tasks atomically,
// so no task is ever left with a dangling report reference.
func (r *GormReportRepository) DeleteWithTasks(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("report_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Report{}, id).Error
	})
}

// List returns all reports in insertion order
func (r *GormReportRepository) List() ([]models.Report, error) {
	var reports []models.Report
	if err := r.db.Order("id").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
