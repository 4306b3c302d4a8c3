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
	ErrReportNotFound = errors.New("report not found")
	ErrDatesRequired  = errors.New("date received and day zero are required")
	ErrCommentTooLong = errors.New("comment is too long")
)

// ReportService handles case report business logic. Reports carry no
// owner: any authenticated user may view, edit, or delete any report.
// That flat model is deliberate and preserved from the original system.
type ReportService struct {
	reportRepo repository.ReportRepository
}

// NewReportService creates a new ReportService.
func NewReportService(reportRepo repository.ReportRepository) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
	}
}

// ReportInput represents the submitted report form. The two dates are the
// only required fields.
type ReportInput struct {
	DateReceived     time.Time
	DayZero          time.Time
	CaseID           string
	CaseVersion      models.CaseVersion
	OtherCaseIDs     string
	DrugName         string
	Seriousness      models.Seriousness
	Listedness       models.Listedness
	Expedited        bool
	ExchangePartners bool
	Comment          string
}

func (in ReportInput) validate() error {
	if in.DateReceived.IsZero() || in.DayZero.IsZero() {
		return ErrDatesRequired
	}
	if len(in.Comment) > constants.MaxCommentLength {
		return ErrCommentTooLong
	}
	return nil
}

// Create persists a new report.
func (s *ReportService) Create(input ReportInput) (*models.Report, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	report := &models.Report{
		DateReceived:     input.DateReceived,
		DayZero:          input.DayZero,
		CaseID:           input.CaseID,
		CaseVersion:      input.CaseVersion,
		OtherCaseIDs:     input.OtherCaseIDs,
		DrugName:         input.DrugName,
		Seriousness:      input.Seriousness,
		Listedness:       input.Listedness,
		Expedited:        input.Expedited,
		ExchangePartners: input.ExchangePartners,
		Comment:          input.Comment,
	}

	if err := s.reportRepo.Create(report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	return report, nil
}

// Get returns a report by ID.
func (s *ReportService) Get(id uint64) (*models.Report, error) {
	report, err := s.reportRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to find report: %w", err)
	}

	return report, nil
}

// Update overwrites every mutable field of the report. There is no
// partial update and no concurrency check: last writer wins.
func (s *ReportService) Update(id uint64, input ReportInput) (*models.Report, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	report, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	report.DateReceived = input.DateReceived
	report.DayZero = input.DayZero
	report.CaseID = input.CaseID
	report.CaseVersion = input.CaseVersion
	report.OtherCaseIDs = input.OtherCaseIDs
	report.DrugName = input.DrugName
	report.Seriousness = input.Seriousness
	report.Listedness = input.Listedness
	report.Expedited = input.Expedited
	report.ExchangePartners = input.ExchangePartners
	report.Comment = input.Comment

	if err := s.reportRepo.Update(report); err != nil {
		return nil, fmt.Errorf("failed to update report: %w", err)
	}

	return report, nil
}

// Delete removes the report and every task attached to it.
func (s *ReportService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.reportRepo.DeleteWithTasks(id); err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	return nil
}

// List returns every report in insertion order. No pagination: the
// system is sized for a small team's caseload.
func (s *ReportService) List() ([]models.Report, error) {
	reports, err := s.reportRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	return reports, nil
}
