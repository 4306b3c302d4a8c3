package models

import "time"

type CaseVersion string

const (
	CaseVersionInitial   CaseVersion = "initial"
	CaseVersionFollowUp1 CaseVersion = "follow_up_1"
	CaseVersionFollowUp2 CaseVersion = "follow_up_2"
	CaseVersionFollowUp3 CaseVersion = "follow_up_3"
	CaseVersionFollowUp4 CaseVersion = "follow_up_4"
)

// CaseVersions lists the selectable stages in form order.
func CaseVersions() []CaseVersion {
	return []CaseVersion{
		CaseVersionInitial,
		CaseVersionFollowUp1,
		CaseVersionFollowUp2,
		CaseVersionFollowUp3,
		CaseVersionFollowUp4,
	}
}

// Label returns the display text for the stage.
func (v CaseVersion) Label() string {
	switch v {
	case CaseVersionInitial:
		return "Initial"
	case CaseVersionFollowUp1:
		return "Follow-up 1"
	case CaseVersionFollowUp2:
		return "Follow-up 2"
	case CaseVersionFollowUp3:
		return "Follow-up 3"
	case CaseVersionFollowUp4:
		return "Follow-up 4"
	default:
		return string(v)
	}
}

type Seriousness string

const (
	SeriousnessSerious    Seriousness = "serious"
	SeriousnessNonSerious Seriousness = "non_serious"
)

func SeriousnessValues() []Seriousness {
	return []Seriousness{SeriousnessSerious, SeriousnessNonSerious}
}

func (s Seriousness) Label() string {
	switch s {
	case SeriousnessSerious:
		return "Serious"
	case SeriousnessNonSerious:
		return "Non-serious"
	default:
		return string(s)
	}
}

type Listedness string

const (
	ListednessListed   Listedness = "listed"
	ListednessUnlisted Listedness = "unlisted"
)

func ListednessValues() []Listedness {
	return []Listedness{ListednessListed, ListednessUnlisted}
}

func (l Listedness) Label() string {
	switch l {
	case ListednessListed:
		return "Listed"
	case ListednessUnlisted:
		return "Unlisted"
	default:
		return string(l)
	}
}

// Report is one regulatory case record. The classification fields are
// constrained to the enumerations above at the form layer only; the
// storage layer accepts any string.
type Report struct {
	ID               uint64      `gorm:"primarykey" json:"id"`
	DateReceived     time.Time   `gorm:"not null" json:"date_received"`
	DayZero          time.Time   `gorm:"not null" json:"day_zero"`
	CaseID           string      `gorm:"type:varchar(100)" json:"case_id"`
	CaseVersion      CaseVersion `gorm:"type:varchar(30)" json:"case_version"`
	OtherCaseIDs     string      `gorm:"type:text" json:"other_case_ids"`
	DrugName         string      `gorm:"type:varchar(250)" json:"drug_name"`
	Seriousness      Seriousness `gorm:"type:varchar(30)" json:"seriousness"`
	Listedness       Listedness  `gorm:"type:varchar(30)" json:"listedness"`
	Expedited        bool        `gorm:"not null;default:false" json:"expedited"`
	ExchangePartners bool        `gorm:"not null;default:false" json:"exchange_partners"`
	Comment          string      `gorm:"type:varchar(1000)" json:"comment"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`

	// Relations. Tasks are cascade-deleted with the report.
	Tasks []Task `gorm:"foreignKey:ReportID" json:"tasks,omitempty"`
}
