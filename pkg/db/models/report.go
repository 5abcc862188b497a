package models

import (
	"time"

	"github.com/google/uuid"

	dbtypes "github.com/malith-nethsiri/valuerpro-backend/pkg/db/types"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/enums"
)

// Report is the root aggregate. All child entities carry a report_id and
// are removed together with their report.
type Report struct {
	ID              uuid.UUID           `gorm:"column:id;type:uuid;primaryKey"`
	Title           string              `gorm:"column:title;not null"`
	ReferenceNumber *string             `gorm:"column:reference_number;uniqueIndex"`
	Purpose         enums.ReportPurpose `gorm:"column:purpose;type:text;not null"`
	Status          enums.ReportStatus  `gorm:"column:status;type:text;not null;default:draft"`
	BankName        *string             `gorm:"column:bank_name"`
	BankBranch      *string             `gorm:"column:bank_branch"`
	InspectionDate  *time.Time          `gorm:"column:inspection_date"`
	ValuationDate   *time.Time          `gorm:"column:valuation_date"`
	ReportDate      *time.Time          `gorm:"column:report_date"`
	GeneratedFiles  dbtypes.StringList  `gorm:"column:generated_files;type:text;not null;default:'[]'"`
	UserID          uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index"`

	Properties   []Property    `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
	Valuations   []Valuation   `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
	Comparables  []Comparable  `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
	Photos       []Photo       `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
	LegalAspects []LegalAspect `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
	Applicants   []Applicant   `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
