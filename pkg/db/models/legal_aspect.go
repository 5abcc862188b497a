package models

import (
	"time"

	"github.com/google/uuid"

	dbtypes "github.com/malith-nethsiri/valuerpro-backend/pkg/db/types"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/enums"
)

// LegalAspect captures the title and regulatory standing of the property.
type LegalAspect struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ReportID uuid.UUID `gorm:"column:report_id;type:uuid;not null;index"`

	// Document details
	DocumentType     enums.DocumentType `gorm:"column:document_type;type:text;not null"`
	DocumentNumber   *string            `gorm:"column:document_number"`
	DocumentDate     *time.Time         `gorm:"column:document_date"`
	IssuingAuthority *string            `gorm:"column:issuing_authority"`

	// Ownership
	CurrentOwner        *string            `gorm:"column:current_owner"`
	PreviousOwners      dbtypes.StringList `gorm:"column:previous_owners;type:text;not null;default:'[]'"`
	OwnershipType       *string            `gorm:"column:ownership_type"`
	OwnershipPercentage *float64           `gorm:"column:ownership_percentage"`

	// Title status
	TitleClear   bool               `gorm:"column:title_clear;not null;default:true"`
	Encumbrances dbtypes.StringList `gorm:"column:encumbrances;type:text;not null;default:'[]'"`
	Mortgages    dbtypes.StringList `gorm:"column:mortgages;type:text;not null;default:'[]'"`
	Liens        dbtypes.StringList `gorm:"column:liens;type:text;not null;default:'[]'"`
	Easements    dbtypes.StringList `gorm:"column:easements;type:text;not null;default:'[]'"`

	// Approvals and zoning
	ApprovalsPermits        dbtypes.StringList `gorm:"column:approvals_permits;type:text;not null;default:'[]'"`
	ZoningClassification    *string            `gorm:"column:zoning_classification"`
	DevelopmentRestrictions dbtypes.StringList `gorm:"column:development_restrictions;type:text;not null;default:'[]'"`

	// Registration
	RegistrationDetails *string `gorm:"column:registration_details"`

	// Legal issues
	LegalIssues dbtypes.StringList `gorm:"column:legal_issues;type:text;not null;default:'[]'"`
	CourtCases  dbtypes.StringList `gorm:"column:court_cases;type:text;not null;default:'[]'"`
	Disputes    dbtypes.StringList `gorm:"column:disputes;type:text;not null;default:'[]'"`

	Remarks *string `gorm:"column:remarks"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
