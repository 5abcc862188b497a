package models

import (
	"time"

	"github.com/google/uuid"

	dbtypes "github.com/malith-nethsiri/valuerpro-backend/pkg/db/types"
)

// Applicant identifies who commissioned the valuation.
type Applicant struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ReportID uuid.UUID `gorm:"column:report_id;type:uuid;not null;index"`

	Name                 string             `gorm:"column:name;not null"`
	Address              *string            `gorm:"column:address"`
	ContactNumbers       dbtypes.StringList `gorm:"column:contact_numbers;type:text;not null;default:'[]'"`
	Email                *string            `gorm:"column:email"`
	NICNumber            *string            `gorm:"column:nic_number"`
	BusinessName         *string            `gorm:"column:business_name"`
	BusinessRegistration *string            `gorm:"column:business_registration"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
