package models

import (
	"time"

	"github.com/google/uuid"

	dbtypes "github.com/malith-nethsiri/valuerpro-backend/pkg/db/types"
)

// ValuerProfile holds the professional credentials printed on reports.
// At most one row exists per user.
type ValuerProfile struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex"`

	Title              *string            `gorm:"column:title"`
	FullName           string             `gorm:"column:full_name;not null"`
	Qualifications     dbtypes.StringList `gorm:"column:qualifications;type:text;not null;default:'[]'"`
	Memberships        dbtypes.StringList `gorm:"column:memberships;type:text;not null;default:'[]'"`
	Address            *string            `gorm:"column:address"`
	TelephoneNumbers   dbtypes.StringList `gorm:"column:telephone_numbers;type:text;not null;default:'[]'"`
	Email              string             `gorm:"column:email;not null"`
	RegistrationNumber *string            `gorm:"column:registration_number"`
	LicenseNumber      *string            `gorm:"column:license_number"`
	AreasOfExpertise   dbtypes.StringList `gorm:"column:areas_of_expertise;type:text;not null;default:'[]'"`
	AvatarURL          *string            `gorm:"column:avatar_url"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
