package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/enums"
)

// Photo links an uploaded image or scanned document to a report.
type Photo struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ReportID uuid.UUID `gorm:"column:report_id;type:uuid;not null;index"`

	FileURL       string          `gorm:"column:file_url;not null"`
	Filename      string          `gorm:"column:filename;not null"`
	Caption       *string         `gorm:"column:caption"`
	Description   *string         `gorm:"column:description"`
	Type          enums.PhotoType `gorm:"column:type;type:text;not null"`
	SequenceOrder int             `gorm:"column:sequence_order;not null;default:0"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
