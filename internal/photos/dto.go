package photos

import (
	"time"

	"github.com/google/uuid"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/enums"
)

// PhotoDTO is the transport shape for a report photo.
type PhotoDTO struct {
	ID       uuid.UUID `json:"id"`
	ReportID uuid.UUID `json:"report_id"`

	FileURL       string          `json:"file_url"`
	Filename      string          `json:"filename"`
	Caption       *string         `json:"caption,omitempty"`
	Description   *string         `json:"description,omitempty"`
	Type          enums.PhotoType `json:"type"`
	SequenceOrder int             `json:"sequence_order"`

	CreatedAt time.Time `json:"created_at"`
}

// CreatePhotoInput is the payload for attaching an uploaded photo to a
// report. The file itself goes through the upload endpoint first.
type CreatePhotoInput struct {
	ReportID uuid.UUID `json:"report_id" validate:"required"`

	FileURL       string  `json:"file_url" validate:"required"`
	Filename      string  `json:"filename" validate:"required"`
	Caption       *string `json:"caption,omitempty"`
	Description   *string `json:"description,omitempty"`
	Type          string  `json:"type" validate:"required,oneof=exterior interior document other"`
	SequenceOrder *int    `json:"sequence_order,omitempty"`
}

// UpdatePhotoInput carries the optional fields of a partial update. The
// stored file reference is immutable; re-upload and recreate instead.
type UpdatePhotoInput struct {
	Caption       *string `json:"caption,omitempty"`
	Description   *string `json:"description,omitempty"`
	Type          *string `json:"type,omitempty" validate:"omitempty,oneof=exterior interior document other"`
	SequenceOrder *int    `json:"sequence_order,omitempty"`
}

func FromModel(photo *models.Photo) *PhotoDTO {
	if photo == nil {
		return nil
	}

	return &PhotoDTO{
		ID:            photo.ID,
		ReportID:      photo.ReportID,
		FileURL:       photo.FileURL,
		Filename:      photo.Filename,
		Caption:       photo.Caption,
		Description:   photo.Description,
		Type:          photo.Type,
		SequenceOrder: photo.SequenceOrder,
		CreatedAt:     photo.CreatedAt,
	}
}

func (in CreatePhotoInput) toModel(photoType enums.PhotoType) *models.Photo {
	photo := &models.Photo{
		ID:          uuid.New(),
		ReportID:    in.ReportID,
		FileURL:     in.FileURL,
		Filename:    in.Filename,
		Caption:     in.Caption,
		Description: in.Description,
		Type:        photoType,
	}
	if in.SequenceOrder != nil {
		photo.SequenceOrder = *in.SequenceOrder
	}
	return photo
}

// columns maps the fields present in the payload to their database columns.
func (in UpdatePhotoInput) columns() map[string]any {
	updates := map[string]any{}
	if in.Caption != nil {
		updates["caption"] = *in.Caption
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Type != nil {
		updates["type"] = *in.Type
	}
	if in.SequenceOrder != nil {
		updates["sequence_order"] = *in.SequenceOrder
	}
	return updates
}
