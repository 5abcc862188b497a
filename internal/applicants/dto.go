package applicants

import (
	"time"

	"github.com/google/uuid"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	dbtypes "github.com/malith-nethsiri/valuerpro-backend/pkg/db/types"
)

// ApplicantDTO is the transport shape for a valuation applicant.
type ApplicantDTO struct {
	ID       uuid.UUID `json:"id"`
	ReportID uuid.UUID `json:"report_id"`

	Name                 string   `json:"name"`
	Address              *string  `json:"address,omitempty"`
	ContactNumbers       []string `json:"contact_numbers"`
	Email                *string  `json:"email,omitempty"`
	NICNumber            *string  `json:"nic_number,omitempty"`
	BusinessName         *string  `json:"business_name,omitempty"`
	BusinessRegistration *string  `json:"business_registration,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateApplicantInput is the payload for attaching an applicant to a report.
type CreateApplicantInput struct {
	ReportID uuid.UUID `json:"report_id" validate:"required"`

	Name                 string   `json:"name" validate:"required"`
	Address              *string  `json:"address,omitempty"`
	ContactNumbers       []string `json:"contact_numbers,omitempty"`
	Email                *string  `json:"email,omitempty" validate:"omitempty,email"`
	NICNumber            *string  `json:"nic_number,omitempty"`
	BusinessName         *string  `json:"business_name,omitempty"`
	BusinessRegistration *string  `json:"business_registration,omitempty"`
}

// UpdateApplicantInput carries the optional fields of a partial update.
type UpdateApplicantInput struct {
	Name                 *string  `json:"name,omitempty"`
	Address              *string  `json:"address,omitempty"`
	ContactNumbers       []string `json:"contact_numbers,omitempty"`
	Email                *string  `json:"email,omitempty" validate:"omitempty,email"`
	NICNumber            *string  `json:"nic_number,omitempty"`
	BusinessName         *string  `json:"business_name,omitempty"`
	BusinessRegistration *string  `json:"business_registration,omitempty"`
}

func FromModel(applicant *models.Applicant) *ApplicantDTO {
	if applicant == nil {
		return nil
	}

	contacts := applicant.ContactNumbers
	if contacts == nil {
		contacts = dbtypes.StringList{}
	}

	return &ApplicantDTO{
		ID:                   applicant.ID,
		ReportID:             applicant.ReportID,
		Name:                 applicant.Name,
		Address:              applicant.Address,
		ContactNumbers:       []string(contacts),
		Email:                applicant.Email,
		NICNumber:            applicant.NICNumber,
		BusinessName:         applicant.BusinessName,
		BusinessRegistration: applicant.BusinessRegistration,
		CreatedAt:            applicant.CreatedAt,
		UpdatedAt:            applicant.UpdatedAt,
	}
}

// ToModel builds the persistence row. Exported because the valuer-profile
// convenience endpoint creates applicants from its own package.
func (in CreateApplicantInput) ToModel() *models.Applicant {
	contacts := dbtypes.StringList(in.ContactNumbers)
	if contacts == nil {
		contacts = dbtypes.StringList{}
	}

	return &models.Applicant{
		ID:                   uuid.New(),
		ReportID:             in.ReportID,
		Name:                 in.Name,
		Address:              in.Address,
		ContactNumbers:       contacts,
		Email:                in.Email,
		NICNumber:            in.NICNumber,
		BusinessName:         in.BusinessName,
		BusinessRegistration: in.BusinessRegistration,
	}
}

// columns maps the fields present in the payload to their database columns.
func (in UpdateApplicantInput) columns() map[string]any {
	updates := map[string]any{}
	setString := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}

	setString("name", in.Name)
	setString("address", in.Address)
	if in.ContactNumbers != nil {
		updates["contact_numbers"] = dbtypes.StringList(in.ContactNumbers)
	}
	setString("email", in.Email)
	setString("nic_number", in.NICNumber)
	setString("business_name", in.BusinessName)
	setString("business_registration", in.BusinessRegistration)

	return updates
}
