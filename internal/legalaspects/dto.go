package legalaspects

import (
	"time"

	"github.com/google/uuid"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	dbtypes "github.com/malith-nethsiri/valuerpro-backend/pkg/db/types"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/enums"
)

// LegalAspectDTO is the transport shape for a legal-aspect record.
type LegalAspectDTO struct {
	ID       uuid.UUID `json:"id"`
	ReportID uuid.UUID `json:"report_id"`

	DocumentType     enums.DocumentType `json:"document_type"`
	DocumentNumber   *string            `json:"document_number,omitempty"`
	DocumentDate     *time.Time         `json:"document_date,omitempty"`
	IssuingAuthority *string            `json:"issuing_authority,omitempty"`

	CurrentOwner        *string  `json:"current_owner,omitempty"`
	PreviousOwners      []string `json:"previous_owners"`
	OwnershipType       *string  `json:"ownership_type,omitempty"`
	OwnershipPercentage *float64 `json:"ownership_percentage,omitempty"`

	TitleClear   bool     `json:"title_clear"`
	Encumbrances []string `json:"encumbrances"`
	Mortgages    []string `json:"mortgages"`
	Liens        []string `json:"liens"`
	Easements    []string `json:"easements"`

	ApprovalsPermits        []string `json:"approvals_permits"`
	ZoningClassification    *string  `json:"zoning_classification,omitempty"`
	DevelopmentRestrictions []string `json:"development_restrictions"`

	RegistrationDetails *string `json:"registration_details,omitempty"`

	LegalIssues []string `json:"legal_issues"`
	CourtCases  []string `json:"court_cases"`
	Disputes    []string `json:"disputes"`

	Remarks *string `json:"remarks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateLegalAspectInput is the payload for recording a title document.
type CreateLegalAspectInput struct {
	ReportID uuid.UUID `json:"report_id" validate:"required"`

	DocumentType     string     `json:"document_type" validate:"required,oneof=deed survey_plan approval permit other"`
	DocumentNumber   *string    `json:"document_number,omitempty"`
	DocumentDate     *time.Time `json:"document_date,omitempty"`
	IssuingAuthority *string    `json:"issuing_authority,omitempty"`

	CurrentOwner        *string  `json:"current_owner,omitempty"`
	PreviousOwners      []string `json:"previous_owners,omitempty"`
	OwnershipType       *string  `json:"ownership_type,omitempty"`
	OwnershipPercentage *float64 `json:"ownership_percentage,omitempty"`

	TitleClear   *bool    `json:"title_clear,omitempty"`
	Encumbrances []string `json:"encumbrances,omitempty"`
	Mortgages    []string `json:"mortgages,omitempty"`
	Liens        []string `json:"liens,omitempty"`
	Easements    []string `json:"easements,omitempty"`

	ApprovalsPermits        []string `json:"approvals_permits,omitempty"`
	ZoningClassification    *string  `json:"zoning_classification,omitempty"`
	DevelopmentRestrictions []string `json:"development_restrictions,omitempty"`

	RegistrationDetails *string `json:"registration_details,omitempty"`

	LegalIssues []string `json:"legal_issues,omitempty"`
	CourtCases  []string `json:"court_cases,omitempty"`
	Disputes    []string `json:"disputes,omitempty"`

	Remarks *string `json:"remarks,omitempty"`
}

// UpdateLegalAspectInput carries the optional fields of a partial update.
type UpdateLegalAspectInput struct {
	DocumentType     *string    `json:"document_type,omitempty" validate:"omitempty,oneof=deed survey_plan approval permit other"`
	DocumentNumber   *string    `json:"document_number,omitempty"`
	DocumentDate     *time.Time `json:"document_date,omitempty"`
	IssuingAuthority *string    `json:"issuing_authority,omitempty"`

	CurrentOwner        *string  `json:"current_owner,omitempty"`
	PreviousOwners      []string `json:"previous_owners,omitempty"`
	OwnershipType       *string  `json:"ownership_type,omitempty"`
	OwnershipPercentage *float64 `json:"ownership_percentage,omitempty"`

	TitleClear   *bool    `json:"title_clear,omitempty"`
	Encumbrances []string `json:"encumbrances,omitempty"`
	Mortgages    []string `json:"mortgages,omitempty"`
	Liens        []string `json:"liens,omitempty"`
	Easements    []string `json:"easements,omitempty"`

	ApprovalsPermits        []string `json:"approvals_permits,omitempty"`
	ZoningClassification    *string  `json:"zoning_classification,omitempty"`
	DevelopmentRestrictions []string `json:"development_restrictions,omitempty"`

	RegistrationDetails *string `json:"registration_details,omitempty"`

	LegalIssues []string `json:"legal_issues,omitempty"`
	CourtCases  []string `json:"court_cases,omitempty"`
	Disputes    []string `json:"disputes,omitempty"`

	Remarks *string `json:"remarks,omitempty"`
}

func FromModel(aspect *models.LegalAspect) *LegalAspectDTO {
	if aspect == nil {
		return nil
	}

	asList := func(list dbtypes.StringList) []string {
		if list == nil {
			return []string{}
		}
		return []string(list)
	}

	return &LegalAspectDTO{
		ID:                      aspect.ID,
		ReportID:                aspect.ReportID,
		DocumentType:            aspect.DocumentType,
		DocumentNumber:          aspect.DocumentNumber,
		DocumentDate:            aspect.DocumentDate,
		IssuingAuthority:        aspect.IssuingAuthority,
		CurrentOwner:            aspect.CurrentOwner,
		PreviousOwners:          asList(aspect.PreviousOwners),
		OwnershipType:           aspect.OwnershipType,
		OwnershipPercentage:     aspect.OwnershipPercentage,
		TitleClear:              aspect.TitleClear,
		Encumbrances:            asList(aspect.Encumbrances),
		Mortgages:               asList(aspect.Mortgages),
		Liens:                   asList(aspect.Liens),
		Easements:               asList(aspect.Easements),
		ApprovalsPermits:        asList(aspect.ApprovalsPermits),
		ZoningClassification:    aspect.ZoningClassification,
		DevelopmentRestrictions: asList(aspect.DevelopmentRestrictions),
		RegistrationDetails:     aspect.RegistrationDetails,
		LegalIssues:             asList(aspect.LegalIssues),
		CourtCases:              asList(aspect.CourtCases),
		Disputes:                asList(aspect.Disputes),
		Remarks:                 aspect.Remarks,
		CreatedAt:               aspect.CreatedAt,
		UpdatedAt:               aspect.UpdatedAt,
	}
}

func (in CreateLegalAspectInput) toModel(documentType enums.DocumentType) *models.LegalAspect {
	asList := func(values []string) dbtypes.StringList {
		if values == nil {
			return dbtypes.StringList{}
		}
		return dbtypes.StringList(values)
	}

	aspect := &models.LegalAspect{
		ID:                      uuid.New(),
		ReportID:                in.ReportID,
		DocumentType:            documentType,
		DocumentNumber:          in.DocumentNumber,
		DocumentDate:            in.DocumentDate,
		IssuingAuthority:        in.IssuingAuthority,
		CurrentOwner:            in.CurrentOwner,
		PreviousOwners:          asList(in.PreviousOwners),
		OwnershipType:           in.OwnershipType,
		OwnershipPercentage:     in.OwnershipPercentage,
		TitleClear:              true,
		Encumbrances:            asList(in.Encumbrances),
		Mortgages:               asList(in.Mortgages),
		Liens:                   asList(in.Liens),
		Easements:               asList(in.Easements),
		ApprovalsPermits:        asList(in.ApprovalsPermits),
		ZoningClassification:    in.ZoningClassification,
		DevelopmentRestrictions: asList(in.DevelopmentRestrictions),
		RegistrationDetails:     in.RegistrationDetails,
		LegalIssues:             asList(in.LegalIssues),
		CourtCases:              asList(in.CourtCases),
		Disputes:                asList(in.Disputes),
		Remarks:                 in.Remarks,
	}
	if in.TitleClear != nil {
		aspect.TitleClear = *in.TitleClear
	}
	return aspect
}

// columns maps the fields present in the payload to their database columns.
func (in UpdateLegalAspectInput) columns() map[string]any {
	updates := map[string]any{}
	setString := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	setList := func(column string, values []string) {
		if values != nil {
			updates[column] = dbtypes.StringList(values)
		}
	}

	setString("document_type", in.DocumentType)
	setString("document_number", in.DocumentNumber)
	if in.DocumentDate != nil {
		updates["document_date"] = *in.DocumentDate
	}
	setString("issuing_authority", in.IssuingAuthority)

	setString("current_owner", in.CurrentOwner)
	setList("previous_owners", in.PreviousOwners)
	setString("ownership_type", in.OwnershipType)
	if in.OwnershipPercentage != nil {
		updates["ownership_percentage"] = *in.OwnershipPercentage
	}

	if in.TitleClear != nil {
		updates["title_clear"] = *in.TitleClear
	}
	setList("encumbrances", in.Encumbrances)
	setList("mortgages", in.Mortgages)
	setList("liens", in.Liens)
	setList("easements", in.Easements)

	setList("approvals_permits", in.ApprovalsPermits)
	setString("zoning_classification", in.ZoningClassification)
	setList("development_restrictions", in.DevelopmentRestrictions)

	setString("registration_details", in.RegistrationDetails)

	setList("legal_issues", in.LegalIssues)
	setList("court_cases", in.CourtCases)
	setList("disputes", in.Disputes)

	setString("remarks", in.Remarks)

	return updates
}
