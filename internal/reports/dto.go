package reports

import (
	"time"

	"github.com/google/uuid"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	dbtypes "github.com/malith-nethsiri/valuerpro-backend/pkg/db/types"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/enums"
)

// ReportDTO is the transport shape for a valuation report.
type ReportDTO struct {
	ID              uuid.UUID           `json:"id"`
	Title           string              `json:"title"`
	ReferenceNumber *string             `json:"reference_number,omitempty"`
	Purpose         enums.ReportPurpose `json:"purpose"`
	Status          enums.ReportStatus  `json:"status"`
	BankName        *string             `json:"bank_name,omitempty"`
	BankBranch      *string             `json:"bank_branch,omitempty"`
	InspectionDate  *time.Time          `json:"inspection_date,omitempty"`
	ValuationDate   *time.Time          `json:"valuation_date,omitempty"`
	ReportDate      *time.Time          `json:"report_date,omitempty"`
	GeneratedFiles  []string            `json:"generated_files"`
	UserID          uuid.UUID           `json:"user_id"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// CreateReportInput is the payload accepted when opening a new report.
type CreateReportInput struct {
	Title           string     `json:"title" validate:"required"`
	ReferenceNumber *string    `json:"reference_number,omitempty"`
	Purpose         string     `json:"purpose" validate:"required,oneof=mortgage sale insurance taxation legal other"`
	BankName        *string    `json:"bank_name,omitempty"`
	BankBranch      *string    `json:"bank_branch,omitempty"`
	InspectionDate  *time.Time `json:"inspection_date,omitempty"`
	ValuationDate   *time.Time `json:"valuation_date,omitempty"`
	ReportDate      *time.Time `json:"report_date,omitempty"`
}

// UpdateReportInput carries the optional fields of a partial update. Only
// fields present in the payload are written; everything else is left alone.
type UpdateReportInput struct {
	Title           *string    `json:"title,omitempty"`
	ReferenceNumber *string    `json:"reference_number,omitempty"`
	Purpose         *string    `json:"purpose,omitempty" validate:"omitempty,oneof=mortgage sale insurance taxation legal other"`
	Status          *string    `json:"status,omitempty" validate:"omitempty,oneof=draft in_progress completed exported"`
	BankName        *string    `json:"bank_name,omitempty"`
	BankBranch      *string    `json:"bank_branch,omitempty"`
	InspectionDate  *time.Time `json:"inspection_date,omitempty"`
	ValuationDate   *time.Time `json:"valuation_date,omitempty"`
	ReportDate      *time.Time `json:"report_date,omitempty"`
}

// ListResponse is the page envelope for report listings.
type ListResponse struct {
	Items   []*ReportDTO `json:"items"`
	Total   int64        `json:"total"`
	Page    int          `json:"page"`
	PerPage int          `json:"per_page"`
	Pages   int          `json:"pages"`
}

// GenerateFileResponse announces a queued export. File rendering happens
// out of band; the endpoint only confirms the report exists and is owned
// by the caller.
type GenerateFileResponse struct {
	ReportID uuid.UUID `json:"report_id"`
	Format   string    `json:"format"`
	Filename string    `json:"filename"`
	Message  string    `json:"message"`
}

func FromModel(report *models.Report) *ReportDTO {
	if report == nil {
		return nil
	}

	files := report.GeneratedFiles
	if files == nil {
		files = dbtypes.StringList{}
	}

	return &ReportDTO{
		ID:              report.ID,
		Title:           report.Title,
		ReferenceNumber: report.ReferenceNumber,
		Purpose:         report.Purpose,
		Status:          report.Status,
		BankName:        report.BankName,
		BankBranch:      report.BankBranch,
		InspectionDate:  report.InspectionDate,
		ValuationDate:   report.ValuationDate,
		ReportDate:      report.ReportDate,
		GeneratedFiles:  []string(files),
		UserID:          report.UserID,
		CreatedAt:       report.CreatedAt,
		UpdatedAt:       report.UpdatedAt,
	}
}

func (in CreateReportInput) toModel(userID uuid.UUID, purpose enums.ReportPurpose) *models.Report {
	return &models.Report{
		ID:              uuid.New(),
		Title:           in.Title,
		ReferenceNumber: in.ReferenceNumber,
		Purpose:         purpose,
		Status:          enums.ReportStatusDraft,
		BankName:        in.BankName,
		BankBranch:      in.BankBranch,
		InspectionDate:  in.InspectionDate,
		ValuationDate:   in.ValuationDate,
		ReportDate:      in.ReportDate,
		GeneratedFiles:  dbtypes.StringList{},
		UserID:          userID,
	}
}

// columns maps the fields present in the payload to their database columns.
func (in UpdateReportInput) columns() map[string]any {
	updates := map[string]any{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.ReferenceNumber != nil {
		updates["reference_number"] = *in.ReferenceNumber
	}
	if in.Purpose != nil {
		updates["purpose"] = *in.Purpose
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if in.BankName != nil {
		updates["bank_name"] = *in.BankName
	}
	if in.BankBranch != nil {
		updates["bank_branch"] = *in.BankBranch
	}
	if in.InspectionDate != nil {
		updates["inspection_date"] = *in.InspectionDate
	}
	if in.ValuationDate != nil {
		updates["valuation_date"] = *in.ValuationDate
	}
	if in.ReportDate != nil {
		updates["report_date"] = *in.ReportDate
	}
	return updates
}
