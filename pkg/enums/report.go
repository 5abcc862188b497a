package enums

import "fmt"

// ReportPurpose captures why a valuation report was commissioned.
type ReportPurpose string

const (
	ReportPurposeMortgage  ReportPurpose = "mortgage"
	ReportPurposeSale      ReportPurpose = "sale"
	ReportPurposeInsurance ReportPurpose = "insurance"
	ReportPurposeTaxation  ReportPurpose = "taxation"
	ReportPurposeLegal     ReportPurpose = "legal"
	ReportPurposeOther     ReportPurpose = "other"
)

var validReportPurposes = []ReportPurpose{
	ReportPurposeMortgage,
	ReportPurposeSale,
	ReportPurposeInsurance,
	ReportPurposeTaxation,
	ReportPurposeLegal,
	ReportPurposeOther,
}

// String implements fmt.Stringer.
func (p ReportPurpose) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ReportPurpose.
func (p ReportPurpose) IsValid() bool {
	for _, candidate := range validReportPurposes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseReportPurpose converts raw input into a ReportPurpose.
func ParseReportPurpose(value string) (ReportPurpose, error) {
	for _, candidate := range validReportPurposes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid report purpose %q", value)
}

// ReportStatus tracks the lifecycle of a report draft.
type ReportStatus string

const (
	ReportStatusDraft      ReportStatus = "draft"
	ReportStatusInProgress ReportStatus = "in_progress"
	ReportStatusCompleted  ReportStatus = "completed"
	ReportStatusExported   ReportStatus = "exported"
)

var validReportStatuses = []ReportStatus{
	ReportStatusDraft,
	ReportStatusInProgress,
	ReportStatusCompleted,
	ReportStatusExported,
}

// String implements fmt.Stringer.
func (s ReportStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ReportStatus.
func (s ReportStatus) IsValid() bool {
	for _, candidate := range validReportStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseReportStatus converts raw input into a ReportStatus.
func ParseReportStatus(value string) (ReportStatus, error) {
	for _, candidate := range validReportStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid report status %q", value)
}
