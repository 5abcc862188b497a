package enums

import "fmt"

// DocumentType identifies the legal instrument a legal-aspect record is
// grounded on.
type DocumentType string

const (
	DocumentTypeDeed       DocumentType = "deed"
	DocumentTypeSurveyPlan DocumentType = "survey_plan"
	DocumentTypeApproval   DocumentType = "approval"
	DocumentTypePermit     DocumentType = "permit"
	DocumentTypeOther      DocumentType = "other"
)

var validDocumentTypes = []DocumentType{
	DocumentTypeDeed,
	DocumentTypeSurveyPlan,
	DocumentTypeApproval,
	DocumentTypePermit,
	DocumentTypeOther,
}

// String implements fmt.Stringer.
func (d DocumentType) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DocumentType.
func (d DocumentType) IsValid() bool {
	for _, candidate := range validDocumentTypes {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDocumentType converts raw input into a DocumentType.
func ParseDocumentType(value string) (DocumentType, error) {
	for _, candidate := range validDocumentTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid document type %q", value)
}
