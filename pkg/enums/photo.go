package enums

import "fmt"

// PhotoType classifies report photographs.
type PhotoType string

const (
	PhotoTypeExterior PhotoType = "exterior"
	PhotoTypeInterior PhotoType = "interior"
	PhotoTypeDocument PhotoType = "document"
	PhotoTypeOther    PhotoType = "other"
)

var validPhotoTypes = []PhotoType{
	PhotoTypeExterior,
	PhotoTypeInterior,
	PhotoTypeDocument,
	PhotoTypeOther,
}

// String implements fmt.Stringer.
func (p PhotoType) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PhotoType.
func (p PhotoType) IsValid() bool {
	for _, candidate := range validPhotoTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePhotoType converts raw input into a PhotoType.
func ParsePhotoType(value string) (PhotoType, error) {
	for _, candidate := range validPhotoTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid photo type %q", value)
}
