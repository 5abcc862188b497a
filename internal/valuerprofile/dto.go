package valuerprofile

import (
	"time"

	"github.com/google/uuid"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	dbtypes "github.com/malith-nethsiri/valuerpro-backend/pkg/db/types"
)

// ProfileDTO is the transport shape for the valuer's credentials.
type ProfileDTO struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	Title              *string  `json:"title,omitempty"`
	FullName           string   `json:"full_name"`
	Qualifications     []string `json:"qualifications"`
	Memberships        []string `json:"memberships"`
	Address            *string  `json:"address,omitempty"`
	TelephoneNumbers   []string `json:"telephone_numbers"`
	Email              string   `json:"email"`
	RegistrationNumber *string  `json:"registration_number,omitempty"`
	LicenseNumber      *string  `json:"license_number,omitempty"`
	AreasOfExpertise   []string `json:"areas_of_expertise"`
	AvatarURL          *string  `json:"avatar_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateProfileInput is the payload for establishing the caller's profile.
type CreateProfileInput struct {
	Title              *string  `json:"title,omitempty"`
	FullName           string   `json:"full_name" validate:"required"`
	Qualifications     []string `json:"qualifications,omitempty"`
	Memberships        []string `json:"memberships,omitempty"`
	Address            *string  `json:"address,omitempty"`
	TelephoneNumbers   []string `json:"telephone_numbers,omitempty"`
	Email              string   `json:"email" validate:"required,email"`
	RegistrationNumber *string  `json:"registration_number,omitempty"`
	LicenseNumber      *string  `json:"license_number,omitempty"`
	AreasOfExpertise   []string `json:"areas_of_expertise,omitempty"`
	AvatarURL          *string  `json:"avatar_url,omitempty"`
}

// UpdateProfileInput carries the optional fields of a partial update.
type UpdateProfileInput struct {
	Title              *string  `json:"title,omitempty"`
	FullName           *string  `json:"full_name,omitempty"`
	Qualifications     []string `json:"qualifications,omitempty"`
	Memberships        []string `json:"memberships,omitempty"`
	Address            *string  `json:"address,omitempty"`
	TelephoneNumbers   []string `json:"telephone_numbers,omitempty"`
	Email              *string  `json:"email,omitempty" validate:"omitempty,email"`
	RegistrationNumber *string  `json:"registration_number,omitempty"`
	LicenseNumber      *string  `json:"license_number,omitempty"`
	AreasOfExpertise   []string `json:"areas_of_expertise,omitempty"`
	AvatarURL          *string  `json:"avatar_url,omitempty"`
}

func FromModel(profile *models.ValuerProfile) *ProfileDTO {
	if profile == nil {
		return nil
	}

	asList := func(list dbtypes.StringList) []string {
		if list == nil {
			return []string{}
		}
		return []string(list)
	}

	return &ProfileDTO{
		ID:                 profile.ID,
		UserID:             profile.UserID,
		Title:              profile.Title,
		FullName:           profile.FullName,
		Qualifications:     asList(profile.Qualifications),
		Memberships:        asList(profile.Memberships),
		Address:            profile.Address,
		TelephoneNumbers:   asList(profile.TelephoneNumbers),
		Email:              profile.Email,
		RegistrationNumber: profile.RegistrationNumber,
		LicenseNumber:      profile.LicenseNumber,
		AreasOfExpertise:   asList(profile.AreasOfExpertise),
		AvatarURL:          profile.AvatarURL,
		CreatedAt:          profile.CreatedAt,
		UpdatedAt:          profile.UpdatedAt,
	}
}

func (in CreateProfileInput) toModel(userID uuid.UUID) *models.ValuerProfile {
	asList := func(values []string) dbtypes.StringList {
		if values == nil {
			return dbtypes.StringList{}
		}
		return dbtypes.StringList(values)
	}

	return &models.ValuerProfile{
		ID:                 uuid.New(),
		UserID:             userID,
		Title:              in.Title,
		FullName:           in.FullName,
		Qualifications:     asList(in.Qualifications),
		Memberships:        asList(in.Memberships),
		Address:            in.Address,
		TelephoneNumbers:   asList(in.TelephoneNumbers),
		Email:              in.Email,
		RegistrationNumber: in.RegistrationNumber,
		LicenseNumber:      in.LicenseNumber,
		AreasOfExpertise:   asList(in.AreasOfExpertise),
		AvatarURL:          in.AvatarURL,
	}
}

// columns maps the fields present in the payload to their database columns.
func (in UpdateProfileInput) columns() map[string]any {
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

	setString("title", in.Title)
	setString("full_name", in.FullName)
	setList("qualifications", in.Qualifications)
	setList("memberships", in.Memberships)
	setString("address", in.Address)
	setList("telephone_numbers", in.TelephoneNumbers)
	setString("email", in.Email)
	setString("registration_number", in.RegistrationNumber)
	setString("license_number", in.LicenseNumber)
	setList("areas_of_expertise", in.AreasOfExpertise)
	setString("avatar_url", in.AvatarURL)

	return updates
}
