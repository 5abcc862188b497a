package comparables

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/enums"
)

// ComparableDTO is the transport shape for a comparable sale.
type ComparableDTO struct {
	ID       uuid.UUID `json:"id"`
	ReportID uuid.UUID `json:"report_id"`

	Address             string                    `json:"address"`
	LotNumber           *string                   `json:"lot_number,omitempty"`
	PlanNumber          *string                   `json:"plan_number,omitempty"`
	DistanceFromSubject *float64                  `json:"distance_from_subject,omitempty"`
	LocationSimilarity  *enums.LocationSimilarity `json:"location_similarity,omitempty"`

	SaleDate        time.Time       `json:"sale_date"`
	SalePrice       decimal.Decimal `json:"sale_price"`
	TransactionType *string         `json:"transaction_type,omitempty"`

	LandExtentPerches *float64 `json:"land_extent_perches,omitempty"`
	LandExtentSqft    *float64 `json:"land_extent_sqft,omitempty"`
	BuildingArea      *float64 `json:"building_area,omitempty"`
	PropertyType      *string  `json:"property_type,omitempty"`

	LocationAdjustment  *float64         `json:"location_adjustment,omitempty"`
	SizeAdjustment      *float64         `json:"size_adjustment,omitempty"`
	ConditionAdjustment *float64         `json:"condition_adjustment,omitempty"`
	TimeAdjustment      *float64         `json:"time_adjustment,omitempty"`
	OtherAdjustments    *float64         `json:"other_adjustments,omitempty"`
	AdjustedPrice       *decimal.Decimal `json:"adjusted_price,omitempty"`

	PricePerPerch *decimal.Decimal `json:"price_per_perch,omitempty"`
	PricePerSqft  *decimal.Decimal `json:"price_per_sqft,omitempty"`

	Source             *string `json:"source,omitempty"`
	VerificationStatus *string `json:"verification_status,omitempty"`
	ReliabilityRating  *int    `json:"reliability_rating,omitempty"`

	MarketConditions     *string `json:"market_conditions,omitempty"`
	SpecialCircumstances *string `json:"special_circumstances,omitempty"`
	Remarks              *string `json:"remarks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateComparableInput is the payload for recording a comparable sale.
type CreateComparableInput struct {
	ReportID uuid.UUID `json:"report_id" validate:"required"`

	Address             string   `json:"address" validate:"required"`
	LotNumber           *string  `json:"lot_number,omitempty"`
	PlanNumber          *string  `json:"plan_number,omitempty"`
	DistanceFromSubject *float64 `json:"distance_from_subject,omitempty"`
	LocationSimilarity  *string  `json:"location_similarity,omitempty" validate:"omitempty,oneof=similar slightly_different different"`

	SaleDate        time.Time       `json:"sale_date" validate:"required"`
	SalePrice       decimal.Decimal `json:"sale_price" validate:"required"`
	TransactionType *string         `json:"transaction_type,omitempty"`

	LandExtentPerches *float64 `json:"land_extent_perches,omitempty"`
	LandExtentSqft    *float64 `json:"land_extent_sqft,omitempty"`
	BuildingArea      *float64 `json:"building_area,omitempty"`
	PropertyType      *string  `json:"property_type,omitempty"`

	LocationAdjustment  *float64         `json:"location_adjustment,omitempty"`
	SizeAdjustment      *float64         `json:"size_adjustment,omitempty"`
	ConditionAdjustment *float64         `json:"condition_adjustment,omitempty"`
	TimeAdjustment      *float64         `json:"time_adjustment,omitempty"`
	OtherAdjustments    *float64         `json:"other_adjustments,omitempty"`
	AdjustedPrice       *decimal.Decimal `json:"adjusted_price,omitempty"`

	PricePerPerch *decimal.Decimal `json:"price_per_perch,omitempty"`
	PricePerSqft  *decimal.Decimal `json:"price_per_sqft,omitempty"`

	Source             *string `json:"source,omitempty"`
	VerificationStatus *string `json:"verification_status,omitempty"`
	ReliabilityRating  *int    `json:"reliability_rating,omitempty"`

	MarketConditions     *string `json:"market_conditions,omitempty"`
	SpecialCircumstances *string `json:"special_circumstances,omitempty"`
	Remarks              *string `json:"remarks,omitempty"`
}

// UpdateComparableInput carries the optional fields of a partial update.
type UpdateComparableInput struct {
	Address             *string  `json:"address,omitempty"`
	LotNumber           *string  `json:"lot_number,omitempty"`
	PlanNumber          *string  `json:"plan_number,omitempty"`
	DistanceFromSubject *float64 `json:"distance_from_subject,omitempty"`
	LocationSimilarity  *string  `json:"location_similarity,omitempty" validate:"omitempty,oneof=similar slightly_different different"`

	SaleDate        *time.Time       `json:"sale_date,omitempty"`
	SalePrice       *decimal.Decimal `json:"sale_price,omitempty"`
	TransactionType *string          `json:"transaction_type,omitempty"`

	LandExtentPerches *float64 `json:"land_extent_perches,omitempty"`
	LandExtentSqft    *float64 `json:"land_extent_sqft,omitempty"`
	BuildingArea      *float64 `json:"building_area,omitempty"`
	PropertyType      *string  `json:"property_type,omitempty"`

	LocationAdjustment  *float64         `json:"location_adjustment,omitempty"`
	SizeAdjustment      *float64         `json:"size_adjustment,omitempty"`
	ConditionAdjustment *float64         `json:"condition_adjustment,omitempty"`
	TimeAdjustment      *float64         `json:"time_adjustment,omitempty"`
	OtherAdjustments    *float64         `json:"other_adjustments,omitempty"`
	AdjustedPrice       *decimal.Decimal `json:"adjusted_price,omitempty"`

	PricePerPerch *decimal.Decimal `json:"price_per_perch,omitempty"`
	PricePerSqft  *decimal.Decimal `json:"price_per_sqft,omitempty"`

	Source             *string `json:"source,omitempty"`
	VerificationStatus *string `json:"verification_status,omitempty"`
	ReliabilityRating  *int    `json:"reliability_rating,omitempty"`

	MarketConditions     *string `json:"market_conditions,omitempty"`
	SpecialCircumstances *string `json:"special_circumstances,omitempty"`
	Remarks              *string `json:"remarks,omitempty"`
}

func FromModel(comparable *models.Comparable) *ComparableDTO {
	if comparable == nil {
		return nil
	}

	return &ComparableDTO{
		ID:                   comparable.ID,
		ReportID:             comparable.ReportID,
		Address:              comparable.Address,
		LotNumber:            comparable.LotNumber,
		PlanNumber:           comparable.PlanNumber,
		DistanceFromSubject:  comparable.DistanceFromSubject,
		LocationSimilarity:   comparable.LocationSimilarity,
		SaleDate:             comparable.SaleDate,
		SalePrice:            comparable.SalePrice,
		TransactionType:      comparable.TransactionType,
		LandExtentPerches:    comparable.LandExtentPerches,
		LandExtentSqft:       comparable.LandExtentSqft,
		BuildingArea:         comparable.BuildingArea,
		PropertyType:         comparable.PropertyType,
		LocationAdjustment:   comparable.LocationAdjustment,
		SizeAdjustment:       comparable.SizeAdjustment,
		ConditionAdjustment:  comparable.ConditionAdjustment,
		TimeAdjustment:       comparable.TimeAdjustment,
		OtherAdjustments:     comparable.OtherAdjustments,
		AdjustedPrice:        comparable.AdjustedPrice,
		PricePerPerch:        comparable.PricePerPerch,
		PricePerSqft:         comparable.PricePerSqft,
		Source:               comparable.Source,
		VerificationStatus:   comparable.VerificationStatus,
		ReliabilityRating:    comparable.ReliabilityRating,
		MarketConditions:     comparable.MarketConditions,
		SpecialCircumstances: comparable.SpecialCircumstances,
		Remarks:              comparable.Remarks,
		CreatedAt:            comparable.CreatedAt,
		UpdatedAt:            comparable.UpdatedAt,
	}
}

func (in CreateComparableInput) toModel(similarity *enums.LocationSimilarity) *models.Comparable {
	return &models.Comparable{
		ID:                   uuid.New(),
		ReportID:             in.ReportID,
		Address:              in.Address,
		LotNumber:            in.LotNumber,
		PlanNumber:           in.PlanNumber,
		DistanceFromSubject:  in.DistanceFromSubject,
		LocationSimilarity:   similarity,
		SaleDate:             in.SaleDate,
		SalePrice:            in.SalePrice,
		TransactionType:      in.TransactionType,
		LandExtentPerches:    in.LandExtentPerches,
		LandExtentSqft:       in.LandExtentSqft,
		BuildingArea:         in.BuildingArea,
		PropertyType:         in.PropertyType,
		LocationAdjustment:   in.LocationAdjustment,
		SizeAdjustment:       in.SizeAdjustment,
		ConditionAdjustment:  in.ConditionAdjustment,
		TimeAdjustment:       in.TimeAdjustment,
		OtherAdjustments:     in.OtherAdjustments,
		AdjustedPrice:        in.AdjustedPrice,
		PricePerPerch:        in.PricePerPerch,
		PricePerSqft:         in.PricePerSqft,
		Source:               in.Source,
		VerificationStatus:   in.VerificationStatus,
		ReliabilityRating:    in.ReliabilityRating,
		MarketConditions:     in.MarketConditions,
		SpecialCircumstances: in.SpecialCircumstances,
		Remarks:              in.Remarks,
	}
}

// columns maps the fields present in the payload to their database columns.
func (in UpdateComparableInput) columns() map[string]any {
	updates := map[string]any{}
	setString := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	setFloat := func(column string, value *float64) {
		if value != nil {
			updates[column] = *value
		}
	}
	setDecimal := func(column string, value *decimal.Decimal) {
		if value != nil {
			updates[column] = *value
		}
	}

	setString("address", in.Address)
	setString("lot_number", in.LotNumber)
	setString("plan_number", in.PlanNumber)
	setFloat("distance_from_subject", in.DistanceFromSubject)
	setString("location_similarity", in.LocationSimilarity)

	if in.SaleDate != nil {
		updates["sale_date"] = *in.SaleDate
	}
	setDecimal("sale_price", in.SalePrice)
	setString("transaction_type", in.TransactionType)

	setFloat("land_extent_perches", in.LandExtentPerches)
	setFloat("land_extent_sqft", in.LandExtentSqft)
	setFloat("building_area", in.BuildingArea)
	setString("property_type", in.PropertyType)

	setFloat("location_adjustment", in.LocationAdjustment)
	setFloat("size_adjustment", in.SizeAdjustment)
	setFloat("condition_adjustment", in.ConditionAdjustment)
	setFloat("time_adjustment", in.TimeAdjustment)
	setFloat("other_adjustments", in.OtherAdjustments)
	setDecimal("adjusted_price", in.AdjustedPrice)

	setDecimal("price_per_perch", in.PricePerPerch)
	setDecimal("price_per_sqft", in.PricePerSqft)

	setString("source", in.Source)
	setString("verification_status", in.VerificationStatus)
	if in.ReliabilityRating != nil {
		updates["reliability_rating"] = *in.ReliabilityRating
	}

	setString("market_conditions", in.MarketConditions)
	setString("special_circumstances", in.SpecialCircumstances)
	setString("remarks", in.Remarks)

	return updates
}
