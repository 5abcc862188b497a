package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/enums"
)

// Comparable records a nearby sale used as evidence for the valuation.
type Comparable struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ReportID uuid.UUID `gorm:"column:report_id;type:uuid;not null;index"`

	// Basic info
	Address             string                    `gorm:"column:address;not null"`
	LotNumber           *string                   `gorm:"column:lot_number"`
	PlanNumber          *string                   `gorm:"column:plan_number"`
	DistanceFromSubject *float64                  `gorm:"column:distance_from_subject"`
	LocationSimilarity  *enums.LocationSimilarity `gorm:"column:location_similarity;type:text"`

	// Sale details
	SaleDate        time.Time       `gorm:"column:sale_date;not null"`
	SalePrice       decimal.Decimal `gorm:"column:sale_price;type:numeric(14,2);not null"`
	TransactionType *string         `gorm:"column:transaction_type"`

	// Property details
	LandExtentPerches *float64 `gorm:"column:land_extent_perches"`
	LandExtentSqft    *float64 `gorm:"column:land_extent_sqft"`
	BuildingArea      *float64 `gorm:"column:building_area"`
	PropertyType      *string  `gorm:"column:property_type"`

	// Adjustments
	LocationAdjustment  *float64         `gorm:"column:location_adjustment"`
	SizeAdjustment      *float64         `gorm:"column:size_adjustment"`
	ConditionAdjustment *float64         `gorm:"column:condition_adjustment"`
	TimeAdjustment      *float64         `gorm:"column:time_adjustment"`
	OtherAdjustments    *float64         `gorm:"column:other_adjustments"`
	AdjustedPrice       *decimal.Decimal `gorm:"column:adjusted_price;type:numeric(14,2)"`

	// Rates
	PricePerPerch *decimal.Decimal `gorm:"column:price_per_perch;type:numeric(14,2)"`
	PricePerSqft  *decimal.Decimal `gorm:"column:price_per_sqft;type:numeric(14,2)"`

	// Verification
	Source             *string `gorm:"column:source"`
	VerificationStatus *string `gorm:"column:verification_status"`
	ReliabilityRating  *int    `gorm:"column:reliability_rating"`

	// Additional info
	MarketConditions     *string `gorm:"column:market_conditions"`
	SpecialCircumstances *string `gorm:"column:special_circumstances"`
	Remarks              *string `gorm:"column:remarks"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
