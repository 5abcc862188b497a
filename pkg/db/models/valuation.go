package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dbtypes "github.com/malith-nethsiri/valuerpro-backend/pkg/db/types"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/enums"
)

// Valuation carries the methodology and the concluded figures for a report.
// Monetary figures use fixed-point decimals.
type Valuation struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ReportID uuid.UUID `gorm:"column:report_id;type:uuid;not null;index"`

	// Methodology
	PrimaryMethod          enums.ValuationMethod `gorm:"column:primary_method;type:text;not null"`
	SecondaryMethods       dbtypes.StringList    `gorm:"column:secondary_methods;type:text;not null;default:'[]'"`
	MethodologyExplanation *string               `gorm:"column:methodology_explanation"`

	// Land
	LandRatePerPerch  *decimal.Decimal `gorm:"column:land_rate_per_perch;type:numeric(14,2)"`
	LandExtentPerches *float64         `gorm:"column:land_extent_perches"`

	// Building
	BuildingRatePerSqft             *decimal.Decimal `gorm:"column:building_rate_per_sqft;type:numeric(14,2)"`
	BuildingArea                    *float64         `gorm:"column:building_area"`
	BuildingValueBeforeDepreciation *decimal.Decimal `gorm:"column:building_value_before_depreciation;type:numeric(14,2)"`
	BuildingValueAfterDepreciation  *decimal.Decimal `gorm:"column:building_value_after_depreciation;type:numeric(14,2)"`
	DepreciationPercentage          *float64         `gorm:"column:depreciation_percentage"`

	// Other improvements
	OtherImprovementsValue       *decimal.Decimal `gorm:"column:other_improvements_value;type:numeric(14,2)"`
	OtherImprovementsDescription *string          `gorm:"column:other_improvements_description"`

	// Concluded values
	TotalMarketValue   decimal.Decimal  `gorm:"column:total_market_value;type:numeric(14,2);not null"`
	ForcedSaleValue    *decimal.Decimal `gorm:"column:forced_sale_value;type:numeric(14,2)"`
	InsuranceValue     *decimal.Decimal `gorm:"column:insurance_value;type:numeric(14,2)"`
	RentalValueMonthly *decimal.Decimal `gorm:"column:rental_value_monthly;type:numeric(14,2)"`
	ValuePerPerch      *decimal.Decimal `gorm:"column:value_per_perch;type:numeric(14,2)"`
	ValuePerSqft       *decimal.Decimal `gorm:"column:value_per_sqft;type:numeric(14,2)"`

	// Analysis
	MarketTrendAnalysis *string            `gorm:"column:market_trend_analysis"`
	Assumptions         dbtypes.StringList `gorm:"column:assumptions;type:text;not null;default:'[]'"`
	Limitations         dbtypes.StringList `gorm:"column:limitations;type:text;not null;default:'[]'"`
	RiskFactors         dbtypes.StringList `gorm:"column:risk_factors;type:text;not null;default:'[]'"`

	// Fees
	ValuationFee *decimal.Decimal `gorm:"column:valuation_fee;type:numeric(12,2)"`
	TravelCost   *decimal.Decimal `gorm:"column:travel_cost;type:numeric(12,2)"`
	OtherCharges *decimal.Decimal `gorm:"column:other_charges;type:numeric(12,2)"`
	TotalFee     *decimal.Decimal `gorm:"column:total_fee;type:numeric(12,2)"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
