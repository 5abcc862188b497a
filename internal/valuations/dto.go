package valuations

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	dbtypes "github.com/malith-nethsiri/valuerpro-backend/pkg/db/types"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/enums"
)

// ValuationDTO is the transport shape for a valuation record.
type ValuationDTO struct {
	ID       uuid.UUID `json:"id"`
	ReportID uuid.UUID `json:"report_id"`

	PrimaryMethod          enums.ValuationMethod `json:"primary_method"`
	SecondaryMethods       []string              `json:"secondary_methods"`
	MethodologyExplanation *string               `json:"methodology_explanation,omitempty"`

	LandRatePerPerch  *decimal.Decimal `json:"land_rate_per_perch,omitempty"`
	LandExtentPerches *float64         `json:"land_extent_perches,omitempty"`

	BuildingRatePerSqft             *decimal.Decimal `json:"building_rate_per_sqft,omitempty"`
	BuildingArea                    *float64         `json:"building_area,omitempty"`
	BuildingValueBeforeDepreciation *decimal.Decimal `json:"building_value_before_depreciation,omitempty"`
	BuildingValueAfterDepreciation  *decimal.Decimal `json:"building_value_after_depreciation,omitempty"`
	DepreciationPercentage          *float64         `json:"depreciation_percentage,omitempty"`

	OtherImprovementsValue       *decimal.Decimal `json:"other_improvements_value,omitempty"`
	OtherImprovementsDescription *string          `json:"other_improvements_description,omitempty"`

	TotalMarketValue   decimal.Decimal  `json:"total_market_value"`
	ForcedSaleValue    *decimal.Decimal `json:"forced_sale_value,omitempty"`
	InsuranceValue     *decimal.Decimal `json:"insurance_value,omitempty"`
	RentalValueMonthly *decimal.Decimal `json:"rental_value_monthly,omitempty"`
	ValuePerPerch      *decimal.Decimal `json:"value_per_perch,omitempty"`
	ValuePerSqft       *decimal.Decimal `json:"value_per_sqft,omitempty"`

	MarketTrendAnalysis *string  `json:"market_trend_analysis,omitempty"`
	Assumptions         []string `json:"assumptions"`
	Limitations         []string `json:"limitations"`
	RiskFactors         []string `json:"risk_factors"`

	ValuationFee *decimal.Decimal `json:"valuation_fee,omitempty"`
	TravelCost   *decimal.Decimal `json:"travel_cost,omitempty"`
	OtherCharges *decimal.Decimal `json:"other_charges,omitempty"`
	TotalFee     *decimal.Decimal `json:"total_fee,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateValuationInput is the payload for attaching a valuation to a report.
type CreateValuationInput struct {
	ReportID uuid.UUID `json:"report_id" validate:"required"`

	PrimaryMethod          string   `json:"primary_method" validate:"required,oneof=market cost income comparative"`
	SecondaryMethods       []string `json:"secondary_methods,omitempty"`
	MethodologyExplanation *string  `json:"methodology_explanation,omitempty"`

	LandRatePerPerch  *decimal.Decimal `json:"land_rate_per_perch,omitempty"`
	LandExtentPerches *float64         `json:"land_extent_perches,omitempty"`

	BuildingRatePerSqft             *decimal.Decimal `json:"building_rate_per_sqft,omitempty"`
	BuildingArea                    *float64         `json:"building_area,omitempty"`
	BuildingValueBeforeDepreciation *decimal.Decimal `json:"building_value_before_depreciation,omitempty"`
	BuildingValueAfterDepreciation  *decimal.Decimal `json:"building_value_after_depreciation,omitempty"`
	DepreciationPercentage          *float64         `json:"depreciation_percentage,omitempty"`

	OtherImprovementsValue       *decimal.Decimal `json:"other_improvements_value,omitempty"`
	OtherImprovementsDescription *string          `json:"other_improvements_description,omitempty"`

	TotalMarketValue   decimal.Decimal  `json:"total_market_value" validate:"required"`
	ForcedSaleValue    *decimal.Decimal `json:"forced_sale_value,omitempty"`
	InsuranceValue     *decimal.Decimal `json:"insurance_value,omitempty"`
	RentalValueMonthly *decimal.Decimal `json:"rental_value_monthly,omitempty"`
	ValuePerPerch      *decimal.Decimal `json:"value_per_perch,omitempty"`
	ValuePerSqft       *decimal.Decimal `json:"value_per_sqft,omitempty"`

	MarketTrendAnalysis *string  `json:"market_trend_analysis,omitempty"`
	Assumptions         []string `json:"assumptions,omitempty"`
	Limitations         []string `json:"limitations,omitempty"`
	RiskFactors         []string `json:"risk_factors,omitempty"`

	ValuationFee *decimal.Decimal `json:"valuation_fee,omitempty"`
	TravelCost   *decimal.Decimal `json:"travel_cost,omitempty"`
	OtherCharges *decimal.Decimal `json:"other_charges,omitempty"`
	TotalFee     *decimal.Decimal `json:"total_fee,omitempty"`
}

// UpdateValuationInput carries the optional fields of a partial update.
type UpdateValuationInput struct {
	PrimaryMethod          *string  `json:"primary_method,omitempty" validate:"omitempty,oneof=market cost income comparative"`
	SecondaryMethods       []string `json:"secondary_methods,omitempty"`
	MethodologyExplanation *string  `json:"methodology_explanation,omitempty"`

	LandRatePerPerch  *decimal.Decimal `json:"land_rate_per_perch,omitempty"`
	LandExtentPerches *float64         `json:"land_extent_perches,omitempty"`

	BuildingRatePerSqft             *decimal.Decimal `json:"building_rate_per_sqft,omitempty"`
	BuildingArea                    *float64         `json:"building_area,omitempty"`
	BuildingValueBeforeDepreciation *decimal.Decimal `json:"building_value_before_depreciation,omitempty"`
	BuildingValueAfterDepreciation  *decimal.Decimal `json:"building_value_after_depreciation,omitempty"`
	DepreciationPercentage          *float64         `json:"depreciation_percentage,omitempty"`

	OtherImprovementsValue       *decimal.Decimal `json:"other_improvements_value,omitempty"`
	OtherImprovementsDescription *string          `json:"other_improvements_description,omitempty"`

	TotalMarketValue   *decimal.Decimal `json:"total_market_value,omitempty"`
	ForcedSaleValue    *decimal.Decimal `json:"forced_sale_value,omitempty"`
	InsuranceValue     *decimal.Decimal `json:"insurance_value,omitempty"`
	RentalValueMonthly *decimal.Decimal `json:"rental_value_monthly,omitempty"`
	ValuePerPerch      *decimal.Decimal `json:"value_per_perch,omitempty"`
	ValuePerSqft       *decimal.Decimal `json:"value_per_sqft,omitempty"`

	MarketTrendAnalysis *string  `json:"market_trend_analysis,omitempty"`
	Assumptions         []string `json:"assumptions,omitempty"`
	Limitations         []string `json:"limitations,omitempty"`
	RiskFactors         []string `json:"risk_factors,omitempty"`

	ValuationFee *decimal.Decimal `json:"valuation_fee,omitempty"`
	TravelCost   *decimal.Decimal `json:"travel_cost,omitempty"`
	OtherCharges *decimal.Decimal `json:"other_charges,omitempty"`
	TotalFee     *decimal.Decimal `json:"total_fee,omitempty"`
}

func FromModel(valuation *models.Valuation) *ValuationDTO {
	if valuation == nil {
		return nil
	}

	asList := func(list dbtypes.StringList) []string {
		if list == nil {
			return []string{}
		}
		return []string(list)
	}

	return &ValuationDTO{
		ID:                              valuation.ID,
		ReportID:                        valuation.ReportID,
		PrimaryMethod:                   valuation.PrimaryMethod,
		SecondaryMethods:                asList(valuation.SecondaryMethods),
		MethodologyExplanation:          valuation.MethodologyExplanation,
		LandRatePerPerch:                valuation.LandRatePerPerch,
		LandExtentPerches:               valuation.LandExtentPerches,
		BuildingRatePerSqft:             valuation.BuildingRatePerSqft,
		BuildingArea:                    valuation.BuildingArea,
		BuildingValueBeforeDepreciation: valuation.BuildingValueBeforeDepreciation,
		BuildingValueAfterDepreciation:  valuation.BuildingValueAfterDepreciation,
		DepreciationPercentage:          valuation.DepreciationPercentage,
		OtherImprovementsValue:          valuation.OtherImprovementsValue,
		OtherImprovementsDescription:    valuation.OtherImprovementsDescription,
		TotalMarketValue:                valuation.TotalMarketValue,
		ForcedSaleValue:                 valuation.ForcedSaleValue,
		InsuranceValue:                  valuation.InsuranceValue,
		RentalValueMonthly:              valuation.RentalValueMonthly,
		ValuePerPerch:                   valuation.ValuePerPerch,
		ValuePerSqft:                    valuation.ValuePerSqft,
		MarketTrendAnalysis:             valuation.MarketTrendAnalysis,
		Assumptions:                     asList(valuation.Assumptions),
		Limitations:                     asList(valuation.Limitations),
		RiskFactors:                     asList(valuation.RiskFactors),
		ValuationFee:                    valuation.ValuationFee,
		TravelCost:                      valuation.TravelCost,
		OtherCharges:                    valuation.OtherCharges,
		TotalFee:                        valuation.TotalFee,
		CreatedAt:                       valuation.CreatedAt,
		UpdatedAt:                       valuation.UpdatedAt,
	}
}

func (in CreateValuationInput) toModel(method enums.ValuationMethod) *models.Valuation {
	asList := func(values []string) dbtypes.StringList {
		if values == nil {
			return dbtypes.StringList{}
		}
		return dbtypes.StringList(values)
	}

	return &models.Valuation{
		ID:                              uuid.New(),
		ReportID:                        in.ReportID,
		PrimaryMethod:                   method,
		SecondaryMethods:                asList(in.SecondaryMethods),
		MethodologyExplanation:          in.MethodologyExplanation,
		LandRatePerPerch:                in.LandRatePerPerch,
		LandExtentPerches:               in.LandExtentPerches,
		BuildingRatePerSqft:             in.BuildingRatePerSqft,
		BuildingArea:                    in.BuildingArea,
		BuildingValueBeforeDepreciation: in.BuildingValueBeforeDepreciation,
		BuildingValueAfterDepreciation:  in.BuildingValueAfterDepreciation,
		DepreciationPercentage:          in.DepreciationPercentage,
		OtherImprovementsValue:          in.OtherImprovementsValue,
		OtherImprovementsDescription:    in.OtherImprovementsDescription,
		TotalMarketValue:                in.TotalMarketValue,
		ForcedSaleValue:                 in.ForcedSaleValue,
		InsuranceValue:                  in.InsuranceValue,
		RentalValueMonthly:              in.RentalValueMonthly,
		ValuePerPerch:                   in.ValuePerPerch,
		ValuePerSqft:                    in.ValuePerSqft,
		MarketTrendAnalysis:             in.MarketTrendAnalysis,
		Assumptions:                     asList(in.Assumptions),
		Limitations:                     asList(in.Limitations),
		RiskFactors:                     asList(in.RiskFactors),
		ValuationFee:                    in.ValuationFee,
		TravelCost:                      in.TravelCost,
		OtherCharges:                    in.OtherCharges,
		TotalFee:                        in.TotalFee,
	}
}

// columns maps the fields present in the payload to their database columns.
func (in UpdateValuationInput) columns() map[string]any {
	updates := map[string]any{}
	setDecimal := func(column string, value *decimal.Decimal) {
		if value != nil {
			updates[column] = *value
		}
	}
	setFloat := func(column string, value *float64) {
		if value != nil {
			updates[column] = *value
		}
	}
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

	setString("primary_method", in.PrimaryMethod)
	setList("secondary_methods", in.SecondaryMethods)
	setString("methodology_explanation", in.MethodologyExplanation)

	setDecimal("land_rate_per_perch", in.LandRatePerPerch)
	setFloat("land_extent_perches", in.LandExtentPerches)

	setDecimal("building_rate_per_sqft", in.BuildingRatePerSqft)
	setFloat("building_area", in.BuildingArea)
	setDecimal("building_value_before_depreciation", in.BuildingValueBeforeDepreciation)
	setDecimal("building_value_after_depreciation", in.BuildingValueAfterDepreciation)
	setFloat("depreciation_percentage", in.DepreciationPercentage)

	setDecimal("other_improvements_value", in.OtherImprovementsValue)
	setString("other_improvements_description", in.OtherImprovementsDescription)

	setDecimal("total_market_value", in.TotalMarketValue)
	setDecimal("forced_sale_value", in.ForcedSaleValue)
	setDecimal("insurance_value", in.InsuranceValue)
	setDecimal("rental_value_monthly", in.RentalValueMonthly)
	setDecimal("value_per_perch", in.ValuePerPerch)
	setDecimal("value_per_sqft", in.ValuePerSqft)

	setString("market_trend_analysis", in.MarketTrendAnalysis)
	setList("assumptions", in.Assumptions)
	setList("limitations", in.Limitations)
	setList("risk_factors", in.RiskFactors)

	setDecimal("valuation_fee", in.ValuationFee)
	setDecimal("travel_cost", in.TravelCost)
	setDecimal("other_charges", in.OtherCharges)
	setDecimal("total_fee", in.TotalFee)

	return updates
}
