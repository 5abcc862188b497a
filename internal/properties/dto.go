package properties

import (
	"time"

	"github.com/google/uuid"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	dbtypes "github.com/malith-nethsiri/valuerpro-backend/pkg/db/types"
)

// PropertyDTO is the transport shape for the surveyed property record.
type PropertyDTO struct {
	ID       uuid.UUID `json:"id"`
	ReportID uuid.UUID `json:"report_id"`

	LotNumber    *string    `json:"lot_number,omitempty"`
	PlanNumber   *string    `json:"plan_number,omitempty"`
	PlanDate     *time.Time `json:"plan_date,omitempty"`
	SurveyorName *string    `json:"surveyor_name,omitempty"`
	DeedNumbers  []string   `json:"deed_numbers"`

	Address    *string  `json:"address,omitempty"`
	Village    *string  `json:"village,omitempty"`
	GNDivision *string  `json:"gn_division,omitempty"`
	District   *string  `json:"district,omitempty"`
	Province   *string  `json:"province,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`

	RoadAccess        bool    `json:"road_access"`
	DirectionsText    *string `json:"directions_text,omitempty"`
	AccessDescription *string `json:"access_description,omitempty"`

	PropertyType    *string  `json:"property_type,omitempty"`
	TotalExtent     *string  `json:"total_extent,omitempty"`
	TotalExtentSqft *float64 `json:"total_extent_sqft,omitempty"`
	LandShape       *string  `json:"land_shape,omitempty"`
	Elevation       *string  `json:"elevation,omitempty"`
	SoilType        *string  `json:"soil_type,omitempty"`
	WaterTable      *string  `json:"water_table,omitempty"`
	FloodRisk       bool     `json:"flood_risk"`

	BuildingArea      *float64 `json:"building_area,omitempty"`
	BuildingStructure *string  `json:"building_structure,omitempty"`
	YearBuilt         *int     `json:"year_built,omitempty"`
	BuildingCondition *string  `json:"building_condition,omitempty"`
	DepreciationRate  *float64 `json:"depreciation_rate,omitempty"`

	Electricity bool `json:"electricity"`
	WaterSupply bool `json:"water_supply"`
	Sewerage    bool `json:"sewerage"`
	Telephone   bool `json:"telephone"`
	Internet    bool `json:"internet"`

	MarketActivity       *string `json:"market_activity,omitempty"`
	DevelopmentPotential *string `json:"development_potential,omitempty"`
	Restrictions         *string `json:"restrictions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePropertyInput is the payload for attaching a property record to a
// report. Every field except the target report is optional survey data.
type CreatePropertyInput struct {
	ReportID uuid.UUID `json:"report_id" validate:"required"`

	LotNumber    *string    `json:"lot_number,omitempty"`
	PlanNumber   *string    `json:"plan_number,omitempty"`
	PlanDate     *time.Time `json:"plan_date,omitempty"`
	SurveyorName *string    `json:"surveyor_name,omitempty"`
	DeedNumbers  []string   `json:"deed_numbers,omitempty"`

	Address    *string  `json:"address,omitempty"`
	Village    *string  `json:"village,omitempty"`
	GNDivision *string  `json:"gn_division,omitempty"`
	District   *string  `json:"district,omitempty"`
	Province   *string  `json:"province,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`

	RoadAccess        *bool   `json:"road_access,omitempty"`
	DirectionsText    *string `json:"directions_text,omitempty"`
	AccessDescription *string `json:"access_description,omitempty"`

	PropertyType    *string  `json:"property_type,omitempty"`
	TotalExtent     *string  `json:"total_extent,omitempty"`
	TotalExtentSqft *float64 `json:"total_extent_sqft,omitempty"`
	LandShape       *string  `json:"land_shape,omitempty"`
	Elevation       *string  `json:"elevation,omitempty"`
	SoilType        *string  `json:"soil_type,omitempty"`
	WaterTable      *string  `json:"water_table,omitempty"`
	FloodRisk       *bool    `json:"flood_risk,omitempty"`

	BuildingArea      *float64 `json:"building_area,omitempty"`
	BuildingStructure *string  `json:"building_structure,omitempty"`
	YearBuilt         *int     `json:"year_built,omitempty"`
	BuildingCondition *string  `json:"building_condition,omitempty"`
	DepreciationRate  *float64 `json:"depreciation_rate,omitempty"`

	Electricity *bool `json:"electricity,omitempty"`
	WaterSupply *bool `json:"water_supply,omitempty"`
	Sewerage    *bool `json:"sewerage,omitempty"`
	Telephone   *bool `json:"telephone,omitempty"`
	Internet    *bool `json:"internet,omitempty"`

	MarketActivity       *string `json:"market_activity,omitempty"`
	DevelopmentPotential *string `json:"development_potential,omitempty"`
	Restrictions         *string `json:"restrictions,omitempty"`
}

// UpdatePropertyInput carries the optional fields of a partial update.
type UpdatePropertyInput struct {
	LotNumber    *string    `json:"lot_number,omitempty"`
	PlanNumber   *string    `json:"plan_number,omitempty"`
	PlanDate     *time.Time `json:"plan_date,omitempty"`
	SurveyorName *string    `json:"surveyor_name,omitempty"`
	DeedNumbers  []string   `json:"deed_numbers,omitempty"`

	Address    *string  `json:"address,omitempty"`
	Village    *string  `json:"village,omitempty"`
	GNDivision *string  `json:"gn_division,omitempty"`
	District   *string  `json:"district,omitempty"`
	Province   *string  `json:"province,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`

	RoadAccess        *bool   `json:"road_access,omitempty"`
	DirectionsText    *string `json:"directions_text,omitempty"`
	AccessDescription *string `json:"access_description,omitempty"`

	PropertyType    *string  `json:"property_type,omitempty"`
	TotalExtent     *string  `json:"total_extent,omitempty"`
	TotalExtentSqft *float64 `json:"total_extent_sqft,omitempty"`
	LandShape       *string  `json:"land_shape,omitempty"`
	Elevation       *string  `json:"elevation,omitempty"`
	SoilType        *string  `json:"soil_type,omitempty"`
	WaterTable      *string  `json:"water_table,omitempty"`
	FloodRisk       *bool    `json:"flood_risk,omitempty"`

	BuildingArea      *float64 `json:"building_area,omitempty"`
	BuildingStructure *string  `json:"building_structure,omitempty"`
	YearBuilt         *int     `json:"year_built,omitempty"`
	BuildingCondition *string  `json:"building_condition,omitempty"`
	DepreciationRate  *float64 `json:"depreciation_rate,omitempty"`

	Electricity *bool `json:"electricity,omitempty"`
	WaterSupply *bool `json:"water_supply,omitempty"`
	Sewerage    *bool `json:"sewerage,omitempty"`
	Telephone   *bool `json:"telephone,omitempty"`
	Internet    *bool `json:"internet,omitempty"`

	MarketActivity       *string `json:"market_activity,omitempty"`
	DevelopmentPotential *string `json:"development_potential,omitempty"`
	Restrictions         *string `json:"restrictions,omitempty"`
}

func FromModel(property *models.Property) *PropertyDTO {
	if property == nil {
		return nil
	}

	deeds := property.DeedNumbers
	if deeds == nil {
		deeds = dbtypes.StringList{}
	}

	return &PropertyDTO{
		ID:                   property.ID,
		ReportID:             property.ReportID,
		LotNumber:            property.LotNumber,
		PlanNumber:           property.PlanNumber,
		PlanDate:             property.PlanDate,
		SurveyorName:         property.SurveyorName,
		DeedNumbers:          []string(deeds),
		Address:              property.Address,
		Village:              property.Village,
		GNDivision:           property.GNDivision,
		District:             property.District,
		Province:             property.Province,
		Latitude:             property.Latitude,
		Longitude:            property.Longitude,
		RoadAccess:           property.RoadAccess,
		DirectionsText:       property.DirectionsText,
		AccessDescription:    property.AccessDescription,
		PropertyType:         property.PropertyType,
		TotalExtent:          property.TotalExtent,
		TotalExtentSqft:      property.TotalExtentSqft,
		LandShape:            property.LandShape,
		Elevation:            property.Elevation,
		SoilType:             property.SoilType,
		WaterTable:           property.WaterTable,
		FloodRisk:            property.FloodRisk,
		BuildingArea:         property.BuildingArea,
		BuildingStructure:    property.BuildingStructure,
		YearBuilt:            property.YearBuilt,
		BuildingCondition:    property.BuildingCondition,
		DepreciationRate:     property.DepreciationRate,
		Electricity:          property.Electricity,
		WaterSupply:          property.WaterSupply,
		Sewerage:             property.Sewerage,
		Telephone:            property.Telephone,
		Internet:             property.Internet,
		MarketActivity:       property.MarketActivity,
		DevelopmentPotential: property.DevelopmentPotential,
		Restrictions:         property.Restrictions,
		CreatedAt:            property.CreatedAt,
		UpdatedAt:            property.UpdatedAt,
	}
}

func (in CreatePropertyInput) toModel() *models.Property {
	property := &models.Property{
		ID:                   uuid.New(),
		ReportID:             in.ReportID,
		LotNumber:            in.LotNumber,
		PlanNumber:           in.PlanNumber,
		PlanDate:             in.PlanDate,
		SurveyorName:         in.SurveyorName,
		DeedNumbers:          dbtypes.StringList(in.DeedNumbers),
		Address:              in.Address,
		Village:              in.Village,
		GNDivision:           in.GNDivision,
		District:             in.District,
		Province:             in.Province,
		Latitude:             in.Latitude,
		Longitude:            in.Longitude,
		DirectionsText:       in.DirectionsText,
		AccessDescription:    in.AccessDescription,
		PropertyType:         in.PropertyType,
		TotalExtent:          in.TotalExtent,
		TotalExtentSqft:      in.TotalExtentSqft,
		LandShape:            in.LandShape,
		Elevation:            in.Elevation,
		SoilType:             in.SoilType,
		WaterTable:           in.WaterTable,
		BuildingArea:         in.BuildingArea,
		BuildingStructure:    in.BuildingStructure,
		YearBuilt:            in.YearBuilt,
		BuildingCondition:    in.BuildingCondition,
		DepreciationRate:     in.DepreciationRate,
		MarketActivity:       in.MarketActivity,
		DevelopmentPotential: in.DevelopmentPotential,
		Restrictions:         in.Restrictions,
	}
	if property.DeedNumbers == nil {
		property.DeedNumbers = dbtypes.StringList{}
	}
	if in.RoadAccess != nil {
		property.RoadAccess = *in.RoadAccess
	}
	if in.FloodRisk != nil {
		property.FloodRisk = *in.FloodRisk
	}
	if in.Electricity != nil {
		property.Electricity = *in.Electricity
	}
	if in.WaterSupply != nil {
		property.WaterSupply = *in.WaterSupply
	}
	if in.Sewerage != nil {
		property.Sewerage = *in.Sewerage
	}
	if in.Telephone != nil {
		property.Telephone = *in.Telephone
	}
	if in.Internet != nil {
		property.Internet = *in.Internet
	}
	return property
}

// columns maps the fields present in the payload to their database columns.
// Identifiers and timestamps are deliberately absent.
func (in UpdatePropertyInput) columns() map[string]any {
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
	setBool := func(column string, value *bool) {
		if value != nil {
			updates[column] = *value
		}
	}

	setString("lot_number", in.LotNumber)
	setString("plan_number", in.PlanNumber)
	if in.PlanDate != nil {
		updates["plan_date"] = *in.PlanDate
	}
	setString("surveyor_name", in.SurveyorName)
	if in.DeedNumbers != nil {
		updates["deed_numbers"] = dbtypes.StringList(in.DeedNumbers)
	}

	setString("address", in.Address)
	setString("village", in.Village)
	setString("gn_division", in.GNDivision)
	setString("district", in.District)
	setString("province", in.Province)
	setFloat("latitude", in.Latitude)
	setFloat("longitude", in.Longitude)

	setBool("road_access", in.RoadAccess)
	setString("directions_text", in.DirectionsText)
	setString("access_description", in.AccessDescription)

	setString("property_type", in.PropertyType)
	setString("total_extent", in.TotalExtent)
	setFloat("total_extent_sqft", in.TotalExtentSqft)
	setString("land_shape", in.LandShape)
	setString("elevation", in.Elevation)
	setString("soil_type", in.SoilType)
	setString("water_table", in.WaterTable)
	setBool("flood_risk", in.FloodRisk)

	setFloat("building_area", in.BuildingArea)
	setString("building_structure", in.BuildingStructure)
	if in.YearBuilt != nil {
		updates["year_built"] = *in.YearBuilt
	}
	setString("building_condition", in.BuildingCondition)
	setFloat("depreciation_rate", in.DepreciationRate)

	setBool("electricity", in.Electricity)
	setBool("water_supply", in.WaterSupply)
	setBool("sewerage", in.Sewerage)
	setBool("telephone", in.Telephone)
	setBool("internet", in.Internet)

	setString("market_activity", in.MarketActivity)
	setString("development_potential", in.DevelopmentPotential)
	setString("restrictions", in.Restrictions)

	return updates
}
