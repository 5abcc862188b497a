package models

import (
	"time"

	"github.com/google/uuid"

	dbtypes "github.com/malith-nethsiri/valuerpro-backend/pkg/db/types"
)

// Property holds the surveyed description of the subject property.
type Property struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ReportID uuid.UUID `gorm:"column:report_id;type:uuid;not null;index"`

	// Survey details
	LotNumber    *string            `gorm:"column:lot_number"`
	PlanNumber   *string            `gorm:"column:plan_number"`
	PlanDate     *time.Time         `gorm:"column:plan_date"`
	SurveyorName *string            `gorm:"column:surveyor_name"`
	DeedNumbers  dbtypes.StringList `gorm:"column:deed_numbers;type:text;not null;default:'[]'"`

	// Location
	Address    *string  `gorm:"column:address"`
	Village    *string  `gorm:"column:village"`
	GNDivision *string  `gorm:"column:gn_division"`
	District   *string  `gorm:"column:district"`
	Province   *string  `gorm:"column:province"`
	Latitude   *float64 `gorm:"column:latitude"`
	Longitude  *float64 `gorm:"column:longitude"`

	// Access
	RoadAccess        bool    `gorm:"column:road_access;not null;default:false"`
	DirectionsText    *string `gorm:"column:directions_text"`
	AccessDescription *string `gorm:"column:access_description"`

	// Land details
	PropertyType    *string  `gorm:"column:property_type"`
	TotalExtent     *string  `gorm:"column:total_extent"`
	TotalExtentSqft *float64 `gorm:"column:total_extent_sqft"`
	LandShape       *string  `gorm:"column:land_shape"`
	Elevation       *string  `gorm:"column:elevation"`
	SoilType        *string  `gorm:"column:soil_type"`
	WaterTable      *string  `gorm:"column:water_table"`
	FloodRisk       bool     `gorm:"column:flood_risk;not null;default:false"`

	// Building details
	BuildingArea      *float64 `gorm:"column:building_area"`
	BuildingStructure *string  `gorm:"column:building_structure"`
	YearBuilt         *int     `gorm:"column:year_built"`
	BuildingCondition *string  `gorm:"column:building_condition"`
	DepreciationRate  *float64 `gorm:"column:depreciation_rate"`

	// Utilities
	Electricity bool `gorm:"column:electricity;not null;default:false"`
	WaterSupply bool `gorm:"column:water_supply;not null;default:false"`
	Sewerage    bool `gorm:"column:sewerage;not null;default:false"`
	Telephone   bool `gorm:"column:telephone;not null;default:false"`
	Internet    bool `gorm:"column:internet;not null;default:false"`

	// Market analysis
	MarketActivity       *string `gorm:"column:market_activity"`
	DevelopmentPotential *string `gorm:"column:development_potential"`
	Restrictions         *string `gorm:"column:restrictions"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides GORM's default pluralization.
func (Property) TableName() string {
	return "properties"
}
