package catalog

import "sort"

// Season is one of the four recurring climate phases. The simulation
// derives it cyclically from the zero-based period index.
type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Fall   Season = "fall"
	Winter Season = "winter"
)

// Seasons returns the four seasons in cyclic order, starting at spring.
func Seasons() [4]Season {
	return [4]Season{Spring, Summer, Fall, Winter}
}

// SeasonForPeriod maps a zero-based period index to its season.
// Period 0 is spring.
func SeasonForPeriod(period int) Season {
	return Seasons()[period%4]
}

// TimeOfUse tags when a project draws power, which determines whether
// its consumption counts against the daytime budget or the battery.
type TimeOfUse string

const (
	DaytimeOnly TimeOfUse = "daytime_only"
	NightOnly   TimeOfUse = "night_only"
	AnyTime     TimeOfUse = "any_time"
)

// PowerUsage is a project's daily power draw.
type PowerUsage struct {
	KWhDaily  float64   `yaml:"kwh_daily" json:"kwh_daily"`
	TimeOfUse TimeOfUse `yaml:"time_of_use" json:"time_of_use"`
}

// MarketConnection is a named sales channel. A project whose product
// type appears in ProductTypes sells through this channel at the given
// multiplier.
type MarketConnection struct {
	Name            string   `yaml:"name" json:"name"`
	ProductTypes    []string `yaml:"product_types" json:"product_types"`
	SalesMultiplier float64  `yaml:"sales_multiplier" json:"sales_multiplier"`
}

// Serves reports whether the connection sells the given product type.
func (mc MarketConnection) Serves(productType string) bool {
	for _, pt := range mc.ProductTypes {
		if pt == productType {
			return true
		}
	}
	return false
}

// WorkHours is the daily labor availability range.
type WorkHours struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Resources is the mutable environment snapshot. It is owned by the
// simulation loop for the duration of a run; infrastructure upgrades
// mutate it in place when applied.
type Resources struct {
	SolarPowerKW          float64            `yaml:"solar_power_kw" json:"solar_power_kw"`
	BatteryCapacityKWh    float64            `yaml:"battery_capacity_kwh" json:"battery_capacity_kwh"`
	DaytimePowerKWh       float64            `yaml:"daytime_power_available_kwh" json:"daytime_power_available_kwh"`
	WaterDistanceMiles    float64            `yaml:"water_distance_miles" json:"water_distance_miles"`
	TruckMPG              float64            `yaml:"truck_mpg" json:"truck_mpg"`
	AvailableMoneyMonthly float64            `yaml:"available_money_monthly" json:"available_money_monthly"`
	InvestmentMonths      int                `yaml:"investment_period_months" json:"investment_period_months"`
	WorkHoursDaily        WorkHours          `yaml:"work_hours_daily" json:"work_hours_daily"`
	OutdoorSpaceAcres     float64            `yaml:"outdoor_space_acres" json:"outdoor_space_acres"`
	IndoorSpaceSqft       float64            `yaml:"indoor_space_sqft" json:"indoor_space_sqft"`
	ClimateControlledSqft float64            `yaml:"climate_controlled_sqft" json:"climate_controlled_sqft"`
	HasAutomationSkills   bool               `yaml:"has_automation_skills" json:"has_automation_skills"`
	MarketConnections     []MarketConnection `yaml:"market_connections" json:"market_connections"`
	ReinvestmentRate      float64            `yaml:"reinvestment_rate" json:"reinvestment_rate"`
	TargetSavings         float64            `yaml:"target_savings" json:"target_savings"`

	// WaterCostFactor scales the computed water-transport cost. It
	// starts at 1.0 and is reduced by upgrades keyed "water_cost"
	// (a well with impact -1.0 eliminates hauling entirely). Never
	// drops below 0.
	WaterCostFactor float64 `yaml:"water_cost_factor" json:"water_cost_factor"`
}

// Clone returns an independent copy of the snapshot, so scenario runs
// never share mutable state.
func (r *Resources) Clone() *Resources {
	c := *r
	c.MarketConnections = make([]MarketConnection, len(r.MarketConnections))
	copy(c.MarketConnections, r.MarketConnections)
	return &c
}

// Project is an income-producing activity definition. Definitions are
// immutable once loaded; per-run lifecycle state lives in the
// simulation package.
type Project struct {
	Name                     string             `yaml:"name" json:"name"`
	SetupCost                float64            `yaml:"setup_cost" json:"setup_cost"`
	MonthlyCost              float64            `yaml:"monthly_cost" json:"monthly_cost"`
	MonthlyRevenue           float64            `yaml:"monthly_revenue" json:"monthly_revenue"`
	MonthlySavings           float64            `yaml:"monthly_savings" json:"monthly_savings"`
	SpaceRequiredSqft        float64            `yaml:"space_required_sqft" json:"space_required_sqft"`
	IsIndoor                 bool               `yaml:"is_indoor" json:"is_indoor"`
	DailyHours               float64            `yaml:"daily_hours" json:"daily_hours"`
	WaterGallonsDaily        float64            `yaml:"water_gallons_daily" json:"water_gallons_daily"`
	Power                    PowerUsage         `yaml:"power_usage" json:"power_usage"`
	StartupTimeMonths        int                `yaml:"startup_time_months" json:"startup_time_months"`
	KnowledgeRequired        int                `yaml:"knowledge_required" json:"knowledge_required"`
	SustainabilityScore      int                `yaml:"sustainability_score" json:"sustainability_score"`
	SynergyProjects          []string           `yaml:"synergy_projects" json:"synergy_projects"`
	Scalability              int                `yaml:"scalability" json:"scalability"`
	AutomationPotential      int                `yaml:"automation_potential" json:"automation_potential"`
	ProductType              string             `yaml:"product_type" json:"product_type"`
	BaseSalesProbability     float64            `yaml:"base_sales_probability" json:"base_sales_probability"`
	SeasonalMultipliers      map[Season]float64 `yaml:"seasonal_multipliers" json:"seasonal_multipliers"`
	ClimateControlledBenefit float64            `yaml:"climate_controlled_benefit" json:"climate_controlled_benefit"`
}

// SeasonalMultiplier returns the project's revenue multiplier for the
// season, defaulting to 1.0 when the table has no entry.
func (p *Project) SeasonalMultiplier(s Season) float64 {
	if m, ok := p.SeasonalMultipliers[s]; ok {
		return m
	}
	return 1.0
}

// SynergizesWith reports whether the project declares the given
// catalog identifier as a synergy partner.
func (p *Project) SynergizesWith(id string) bool {
	for _, s := range p.SynergyProjects {
		if s == id {
			return true
		}
	}
	return false
}

// Upgrade is a one-time capital investment. Applying it permanently
// mutates the Resources snapshot per ResourceImpacts; each upgrade may
// be applied at most once per run.
type Upgrade struct {
	Name                 string             `yaml:"name" json:"name"`
	Cost                 float64            `yaml:"cost" json:"cost"`
	MonthlyOperatingCost float64            `yaml:"monthly_operating_cost" json:"monthly_operating_cost"`
	ResourceImpacts      map[string]float64 `yaml:"resource_impacts" json:"resource_impacts"`
	SeasonalBenefits     map[Season]float64 `yaml:"seasonal_benefits" json:"seasonal_benefits"`
}

// SeasonalBenefit returns the upgrade's revenue multiplier for the
// season, defaulting to 1.0 when the table has no entry.
func (u *Upgrade) SeasonalBenefit(s Season) float64 {
	if m, ok := u.SeasonalBenefits[s]; ok {
		return m
	}
	return 1.0
}

// ImpactsClimateSpace reports whether the upgrade expands
// climate-controlled space. Only such upgrades project revenue benefit
// in the ROI estimate.
func (u *Upgrade) ImpactsClimateSpace() bool {
	_, ok := u.ResourceImpacts[ImpactClimateControlledSqft]
	return ok
}

// Recognized resource-impact keys. An upgrade naming any other key is
// a configuration error.
const (
	ImpactClimateControlledSqft = "climate_controlled_sqft"
	ImpactIndoorSpaceSqft       = "indoor_space_sqft"
	ImpactOutdoorSpaceAcres     = "outdoor_space_acres"
	ImpactDaytimePowerKWh       = "daytime_power_available_kwh"
	ImpactBatteryCapacityKWh    = "battery_capacity_kwh"
	ImpactSolarPowerKW          = "solar_power_kw"
	ImpactWaterDistanceMiles    = "water_distance_miles"
	ImpactWaterCost             = "water_cost"
)

// KnownImpactKey reports whether key names a Resources field an
// upgrade may mutate.
func KnownImpactKey(key string) bool {
	switch key {
	case ImpactClimateControlledSqft, ImpactIndoorSpaceSqft,
		ImpactOutdoorSpaceAcres, ImpactDaytimePowerKWh,
		ImpactBatteryCapacityKWh, ImpactSolarPowerKW,
		ImpactWaterDistanceMiles, ImpactWaterCost:
		return true
	}
	return false
}

// Catalog maps identifiers to project and upgrade definitions. It is
// immutable for the duration of a run.
type Catalog struct {
	Projects map[string]*Project `yaml:"projects" json:"projects"`
	Upgrades map[string]*Upgrade `yaml:"upgrades" json:"upgrades"`
}

// ProjectIDs returns the catalog's project identifiers in sorted
// order, for deterministic iteration.
func (c *Catalog) ProjectIDs() []string {
	ids := make([]string, 0, len(c.Projects))
	for id := range c.Projects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// UpgradeIDs returns the catalog's upgrade identifiers in sorted order.
func (c *Catalog) UpgradeIDs() []string {
	ids := make([]string, 0, len(c.Upgrades))
	for id := range c.Upgrades {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
