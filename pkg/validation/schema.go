package validation

import (
	"fmt"

	"github.com/BillTheMaker/life-optimizer-tools/pkg/catalog"
)

// ValidateSchema performs schema validation on a parsed farm file. It
// checks structural correctness of the resource snapshot and both
// catalogs before any simulation runs.
func ValidateSchema(f *catalog.File) *Report {
	r := NewReport()

	validateResources(&f.Resources, r)
	validateProjects(&f.Catalog, r)
	validateUpgrades(&f.Catalog, r)

	return r
}

func validateResources(res *catalog.Resources, r *Report) {
	nonNegative := []struct {
		name  string
		value float64
	}{
		{"solar_power_kw", res.SolarPowerKW},
		{"battery_capacity_kwh", res.BatteryCapacityKWh},
		{"daytime_power_available_kwh", res.DaytimePowerKWh},
		{"water_distance_miles", res.WaterDistanceMiles},
		{"outdoor_space_acres", res.OutdoorSpaceAcres},
		{"indoor_space_sqft", res.IndoorSpaceSqft},
		{"climate_controlled_sqft", res.ClimateControlledSqft},
		{"water_cost_factor", res.WaterCostFactor},
		{"target_savings", res.TargetSavings},
		{"available_money_monthly", res.AvailableMoneyMonthly},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("resources.%s must be non-negative", f.name),
				FieldPath:   "resources." + f.name,
				ActualValue: f.value,
				Expected:    ">= 0",
			})
		}
	}

	if res.TruckMPG <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "resources.truck_mpg must be greater than 0",
			FieldPath:   "resources.truck_mpg",
			ActualValue: res.TruckMPG,
			Expected:    "> 0",
		})
	}

	if res.ReinvestmentRate < 0 || res.ReinvestmentRate > 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("resources.reinvestment_rate must be within [0, 1] (got %.2f)", res.ReinvestmentRate),
			FieldPath:   "resources.reinvestment_rate",
			ActualValue: res.ReinvestmentRate,
			Expected:    "0.0 - 1.0",
		})
	}

	if res.InvestmentMonths <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "resources.investment_period_months must be greater than 0",
			FieldPath:   "resources.investment_period_months",
			ActualValue: res.InvestmentMonths,
			Expected:    "> 0",
		})
	}

	if res.WorkHoursDaily.Min > res.WorkHoursDaily.Max {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "resources.work_hours_daily.min must not exceed max",
			FieldPath:   "resources.work_hours_daily",
			ActualValue: fmt.Sprintf("%.1f-%.1f", res.WorkHoursDaily.Min, res.WorkHoursDaily.Max),
		})
	}

	for i, mc := range res.MarketConnections {
		if mc.SalesMultiplier < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("market connection %q: sales_multiplier must be non-negative", mc.Name),
				FieldPath:   fmt.Sprintf("resources.market_connections[%d].sales_multiplier", i),
				ActualValue: mc.SalesMultiplier,
				Expected:    ">= 0",
			})
		}
		if len(mc.ProductTypes) == 0 {
			r.AddWarning(Result{
				Level:     LevelSchema,
				Message:   fmt.Sprintf("market connection %q serves no product types", mc.Name),
				FieldPath: fmt.Sprintf("resources.market_connections[%d].product_types", i),
			})
		}
	}
}

func validateProjects(c *catalog.Catalog, r *Report) {
	if len(c.Projects) == 0 {
		r.AddWarning(Result{
			Level:     LevelSchema,
			Message:   "catalog defines no projects; a simulation will only accumulate budget",
			FieldPath: "projects",
		})
		return
	}

	for _, id := range c.ProjectIDs() {
		p := c.Projects[id]
		path := "projects." + id

		if p.SetupCost < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("project %q: setup_cost must be non-negative", id),
				FieldPath:   path + ".setup_cost",
				ActualValue: p.SetupCost,
				Expected:    ">= 0",
			})
		}
		if p.StartupTimeMonths < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("project %q: startup_time_months must be non-negative", id),
				FieldPath:   path + ".startup_time_months",
				ActualValue: p.StartupTimeMonths,
				Expected:    ">= 0",
			})
		}
		if p.BaseSalesProbability < 0 || p.BaseSalesProbability > 1 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("project %q: base_sales_probability must be within [0, 1]", id),
				FieldPath:   path + ".base_sales_probability",
				ActualValue: p.BaseSalesProbability,
				Expected:    "0.0 - 1.0",
			})
		}
		if p.SpaceRequiredSqft < 0 || p.WaterGallonsDaily < 0 || p.Power.KWhDaily < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("project %q: space, water, and power requirements must be non-negative", id),
				FieldPath:   path,
			})
		}
		switch p.Power.TimeOfUse {
		case catalog.DaytimeOnly, catalog.NightOnly, catalog.AnyTime:
		default:
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("project %q: unknown power time_of_use %q", id, p.Power.TimeOfUse),
				FieldPath:   path + ".power_usage.time_of_use",
				ActualValue: string(p.Power.TimeOfUse),
				Expected:    "daytime_only | night_only | any_time",
			})
		}
		for s, m := range p.SeasonalMultipliers {
			if m < 0 {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("project %q: seasonal multiplier for %s must be non-negative", id, s),
					FieldPath:   fmt.Sprintf("%s.seasonal_multipliers.%s", path, s),
					ActualValue: m,
					Expected:    ">= 0",
				})
			}
		}
		if p.ProductType == "" {
			r.AddWarning(Result{
				Level:     LevelSchema,
				Message:   fmt.Sprintf("project %q has no product type; market connections will never apply", id),
				FieldPath: path + ".product_type",
			})
		}
		for _, partner := range p.SynergyProjects {
			if _, ok := c.Projects[partner]; !ok {
				r.AddWarning(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("project %q declares unknown synergy partner %q", id, partner),
					FieldPath:   path + ".synergy_projects",
					ActualValue: partner,
					Suggestions: []string{"define the partner project or remove the link"},
				})
			}
		}
	}
}

func validateUpgrades(c *catalog.Catalog, r *Report) {
	for _, id := range c.UpgradeIDs() {
		u := c.Upgrades[id]
		path := "upgrades." + id

		if u.Cost < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("upgrade %q: cost must be non-negative", id),
				FieldPath:   path + ".cost",
				ActualValue: u.Cost,
				Expected:    ">= 0",
			})
		}
		if u.MonthlyOperatingCost < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("upgrade %q: monthly_operating_cost must be non-negative", id),
				FieldPath:   path + ".monthly_operating_cost",
				ActualValue: u.MonthlyOperatingCost,
				Expected:    ">= 0",
			})
		}
		for key := range u.ResourceImpacts {
			if !catalog.KnownImpactKey(key) {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("upgrade %q: unknown resource impact %q", id, key),
					FieldPath:   path + ".resource_impacts",
					ActualValue: key,
					Expected:    "a recognized resources field",
				})
			}
		}
		for s, m := range u.SeasonalBenefits {
			if m < 0 {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("upgrade %q: seasonal benefit for %s must be non-negative", id, s),
					FieldPath:   fmt.Sprintf("%s.seasonal_benefits.%s", path, s),
					ActualValue: m,
					Expected:    ">= 0",
				})
			}
		}
	}
}
