package catalog

import (
	"strings"
	"testing"
)

const minimalFarm = `
version: "1"
resources:
  solar_power_kw: 10
  battery_capacity_kwh: 28
  daytime_power_available_kwh: 35
  water_distance_miles: 20
  truck_mpg: 15
  available_money_monthly: 500
  investment_period_months: 12
  work_hours_daily: {min: 8, max: 10}
  outdoor_space_acres: 0.5
  indoor_space_sqft: 200
  has_automation_skills: true
  reinvestment_rate: 0.7
  target_savings: 25000
projects:
  herbs:
    name: Kitchen Herbs
    setup_cost: 100
    monthly_cost: 10
    monthly_revenue: 50
    space_required_sqft: 10
    is_indoor: true
    daily_hours: 0.5
    water_gallons_daily: 1
    power_usage: {kwh_daily: 0.5, time_of_use: daytime_only}
    startup_time_months: 1
    product_type: plants
    base_sales_probability: 0.8
    seasonal_multipliers: {spring: 1.1, summer: 1.0, fall: 1.0, winter: 0.9}
upgrades:
  shed:
    name: Storage Shed
    cost: 1000
    resource_impacts: {indoor_space_sqft: 100}
`

func TestParseMinimalFarm(t *testing.T) {
	f, err := Parse([]byte(minimalFarm))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if f.Resources.BatteryCapacityKWh != 28 {
		t.Errorf("battery capacity = %v, want 28", f.Resources.BatteryCapacityKWh)
	}
	if got := len(f.Catalog.Projects); got != 1 {
		t.Fatalf("expected 1 project, got %d", got)
	}
	p := f.Catalog.Projects["herbs"]
	if p.Power.TimeOfUse != DaytimeOnly {
		t.Errorf("time of use = %q, want daytime_only", p.Power.TimeOfUse)
	}
	if p.SeasonalMultiplier(Winter) != 0.9 {
		t.Errorf("winter multiplier = %v, want 0.9", p.SeasonalMultiplier(Winter))
	}
}

func TestParseAppliesDefaults(t *testing.T) {
	f, err := Parse([]byte(minimalFarm))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if f.Resources.WaterCostFactor != 1.0 {
		t.Errorf("water cost factor default = %v, want 1.0", f.Resources.WaterCostFactor)
	}

	u := f.Catalog.Upgrades["shed"]
	for _, s := range Seasons() {
		if u.SeasonalBenefit(s) != 1.0 {
			t.Errorf("seasonal benefit for %s = %v, want 1.0", s, u.SeasonalBenefit(s))
		}
	}

	p := f.Catalog.Projects["herbs"]
	if p.ClimateControlledBenefit != 1.0 {
		t.Errorf("climate benefit default = %v, want 1.0", p.ClimateControlledBenefit)
	}
}

func TestParseRejectsDuplicateKeys(t *testing.T) {
	doc := `
projects:
  herbs:
    name: First
    setup_cost: 100
  herbs:
    name: Second
    setup_cost: 200
`
	_, err := Parse([]byte(doc))
	if err == nil {
		t.Fatal("expected duplicate-key error, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate key") {
		t.Errorf("error %q does not mention duplicate key", err)
	}
	if !strings.Contains(err.Error(), "projects.herbs") {
		t.Errorf("error %q does not name the colliding path", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSeasonForPeriod(t *testing.T) {
	cases := []struct {
		period int
		want   Season
	}{
		{0, Spring}, {1, Summer}, {2, Fall}, {3, Winter},
		{4, Spring}, {7, Winter}, {12, Spring}, {23, Winter},
	}
	for _, c := range cases {
		if got := SeasonForPeriod(c.period); got != c.want {
			t.Errorf("SeasonForPeriod(%d) = %s, want %s", c.period, got, c.want)
		}
	}
}

func TestMarketConnectionServes(t *testing.T) {
	mc := MarketConnection{Name: "Farmers Market", ProductTypes: []string{"plants", "eggs"}, SalesMultiplier: 1.5}
	if !mc.Serves("plants") {
		t.Error("expected connection to serve plants")
	}
	if mc.Serves("meat") {
		t.Error("did not expect connection to serve meat")
	}
}

func TestResourcesCloneIsIndependent(t *testing.T) {
	r := &Resources{
		IndoorSpaceSqft:   200,
		MarketConnections: []MarketConnection{{Name: "Farmers Market", SalesMultiplier: 1.5}},
	}
	c := r.Clone()
	c.IndoorSpaceSqft = 700
	c.MarketConnections[0].SalesMultiplier = 9

	if r.IndoorSpaceSqft != 200 {
		t.Errorf("clone mutation leaked into original: indoor space = %v", r.IndoorSpaceSqft)
	}
	if r.MarketConnections[0].SalesMultiplier != 1.5 {
		t.Errorf("clone mutation leaked into original: multiplier = %v", r.MarketConnections[0].SalesMultiplier)
	}
}

func TestCatalogIDsSorted(t *testing.T) {
	c := &Catalog{Projects: map[string]*Project{
		"zebra_grass": {}, "air_plants": {}, "microgreens": {},
	}}
	ids := c.ProjectIDs()
	want := []string{"air_plants", "microgreens", "zebra_grass"}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("ProjectIDs() = %v, want %v", ids, want)
		}
	}
}
